package main

import (
	clay "github.com/go-go-golems/clay/pkg"
	"github.com/go-go-golems/glazed/pkg/cli"
	"github.com/go-go-golems/glazed/pkg/cmds/logging"
	"github.com/go-go-golems/glazed/pkg/help"
	help_cmd "github.com/go-go-golems/glazed/pkg/help/cmd"
	"github.com/spf13/cobra"

	"github.com/go-go-golems/grillo/pkg/doc"
)

var rootCmd = &cobra.Command{
	Use:   "grillo",
	Short: "grillo compiles INI-like help files into static lookup tables",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitLoggerFromCobra(cmd)
	},
}

func main() {
	err := clay.InitGlazed("grillo", rootCmd)
	cobra.CheckErr(err)

	helpSystem := help.NewHelpSystem()
	err = doc.AddDocToHelpSystem(helpSystem)
	cobra.CheckErr(err)
	help_cmd.SetupCobraRootCommand(helpSystem, rootCmd)

	generateCmd, err := NewGenerateCommand()
	cobra.CheckErr(err)
	command, err := cli.BuildCobraCommand(generateCmd)
	cobra.CheckErr(err)
	rootCmd.AddCommand(command)

	listCmd, err := NewListCommand()
	cobra.CheckErr(err)
	command, err = cli.BuildCobraCommand(listCmd)
	cobra.CheckErr(err)
	rootCmd.AddCommand(command)

	checkCmd, err := NewCheckCommand()
	cobra.CheckErr(err)
	command, err = cli.BuildCobraCommand(checkCmd)
	cobra.CheckErr(err)
	rootCmd.AddCommand(command)

	showCmd, err := NewShowCommand()
	cobra.CheckErr(err)
	command, err = cli.BuildCobraCommand(showCmd)
	cobra.CheckErr(err)
	rootCmd.AddCommand(command)

	cobra.CheckErr(rootCmd.Execute())
}
