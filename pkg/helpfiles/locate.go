package helpfiles

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/mb0/glob"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Base-name convention for help files.
const (
	DefaultPrefix    = "help-"
	DefaultExtension = ".txt"
)

// DefaultExcludedDirs are the directory names skipped at every level of the
// search tree.
var DefaultExcludedDirs = []string{".git", "3rd-party"}

type LocateOptions struct {
	// Prefix and Extension select help files by base name. Empty values
	// fall back to the defaults.
	Prefix    string
	Extension string
	// ExcludedDirs are directory names pruned before descending. nil means
	// DefaultExcludedDirs; an empty non-nil slice disables exclusion.
	ExcludedDirs []string
}

func (o LocateOptions) withDefaults() LocateOptions {
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.Extension == "" {
		o.Extension = DefaultExtension
	}
	if o.ExcludedDirs == nil {
		o.ExcludedDirs = DefaultExcludedDirs
	}
	return o
}

// Pattern returns the glob pattern help files are matched against.
func (o LocateOptions) Pattern() string {
	o = o.withDefaults()
	return o.Prefix + "*" + o.Extension
}

// Locate walks root and returns the paths of all help files found,
// lexically sorted. Directories named in the exclusion list are pruned
// before they are descended into, so nothing inside them is ever visited.
// Zero matches is not an error.
func Locate(root string, opts LocateOptions) ([]string, error) {
	opts = opts.withDefaults()

	excluded := map[string]bool{}
	for _, name := range opts.ExcludedDirs {
		excluded[name] = true
	}
	pattern := opts.Pattern()

	log.Debug().Str("root", root).Str("pattern", pattern).Msg("searching for help files")

	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && excluded[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		matching, err := glob.Match(pattern, d.Name())
		if err != nil {
			return errors.Wrapf(err, "invalid help file pattern %q", pattern)
		}
		if !matching {
			return nil
		}
		log.Debug().Str("path", path).Msg("found help file")
		found = append(found, path)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search for help files under %s", root)
	}

	sort.Strings(found)
	return found, nil
}
