// Package scanner provides the project tree walk and source line counting
// shared by the audit phases.
package scanner

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Root is the walk root inside a project filesystem.
const Root = "."

// Entry is a single match produced by Find.
type Entry struct {
	// Path is slash-separated and relative to the project root.
	Path string

	// Dir reports whether the entry is a directory.
	Dir bool

	// Regular reports whether the entry is a regular file. Symlinks are
	// resolved for this check but never descended into.
	Regular bool
}

// Matcher decides whether a walked entry is reported.
type Matcher func(name string) bool

// Options controls a Find walk.
type Options struct {
	// Match selects entries by base name. A nil Match reports everything.
	Match Matcher

	// Exclude holds substrings; any entry whose relative path contains one
	// of them is skipped, and matching directories are pruned.
	Exclude []string

	// IncludeHidden descends into and reports dot-prefixed entries.
	IncludeHidden bool

	// Logger receives debug records for entries skipped due to I/O errors.
	Logger *slog.Logger
}

// Extensions returns a Matcher accepting names that end in any of exts.
func Extensions(exts ...string) Matcher {
	return func(name string) bool {
		for _, ext := range exts {
			if strings.HasSuffix(name, ext) {
				return true
			}
		}
		return false
	}
}

// Patterns returns a Matcher accepting names that match any of the
// filepath.Match globs.
func Patterns(globs ...string) Matcher {
	return func(name string) bool {
		for _, g := range globs {
			if ok, err := filepath.Match(g, name); err == nil && ok {
				return true
			}
		}
		return false
	}
}

// Find walks fsys depth-first from Root and returns the matching entries in
// lexical walk order. Errors on individual entries are logged and skipped;
// only a failure to read the root itself is returned.
func Find(fsys afero.Fs, opts Options) ([]Entry, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var entries []Entry
	err := afero.Walk(fsys, Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == Root {
				return fmt.Errorf("reading project root: %w", err)
			}
			logger.Debug("skipping unreadable entry", "path", path, "err", err)
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == Root {
			return nil
		}

		name := info.Name()
		if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel := filepath.ToSlash(path)
		if IsExcluded(rel, opts.Exclude) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if opts.Match != nil && !opts.Match(name) {
			return nil
		}

		entries = append(entries, Entry{
			Path:    rel,
			Dir:     info.IsDir(),
			Regular: isRegular(fsys, path, info),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// IsExcluded reports whether rel contains any of the exclusion substrings.
func IsExcluded(rel string, exclude []string) bool {
	for _, ex := range exclude {
		if strings.Contains(rel, ex) {
			return true
		}
	}
	return false
}

// Files filters entries down to regular files.
func Files(entries []Entry) []Entry {
	var files []Entry
	for _, e := range entries {
		if e.Regular {
			files = append(files, e)
		}
	}
	return files
}

func isRegular(fsys afero.Fs, path string, info os.FileInfo) bool {
	if info.Mode()&fs.ModeSymlink == 0 {
		return info.Mode().IsRegular()
	}
	target, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return target.Mode().IsRegular()
}
