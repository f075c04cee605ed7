// SPDX-License-Identifier: GPL-3.0-or-later

package multipath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/go-homedir"
)

type ErrNotFound struct{ msg string }

func (e ErrNotFound) Error() string { return e.msg }

// IsNotFound returns a boolean indicating whether the error is ErrNotFound or not.
func IsNotFound(err error) bool {
	var e ErrNotFound
	return errors.As(err, &e)
}

// MultiPath multi-paths
type MultiPath []string

// New creates a MultiPath. Empty and duplicate paths are dropped, '~' is expanded.
func New(paths ...string) MultiPath {
	set := map[string]bool{}
	mPath := make(MultiPath, 0)

	for _, path := range paths {
		if path == "" {
			continue
		}
		path = Expand(path)
		if !set[path] {
			set[path] = true
			mPath = append(mPath, path)
		}
	}

	return mPath
}

// Find finds a file in given paths
func (p MultiPath) Find(filename string) (string, error) {
	for _, dir := range p {
		file := filepath.Join(dir, filename)
		if _, err := os.Stat(file); !os.IsNotExist(err) {
			return file, nil
		}
	}
	return "", ErrNotFound{msg: fmt.Sprintf("can't find '%s' in %v", filename, p)}
}

// FindFiles returns the files in all paths that have one of the suffixes.
// A file name found in an earlier path shadows the same name in later paths.
func (p MultiPath) FindFiles(suffixes ...string) ([]string, error) {
	set := make(map[string]bool)
	var files []string

	for _, dir := range p {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}

		for _, e := range entries {
			if !e.Type().IsRegular() || set[e.Name()] {
				continue
			}
			if len(suffixes) > 0 && !slices.ContainsFunc(suffixes, func(s string) bool { return strings.HasSuffix(e.Name(), s) }) {
				continue
			}
			set[e.Name()] = true
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	return files, nil
}

// Expand replaces a leading '~' with the user's home directory.
// The path is returned unchanged if the home directory can't be resolved.
func Expand(path string) string {
	v, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return v
}
