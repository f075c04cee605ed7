// SPDX-License-Identifier: GPL-3.0-or-later

package executable

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	Name      string
	Directory string
)

func init() {
	path, err := os.Executable()
	if err != nil || path == "" {
		Name = "aoc.d"
		return
	}

	Name, Directory = nameAndDir(path)
}

func nameAndDir(path string) (string, string) {
	dir, name := filepath.Split(path)
	name = strings.TrimSuffix(name, ".exe")
	name = strings.TrimSuffix(name, ".plugin")

	if strings.HasSuffix(name, ".test") {
		name = "test"
	}

	fi, err := os.Lstat(path)
	if err != nil {
		return name, filepath.Clean(dir)
	}
	if fi.Mode()&os.ModeSymlink != 0 {
		if realPath, err := filepath.EvalSymlinks(path); err == nil {
			return name, filepath.Dir(realPath)
		}
	}
	return name, filepath.Dir(path)
}
