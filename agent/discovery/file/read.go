// SPDX-License-Identifier: GPL-3.0-or-later

package file

import (
	"log/slog"

	"github.com/thatmisaki/aoc-2024/agent/confgroup"
	"github.com/thatmisaki/aoc-2024/logger"
	"github.com/thatmisaki/aoc-2024/pkg/multipath"
)

// Reader reads '<module>.conf' files from a set of directories.
type Reader struct {
	*logger.Logger

	dirs multipath.MultiPath
}

func NewReader(dirs multipath.MultiPath) *Reader {
	return &Reader{
		Logger: logger.New().With(
			slog.String("component", "discovery"),
			slog.String("discoverer", "file"),
		),
		dirs: dirs,
	}
}

// Read returns a group per module that has a config file. Modules without
// one are skipped, a broken file is logged and skipped.
func (r *Reader) Read(modules []string) []*confgroup.Group {
	var groups []*confgroup.Group

	for _, name := range modules {
		path, err := r.dirs.Find(name + ".conf")
		if err != nil {
			if multipath.IsNotFound(err) {
				r.Debugf("no config file for module '%s'", name)
			} else {
				r.Warning(err)
			}
			continue
		}

		group, err := parse(path)
		if err != nil {
			r.Warningf("parse '%s': %v", path, err)
			continue
		}
		if group == nil || len(group.Configs) == 0 {
			r.Debugf("no jobs in '%s'", path)
			continue
		}

		r.Debugf("read %d job(s) from '%s'", len(group.Configs), path)
		groups = append(groups, group)
	}

	return groups
}
