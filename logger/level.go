// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"log/slog"
	"strings"
)

const (
	levelNotice  = slog.Level(2)
	levelDisable = slog.Level(99)
)

var (
	customLevels = map[slog.Leveler]string{
		levelNotice: "NOTICE",
	}
	customLevelsTerm = map[slog.Leveler]string{
		levelNotice: "\u001B[34m" + "NTC" + "\u001B[0m",
	}
)

// Level is shared by every Logger created by this package.
var Level = &level{lvl: &slog.LevelVar{}}

type level struct {
	lvl *slog.LevelVar
}

func (l *level) Enabled(level slog.Level) bool {
	return level >= l.lvl.Level()
}

func (l *level) Set(level slog.Level) {
	l.lvl.Set(level)
}

// SetByName sets the level from its name and reports whether the name was known.
func (l *level) SetByName(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "err", "error":
		l.lvl.Set(slog.LevelError)
	case "warn", "warning":
		l.lvl.Set(slog.LevelWarn)
	case "notice":
		l.lvl.Set(levelNotice)
	case "info":
		l.lvl.Set(slog.LevelInfo)
	case "debug":
		l.lvl.Set(slog.LevelDebug)
	case "off", "none":
		l.lvl.Set(levelDisable)
	default:
		return false
	}
	return true
}

func (l *level) String() string {
	if s, ok := customLevels[l.lvl.Level()]; ok {
		return strings.ToLower(s)
	}
	if l.lvl.Level() == levelDisable {
		return "off"
	}
	return strings.ToLower(l.lvl.Level().String())
}
