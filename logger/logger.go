// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/thatmisaki/aoc-2024/pkg/executable"

	"github.com/mattn/go-isatty"
)

var isTerm = isatty.IsTerminal(os.Stderr.Fd())

var isJournal = isStderrConnectedToJournal()

var pluginAttr = slog.String("plugin", executable.Name)

// New returns a Logger writing through the default handler.
func New() *Logger {
	if isTerm {
		// skip 2 slog pkg calls, 2 this pkg calls
		return &Logger{sl: slog.New(withCallDepth(4, newTerminalHandler()))}
	}
	return &Logger{sl: slog.New(newTextHandler()).With(pluginAttr)}
}

// Logger is a thin wrapper over slog.Logger with printf-style helpers.
type Logger struct {
	muted atomic.Bool
	sl    *slog.Logger
}

func (l *Logger) Error(a ...any)   { l.log(slog.LevelError, fmt.Sprint(a...)) }
func (l *Logger) Warning(a ...any) { l.log(slog.LevelWarn, fmt.Sprint(a...)) }
func (l *Logger) Notice(a ...any)  { l.log(levelNotice, fmt.Sprint(a...)) }
func (l *Logger) Info(a ...any)    { l.log(slog.LevelInfo, fmt.Sprint(a...)) }
func (l *Logger) Debug(a ...any)   { l.log(slog.LevelDebug, fmt.Sprint(a...)) }

func (l *Logger) Errorf(format string, a ...any)   { l.log(slog.LevelError, fmt.Sprintf(format, a...)) }
func (l *Logger) Warningf(format string, a ...any) { l.log(slog.LevelWarn, fmt.Sprintf(format, a...)) }
func (l *Logger) Noticef(format string, a ...any)  { l.log(levelNotice, fmt.Sprintf(format, a...)) }
func (l *Logger) Infof(format string, a ...any)    { l.log(slog.LevelInfo, fmt.Sprintf(format, a...)) }
func (l *Logger) Debugf(format string, a ...any)   { l.log(slog.LevelDebug, fmt.Sprintf(format, a...)) }

// With returns a Logger that includes args in every record.
func (l *Logger) With(args ...any) *Logger {
	if l.isNil() {
		return &Logger{sl: New().sl.With(args...)}
	}
	return &Logger{sl: l.sl.With(args...)}
}

// Mute drops every record until Unmute is called.
func (l *Logger) Mute() {
	if !l.isNil() {
		l.muted.Store(true)
	}
}

func (l *Logger) Unmute() {
	if !l.isNil() {
		l.muted.Store(false)
	}
}

func (l *Logger) log(level slog.Level, msg string) {
	if l.isNil() {
		nilLogger.sl.Log(context.Background(), level, msg)
		return
	}
	if l.muted.Load() {
		return
	}
	l.sl.Log(context.Background(), level, cleanMessage(msg))
}

func (l *Logger) isNil() bool { return l == nil || l.sl == nil }

var nilLogger = New()

func cleanMessage(msg string) string {
	return strings.TrimRight(msg, "\n")
}
