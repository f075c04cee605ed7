// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/thatmisaki/aoc-2024/agent"
	"github.com/thatmisaki/aoc-2024/logger"
	"github.com/thatmisaki/aoc-2024/pkg/buildinfo"
	"github.com/thatmisaki/aoc-2024/pkg/cli"
	"github.com/thatmisaki/aoc-2024/pkg/executable"
	_ "github.com/thatmisaki/aoc-2024/solver"
)

func main() {
	_, _ = maxprocs.Set(maxprocs.Logger(func(s string, args ...interface{}) {}))

	opts := parseCLI()

	if opts.Version {
		fmt.Printf("%s, version: %s\n", executable.Name, buildinfo.Version)
		return
	}

	if lvl := os.Getenv("AOCD_LOG_LEVEL"); lvl != "" {
		logger.Level.SetByName(lvl)
	}
	if opts.LogLevel != "" && !logger.Level.SetByName(opts.LogLevel) {
		logger.Warningf("unknown log level '%s', using '%s'", opts.LogLevel, logger.Level)
	}
	if opts.Debug {
		logger.Level.Set(slog.LevelDebug)
	}

	a := agent.New(agent.Config{
		Name:      executable.Name,
		ConfDir:   configDirs(opts.ConfDir),
		RunModule: opts.Module,
		Input:     opts.Input,
		Jobs:      opts.Jobs,
		Format:    opts.Format,
		Watch:     opts.Watch,
	})

	if opts.Schema {
		if err := a.WriteSchemas(os.Stdout); err != nil {
			a.Error(err)
			os.Exit(1)
		}
		return
	}

	a.Infof("plugin: name=%s, %s", a.Name, buildinfo.Info())
	if u, err := user.Current(); err == nil {
		a.Debugf("current user: name=%s, uid=%s", u.Username, u.Uid)
	}
	a.Debugf("directories → config: %s", a.ConfDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := a.Run(ctx)
	stop()

	os.Exit(code)
}

func parseCLI() *cli.Option {
	opt, err := cli.Parse(os.Args[1:])
	if err != nil {
		if cli.IsHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	return opt
}

func configDirs(fromCLI []string) []string {
	if len(fromCLI) > 0 {
		return fromCLI
	}

	var dirs []string
	if dir := os.Getenv("AOCD_CONFIG_DIR"); dir != "" {
		dirs = append(dirs, dir)
	}
	if buildinfo.StockConfigDir != "" {
		dirs = append(dirs, buildinfo.StockConfigDir)
	}
	if executable.Directory != "" {
		dirs = append(dirs, filepath.Join(executable.Directory, "..", "config", "aoc.d"))
	}
	return dirs
}
