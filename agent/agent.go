// SPDX-License-Identifier: GPL-3.0-or-later

package agent

import (
	"context"
	"io"
	"log/slog"
	"os"
	"text/template"

	"github.com/thatmisaki/aoc-2024/agent/confgroup"
	"github.com/thatmisaki/aoc-2024/agent/discovery/file"
	"github.com/thatmisaki/aoc-2024/agent/jobmgr"
	"github.com/thatmisaki/aoc-2024/agent/module"
	"github.com/thatmisaki/aoc-2024/logger"
	"github.com/thatmisaki/aoc-2024/pkg/matcher"
	"github.com/thatmisaki/aoc-2024/pkg/multipath"
)

// Config is an Agent configuration.
type Config struct {
	Name           string
	ConfDir        []string
	ModuleRegistry module.Registry
	RunModule      string
	Input          string
	Jobs           int
	Format         string
	Watch          bool
}

// Agent represents orchestrator.
type Agent struct {
	*logger.Logger

	Name           string
	ConfDir        multipath.MultiPath
	RunModule      string
	Input          string
	Jobs           int
	Format         string
	Watch          bool
	ModuleRegistry module.Registry
	Out            io.Writer
}

// New creates a new Agent.
func New(cfg Config) *Agent {
	reg := cfg.ModuleRegistry
	if reg == nil {
		reg = module.DefaultRegistry
	}
	return &Agent{
		Logger: logger.New().With(
			slog.String("component", "agent"),
		),
		Name:           cfg.Name,
		ConfDir:        multipath.New(cfg.ConfDir...),
		RunModule:      cfg.RunModule,
		Input:          cfg.Input,
		Jobs:           cfg.Jobs,
		Format:         cfg.Format,
		Watch:          cfg.Watch,
		ModuleRegistry: reg,
		Out:            os.Stdout,
	}
}

// Run solves every configured job once and returns the process exit code:
// 0 when all jobs produced answers, 1 otherwise. In watch mode it solves
// again after every change of a config or input file until ctx is done, and
// returns the exit code of the last pass.
func (a *Agent) Run(ctx context.Context) int {
	a.Info("instance is started")
	defer func() { a.Info("instance is stopped") }()

	enabled, err := a.loadEnabledModules()
	if err != nil {
		a.Errorf("invalid module selector '%s': %v", a.RunModule, err)
		return 1
	}
	if len(enabled) == 0 {
		a.Errorf("no modules match '%s'", a.RunModule)
		return 1
	}
	a.Debugf("enabled modules: %v", enabled.Names())

	format, err := jobmgr.NewFormat(a.Format)
	if err != nil {
		a.Error(err)
		return 1
	}

	code, groups := a.solve(ctx, enabled, format)

	for a.Watch {
		w := file.NewWatcher(a.watchPaths(groups))
		if err := w.Wait(ctx); err != nil {
			if ctx.Err() == nil {
				a.Errorf("watching for changes: %v", err)
			}
			break
		}
		a.Info("change detected, solving again")
		code, groups = a.solve(ctx, enabled, format)
	}

	return code
}

func (a *Agent) solve(ctx context.Context, enabled module.Registry, format *template.Template) (int, []*confgroup.Group) {
	groups := a.loadJobConfigs(enabled)
	if len(groups) == 0 {
		a.Errorf("no jobs to run (config dirs: %s)", a.ConfDir)
		return 1, nil
	}

	jobMgr := jobmgr.New()
	jobMgr.PluginName = a.Name
	jobMgr.Out = a.Out
	jobMgr.Modules = enabled
	jobMgr.Jobs = a.Jobs
	jobMgr.Format = format

	if failed := jobMgr.Run(ctx, groups); failed > 0 {
		return 1, groups
	}
	return 0, groups
}

func (a *Agent) watchPaths(groups []*confgroup.Group) []string {
	var paths []string
	if a.Input != "" {
		paths = append(paths, a.Input)
	} else {
		paths = append(paths, a.ConfDir...)
	}
	for _, g := range groups {
		for _, cfg := range g.Configs {
			if in := cfg.Input(); in != "" {
				paths = append(paths, in)
			}
		}
	}
	return paths
}

func (a *Agent) loadEnabledModules() (module.Registry, error) {
	expr := a.RunModule
	if expr == "" {
		expr = "all"
	}

	m, err := matcher.Parse(expr)
	if err != nil {
		return nil, err
	}

	enabled := module.Registry{}
	for _, name := range a.ModuleRegistry.Names() {
		creator, _ := a.ModuleRegistry.Lookup(name)
		if !m.MatchString(name) {
			continue
		}
		if creator.Disabled && name != a.RunModule {
			a.Infof("'%s' module disabled by default, select it by name to run it", name)
			continue
		}
		enabled.Register(name, creator)
	}

	return enabled, nil
}

func (a *Agent) loadJobConfigs(enabled module.Registry) []*confgroup.Group {
	if a.Input == "" {
		return file.NewReader(a.ConfDir).Read(enabled.Names())
	}

	var groups []*confgroup.Group
	for _, name := range enabled.Names() {
		cfg := confgroup.Config{}
		cfg.SetModule(name)
		cfg.SetSource("command line")
		cfg.SetProvider("cli")
		cfg.SetInput(a.Input)
		cfg.ApplyDefaults(nil)
		cfg.ResolveInput("")

		groups = append(groups, &confgroup.Group{
			Configs: []confgroup.Config{cfg},
			Source:  "command line",
		})
	}
	return groups
}
