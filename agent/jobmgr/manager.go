// SPDX-License-Identifier: GPL-3.0-or-later

package jobmgr

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/template"

	"github.com/thatmisaki/aoc-2024/agent/confgroup"
	"github.com/thatmisaki/aoc-2024/agent/module"
	"github.com/thatmisaki/aoc-2024/logger"

	"github.com/sourcegraph/conc/pool"
	"gopkg.in/yaml.v2"
)

func New() *Manager {
	return &Manager{
		Logger: logger.New().With(
			slog.String("component", "job manager"),
		),
		Out:     io.Discard,
		Modules: module.DefaultRegistry,
		Jobs:    1,
	}
}

// Manager turns job configs into jobs, runs them and writes their answers.
type Manager struct {
	*logger.Logger

	PluginName string
	Out        io.Writer
	Modules    module.Registry
	// Jobs is the max number of jobs run at the same time.
	Jobs int
	// Format renders each answer line, nil means Answer.String.
	Format *template.Template
}

// Run runs a job for every unique config in groups and writes the answers
// to Out. It returns the number of jobs that failed.
func (m *Manager) Run(ctx context.Context, groups []*confgroup.Group) int {
	m.Info("instance is started")
	defer func() { m.Info("instance is stopped") }()

	var cfgs []confgroup.Config
	for _, g := range groups {
		cfgs = append(cfgs, g.Configs...)
	}

	cfgs, dups := confgroup.Dedupe(cfgs)
	for _, cfg := range dups {
		m.Warningf("skipping duplicate job config: %s", cfg)
	}

	var (
		results = newAnswers()
		jobs    []*module.Job
		failed  int
	)

	for _, cfg := range cfgs {
		job, err := m.createJob(cfg)
		if err != nil {
			m.Errorf("couldn't create job '%s': %v", cfg.FullName(), err)
			failed++
			continue
		}
		jobs = append(jobs, job)
	}

	p := pool.New().WithMaxGoroutines(max(m.Jobs, 1))
	for _, job := range jobs {
		p.Go(func() {
			if !m.runJob(ctx, job, results) {
				results.fail()
			}
		})
	}
	p.Wait()

	failed += results.failed()

	if err := results.write(m.Out, m.Modules, m.Format); err != nil {
		m.Errorf("writing answers: %v", err)
		failed++
	}

	if failed > 0 {
		m.Warningf("%d of %d job(s) failed", failed, len(cfgs))
	}

	return failed
}

func (m *Manager) runJob(ctx context.Context, job *module.Job, results *answers) bool {
	defer job.Cleanup(ctx)

	if err := job.AutoDetection(ctx); err != nil {
		return false
	}

	res, err := job.Run(ctx)
	if err != nil {
		job.Errorf("solve failed: %v", err)
		return false
	}

	job.Debugf("solved: %v", res)
	results.add(job.ModuleName(), job.Name(), res)

	return true
}

func (m *Manager) createJob(cfg confgroup.Config) (*module.Job, error) {
	creator, ok := m.Modules.Lookup(cfg.Module())
	if !ok {
		return nil, fmt.Errorf("module '%s' is not registered", cfg.Module())
	}
	if creator.Create == nil {
		return nil, fmt.Errorf("no module creator is defined")
	}

	mod := creator.Create()
	if mod == nil {
		return nil, fmt.Errorf("Create returned nil")
	}

	if err := applyConfig(cfg, mod); err != nil {
		return nil, err
	}

	return module.NewJob(module.JobConfig{
		PluginName: m.PluginName,
		Name:       cfg.Name(),
		ModuleName: cfg.Module(),
		FullName:   cfg.FullName(),
		Module:     mod,
	}), nil
}

func applyConfig(cfg confgroup.Config, module any) error {
	bs, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(bs, module)
}
