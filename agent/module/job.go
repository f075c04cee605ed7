// SPDX-License-Identifier: GPL-3.0-or-later

package module

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"runtime/debug"

	"github.com/thatmisaki/aoc-2024/logger"
)

type JobConfig struct {
	PluginName string
	Name       string
	ModuleName string
	FullName   string
	Module     Module
}

func NewJob(cfg JobConfig) *Job {
	j := &Job{
		pluginName: cfg.PluginName,
		name:       cfg.Name,
		moduleName: cfg.ModuleName,
		fullName:   cfg.FullName,
		module:     cfg.Module,
	}

	log := logger.New().With(
		slog.String("module", j.ModuleName()),
		slog.String("job", j.Name()),
	)

	j.Logger = log
	if j.module != nil {
		j.module.GetBase().Logger = log
	}

	return j
}

// Job runs one configured instance of a module.
type Job struct {
	*logger.Logger

	pluginName string
	name       string
	moduleName string
	fullName   string

	module Module

	initialized bool
	panicked    bool
	answers     map[string]int64
}

var ErrNoAnswers = errors.New("no answers")

// FullName returns the job full name.
func (j *Job) FullName() string {
	return j.fullName
}

// ModuleName returns the job module name.
func (j *Job) ModuleName() string {
	return j.moduleName
}

// Name returns the job name.
func (j *Job) Name() string {
	return j.name
}

// Panicked returns 'panicked' flag value.
func (j *Job) Panicked() bool {
	return j.panicked
}

func (j *Job) Configuration() any {
	return j.module.Configuration()
}

// Answers returns a copy of the answers of the last successful Run.
func (j *Job) Answers() map[string]int64 {
	return maps.Clone(j.answers)
}

// AutoDetection invokes init and check. It handles panic.
func (j *Job) AutoDetection(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic %v", r)
			j.logPanic(r)
		}
		if err != nil {
			j.module.Cleanup(ctx)
		}
	}()

	if err = j.init(ctx); err != nil {
		j.Errorf("init failed: %v", err)
		return err
	}

	if err = j.module.Check(ctx); err != nil {
		j.Errorf("check failed: %v", err)
		return err
	}

	j.Debug("check success")

	return nil
}

// Run solves the puzzle once. It handles panic.
func (j *Job) Run(ctx context.Context) (map[string]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	answers := j.solve(ctx)
	if j.panicked {
		return nil, fmt.Errorf("job '%s' panicked", j.FullName())
	}
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}

	j.answers = answers
	return j.Answers(), nil
}

func (j *Job) Cleanup(ctx context.Context) {
	j.module.Cleanup(ctx)
}

func (j *Job) init(ctx context.Context) error {
	if j.initialized {
		return nil
	}

	if err := j.module.Init(ctx); err != nil {
		return err
	}

	j.initialized = true

	return nil
}

func (j *Job) solve(ctx context.Context) (result map[string]int64) {
	j.panicked = false
	defer func() {
		if r := recover(); r != nil {
			j.panicked = true
			result = nil
			j.logPanic(r)
		}
	}()
	return j.module.Solve(ctx)
}

func (j *Job) logPanic(r any) {
	j.panicked = true
	j.Errorf("PANIC %v", r)
	if logger.Level.Enabled(slog.LevelDebug) {
		j.Errorf("STACK: %s", debug.Stack())
	}
}
