// SPDX-License-Identifier: GPL-3.0-or-later

package reports

import (
	"context"
	"fmt"

	"github.com/thatmisaki/aoc-2024/agent/module"
	"github.com/thatmisaki/aoc-2024/pkg/runcheck"
)

func init() {
	module.Register("reports", module.Creator{
		Defaults: module.Defaults{
			Day: 2,
		},
		Create: func() module.Module { return New() },
		Config: func() any { return &Config{} },
	})
}

func New() *Solver {
	return &Solver{
		Config: Config{
			StepBound:    runcheck.DefaultStepBound,
			MaxOmissions: 1,
		},
	}
}

type Config struct {
	Input        string `yaml:"input" json:"input" jsonschema:"required"`
	StepBound    int    `yaml:"step_bound,omitempty" json:"step_bound" jsonschema:"minimum=1,default=3"`
	MaxOmissions int    `yaml:"max_omissions" json:"max_omissions" jsonschema:"minimum=0,default=1"`
	Workers      int    `yaml:"workers,omitempty" json:"workers" jsonschema:"minimum=0,default=0"`
}

// Solver counts the reports whose levels form a safe run, first exactly and
// then tolerating up to MaxOmissions bad levels.
type Solver struct {
	module.Base
	Config `yaml:",inline" json:""`

	validator *runcheck.Validator
	reports   [][]int
}

func (s *Solver) Configuration() any {
	return s.Config
}

func (s *Solver) Init(context.Context) error {
	if err := s.validateConfig(); err != nil {
		return fmt.Errorf("config validation: %v", err)
	}

	s.validator = runcheck.New(s.StepBound)

	return nil
}

func (s *Solver) Check(context.Context) error {
	reports, err := readReports(s.Input)
	if err != nil {
		return err
	}
	s.reports = reports
	s.Debugf("read %d reports from '%s'", len(reports), s.Input)
	return nil
}

func (s *Solver) Solve(ctx context.Context) map[string]int64 {
	mx, err := s.solve(ctx)
	if err != nil {
		s.Error(err)
	}

	if len(mx) == 0 {
		return nil
	}
	return mx
}

func (s *Solver) Cleanup(context.Context) {
	s.reports = nil
}
