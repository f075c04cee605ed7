// SPDX-License-Identifier: GPL-3.0-or-later

package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/thatmisaki/aoc-2024/agent/module"
	"github.com/thatmisaki/aoc-2024/pkg/textinput"
)

func init() {
	module.Register("memory", module.Creator{
		Defaults: module.Defaults{
			Day: 3,
		},
		Create: func() module.Module { return New() },
		Config: func() any { return &Config{} },
	})
}

func New() *Solver {
	return &Solver{
		Config: Config{
			MaxOperandDigits: 3,
		},
	}
}

type Config struct {
	Input            string `yaml:"input" json:"input"`
	MaxOperandDigits int    `yaml:"max_operand_digits,omitempty" json:"max_operand_digits" jsonschema:"minimum=1,default=3"`
}

// Solver recovers the multiplications hidden in corrupted memory.
type Solver struct {
	module.Base
	Config `yaml:",inline" json:""`

	program []instruction
}

func (s *Solver) Configuration() any {
	return s.Config
}

func (s *Solver) Init(context.Context) error {
	if s.Input == "" {
		return fmt.Errorf("config validation: %v", errors.New("'input' not set"))
	}
	if s.MaxOperandDigits <= 0 {
		return fmt.Errorf("config validation: %v", errors.New("'max_operand_digits' must be positive"))
	}
	return nil
}

func (s *Solver) Check(context.Context) error {
	bs, err := textinput.ReadFile(s.Input)
	if err != nil {
		return err
	}
	s.program = scan(string(bs), s.MaxOperandDigits)
	if len(s.program) == 0 {
		s.Warningf("no instructions found in '%s'", s.Input)
	}
	return nil
}

func (s *Solver) Solve(ctx context.Context) map[string]int64 {
	if s.program == nil {
		if err := s.Check(ctx); err != nil {
			s.Error(err)
			return nil
		}
	}

	var muls int64
	for _, in := range s.program {
		if in.op == opMul {
			muls++
		}
	}

	return map[string]int64{
		"part1":        sumProducts(s.program),
		"part2":        sumEnabledProducts(s.program),
		"instructions": int64(len(s.program)),
		"mul":          muls,
	}
}

func (s *Solver) Cleanup(context.Context) {
	s.program = nil
}
