// SPDX-License-Identifier: GPL-3.0-or-later

package wordsearch

import (
	"context"
	"fmt"

	"github.com/thatmisaki/aoc-2024/agent/module"
)

func init() {
	module.Register("wordsearch", module.Creator{
		Defaults: module.Defaults{
			Day: 4,
		},
		Create: func() module.Module { return New() },
		Config: func() any { return &Config{} },
	})
}

func New() *Solver {
	return &Solver{
		Config: Config{
			Word:      "XMAS",
			CrossWord: "MAS",
		},
	}
}

type Config struct {
	Input     string `yaml:"input" json:"input"`
	Word      string `yaml:"word,omitempty" json:"word"`
	CrossWord string `yaml:"cross_word,omitempty" json:"cross_word"`
}

// Solver counts words hidden in a letter grid.
type Solver struct {
	module.Base
	Config `yaml:",inline" json:""`

	grid *grid
}

func (s *Solver) Configuration() any {
	return s.Config
}

func (s *Solver) Init(context.Context) error {
	if err := s.validateConfig(); err != nil {
		return fmt.Errorf("config validation: %v", err)
	}
	return nil
}

func (s *Solver) Check(context.Context) error {
	g, err := readGrid(s.Input)
	if err != nil {
		return err
	}
	s.grid = g
	s.Debugf("grid is %dx%d", g.rows, g.cols)
	return nil
}

func (s *Solver) Solve(ctx context.Context) map[string]int64 {
	if s.grid == nil {
		if err := s.Check(ctx); err != nil {
			s.Error(err)
			return nil
		}
	}

	return map[string]int64{
		"part1": s.grid.countWord(s.Word),
		"part2": s.grid.countCrosses(s.CrossWord),
		"cells": int64(s.grid.rows * s.grid.cols),
	}
}

func (s *Solver) Cleanup(context.Context) {
	s.grid = nil
}
