// SPDX-License-Identifier: GPL-3.0-or-later

package locations

import (
	"context"
	"errors"
	"fmt"

	"github.com/thatmisaki/aoc-2024/agent/module"
)

func init() {
	module.Register("locations", module.Creator{
		Defaults: module.Defaults{
			Day: 1,
		},
		Create: func() module.Module { return New() },
		Config: func() any { return &Config{} },
	})
}

func New() *Solver {
	return &Solver{}
}

type Config struct {
	Input string `yaml:"input" json:"input"`
}

// Solver reconciles two columns of location IDs: the total distance
// between the sorted columns and the similarity score of the left column.
type Solver struct {
	module.Base
	Config `yaml:",inline" json:""`

	left  []int
	right []int
}

func (s *Solver) Configuration() any {
	return s.Config
}

func (s *Solver) Init(context.Context) error {
	if s.Input == "" {
		return fmt.Errorf("config validation: %v", errors.New("'input' not set"))
	}
	return nil
}

func (s *Solver) Check(context.Context) error {
	left, right, err := readColumns(s.Input)
	if err != nil {
		return err
	}
	s.left, s.right = left, right
	return nil
}

func (s *Solver) Solve(ctx context.Context) map[string]int64 {
	if s.left == nil {
		if err := s.Check(ctx); err != nil {
			s.Error(err)
			return nil
		}
	}

	return map[string]int64{
		"part1": totalDistance(s.left, s.right),
		"part2": similarity(s.left, s.right),
		"pairs": int64(len(s.left)),
	}
}

func (s *Solver) Cleanup(context.Context) {
	s.left, s.right = nil, nil
}
