// SPDX-License-Identifier: GPL-3.0-or-later

package printqueue

import (
	"context"
	"errors"
	"fmt"

	"github.com/thatmisaki/aoc-2024/agent/module"
)

func init() {
	module.Register("printqueue", module.Creator{
		Defaults: module.Defaults{
			Day: 5,
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

// Solver checks page updates against the page ordering rules.
type Solver struct {
	module.Base
	Config `yaml:",inline" json:""`

	queue *queue
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
	q, err := readQueue(s.Input)
	if err != nil {
		return err
	}
	s.queue = q
	s.Debugf("read %d rules and %d updates", len(s.queue.rules), len(s.queue.updates))
	return nil
}

func (s *Solver) Solve(ctx context.Context) map[string]int64 {
	if s.queue == nil {
		if err := s.Check(ctx); err != nil {
			s.Error(err)
			return nil
		}
	}

	mx := map[string]int64{
		"part1":     0,
		"part2":     0,
		"rules":     int64(len(s.queue.rules)),
		"updates":   int64(len(s.queue.updates)),
		"reordered": 0,
	}

	for _, upd := range s.queue.updates {
		if s.queue.inOrder(upd) {
			mx["part1"] += int64(middle(upd))
			continue
		}
		mx["reordered"]++
		mx["part2"] += int64(middle(s.queue.reorder(upd)))
	}

	return mx
}

func (s *Solver) Cleanup(context.Context) {
	s.queue = nil
}
