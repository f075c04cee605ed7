// SPDX-License-Identifier: GPL-3.0-or-later

package reports

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

type verdicts struct {
	exact    bool
	tolerant bool
}

func (s *Solver) solve(ctx context.Context) (map[string]int64, error) {
	if s.reports == nil {
		if err := s.Check(ctx); err != nil {
			return nil, err
		}
	}

	var results []verdicts
	if s.Workers > 1 && len(s.reports) > 1 {
		res, err := s.classifyConcurrently(ctx)
		if err != nil {
			return nil, err
		}
		results = res
	} else {
		results = make([]verdicts, 0, len(s.reports))
		for _, levels := range s.reports {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results = append(results, s.classify(levels))
		}
	}

	mx := map[string]int64{
		"part1":   0,
		"part2":   0,
		"reports": int64(len(results)),
	}
	for _, v := range results {
		if v.exact {
			mx["part1"]++
		}
		if v.tolerant {
			mx["part2"]++
		}
	}
	mx["unsafe"] = mx["reports"] - mx["part2"]

	return mx, nil
}

func (s *Solver) classifyConcurrently(ctx context.Context) ([]verdicts, error) {
	p := pool.NewWithResults[verdicts]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(s.Workers)

	for _, levels := range s.reports {
		p.Go(func(ctx context.Context) (verdicts, error) {
			if err := ctx.Err(); err != nil {
				return verdicts{}, err
			}
			return s.classify(levels), nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Solver) classify(levels []int) verdicts {
	exact := s.validator.Classify(levels, 0)
	if exact.Safe {
		return verdicts{exact: true, tolerant: true}
	}

	tolerant := s.validator.Classify(levels, s.MaxOmissions)
	if tolerant.Safe {
		s.Debugf("report %v is safe after dropping %d level(s): %v", levels, tolerant.Omitted, tolerant.Retained)
	}

	return verdicts{tolerant: tolerant.Safe}
}
