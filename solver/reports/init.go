// SPDX-License-Identifier: GPL-3.0-or-later

package reports

import (
	"errors"
)

func (s *Solver) validateConfig() error {
	if s.Input == "" {
		return errors.New("'input' not set")
	}
	if s.StepBound <= 0 {
		return errors.New("'step_bound' must be positive")
	}
	if s.MaxOmissions < 0 {
		return errors.New("'max_omissions' must not be negative")
	}
	if s.Workers < 0 {
		return errors.New("'workers' must not be negative")
	}
	return nil
}
