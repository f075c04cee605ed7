// SPDX-License-Identifier: GPL-3.0-or-later

package wordsearch

import (
	"errors"
)

func (s *Solver) validateConfig() error {
	if s.Input == "" {
		return errors.New("'input' not set")
	}
	if s.Word == "" {
		return errors.New("'word' not set")
	}
	if n := len(s.CrossWord); n < 3 || n%2 == 0 {
		return errors.New("'cross_word' must have an odd length of at least 3")
	}
	return nil
}
