// SPDX-License-Identifier: GPL-3.0-or-later

package matcher

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type (
	stringFullMatcher string
	globMatcher       string
)

// NewGlobMatcher create a new matcher with glob format
func NewGlobMatcher(expr string) (Matcher, error) {
	if !strings.ContainsAny(expr, `*?[{\`) {
		return stringFullMatcher(expr), nil
	}
	if !doublestar.ValidatePattern(expr) {
		return nil, fmt.Errorf("invalid glob pattern '%s'", expr)
	}
	return globMatcher(expr), nil
}

func (m stringFullMatcher) MatchString(s string) bool { return string(m) == s }

func (m globMatcher) MatchString(s string) bool {
	ok, err := doublestar.Match(string(m), s)
	return err == nil && ok
}
