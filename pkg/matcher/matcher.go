// SPDX-License-Identifier: GPL-3.0-or-later

package matcher

import (
	"errors"
	"strings"
)

// Matcher is an interface that wraps MatchString method.
type Matcher interface {
	// MatchString performs match against given string.
	MatchString(string) bool
}

var ErrEmptyExpr = errors.New("empty expression")

type (
	trueMatcher  struct{}
	falseMatcher struct{}
	notMatcher   struct{ m Matcher }
	orMatcher    struct{ lhs, rhs Matcher }
	andMatcher   struct{ lhs, rhs Matcher }
)

func TRUE() Matcher  { return trueMatcher{} }
func FALSE() Matcher { return falseMatcher{} }

func Not(m Matcher) Matcher {
	switch m.(type) {
	case trueMatcher:
		return FALSE()
	case falseMatcher:
		return TRUE()
	}
	return notMatcher{m}
}

func Or(lhs, rhs Matcher) Matcher {
	switch {
	case isFalse(lhs):
		return rhs
	case isFalse(rhs):
		return lhs
	case isTrue(lhs) || isTrue(rhs):
		return TRUE()
	}
	return orMatcher{lhs, rhs}
}

func And(lhs, rhs Matcher) Matcher {
	switch {
	case isTrue(lhs):
		return rhs
	case isTrue(rhs):
		return lhs
	case isFalse(lhs) || isFalse(rhs):
		return FALSE()
	}
	return andMatcher{lhs, rhs}
}

func (trueMatcher) MatchString(string) bool    { return true }
func (falseMatcher) MatchString(string) bool   { return false }
func (m notMatcher) MatchString(s string) bool { return !m.m.MatchString(s) }
func (m orMatcher) MatchString(s string) bool  { return m.lhs.MatchString(s) || m.rhs.MatchString(s) }
func (m andMatcher) MatchString(s string) bool { return m.lhs.MatchString(s) && m.rhs.MatchString(s) }

func isTrue(m Matcher) bool  { _, ok := m.(trueMatcher); return ok }
func isFalse(m Matcher) bool { _, ok := m.(falseMatcher); return ok }

// Parse parses a list expression.
func Parse(expr string) (Matcher, error) {
	terms := strings.FieldsFunc(expr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(terms) == 0 {
		return nil, ErrEmptyExpr
	}

	var hasIncludes bool
	includes, excludes := FALSE(), FALSE()

	for _, term := range terms {
		negative := strings.HasPrefix(term, "!")
		term = strings.TrimPrefix(term, "!")

		var m Matcher
		if term == "all" {
			m = TRUE()
		} else {
			var err error
			if m, err = NewGlobMatcher(term); err != nil {
				return nil, err
			}
		}

		if negative {
			excludes = Or(excludes, m)
		} else {
			hasIncludes = true
			includes = Or(includes, m)
		}
	}

	if !hasIncludes {
		includes = TRUE()
	}

	return And(includes, Not(excludes)), nil
}

// Must is a helper that wraps a call to a function returning (Matcher, error)
// and panics if the error is non-nil.
func Must(m Matcher, err error) Matcher {
	if err != nil {
		panic(err)
	}
	return m
}
