// SPDX-License-Identifier: GPL-3.0-or-later

package runcheck

import (
	"fmt"
	"strings"
)

// Kind tags the variant held by a State.
type Kind uint8

const (
	Empty Kind = iota
	Single
	Run
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Single:
		return "single"
	case Run:
		return "run"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// State is the best-known valid prefix of a sequence. It is a value type:
// Accept returns a new State and never changes the receiver, so both
// branches of the search can start from the same prior State.
//
// Retained values live in a persistent list that shares its tail between
// States. Values materialises it on demand.
type State struct {
	kind Kind
	dir  Direction
	tail *link
	n    int
}

type link struct {
	value int
	prev  *link
}

func (s State) Kind() Kind           { return s.kind }
func (s State) Direction() Direction { return s.dir }
func (s State) Len() int             { return s.n }

// Last returns the most recently retained value.
func (s State) Last() (int, bool) {
	if s.tail == nil {
		return 0, false
	}
	return s.tail.value, true
}

// Values returns the retained values in input order.
func (s State) Values() []int {
	values := make([]int, s.n)
	i := s.n - 1
	for l := s.tail; l != nil; l = l.prev {
		values[i] = l.value
		i--
	}
	return values
}

// Accept tries to extend the state with item.
//
//	Empty        -> Single(item)
//	Single(prev) -> Run(dir, prev item)   if the step is strict and bounded
//	Run(dir, ..) -> Run(dir, .. item)     if item keeps dir and the bound
func (s State) Accept(item int, rule Rule) (State, bool) {
	switch s.kind {
	case Empty:
		return s.push(Single, Undetermined, item), true
	case Single:
		dir := rule.DirectionOf(s.tail.value, item)
		if dir == Undetermined {
			return s, false
		}
		return s.push(Run, dir, item), true
	case Run:
		if !rule.Compatible(s.tail.value, item, s.dir) {
			return s, false
		}
		return s.push(Run, s.dir, item), true
	default:
		return s, false
	}
}

func (s State) push(kind Kind, dir Direction, item int) State {
	return State{
		kind: kind,
		dir:  dir,
		tail: &link{value: item, prev: s.tail},
		n:    s.n + 1,
	}
}

func (s State) String() string {
	var sb strings.Builder
	sb.WriteString(s.kind.String())
	if s.kind == Run {
		sb.WriteString("(")
		sb.WriteString(s.dir.String())
		sb.WriteString(")")
	}
	sb.WriteString(fmt.Sprint(s.Values()))
	return sb.String()
}
