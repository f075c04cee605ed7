// SPDX-License-Identifier: GPL-3.0-or-later

package module

import (
	"fmt"
	"slices"
	"strings"
)

// Defaults is a set of module default parameters.
type Defaults struct {
	// Day is the puzzle day the module solves. Answers are printed in day order.
	Day      int
	Disabled bool
}

type (
	// Creator is a Job builder.
	Creator struct {
		Defaults
		Create func() Module
		Config func() any
	}
	// Registry is a collection of Creators.
	Registry map[string]Creator
)

// DefaultRegistry DefaultRegistry.
var DefaultRegistry = Registry{}

// Register registers a module in the DefaultRegistry.
func Register(name string, creator Creator) {
	DefaultRegistry.Register(name, creator)
}

// Register registers a module.
func (r Registry) Register(name string, creator Creator) {
	if _, ok := r[name]; ok {
		panic(fmt.Sprintf("%s is already in registry", name))
	}
	r[name] = creator
}

func (r Registry) Lookup(name string) (Creator, bool) {
	v, ok := r[name]
	return v, ok
}

// Names returns the registered module names ordered by day, then name.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if da, db := r[a].Day, r[b].Day; da != db {
			return da - db
		}
		return strings.Compare(a, b)
	})
	return names
}
