// SPDX-License-Identifier: GPL-3.0-or-later

package jobmgr

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"text/template"

	"github.com/thatmisaki/aoc-2024/agent/module"
)

// Answer is one value solved by a job.
type Answer struct {
	Module string
	Job    string
	Part   string
	Value  int64
}

func (a Answer) String() string {
	return fmt.Sprintf("%s[%s] %s=%d", a.Module, a.Job, a.Part, a.Value)
}

type answers struct {
	mux     sync.Mutex
	items   []Answer
	nFailed int
}

func newAnswers() *answers {
	return &answers{}
}

func (a *answers) add(moduleName, jobName string, values map[string]int64) {
	a.mux.Lock()
	defer a.mux.Unlock()

	for part, v := range values {
		a.items = append(a.items, Answer{Module: moduleName, Job: jobName, Part: part, Value: v})
	}
}

func (a *answers) fail() {
	a.mux.Lock()
	defer a.mux.Unlock()

	a.nFailed++
}

func (a *answers) failed() int {
	a.mux.Lock()
	defer a.mux.Unlock()

	return a.nFailed
}

// sorted returns the answers in module, job, part order. Modules follow
// the registry order, parts named "part<N>" come before the other values.
func (a *answers) sorted(reg module.Registry) []Answer {
	a.mux.Lock()
	defer a.mux.Unlock()

	order := make(map[string]int)
	for i, name := range reg.Names() {
		order[name] = i
	}
	rank := func(name string) int {
		if i, ok := order[name]; ok {
			return i
		}
		return len(order)
	}

	items := slices.Clone(a.items)
	slices.SortFunc(items, func(x, y Answer) int {
		return cmp.Or(
			cmp.Compare(rank(x.Module), rank(y.Module)),
			strings.Compare(x.Module, y.Module),
			strings.Compare(x.Job, y.Job),
			comparePart(x.Part, y.Part),
		)
	})

	return items
}

func (a *answers) write(w io.Writer, reg module.Registry, tmpl *template.Template) error {
	for _, item := range a.sorted(reg) {
		line, err := formatAnswer(tmpl, item)
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func comparePart(x, y string) int {
	px, py := strings.HasPrefix(x, "part"), strings.HasPrefix(y, "part")
	switch {
	case px && !py:
		return -1
	case !px && py:
		return 1
	default:
		return strings.Compare(x, y)
	}
}
