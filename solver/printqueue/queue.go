// SPDX-License-Identifier: GPL-3.0-or-later

package printqueue

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/thatmisaki/aoc-2024/pkg/textinput"
)

type rule struct{ before, after int }

type queue struct {
	rules   map[rule]bool
	updates [][]int
}

func readQueue(path string) (*queue, error) {
	bs, err := textinput.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseQueue(bs)
}

func parseQueue(data []byte) (*queue, error) {
	q := &queue{rules: make(map[rule]bool)}
	inUpdates := false

	for i, line := range textinput.Lines(data) {
		line = strings.TrimSpace(line)
		if line == "" {
			if inUpdates {
				return nil, fmt.Errorf("line %d: unexpected blank line", i+1)
			}
			inUpdates = true
			continue
		}

		if !inUpdates {
			nums, err := textinput.Ints(line, "|")
			if err != nil || len(nums) != 2 {
				return nil, fmt.Errorf("line %d: invalid ordering rule '%s'", i+1, line)
			}
			q.rules[rule{before: nums[0], after: nums[1]}] = true
			continue
		}

		nums, err := textinput.Ints(line, ",")
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", i+1, err)
		}
		if len(nums)%2 == 0 {
			return nil, fmt.Errorf("line %d: update has no middle page (%d pages)", i+1, len(nums))
		}
		q.updates = append(q.updates, nums)
	}

	if !inUpdates {
		return nil, errors.New("no blank line between rules and updates")
	}
	if len(q.updates) == 0 {
		return nil, errors.New("no updates")
	}

	return q, nil
}

func (q *queue) compare(a, b int) int {
	switch {
	case q.rules[rule{before: a, after: b}]:
		return -1
	case q.rules[rule{before: b, after: a}]:
		return 1
	default:
		return 0
	}
}

// inOrder reports whether no rule puts a later page before an earlier one.
func (q *queue) inOrder(update []int) bool {
	for i := 0; i < len(update); i++ {
		for j := i + 1; j < len(update); j++ {
			if q.rules[rule{before: update[j], after: update[i]}] {
				return false
			}
		}
	}
	return true
}

func (q *queue) reorder(update []int) []int {
	sorted := slices.Clone(update)
	slices.SortStableFunc(sorted, q.compare)
	return sorted
}

func middle(update []int) int {
	return update[len(update)/2]
}
