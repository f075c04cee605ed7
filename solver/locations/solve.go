// SPDX-License-Identifier: GPL-3.0-or-later

package locations

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/thatmisaki/aoc-2024/pkg/textinput"
)

func readColumns(path string) (left, right []int, err error) {
	bs, err := textinput.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return parseColumns(bs)
}

func parseColumns(data []byte) (left, right []int, err error) {
	for i, line := range textinput.Lines(data) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		nums, err := textinput.Ints(line, "")
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %v", i+1, err)
		}
		if len(nums) != 2 {
			return nil, nil, fmt.Errorf("line %d: expected 2 columns, got %d", i+1, len(nums))
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
	}
	if len(left) == 0 {
		return nil, nil, errors.New("no location pairs found")
	}
	return left, right, nil
}

// totalDistance pairs the smallest left with the smallest right and so on,
// summing the absolute differences.
func totalDistance(left, right []int) int64 {
	l, r := slices.Sorted(slices.Values(left)), slices.Sorted(slices.Values(right))

	var total int64
	for i := range l {
		d := l[i] - r[i]
		if d < 0 {
			d = -d
		}
		total += int64(d)
	}
	return total
}

// similarity sums every left value multiplied by how often it appears on the right.
func similarity(left, right []int) int64 {
	counts := make(map[int]int64, len(right))
	for _, v := range right {
		counts[v]++
	}

	var score int64
	for _, v := range left {
		score += int64(v) * counts[v]
	}
	return score
}
