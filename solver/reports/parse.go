// SPDX-License-Identifier: GPL-3.0-or-later

package reports

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thatmisaki/aoc-2024/pkg/textinput"
)

func readReports(path string) ([][]int, error) {
	bs, err := textinput.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseReports(bs)
}

// parseReports turns every non-blank line into a sequence of levels.
func parseReports(data []byte) ([][]int, error) {
	var reports [][]int

	for i, line := range textinput.Lines(data) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		levels, err := textinput.Ints(line, "")
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", i+1, err)
		}
		reports = append(reports, levels)
	}

	if len(reports) == 0 {
		return nil, errors.New("no reports found")
	}

	return reports, nil
}
