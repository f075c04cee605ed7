// SPDX-License-Identifier: GPL-3.0-or-later

package agent

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/thatmisaki/aoc-2024/agent/module"
	_ "github.com/thatmisaki/aoc-2024/solver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgent_Run_Solvers(t *testing.T) {
	a := New(Config{
		ConfDir:        []string{"testdata/solvers"},
		ModuleRegistry: module.DefaultRegistry,
		Jobs:           3,
	})

	var buf bytes.Buffer
	a.Out = &buf

	require.Equal(t, 0, a.Run(context.Background()))

	var parts []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(line, " part") {
			parts = append(parts, line)
		}
	}

	assert.Equal(t, []string{
		"locations[sample] part1=11",
		"locations[sample] part2=31",
		"reports[sample] part1=2",
		"reports[sample] part2=4",
		"memory[sample] part1=161",
		"memory[sample] part2=48",
		"wordsearch[sample] part1=18",
		"wordsearch[sample] part2=9",
		"printqueue[sample] part1=143",
		"printqueue[sample] part2=123",
	}, parts)
}
