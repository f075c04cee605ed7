// SPDX-License-Identifier: GPL-3.0-or-later

package wordsearch

import (
	"context"
	"os"
	"testing"

	"github.com/thatmisaki/aoc-2024/agent/module"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dataConfigJSON, _ = os.ReadFile("testdata/config.json")
	dataConfigYAML, _ = os.ReadFile("testdata/config.yaml")

	dataSample, _ = os.ReadFile("testdata/sample.txt")
	dataRagged, _ = os.ReadFile("testdata/ragged.txt")
)

func Test_testDataIsValid(t *testing.T) {
	for name, data := range map[string][]byte{
		"dataConfigJSON": dataConfigJSON,
		"dataConfigYAML": dataConfigYAML,
		"dataSample":     dataSample,
		"dataRagged":     dataRagged,
	} {
		require.NotNil(t, data, name)
	}
}

func TestSolver_ConfigurationSerialize(t *testing.T) {
	module.TestConfigurationSerialize(t, &Solver{}, dataConfigJSON, dataConfigYAML)
}

func TestSolver_Init(t *testing.T) {
	tests := map[string]struct {
		config   Config
		wantFail bool
	}{
		"success":               {config: Config{Input: "testdata/sample.txt", Word: "XMAS", CrossWord: "MAS"}},
		"default config":        {config: New().Config, wantFail: true},
		"empty word":            {config: Config{Input: "testdata/sample.txt", CrossWord: "MAS"}, wantFail: true},
		"even cross word":       {config: Config{Input: "testdata/sample.txt", Word: "XMAS", CrossWord: "XMAS"}, wantFail: true},
		"single letter crossed": {config: Config{Input: "testdata/sample.txt", Word: "XMAS", CrossWord: "A"}, wantFail: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			solver := New()
			solver.Config = test.config

			if test.wantFail {
				assert.Error(t, solver.Init(context.Background()))
			} else {
				assert.NoError(t, solver.Init(context.Background()))
			}
		})
	}
}

func TestSolver_Check(t *testing.T) {
	tests := map[string]struct {
		input    string
		wantFail bool
	}{
		"sample":       {input: "testdata/sample.txt"},
		"ragged rows":  {input: "testdata/ragged.txt", wantFail: true},
		"missing file": {input: "testdata/not_exist.txt", wantFail: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			solver := New()
			solver.Input = test.input
			require.NoError(t, solver.Init(context.Background()))

			if test.wantFail {
				assert.Error(t, solver.Check(context.Background()))
			} else {
				assert.NoError(t, solver.Check(context.Background()))
			}
		})
	}
}

func TestSolver_Solve(t *testing.T) {
	tests := map[string]struct {
		prepare func() *Solver
		want    map[string]int64
	}{
		"sample": {
			prepare: func() *Solver {
				s := New()
				s.Input = "testdata/sample.txt"
				return s
			},
			want: map[string]int64{"part1": 18, "part2": 9, "cells": 100},
		},
		"other word": {
			prepare: func() *Solver {
				s := New()
				s.Input = "testdata/sample.txt"
				s.Word = "SAMX"
				return s
			},
			want: map[string]int64{"part1": 18, "part2": 9, "cells": 100},
		},
		"ragged rows": {
			prepare: func() *Solver {
				s := New()
				s.Input = "testdata/ragged.txt"
				return s
			},
			want: nil,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			solver := test.prepare()
			require.NoError(t, solver.Init(context.Background()))

			assert.Equal(t, test.want, solver.Solve(context.Background()))
		})
	}
}

func TestSolver_Cleanup(t *testing.T) {
	solver := New()
	solver.Input = "testdata/sample.txt"
	require.NoError(t, solver.Init(context.Background()))
	require.NoError(t, solver.Check(context.Background()))

	solver.Cleanup(context.Background())
	assert.Nil(t, solver.grid)
}

func Test_grid_countWord(t *testing.T) {
	tests := map[string]struct {
		text string
		word string
		want int64
	}{
		"horizontal both ways": {text: "XMASAMX", word: "XMAS", want: 2},
		"vertical":             {text: "X\nM\nA\nS", word: "XMAS", want: 1},
		"diagonal":             {text: "X...\n.M..\n..A.\n...S", word: "XMAS", want: 1},
		"overlapping":          {text: "AAA", word: "AA", want: 4},
		"no room":              {text: "XMA", word: "XMAS", want: 0},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			g, err := parseGrid([]byte(test.text))
			require.NoError(t, err)

			assert.Equal(t, test.want, g.countWord(test.word))
		})
	}
}

func Test_grid_countCrosses(t *testing.T) {
	tests := map[string]struct {
		text string
		want int64
	}{
		"both forward":  {text: "M.S\n.A.\nM.S", want: 1},
		"both backward": {text: "S.S\n.A.\nM.M", want: 1},
		"plus shape":    {text: ".M.\nMAS\n.S.", want: 0},
		"one diagonal":  {text: "M.M\n.A.\nX.S", want: 0},
		"edge centre":   {text: "MAS", want: 0},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			g, err := parseGrid([]byte(test.text))
			require.NoError(t, err)

			assert.Equal(t, test.want, g.countCrosses("MAS"))
		})
	}
}

func Test_parseGrid_Empty(t *testing.T) {
	_, err := parseGrid([]byte("\n\n"))
	assert.Error(t, err)
}
