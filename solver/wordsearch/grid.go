// SPDX-License-Identifier: GPL-3.0-or-later

package wordsearch

import (
	"errors"
	"fmt"

	"github.com/thatmisaki/aoc-2024/pkg/textinput"
)

type grid struct {
	rows  int
	cols  int
	cells []byte
}

type offset struct{ dr, dc int }

var directions = []offset{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func readGrid(path string) (*grid, error) {
	bs, err := textinput.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseGrid(bs)
}

func parseGrid(data []byte) (*grid, error) {
	lines := textinput.Lines(data)
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, errors.New("grid is empty")
	}

	g := &grid{rows: len(lines), cols: len(lines[0])}
	g.cells = make([]byte, 0, g.rows*g.cols)

	for i, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d", i+1, g.cols, len(line))
		}
		g.cells = append(g.cells, line...)
	}

	return g, nil
}

func (g *grid) get(r, c int) (byte, bool) {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return 0, false
	}
	return g.cells[r*g.cols+c], true
}

// reads reports whether word is spelled starting at (r, c) going in dir.
func (g *grid) reads(word string, r, c int, dir offset) bool {
	for i := 0; i < len(word); i++ {
		v, ok := g.get(r+i*dir.dr, c+i*dir.dc)
		if !ok || v != word[i] {
			return false
		}
	}
	return true
}

// countWord counts word in all eight directions.
func (g *grid) countWord(word string) int64 {
	var n int64
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] != word[0] {
				continue
			}
			for _, dir := range directions {
				if g.reads(word, r, c, dir) {
					n++
				}
			}
		}
	}
	return n
}

// countCrosses counts the cells where word crosses itself diagonally,
// each diagonal reading word forwards or backwards through the centre.
func (g *grid) countCrosses(word string) int64 {
	half := len(word) / 2
	centre := word[half]

	diagonal := func(r, c int, dir offset) bool {
		sr, sc := r-half*dir.dr, c-half*dir.dc
		if g.reads(word, sr, sc, dir) {
			return true
		}
		back := offset{-dir.dr, -dir.dc}
		return g.reads(word, r-half*back.dr, c-half*back.dc, back)
	}

	var n int64
	for r := half; r < g.rows-half; r++ {
		for c := half; c < g.cols-half; c++ {
			if g.cells[r*g.cols+c] != centre {
				continue
			}
			if diagonal(r, c, offset{1, 1}) && diagonal(r, c, offset{1, -1}) {
				n++
			}
		}
	}
	return n
}
