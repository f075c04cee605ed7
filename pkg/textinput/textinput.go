// SPDX-License-Identifier: GPL-3.0-or-later

// Package textinput holds the small helpers the solvers share for turning
// puzzle input files into lines and integers.
package textinput

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var ErrEmptyInput = errors.New("input is empty")

// ReadFile reads the whole input file. An empty (or whitespace only) file is an error.
func ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("input path not set")
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(bs))) == 0 {
		return nil, fmt.Errorf("'%s': %w", path, ErrEmptyInput)
	}
	return bs, nil
}

// Lines splits data into lines without line terminators. Trailing blank
// lines are dropped, blank lines in the middle are kept.
func Lines(data []byte) []string {
	s := strings.ReplaceAll(string(data), "\r\n", "\n")
	s = strings.TrimRight(s, "\n \t")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Ints parses the integers in s separated by sep. An empty sep splits on whitespace.
func Ints(s, sep string) ([]int, error) {
	var fields []string
	if sep == "" {
		fields = strings.Fields(s)
	} else {
		fields = strings.Split(s, sep)
	}

	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid number '%s'", f)
		}
		nums = append(nums, v)
	}
	return nums, nil
}
