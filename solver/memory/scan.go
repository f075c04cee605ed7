// SPDX-License-Identifier: GPL-3.0-or-later

package memory

import (
	"strings"
)

type opcode uint8

const (
	opMul opcode = iota
	opDo
	opDont
)

type instruction struct {
	op   opcode
	a, b int64
}

const (
	prefixMul  = "mul("
	prefixDo   = "do()"
	prefixDont = "don't()"
)

// scan returns the well-formed instructions in text, in order. Anything
// else is corruption and is skipped.
func scan(text string, maxDigits int) []instruction {
	program := []instruction{}

	for i := 0; i < len(text); i++ {
		rest := text[i:]
		switch {
		case strings.HasPrefix(rest, prefixMul):
			if in, n, ok := scanMul(rest[len(prefixMul):], maxDigits); ok {
				program = append(program, in)
				i += len(prefixMul) + n - 1
			}
		case strings.HasPrefix(rest, prefixDo):
			program = append(program, instruction{op: opDo})
			i += len(prefixDo) - 1
		case strings.HasPrefix(rest, prefixDont):
			program = append(program, instruction{op: opDont})
			i += len(prefixDont) - 1
		}
	}

	return program
}

// scanMul parses "X,Y)" at the start of s and returns the number of bytes consumed.
func scanMul(s string, maxDigits int) (instruction, int, bool) {
	a, n1, ok := scanNumber(s, maxDigits)
	if !ok || n1 >= len(s) || s[n1] != ',' {
		return instruction{}, 0, false
	}
	b, n2, ok := scanNumber(s[n1+1:], maxDigits)
	end := n1 + 1 + n2
	if !ok || end >= len(s) || s[end] != ')' {
		return instruction{}, 0, false
	}
	return instruction{op: opMul, a: a, b: b}, end + 1, true
}

func scanNumber(s string, maxDigits int) (int64, int, bool) {
	var v int64
	n := 0
	for n < len(s) && n < maxDigits && s[n] >= '0' && s[n] <= '9' {
		v = v*10 + int64(s[n]-'0')
		n++
	}
	if n == 0 || (n < len(s) && s[n] >= '0' && s[n] <= '9') {
		return 0, 0, false
	}
	return v, n, true
}

func sumProducts(program []instruction) int64 {
	var total int64
	for _, in := range program {
		if in.op == opMul {
			total += in.a * in.b
		}
	}
	return total
}

// sumEnabledProducts honours do() and don't(). Multiplications start enabled.
func sumEnabledProducts(program []instruction) int64 {
	var total int64
	enabled := true
	for _, in := range program {
		switch in.op {
		case opDo:
			enabled = true
		case opDont:
			enabled = false
		case opMul:
			if enabled {
				total += in.a * in.b
			}
		}
	}
	return total
}
