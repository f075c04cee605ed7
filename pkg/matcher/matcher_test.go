// SPDX-License-Identifier: GPL-3.0-or-later

package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGlobMatcher(t *testing.T) {
	cases := []struct {
		expr    string
		matcher Matcher
	}{
		{"", stringFullMatcher("")},
		{"reports", stringFullMatcher("reports")},
		{"re*s", globMatcher("re*s")},
		{"{memory,reports}", globMatcher("{memory,reports}")},
		{`ab[`, nil},
	}
	for _, c := range cases {
		t.Run(c.expr, func(t *testing.T) {
			m, err := NewGlobMatcher(c.expr)
			if c.matcher != nil {
				assert.NoError(t, err)
				assert.Equal(t, c.matcher, m)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	modules := []string{"locations", "reports", "memory", "wordsearch", "printqueue"}

	tests := map[string]struct {
		expr string
		want []string
	}{
		"all":             {expr: "all", want: modules},
		"single":          {expr: "reports", want: []string{"reports"}},
		"list":            {expr: "reports,memory", want: []string{"reports", "memory"}},
		"glob":            {expr: "*r*", want: []string{"reports", "memory", "wordsearch", "printqueue"}},
		"only exclude":    {expr: "!reports", want: []string{"locations", "memory", "wordsearch", "printqueue"}},
		"glob and negate": {expr: "*s !reports", want: []string{"locations"}},
		"unknown":         {expr: "nothing", want: nil},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := Parse(test.expr)
			require.NoError(t, err)

			var got []string
			for _, name := range modules {
				if m.MatchString(name) {
					got = append(got, name)
				}
			}
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("  ,  ")
	assert.ErrorIs(t, err, ErrEmptyExpr)

	_, err = Parse("reports [")
	assert.Error(t, err)

	assert.Panics(t, func() { Must(Parse("")) })
}
