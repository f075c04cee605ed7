// SPDX-License-Identifier: GPL-3.0-or-later

package jobmgr

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/thatmisaki/aoc-2024/pkg/matcher"

	"github.com/Masterminds/sprig/v3"
)

// DefaultFormat renders an Answer the same way Answer.String does.
const DefaultFormat = "{{.Module}}[{{.Job}}] {{.Part}}={{.Value}}"

// NewFormat parses an answer line template. Templates get the sprig
// functions plus 'glob', which reports whether a value matches any of the
// given glob patterns.
func NewFormat(text string) (*template.Template, error) {
	if strings.TrimSpace(text) == "" {
		text = DefaultFormat
	}
	tmpl, err := template.New("answer").Funcs(newFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("answer format: %v", err)
	}
	return tmpl, nil
}

func newFuncMap() template.FuncMap {
	fm := sprig.TxtFuncMap()

	fm["glob"] = func(value, pattern string, patterns ...string) bool {
		for _, p := range append([]string{pattern}, patterns...) {
			if m, err := matcher.NewGlobMatcher(p); err == nil && m.MatchString(value) {
				return true
			}
		}
		return false
	}

	return fm
}

func formatAnswer(tmpl *template.Template, a Answer) (string, error) {
	if tmpl == nil {
		return a.String(), nil
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, a); err != nil {
		return "", err
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
