// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		args    []string
		want    Option
		wantErr bool
	}{
		"defaults": {
			args: nil,
			want: Option{Module: "all", Jobs: 1},
		},
		"single module with input": {
			args: []string{"-m", "reports", "-i", "day02.txt", "-d"},
			want: Option{Module: "reports", Input: "day02.txt", Jobs: 1, Debug: true},
		},
		"repeated config dirs": {
			args: []string{"--config-dir", "/etc/aoc.d", "-c", "./conf", "--jobs", "4"},
			want: Option{Module: "all", ConfDir: []string{"/etc/aoc.d", "./conf"}, Jobs: 4},
		},
		"watch with format": {
			args: []string{"-w", "--format", "{{.Value}}", "-l", "warning"},
			want: Option{Module: "all", Jobs: 1, Watch: true, Format: "{{.Value}}", LogLevel: "warning"},
		},
		"schema": {
			args: []string{"--schema", "-m", "reports"},
			want: Option{Module: "reports", Jobs: 1, Schema: true},
		},
		"non positive jobs": {
			args: []string{"-j", "0"},
			want: Option{Module: "all", Jobs: 1},
		},
		"unknown flag": {
			args:    []string{"--no-such-flag"},
			wantErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			opt, err := Parse(test.args)

			if test.wantErr {
				assert.Error(t, err)
				assert.False(t, IsHelp(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, *opt)
		})
	}
}

func TestParse_Help(t *testing.T) {
	_, err := Parse([]string{"-h"})

	require.Error(t, err)
	assert.True(t, IsHelp(err))
}
