// SPDX-License-Identifier: GPL-3.0-or-later

package module

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	pluginName = "plugin"
	modName    = "module"
	jobName    = "job"
)

func newTestJob(m Module) *Job {
	return NewJob(JobConfig{
		PluginName: pluginName,
		Name:       jobName,
		ModuleName: modName,
		FullName:   modName + "_" + jobName,
		Module:     m,
	})
}

func TestNewJob(t *testing.T) {
	m := &MockModule{}
	job := newTestJob(m)

	assert.IsType(t, (*Job)(nil), job)
	assert.Equal(t, jobName, job.Name())
	assert.Equal(t, modName, job.ModuleName())
	assert.Equal(t, modName+"_"+jobName, job.FullName())
	assert.NotNil(t, m.Logger, "module logger must be set")
}

func TestJob_AutoDetection(t *testing.T) {
	tests := map[string]struct {
		module      *MockModule
		wantErr     bool
		wantCleanup bool
		wantPanic   bool
	}{
		"ok": {
			module: &MockModule{},
		},
		"init fails": {
			module:      &MockModule{FailOnInit: true},
			wantErr:     true,
			wantCleanup: true,
		},
		"check fails": {
			module:      &MockModule{CheckFunc: func() error { return errors.New("bad input") }},
			wantErr:     true,
			wantCleanup: true,
		},
		"check panics": {
			module:      &MockModule{CheckFunc: func() error { panic("boom") }},
			wantErr:     true,
			wantCleanup: true,
			wantPanic:   true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			job := newTestJob(test.module)

			err := job.AutoDetection(context.Background())

			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, test.wantCleanup, test.module.CleanupDone)
			assert.Equal(t, test.wantPanic, job.Panicked())
		})
	}
}

func TestJob_AutoDetection_InitOnce(t *testing.T) {
	var calls int
	m := &MockModule{InitFunc: func() error { calls++; return nil }}
	job := newTestJob(m)

	require.NoError(t, job.AutoDetection(context.Background()))
	require.NoError(t, job.AutoDetection(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestJob_Run(t *testing.T) {
	tests := map[string]struct {
		solve       func() map[string]int64
		want        map[string]int64
		wantErr     error
		wantPanic   bool
		cancelFirst bool
	}{
		"answers": {
			solve: func() map[string]int64 { return map[string]int64{"part1": 2, "part2": 4} },
			want:  map[string]int64{"part1": 2, "part2": 4},
		},
		"no answers": {
			solve:   func() map[string]int64 { return nil },
			wantErr: ErrNoAnswers,
		},
		"panic": {
			solve:     func() map[string]int64 { panic("boom") },
			wantPanic: true,
		},
		"canceled": {
			solve:       func() map[string]int64 { return map[string]int64{"part1": 1} },
			wantErr:     context.Canceled,
			cancelFirst: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			job := newTestJob(&MockModule{SolveFunc: test.solve})

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if test.cancelFirst {
				cancel()
			}

			got, err := job.Run(ctx)

			switch {
			case test.wantPanic:
				assert.Error(t, err)
				assert.True(t, job.Panicked())
			case test.wantErr != nil:
				assert.ErrorIs(t, err, test.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, test.want, got)
				assert.Equal(t, test.want, job.Answers())
			}
		})
	}
}

func TestJob_Cleanup(t *testing.T) {
	m := &MockModule{}
	job := newTestJob(m)

	job.Cleanup(context.Background())
	assert.True(t, m.CleanupDone)
}
