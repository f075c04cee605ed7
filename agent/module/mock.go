// SPDX-License-Identifier: GPL-3.0-or-later

package module

import (
	"context"
	"errors"
)

type MockConfiguration struct {
	Input     string `yaml:"input" json:"input"`
	OptionInt int    `yaml:"option_int" json:"option_int"`
}

// MockModule MockModule.
type MockModule struct {
	Base

	MockConfiguration `yaml:",inline" json:""`

	FailOnInit bool

	InitFunc    func() error
	CheckFunc   func() error
	SolveFunc   func() map[string]int64
	CleanupFunc func()
	CleanupDone bool
}

// Init invokes InitFunc.
func (m *MockModule) Init(context.Context) error {
	if m.FailOnInit {
		return errors.New("mock init error")
	}
	if m.InitFunc == nil {
		return nil
	}
	return m.InitFunc()
}

// Check invokes CheckFunc.
func (m *MockModule) Check(context.Context) error {
	if m.CheckFunc == nil {
		return nil
	}
	return m.CheckFunc()
}

// Solve invokes SolveFunc.
func (m *MockModule) Solve(context.Context) map[string]int64 {
	if m.SolveFunc == nil {
		return nil
	}
	return m.SolveFunc()
}

// Cleanup sets CleanupDone to true.
func (m *MockModule) Cleanup(context.Context) {
	if m.CleanupFunc != nil {
		m.CleanupFunc()
	}
	m.CleanupDone = true
}

func (m *MockModule) Configuration() any {
	return m.MockConfiguration
}
