// SPDX-License-Identifier: GPL-3.0-or-later

package jobmgr

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/thatmisaki/aoc-2024/agent/confgroup"
	"github.com/thatmisaki/aoc-2024/agent/module"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestManager_Run(t *testing.T) {
	tests := map[string]struct {
		groups     []*confgroup.Group
		wantOut    string
		wantFailed int
	}{
		"single job": {
			groups:  []*confgroup.Group{prepareGroup(prepareCfg("success", "job"))},
			wantOut: "success[job] part1=1\nsuccess[job] part2=2\nsuccess[job] extra=3\n",
		},
		"jobs are sorted by registry order": {
			groups: []*confgroup.Group{
				prepareGroup(prepareCfg("success", "b")),
				prepareGroup(prepareCfg("early", "a"), prepareCfg("success", "a")),
			},
			wantOut: "early[a] part1=7\n" +
				"success[a] part1=1\nsuccess[a] part2=2\nsuccess[a] extra=3\n" +
				"success[b] part1=1\nsuccess[b] part2=2\nsuccess[b] extra=3\n",
		},
		"duplicate configs run once": {
			groups: []*confgroup.Group{
				prepareGroup(prepareCfg("early", "a")),
				prepareGroup(prepareCfg("early", "a")),
			},
			wantOut: "early[a] part1=7\n",
		},
		"failing jobs are counted": {
			groups: []*confgroup.Group{
				prepareGroup(prepareCfg("fail", "job"), prepareCfg("empty", "job"), prepareCfg("early", "a")),
			},
			wantOut:    "early[a] part1=7\n",
			wantFailed: 2,
		},
		"unknown module": {
			groups:     []*confgroup.Group{prepareGroup(prepareCfg("unknown", "job"))},
			wantOut:    "",
			wantFailed: 1,
		},
		"panicking job": {
			groups:     []*confgroup.Group{prepareGroup(prepareCfg("panic", "job"))},
			wantOut:    "",
			wantFailed: 1,
		},
		"no groups": {
			wantOut: "",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			mgr := New()
			mgr.Out = &buf
			mgr.Modules = prepareMockRegistry()
			mgr.Jobs = 4

			failed := mgr.Run(context.Background(), test.groups)

			assert.Equal(t, test.wantFailed, failed)
			assert.Equal(t, test.wantOut, buf.String())
		})
	}
}

func TestManager_Run_AppliesConfig(t *testing.T) {
	var got module.MockConfiguration

	reg := module.Registry{}
	reg.Register("configured", module.Creator{
		Create: func() module.Module {
			m := &module.MockModule{}
			m.SolveFunc = func() map[string]int64 {
				got = m.MockConfiguration
				return map[string]int64{"part1": int64(m.OptionInt)}
			}
			return m
		},
	})

	cfg := prepareCfg("configured", "job")
	cfg.SetInput("/tmp/input.txt")
	cfg["option_int"] = 42

	var buf bytes.Buffer
	mgr := New()
	mgr.Out = &buf
	mgr.Modules = reg

	require.Equal(t, 0, mgr.Run(context.Background(), []*confgroup.Group{prepareGroup(cfg)}))

	assert.Equal(t, module.MockConfiguration{Input: "/tmp/input.txt", OptionInt: 42}, got)
	assert.Equal(t, "configured[job] part1=42\n", buf.String())
}

func TestManager_Run_BoundsConcurrency(t *testing.T) {
	var running, peak atomic.Int64

	reg := module.Registry{}
	reg.Register("slow", module.Creator{
		Create: func() module.Module {
			return &module.MockModule{
				SolveFunc: func() map[string]int64 {
					n := running.Add(1)
					defer running.Add(-1)
					for {
						p := peak.Load()
						if n <= p || peak.CompareAndSwap(p, n) {
							break
						}
					}
					return map[string]int64{"part1": 1}
				},
			}
		},
	})

	var cfgs []confgroup.Config
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		cfgs = append(cfgs, prepareCfg("slow", name))
	}

	mgr := New()
	mgr.Modules = reg
	mgr.Jobs = 2

	require.Equal(t, 0, mgr.Run(context.Background(), []*confgroup.Group{prepareGroup(cfgs...)}))
	assert.LessOrEqual(t, peak.Load(), int64(2))
}

func TestAnswer_String(t *testing.T) {
	a := Answer{Module: "reports", Job: "sample", Part: "part2", Value: 4}

	assert.Equal(t, "reports[sample] part2=4", a.String())
}

func prepareMockRegistry() module.Registry {
	reg := module.Registry{}

	reg.Register("success", module.Creator{
		Defaults: module.Defaults{Day: 2},
		Create: func() module.Module {
			return &module.MockModule{
				SolveFunc: func() map[string]int64 {
					return map[string]int64{"part1": 1, "part2": 2, "extra": 3}
				},
			}
		},
	})
	reg.Register("early", module.Creator{
		Defaults: module.Defaults{Day: 1},
		Create: func() module.Module {
			return &module.MockModule{
				SolveFunc: func() map[string]int64 { return map[string]int64{"part1": 7} },
			}
		},
	})
	reg.Register("fail", module.Creator{
		Create: func() module.Module {
			return &module.MockModule{FailOnInit: true}
		},
	})
	reg.Register("empty", module.Creator{
		Create: func() module.Module {
			return &module.MockModule{
				CheckFunc: func() error { return nil },
			}
		},
	})
	reg.Register("panic", module.Creator{
		Create: func() module.Module {
			return &module.MockModule{
				CheckFunc: func() error { panic(errors.New("oops")) },
			}
		},
	})

	return reg
}

func prepareCfg(module, name string) confgroup.Config {
	cfg := confgroup.Config{}
	cfg.SetModule(module)
	cfg.SetName(name)
	cfg.SetProvider("test")
	cfg.SetSource("test")
	return cfg
}

func prepareGroup(cfgs ...confgroup.Config) *confgroup.Group {
	return &confgroup.Group{Configs: cfgs, Source: "test"}
}
