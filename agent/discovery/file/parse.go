// SPDX-License-Identifier: GPL-3.0-or-later

package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thatmisaki/aoc-2024/agent/confgroup"

	"gopkg.in/yaml.v2"
)

type staticConfig struct {
	Default confgroup.Config   `yaml:"default"`
	Jobs    []confgroup.Config `yaml:"jobs"`
}

func parse(path string) (*confgroup.Group, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(bs) == 0 {
		return nil, nil
	}

	var data any
	if err := yaml.Unmarshal(bs, &data); err != nil {
		return nil, fmt.Errorf("unknown file format: '%s': %v", path, err)
	}
	if data == nil {
		return nil, nil
	}
	if _, ok := data.(map[any]any); !ok {
		return nil, fmt.Errorf("unknown file format: '%s'", path)
	}

	return parseStaticFormat(path, bs)
}

func parseStaticFormat(path string, bs []byte) (*confgroup.Group, error) {
	var modCfg staticConfig
	if err := yaml.Unmarshal(bs, &modCfg); err != nil {
		return nil, err
	}

	name := fileName(path)
	dir := filepath.Dir(path)

	var cfgs []confgroup.Config
	for _, cfg := range modCfg.Jobs {
		if cfg == nil {
			continue
		}
		cfg.SetModule(name)
		cfg.SetSource(path)
		cfg.SetProvider("file reader")
		cfg.ApplyDefaults(modCfg.Default)
		cfg.ResolveInput(dir)
		cfgs = append(cfgs, cfg)
	}

	group := &confgroup.Group{
		Configs: cfgs,
		Source:  path,
	}

	return group, nil
}

func fileName(path string) string {
	_, file := filepath.Split(path)
	ext := filepath.Ext(path)
	return file[:len(file)-len(ext)]
}
