// SPDX-License-Identifier: GPL-3.0-or-later

package confgroup

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/thatmisaki/aoc-2024/pkg/multipath"

	"github.com/gohugoio/hashstructure"
)

const (
	keyName     = "name"
	keyModule   = "module"
	keyInput    = "input"
	keySource   = "__source__"
	keyProvider = "__provider__"
)

// Group is the set of job configs read from one source.
type Group struct {
	Configs []Config
	Source  string
}

// Config is a job configuration. Keys wrapped in double underscores are
// internal and don't take part in the hash.
type Config map[string]any

func (c Config) Name() string     { v, _ := c[keyName].(string); return v }
func (c Config) Module() string   { v, _ := c[keyModule].(string); return v }
func (c Config) Input() string    { v, _ := c[keyInput].(string); return v }
func (c Config) Source() string   { v, _ := c[keySource].(string); return v }
func (c Config) Provider() string { v, _ := c[keyProvider].(string); return v }

func (c Config) FullName() string {
	if c.Name() == c.Module() {
		return c.Name()
	}
	return c.Module() + "_" + c.Name()
}

func (c Config) SetName(v string)     { c[keyName] = v }
func (c Config) SetModule(v string)   { c[keyModule] = v }
func (c Config) SetInput(v string)    { c[keyInput] = v }
func (c Config) SetSource(v string)   { c[keySource] = v }
func (c Config) SetProvider(v string) { c[keyProvider] = v }

// Hash returns a hash of the non-internal keys.
func (c Config) Hash() uint64 {
	pub := make(map[string]any, len(c))
	for k, v := range c {
		if !isInternalKey(k) {
			pub[k] = v
		}
	}
	hash, _ := hashstructure.Hash(pub, nil)
	return hash
}

// ApplyDefaults sets every key of def that the config doesn't set.
// A missing name defaults to the module name.
func (c Config) ApplyDefaults(def Config) {
	for k, v := range def {
		if _, ok := c[k]; !ok && !isInternalKey(k) && k != keyName && k != keyModule {
			c[k] = v
		}
	}
	if c.Name() == "" {
		c.SetName(c.Module())
	}
}

// ResolveInput expands '~' in the input path and makes a relative path
// relative to dir.
func (c Config) ResolveInput(dir string) {
	in := c.Input()
	if in == "" {
		return
	}
	in = multipath.Expand(in)
	if !filepath.IsAbs(in) && dir != "" {
		in = filepath.Join(dir, in)
	}
	c.SetInput(in)
}

func (c Config) String() string {
	return fmt.Sprintf("%s (input: '%s', source: '%s')", c.FullName(), c.Input(), c.Source())
}

// Dedupe drops configs whose hash was already seen, keeping the first one.
func Dedupe(cfgs []Config) (uniq []Config, dups []Config) {
	seen := make(map[uint64]bool, len(cfgs))
	for _, cfg := range cfgs {
		h := cfg.Hash()
		if seen[h] {
			dups = append(dups, cfg)
			continue
		}
		seen[h] = true
		uniq = append(uniq, cfg)
	}
	return uniq, dups
}

func isInternalKey(k string) bool {
	return len(k) > 4 && strings.HasPrefix(k, "__") && strings.HasSuffix(k, "__")
}
