// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/jessevdk/go-flags"

	"github.com/thatmisaki/aoc-2024/pkg/executable"
)

// Option defines command line options.
type Option struct {
	Module   string   `short:"m" long:"modules" description:"module name or glob pattern to run" default:"all"`
	ConfDir  []string `short:"c" long:"config-dir" description:"config dir to read"`
	Input    string   `short:"i" long:"input" description:"input file for the selected modules (skips config files)"`
	Jobs     int      `short:"j" long:"jobs" description:"max number of jobs run concurrently" default:"1"`
	Format   string   `short:"f" long:"format" description:"answer line template (text/template with sprig functions)"`
	Watch    bool     `short:"w" long:"watch" description:"solve again whenever a config or input file changes"`
	Schema   bool     `long:"schema" description:"print the JSON schema of the selected modules' job config and exit"`
	LogLevel string   `short:"l" long:"log-level" description:"log level (error, warning, notice, info, debug, off)"`
	Debug    bool     `short:"d" long:"debug" description:"debug mode"`
	Version  bool     `short:"v" long:"version" description:"display the version and exit"`
}

// Parse returns parsed command-line flags in Option struct
func Parse(args []string) (*Option, error) {
	opt := &Option{}
	parser := flags.NewParser(opt, flags.Default)
	parser.Name = executable.Name
	parser.Usage = "[OPTIONS]"

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	if opt.Jobs < 1 {
		opt.Jobs = 1
	}

	return opt, nil
}

func IsHelp(err error) bool {
	return flags.WroteHelp(err)
}
