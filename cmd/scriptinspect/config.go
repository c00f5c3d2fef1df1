package main

import (
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

type configFlags struct {
	List     bool   `long:"list" description:"List every registered script with its transaction name"`
	Script   string `long:"script" description:"Hex-encoded script bytecode to identify"`
	Stdlib   bool   `long:"stdlib" description:"Dump the staged standard-library upgrade write set"`
	LogFile  string `long:"logfile" description:"Write logs to this file as well"`
	LogLevel string `short:"d" long:"loglevel" default:"info" description:"Logging level {trace, debug, info, warn, error, critical}"`
	Version  bool   `short:"V" long:"version" description:"Display version information and exit"`
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	modes := 0
	for _, selected := range []bool{cfg.List, cfg.Script != "", cfg.Stdlib, cfg.Version} {
		if selected {
			modes++
		}
	}
	if modes != 1 {
		return nil, errors.New("exactly one of --list, --script, --stdlib or --version must be given")
	}
	return cfg, nil
}
