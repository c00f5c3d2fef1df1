// scriptinspect identifies transaction-script payloads and dumps the
// contents of the script registry and the standard-library upgrade
// write set. It is a diagnostic tool; nothing it prints is consumed by
// machines.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/calibranet/calibrad/logger"
	"github.com/calibranet/calibrad/stdlib"
	"github.com/calibranet/calibrad/stdscript"
	"github.com/calibranet/calibrad/txbuilder"
	"github.com/calibranet/calibrad/version"
)

var log *logger.Logger

func main() {
	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	backend := logger.NewBackend()
	defer backend.Close()
	backend.AddLogWriter(os.Stderr, logger.LevelWarn)
	if cfg.LogFile != "" {
		err := backend.AddLogFile(cfg.LogFile, logger.LevelTrace)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening log file %s: %s\n", cfg.LogFile, err)
			os.Exit(1)
		}
	}
	log = backend.Logger("SINS")
	if level, ok := logger.LevelFromString(cfg.LogLevel); ok {
		log.SetLevel(level)
	}

	switch {
	case cfg.Version:
		fmt.Println(version.Version())
	case cfg.List:
		listScripts()
	case cfg.Script != "":
		identifyScript(cfg.Script)
	case cfg.Stdlib:
		dumpStdlibWriteSet()
	}
}

func listScripts() {
	for _, id := range stdscript.All() {
		code := stdscript.Bytecode(id)
		fmt.Printf("%-40s %4d bytes  %s\n",
			id, len(code), txbuilder.GetTransactionName(code))
	}
}

func identifyScript(scriptHex string) {
	code, err := hex.DecodeString(scriptHex)
	if err != nil {
		log.Errorf("couldn't decode script hex: %s", err)
		os.Exit(1)
	}
	log.Debugf("identifying %d bytes of script bytecode", len(code))
	fmt.Println(txbuilder.GetTransactionName(code))
}

func dumpStdlibWriteSet() {
	changeSet := txbuilder.EncodeStdlibUpgradeTransaction(stdlib.Staged)
	entries := changeSet.WriteSet().Entries()
	log.Infof("staged stdlib upgrade: %d write operations", len(entries))
	for _, entry := range entries {
		fmt.Printf("%s  %s\n", entry.AccessPath, entry.Op)
	}
}
