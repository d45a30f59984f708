// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/editiond/configuration"
	"github.com/bitmark-inc/editiond/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] --config-file=FILE command arguments...", program)
	}

	// these commands don't require the configuration
	if processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := configuration.Get(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	command := arguments[0]
	readOnly := isQuery(command)

	db, err := storage.Open(masterConfiguration.Database.Name, readOnly)
	if nil != err {
		log.Criticalf("database: %q open error: %s", masterConfiguration.Database.Name, err)
		exitwithstatus.Message("%s: database: %q open error: %s", program, masterConfiguration.Database.Name, err)
	}
	defer db.Close()

	env := newEnvironment(db, masterConfiguration.ProgramAddress)

	result, err := runCommand(env, command, arguments[1:])
	if nil != err {
		log.Errorf("command: %s  arguments: %q  error: %s", command, arguments[1:], err)
		exitwithstatus.Message("%s: %s: error: %s", program, command, err)
	}

	if err := printJson(os.Stdout, result); nil != err {
		exitwithstatus.Message("%s: %s: output error: %s", program, command, err)
	}
}
