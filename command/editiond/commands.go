// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/editiond/escrow"
)

// setup command handler
//
// commands that need neither the configuration file nor the database;
// returns false if the command must be run against the database
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "derive":
		if 2 != len(arguments) {
			exitwithstatus.Message("%s: usage: derive PROGRAM ITEM", program)
		}
		programAddress, err := parseAddress(arguments[0])
		if nil != err {
			exitwithstatus.Message("%s: program: %q error: %s", program, arguments[0], err)
		}
		item, err := parseAddress(arguments[1])
		if nil != err {
			exitwithstatus.Message("%s: item: %q error: %s", program, arguments[1], err)
		}
		signer, err := escrow.Derive(programAddress, item)
		if nil != err {
			exitwithstatus.Message("%s: derive error: %s", program, err)
		}
		if err := printJson(os.Stdout, signer); nil != err {
			exitwithstatus.Message("%s: output error: %s", program, err)
		}

	default:
		if _, ok := commands[command]; ok {
			return false // continue processing
		}

		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] --config-file=FILE command arguments...\n\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")
		fmt.Printf("  derive PROGRAM ITEM                 - show the escrow signer of an item\n\n")

		names := make([]string, 0, len(commands))
		for name := range commands {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-34s - %s\n", name+" "+commands[name].usage, commands[name].description)
		}
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}
	return true
}
