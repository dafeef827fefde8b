/*
 * MLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"flag"
	"fmt"
	"os"

	"devt.de/krotik/mlang/cli/tool"
	"devt.de/krotik/mlang/config"
)

func main() {

	// Initialize the default command line parser

	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)

	// Define default usage message

	flag.Usage = func() {

		// Print usage for tool selection

		fmt.Println(fmt.Sprintf("Usage of %s <tool>", os.Args[0]))
		fmt.Println()
		fmt.Println(fmt.Sprintf("MLang %v - Power Query M formula language tools", config.ProductVersion))
		fmt.Println()
		fmt.Println("Available commands:")
		fmt.Println()
		fmt.Println("    console   Interactive console (default)")
		fmt.Println("    inspect   Inspect an M document at a caret position")
		fmt.Println("    format    Pretty print an M document")
		fmt.Println()
		fmt.Println(fmt.Sprintf("Use %s <command> -help for more information about a given command.", os.Args[0]))
		fmt.Println()
	}

	// Parse the command bit

	if err := flag.CommandLine.Parse(os.Args[1:]); err == nil {
		console := tool.NewCLIConsole()

		if len(flag.Args()) > 0 {

			arg := flag.Args()[0]

			if arg == "console" {
				err = console.Run()
			} else if arg == "inspect" {
				err = tool.Inspect()
			} else if arg == "format" {
				err = tool.Format()
			} else {
				flag.Usage()
			}

		} else if err == nil {

			err = console.Run()
		}

		if err != nil {
			fmt.Println(fmt.Sprintf("Error: %v", err))
		}
	}
}
