/*
 * MLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package tool

import (
	"flag"
	"fmt"
	"os"

	"devt.de/krotik/mlang/parser"
	"devt.de/krotik/mlang/util"
)

/*
Format pretty prints an M document to stdout. The input file is never
modified.
*/
func Format() error {
	var err error

	wd, _ := os.Getwd()

	formatFlags := flag.NewFlagSet("format", flag.ContinueOnError)

	root := formatFlags.String("root", wd, "Root directory for document lookup")
	showHelp := formatFlags.Bool("help", false, "Show this help message")

	formatFlags.Usage = func() {
		fmt.Fprintln(osStdout, fmt.Sprintf("Usage of %s format [options] <file>", osArgs[0]))
		fmt.Fprintln(osStdout)
		formatFlags.SetOutput(osStdout)
		formatFlags.PrintDefaults()
		fmt.Fprintln(osStdout)
	}

	if err = formatFlags.Parse(osArgs[2:]); err != nil {
		return err
	}

	if *showHelp || len(formatFlags.Args()) != 1 {
		formatFlags.Usage()
		return nil
	}

	file := formatFlags.Arg(0)

	locator := &util.FileDocumentLocator{Root: *root}

	src, err := locator.Resolve(file)
	if err != nil {
		return err
	}

	ast, err := parser.Parse(file, src)
	if err != nil {
		return err
	}

	res, err := parser.PrettyPrint(ast)
	if err != nil {
		return err
	}

	fmt.Fprintln(osStdout, res)

	return nil
}
