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

	"devt.de/krotik/common/stringutil"
	"devt.de/krotik/mlang/inspection"
	"devt.de/krotik/mlang/parser"
	"devt.de/krotik/mlang/util"
)

/*
Inspect runs a single inspection of an M document at a given caret position
and prints the result.
*/
func Inspect() error {
	var err error

	wd, _ := os.Getwd()

	inspectFlags := flag.NewFlagSet("inspect", flag.ContinueOnError)

	line := inspectFlags.Int("line", 0, "Caret line (counted from zero)")
	col := inspectFlags.Int("col", 0, "Caret column (counted from zero)")
	root := inspectFlags.String("root", wd, "Root directory for document lookup")
	showHelp := inspectFlags.Bool("help", false, "Show this help message")

	inspectFlags.Usage = func() {
		fmt.Fprintln(osStdout, fmt.Sprintf("Usage of %s inspect [options] <file>", osArgs[0]))
		fmt.Fprintln(osStdout)
		inspectFlags.SetOutput(osStdout)
		inspectFlags.PrintDefaults()
		fmt.Fprintln(osStdout)
	}

	if err = inspectFlags.Parse(osArgs[2:]); err != nil {
		return err
	}

	if *showHelp || len(inspectFlags.Args()) != 1 {
		inspectFlags.Usage()
		return nil
	}

	file := inspectFlags.Arg(0)

	locator := &util.FileDocumentLocator{Root: *root}

	src, err := locator.Resolve(file)
	if err != nil {
		return err
	}

	m, perr := parser.ParseDocument(file, src)

	if perr != nil {

		// A document with parse errors can still be inspected up to the
		// point of the error

		fmt.Fprintln(osStdout, fmt.Sprintf("Warning: %v", perr))
	}

	res, err := inspection.TryFrom(
		inspection.Position{Line: *line, Column: *col}, m, m.LeafIds())

	if err != nil {
		return err
	}

	writeInspected(&writerTerminal{osStdout}, res)

	return nil
}

/*
writeInspected writes an inspection result to a given output terminal.
*/
func writeInspected(ot OutputTerminal, res *inspection.Inspected) {

	tabData := []string{"Ancestor", "Role"}

	for _, d := range res.Nodes {
		tabData = fillTableRow(tabData, d.Node.String(), d.Role)
	}

	if len(tabData) > 2 {
		ot.WriteString(stringutil.PrintGraphicStringTable(tabData, 2, 1,
			stringutil.SingleDoubleLineTable))
	} else {
		ot.WriteString(fmt.Sprintln("No enclosing nodes"))
	}

	tabData = []string{"Name", "Binds"}

	for _, name := range res.Scope.SortedNames() {
		node, _ := res.Scope.Get(name)
		tabData = fillTableRow(tabData, name, node.String())
	}

	if len(tabData) > 2 {
		ot.WriteString(stringutil.PrintGraphicStringTable(tabData, 2, 1,
			stringutil.SingleDoubleLineTable))
	} else {
		ot.WriteString(fmt.Sprintln("No bindings in scope"))
	}

	if res.PositionIdentifier != nil {
		ot.WriteString(fmt.Sprintln(res.PositionIdentifier))
	}
}
