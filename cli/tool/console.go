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
	"io"
	"os"
	"strconv"
	"strings"

	"devt.de/krotik/common/fileutil"
	"devt.de/krotik/common/sortutil"
	"devt.de/krotik/common/stringutil"
	"devt.de/krotik/common/termutil"
	"devt.de/krotik/mlang/config"
	"devt.de/krotik/mlang/inspection"
	"devt.de/krotik/mlang/parser"
	"devt.de/krotik/mlang/util"
)

/*
consoleCommands maps the names of all console commands to their usage
description.
*/
var consoleCommands = map[string]string{
	"load":    "Load an M document: load <file>",
	"inspect": "Inspect the loaded document at a caret position: inspect <line> <col>",
	"tree":    "Show the parse tree of the loaded document",
	"tokens":  "Show the lexer tokens of the loaded document",
	"format":  "Pretty print the loaded document",
	"log":     "Show the buffered log messages",
	"help":    "Show this help text",
}

/*
CLIConsole models the interactive console of MLang.
*/
type CLIConsole struct {
	Term                 termutil.ConsoleLineTerminal // Terminal object
	LogOut               io.Writer                    // Log output
	CustomWelcomeMessage string                       // Custom welcome message

	logger util.Logger        // Logger object
	memlog *util.MemoryLogger // In-memory log (default log destination)
	root   string             // Root directory for document lookup
	name   string             // Name of the loaded document
	src    string             // Source of the loaded document
	m      *parser.NodeIdMap  // Map of the loaded document
}

/*
NewCLIConsole creates a new console object.
*/
func NewCLIConsole() *CLIConsole {
	return &CLIConsole{nil, os.Stdout, "", nil, nil, "", "", "", nil}
}

/*
isExitLine returns if a given input line should exit the console.
*/
func (c *CLIConsole) isExitLine(s string) bool {
	return s == "exit" || s == "q" || s == "quit" || s == "bye" || s == "\x04"
}

/*
Run starts the interactive console.
*/
func (c *CLIConsole) Run() error {
	var err error

	wd, _ := os.Getwd()

	consoleFlags := flag.NewFlagSet("console", flag.ContinueOnError)

	root := consoleFlags.String("root", wd, "Root directory for document lookup")
	logFile := consoleFlags.String("logfile", "", "Log to a file")
	logLevel := consoleFlags.String("loglevel", "info", "Logging level (debug, info, error)")
	showHelp := consoleFlags.Bool("help", false, "Show this help message")

	consoleFlags.Usage = func() {
		fmt.Fprintln(osStdout, fmt.Sprintf("Usage of %s console [options] [file]", osArgs[0]))
		fmt.Fprintln(osStdout)
		consoleFlags.SetOutput(osStdout)
		consoleFlags.PrintDefaults()
		fmt.Fprintln(osStdout)
	}

	args := osArgs[1:]
	if len(args) > 0 && args[0] == "console" {
		args = args[1:]
	}

	if err = consoleFlags.Parse(args); err != nil {
		return err
	}

	if *showHelp {
		consoleFlags.Usage()
		return nil
	}

	c.root = *root

	// Set up the logger - by default messages go to an in-memory log
	// which can be displayed with the log command

	var baseLogger util.Logger

	if *logFile != "" {
		var logWriter io.Writer

		logFileRollover := fileutil.SizeBasedRolloverCondition(1000000) // Each file can be up to a megabyte
		logWriter, err = fileutil.NewMultiFileBuffer(*logFile,
			fileutil.ConsecutiveNumberIterator(10), logFileRollover)

		if err != nil {
			return err
		}

		baseLogger = util.NewBufferLogger(logWriter)

	} else {

		c.memlog = util.NewMemoryLogger(100)
		baseLogger = c.memlog
	}

	levelLogger, err := util.NewLogLevelLogger(baseLogger, *logLevel)
	if err != nil {
		return err
	}

	c.logger = levelLogger

	// Set up the terminal

	if c.Term == nil {
		if c.Term, err = termutil.NewConsoleLineTerminal(os.Stdout); err != nil {
			return err
		}
	}

	c.Term, err = termutil.AddHistoryMixin(c.Term, config.Str(config.ConsoleHistoryFile),
		func(s string) bool {
			return c.isExitLine(s)
		})

	if err != nil {
		return err
	}

	fmt.Fprintln(c.LogOut, fmt.Sprintf("MLang %v", config.ProductVersion))
	fmt.Fprint(c.LogOut, fmt.Sprintf("Log level: %v - ", levelLogger.Level()))
	fmt.Fprintln(c.LogOut, fmt.Sprintf("Root directory: %v", c.root))

	if c.CustomWelcomeMessage != "" {
		fmt.Fprintln(c.LogOut, c.CustomWelcomeMessage)
	}

	// Load an initial document if given

	if len(consoleFlags.Args()) > 0 {
		c.load(&writerTerminal{c.LogOut}, consoleFlags.Arg(0))
	}

	if err = c.Term.StartTerm(); err != nil {
		return err
	}
	defer c.Term.StopTerm()

	fmt.Fprintln(c.LogOut, "Type 'q' or 'quit' to exit the console and 'help' to get help")

	line, err := c.Term.NextLine()
	for err == nil && !c.isExitLine(line) {

		c.HandleInput(c.Term, strings.TrimSpace(line))

		line, err = c.Term.NextLine()
	}

	return err
}

/*
CanHandle checks if a given string can be handled by this handler.
*/
func (c *CLIConsole) CanHandle(s string) bool {

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}

	_, ok := consoleCommands[fields[0]]
	return ok
}

/*
Handle handles a given input string.
*/
func (c *CLIConsole) Handle(ot OutputTerminal, input string) {
	c.HandleInput(ot, input)
}

/*
HandleInput handles a given input line.
*/
func (c *CLIConsole) HandleInput(ot OutputTerminal, line string) {

	if line == "" {
		return
	}

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {

	case "load":
		if len(args) != 1 {
			ot.WriteString(fmt.Sprintln("Usage: load <file>"))
			return
		}
		c.load(ot, args[0])

	case "inspect":
		c.inspect(ot, args)

	case "tree":
		c.tree(ot)

	case "tokens":
		c.tokens(ot)

	case "format":
		c.format(ot)

	case "log":
		c.showLog(ot)

	case "help", "?":
		c.help(ot)

	default:
		ot.WriteString(fmt.Sprintln(fmt.Sprintf("Unknown command: %v", cmd)))
	}
}

/*
load reads and parses a document. A document with parse errors is kept -
it can still be inspected up to the point of the error.
*/
func (c *CLIConsole) load(ot OutputTerminal, file string) {

	locator := &util.FileDocumentLocator{Root: c.root}

	src, err := locator.Resolve(file)
	if err != nil {
		c.logger.LogError(err)
		ot.WriteString(fmt.Sprintln(fmt.Sprintf("Error: %v", err)))
		return
	}

	m, err := parser.ParseDocument(file, src)

	if err != nil {
		ot.WriteString(fmt.Sprintln(fmt.Sprintf("Warning: %v", err)))
	}

	c.name = file
	c.src = src
	c.m = m

	astCount, ctxCount := m.Counts()

	c.logger.LogDebug(m)
	c.logger.LogInfo(fmt.Sprintf("Loaded %v (%v nodes, %v open contexts)",
		file, astCount, ctxCount))
}

/*
inspect runs an inspection of the loaded document at a given caret position.
*/
func (c *CLIConsole) inspect(ot OutputTerminal, args []string) {

	if c.m == nil {
		ot.WriteString(fmt.Sprintln("No document loaded"))
		return
	}

	if len(args) != 2 {
		ot.WriteString(fmt.Sprintln("Usage: inspect <line> <col>"))
		return
	}

	line, err1 := strconv.Atoi(args[0])
	col, err2 := strconv.Atoi(args[1])

	if err1 != nil || err2 != nil || line < 0 || col < 0 {
		ot.WriteString(fmt.Sprintln("Line and column must be numbers counted from zero"))
		return
	}

	res, err := inspection.TryFrom(
		inspection.Position{Line: line, Column: col}, c.m, c.m.LeafIds())

	if err != nil {
		c.logger.LogError(err)
		ot.WriteString(fmt.Sprintln(fmt.Sprintf("Error: %v", err)))
		return
	}

	writeInspected(ot, res)
}

/*
tree shows the parse tree of the loaded document.
*/
func (c *CLIConsole) tree(ot OutputTerminal) {

	if c.m == nil {
		ot.WriteString(fmt.Sprintln("No document loaded"))
		return
	}

	if root, err := c.m.ExpectAstNode(c.m.RootID()); err == nil {
		ot.WriteString(root.String())
		return
	}

	// The document has open contexts - show the raw map

	ot.WriteString(c.m.String())
}

/*
tokens shows the lexer tokens of the loaded document.
*/
func (c *CLIConsole) tokens(ot OutputTerminal) {

	if c.m == nil {
		ot.WriteString(fmt.Sprintln("No document loaded"))
		return
	}

	for _, t := range parser.LexToList(c.name, c.src) {
		ot.WriteString(fmt.Sprintln(fmt.Sprintf("%v (%v)", t, t.PosString())))
	}
}

/*
format pretty prints the loaded document.
*/
func (c *CLIConsole) format(ot OutputTerminal) {

	if c.m == nil {
		ot.WriteString(fmt.Sprintln("No document loaded"))
		return
	}

	root, err := c.m.ExpectAstNode(c.m.RootID())

	if err == nil {
		var res string

		if res, err = parser.PrettyPrint(root); err == nil {
			ot.WriteString(fmt.Sprintln(res))
			return
		}
	}

	ot.WriteString(fmt.Sprintln(fmt.Sprintf("Error: %v", err)))
}

/*
showLog displays the buffered log messages of the in-memory log.
*/
func (c *CLIConsole) showLog(ot OutputTerminal) {

	if c.memlog == nil {
		ot.WriteString(fmt.Sprintln("Log messages go to the log file"))
		return
	}

	for _, line := range c.memlog.Slice() {
		ot.WriteString(fmt.Sprintln(line))
	}
}

/*
help shows the available console commands.
*/
func (c *CLIConsole) help(ot OutputTerminal) {

	tabData := []string{"Command", "Description"}

	names := make([]interface{}, 0, len(consoleCommands))
	for name := range consoleCommands {
		names = append(names, name)
	}

	sortutil.InterfaceStrings(names)

	for _, name := range names {
		tabData = fillTableRow(tabData, fmt.Sprint(name), consoleCommands[fmt.Sprint(name)])
	}

	ot.WriteString(stringutil.PrintGraphicStringTable(tabData, 2, 1,
		stringutil.SingleDoubleLineTable))
}
