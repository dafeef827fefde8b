/*
 * MLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"fmt"
	"io"
	"strings"

	"devt.de/krotik/common/datautil"
)

// Logger with loglevel support
// ============================

/*
LogLevel represents a logging level
*/
type LogLevel string

/*
Log levels which the toolkit distinguishes
*/
const (
	Debug LogLevel = "debug"
	Info           = "info"
	Error          = "error"
)

/*
logLine produces a single formatted log line. Info messages are recorded
as given - other levels are prefixed with the level name.
*/
func logLine(level LogLevel, m ...interface{}) string {

	if level == Info {
		return fmt.Sprint(m...)
	}

	return fmt.Sprintf("%v: %v", level, fmt.Sprint(m...))
}

/*
LogLevelLogger is a wrapper around loggers to add log level functionality.
*/
type LogLevelLogger struct {
	logger Logger
	level  LogLevel
}

/*
NewLogLevelLogger wraps a given logger and adds level based filtering functionality.
*/
func NewLogLevelLogger(logger Logger, level string) (*LogLevelLogger, error) {
	llevel := LogLevel(strings.ToLower(level))

	if llevel != Debug && llevel != Info && llevel != Error {
		return nil, fmt.Errorf("Invalid log level: %v", llevel)
	}

	return &LogLevelLogger{
		logger,
		llevel,
	}, nil
}

/*
Level returns the current log level.
*/
func (ll *LogLevelLogger) Level() LogLevel {
	return ll.level
}

/*
LogError adds a new error log message.
*/
func (ll *LogLevelLogger) LogError(m ...interface{}) {
	ll.logger.LogError(m...)
}

/*
LogInfo adds a new info log message.
*/
func (ll *LogLevelLogger) LogInfo(m ...interface{}) {
	if ll.level != Error {
		ll.logger.LogInfo(m...)
	}
}

/*
LogDebug adds a new debug log message.
*/
func (ll *LogLevelLogger) LogDebug(m ...interface{}) {
	if ll.level == Debug {
		ll.logger.LogDebug(m...)
	}
}

// Logging implementations
// =======================

/*
MemoryLogger keeps the most recent log messages in memory. The console uses
it as its default log destination so recent messages can be displayed with
the log command.
*/
type MemoryLogger struct {
	messages *datautil.RingBuffer
}

/*
NewMemoryLogger returns a new memory logger instance which keeps a given
number of messages.
*/
func NewMemoryLogger(size int) *MemoryLogger {
	return &MemoryLogger{datautil.NewRingBuffer(size)}
}

/*
LogError adds a new error log message.
*/
func (ml *MemoryLogger) LogError(m ...interface{}) {
	ml.messages.Add(logLine(Error, m...))
}

/*
LogInfo adds a new info log message.
*/
func (ml *MemoryLogger) LogInfo(m ...interface{}) {
	ml.messages.Add(logLine(Info, m...))
}

/*
LogDebug adds a new debug log message.
*/
func (ml *MemoryLogger) LogDebug(m ...interface{}) {
	ml.messages.Add(logLine(Debug, m...))
}

/*
Slice returns the current log messages as a slice.
*/
func (ml *MemoryLogger) Slice() []string {
	sl := ml.messages.Slice()

	ret := make([]string, len(sl))
	for i, lm := range sl {
		ret[i] = lm.(string)
	}

	return ret
}

/*
Size returns the current number of log messages.
*/
func (ml *MemoryLogger) Size() int {
	return ml.messages.Size()
}

/*
Reset discards all log messages.
*/
func (ml *MemoryLogger) Reset() {
	ml.messages.Reset()
}

/*
String returns all log messages as a single string.
*/
func (ml *MemoryLogger) String() string {
	return ml.messages.String()
}

/*
BufferLogger writes log messages to a given writer (e.g. a log file with
rollover support).
*/
type BufferLogger struct {
	out io.Writer
}

/*
NewBufferLogger returns a buffer logger instance.
*/
func NewBufferLogger(out io.Writer) *BufferLogger {
	return &BufferLogger{out}
}

/*
LogError adds a new error log message.
*/
func (bl *BufferLogger) LogError(m ...interface{}) {
	fmt.Fprintln(bl.out, logLine(Error, m...))
}

/*
LogInfo adds a new info log message.
*/
func (bl *BufferLogger) LogInfo(m ...interface{}) {
	fmt.Fprintln(bl.out, logLine(Info, m...))
}

/*
LogDebug adds a new debug log message.
*/
func (bl *BufferLogger) LogDebug(m ...interface{}) {
	fmt.Fprintln(bl.out, logLine(Debug, m...))
}
