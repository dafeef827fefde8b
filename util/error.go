/*
 * MLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package util contains utility definitions and functions for the MLang
formula language toolkit.
*/
package util

import (
	"encoding/json"
	"errors"
	"fmt"

	"devt.de/krotik/mlang/parser"
)

/*
TraceableInspectionError can record and show the trail of nodes which an
inspection visited before it failed.
*/
type TraceableInspectionError interface {
	error

	/*
		AddTrace adds a trace step.
	*/
	AddTrace(parser.XorNode)

	/*
		GetTrace returns the current node trail.
	*/
	GetTrace() []parser.XorNode

	/*
		GetTraceString returns the current node trail as a string.
	*/
	GetTraceString() []string
}

/*
InspectionError is an inspection related error.
*/
type InspectionError struct {
	Source string           // Name of the source which was given to the parser
	Type   error            // Error type (to be used for equal checks)
	Detail string           // Details of this error
	Node   parser.XorNode   // Node where the error occurred
	Line   int              // Line of the error
	Pos    int              // Position of the error
	Trace  []parser.XorNode // Trail of visited nodes
}

/*
Inspection related error types.
*/
var (
	ErrInvariantViolation = errors.New("Invariant violation")
	ErrUnknownConstruct   = errors.New("Unknown construct")
	ErrInvalidState       = errors.New("Invalid state")
	ErrDocumentAccess     = errors.New("Cannot access document")
)

/*
NewInspectionError creates a new InspectionError object.
*/
func NewInspectionError(source string, t error, d string, node parser.XorNode) error {

	if ast := node.Ast(); ast != nil && ast.Token != nil {
		return &InspectionError{source, t, d, node, ast.Token.Lline, ast.Token.Lpos, nil}
	}

	if ctx := node.Context(); ctx != nil && ctx.Token != nil {
		return &InspectionError{source, t, d, node, ctx.Token.Lline, ctx.Token.Lpos, nil}
	}

	return &InspectionError{source, t, d, node, 0, 0, nil}
}

/*
Error returns a human-readable string representation of this error.
*/
func (ie *InspectionError) Error() string {
	ret := fmt.Sprintf("MLang error in %s: %v (%v)", ie.Source, ie.Type, ie.Detail)

	if !ie.Node.IsZero() {

		// Add node position if available

		ret = fmt.Sprintf("%s (Line:%d Pos:%d)", ret, ie.Line+1, ie.Pos+1)
	}

	return ret
}

/*
AddTrace adds a trace step.
*/
func (ie *InspectionError) AddTrace(n parser.XorNode) {
	ie.Trace = append(ie.Trace, n)
}

/*
GetTrace returns the current node trail.
*/
func (ie *InspectionError) GetTrace() []parser.XorNode {
	return ie.Trace
}

/*
GetTraceString returns the current node trail as a string.
*/
func (ie *InspectionError) GetTraceString() []string {
	res := []string{}
	for _, t := range ie.GetTrace() {
		res = append(res, t.String())
	}
	return res
}

/*
ToJSONObject returns this InspectionError and all its children as a JSON object.
*/
func (ie *InspectionError) ToJSONObject() map[string]interface{} {
	t := ""
	if ie.Type != nil {
		t = ie.Type.Error()
	}
	return map[string]interface{}{
		"Source": ie.Source,
		"Type":   t,
		"Detail": ie.Detail,
		"Node":   ie.Node.String(),
		"Trace":  ie.GetTraceString(),
	}
}

/*
MarshalJSON serializes this InspectionError into a JSON string.
*/
func (ie *InspectionError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ie.ToJSONObject())
}
