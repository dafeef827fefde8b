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
Package inspection contains the position-driven inspection engine for MLang
documents. Given a parsed document and a caret position the engine produces
the semantic context at that caret: the enclosing syntactic ancestors, the
identifier bindings which are in scope and - if the caret points at an
identifier - a resolution to the node which defines it.

The engine operates uniformly over completely parsed AST nodes and
parser-context nodes so that documents with parse errors can still be
inspected up to the point of the error.
*/
package inspection

import (
	"bytes"
	"fmt"

	"devt.de/krotik/mlang/parser"
	"devt.de/krotik/mlang/scope"
	"devt.de/krotik/mlang/util"
)

// Positions
// =========

/*
Position models a caret position in a document. Line counts line breaks
from the start of the input and Column counts code units from the last
line break. Both are counted from zero.
*/
type Position struct {
	Line   int // Line of the caret
	Column int // Column of the caret (in code units)
}

/*
String returns a string representation of this position.
*/
func (p Position) String() string {
	return fmt.Sprintf("%v:%v", p.Line, p.Column)
}

/*
afterTokenStart checks if this position lies strictly after the start of a
given token.
*/
func (p Position) afterTokenStart(t *parser.LexToken) bool {
	return t.Lline < p.Line || (t.Lline == p.Line && t.Lpos < p.Column)
}

// Inspection results
// ==================

/*
AncestorDescriptor describes one enclosing ancestor of the caret and its
syntactic role relative to its parent.
*/
type AncestorDescriptor struct {
	Node       parser.XorNode // The ancestor node
	ParentKind string         // Node kind of the parent ("" for the document root)
	Attribute  int            // Child slot within the parent (-1 for the document root)
	Role       string         // Descriptive role of the node within its parent
}

/*
String returns a string representation of this descriptor.
*/
func (d AncestorDescriptor) String() string {
	return fmt.Sprintf("%v - %v", d.Node, d.Role)
}

/*
PositionIdentifier is the resolution outcome for a caret which points at an
identifier. If Definition holds a node the identifier is bound to it, if
Definition is empty the identifier could not be resolved in scope.
*/
type PositionIdentifier struct {
	Identifier *parser.ASTNode // The identifier leaf at the caret
	Definition parser.XorNode  // The binding node (zero value if undefined)
}

/*
Defined returns if the identifier was resolved to a binding.
*/
func (pi *PositionIdentifier) Defined() bool {
	return !pi.Definition.IsZero()
}

/*
String returns a string representation of this position identifier.
*/
func (pi *PositionIdentifier) String() string {
	if pi.Defined() {
		return fmt.Sprintf("local %v -> %v", pi.Identifier.Token.Val, pi.Definition)
	}
	return fmt.Sprintf("undefined %v", pi.Identifier.Token.Val)
}

/*
Inspected is the result of a single inspection. Nodes lists the ancestors
of the caret leaf from the nearest enclosing node outward, Scope maps the
identifier text which is visible at the caret to its binding node and
PositionIdentifier holds the resolution outcome if the caret points at an
identifier.
*/
type Inspected struct {
	Nodes              []AncestorDescriptor
	Scope              *scope.Bindings
	PositionIdentifier *PositionIdentifier
}

/*
NewDefaultInspected returns an empty inspection result. It is produced when
no leaf starts strictly before the caret.
*/
func NewDefaultInspected() *Inspected {
	return &Inspected{nil, scope.NewBindings(), nil}
}

/*
String returns a string representation of this inspection result.
*/
func (ins *Inspected) String() string {
	var buf bytes.Buffer

	buf.WriteString("nodes {\n")
	for _, d := range ins.Nodes {
		buf.WriteString(fmt.Sprintf("    %v\n", d))
	}
	buf.WriteString("}\n")

	buf.WriteString(ins.Scope.String())
	buf.WriteString("\n")

	if ins.PositionIdentifier != nil {
		buf.WriteString(ins.PositionIdentifier.String())
	} else {
		buf.WriteString("no position identifier")
	}

	return buf.String()
}

// Entry point
// ===========

/*
TryFrom inspects a document at a given caret position. The node id map must
be fully populated and leafIds must cover all leaf nodes of the document.
The call is pure - it only reads the map and returns a fresh result.
*/
func TryFrom(pos Position, m *parser.NodeIdMap, leafIds []uint64) (*Inspected, error) {

	leaf, ok, err := maybeLeafNode(pos, m, leafIds)

	if err != nil {
		return nil, util.NewInspectionError(m.Source(),
			util.ErrInvariantViolation, err.Error(), parser.XorNode{})
	}

	if !ok {

		// Nothing lies before the caret - return the default inspection

		return NewDefaultInspected(), nil
	}

	insp := newInspector(pos, m, leaf)

	if err := Traverse(leaf, ExpandToParent(m), insp.visit, nil); err != nil {

		if te, ok := err.(util.TraceableInspectionError); ok {
			for _, n := range insp.trail {
				te.AddTrace(n)
			}
		}

		return nil, err
	}

	insp.finalize()

	return insp.result, nil
}
