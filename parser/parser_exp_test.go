/*
 * MLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"fmt"
	"testing"
)

func testParseError(t *testing.T, input string, expectedError string) {
	astres, err := Parse("mytest", input)

	if err == nil || err.Error() != expectedError {
		t.Error(fmt.Sprintf("Unexpected parser output:\n%v error: %v", astres, err))
	}
}

func TestOperatorPrecedence(t *testing.T) {

	testParse(t, "1 + 2 * 3 = 4 and true", `
logicalexpression
  equalityexpression
    arithmeticexpression
      literal: 1
      constant: +
      arithmeticexpression
        literal: 2
        constant: *
        literal: 3
    constant: =
    literal: 4
  constant: and
  literal: true
`[1:])

	testParse(t, "not true or false", `
logicalexpression
  unaryexpression
    constant: not
    literal: true
  constant: or
  literal: false
`[1:])

	testParse(t, `1 < 2 <> "a" & "b"`, `
equalityexpression
  relationalexpression
    literal: 1
    constant: <
    literal: 2
  constant: <>
  arithmeticexpression
    literal: 'a'
    constant: &
    literal: 'b'
`[1:])

	testParse(t, "-1 + +2", `
arithmeticexpression
  unaryexpression
    constant: -
    literal: 1
  constant: +
  unaryexpression
    constant: +
    literal: 2
`[1:])
}

func TestInvokeExpressionParsing(t *testing.T) {

	testParse(t, "@f(1, x)", `
invokeexpression
  identifierexpression
    constant: @
    identifier: f
  constant: (
  literal: 1
  constant: ,
  identifierexpression
    identifier: x
  constant: )
`[1:])

	testParse(t, "Text.From(a)(b)", `
invokeexpression
  identifierexpression
    identifier: Text.From
  constant: (
  identifierexpression
    identifier: a
  constant: )
  constant: (
  identifierexpression
    identifier: b
  constant: )
`[1:])
}

func TestListAndParenParsing(t *testing.T) {

	testParse(t, `{1, "a" & "b", (2)}`, `
listexpression
  constant: {
  literal: 1
  constant: ,
  arithmeticexpression
    literal: 'a'
    constant: &
    literal: 'b'
  constant: ,
  parenthesizedexpression
    constant: (
    literal: 2
    constant: )
  constant: }
`[1:])

	// An empty list

	testParse(t, "{}", `
listexpression
  constant: {
  constant: }
`[1:])
}

func TestParseErrors(t *testing.T) {

	testParseError(t, "let x = in x",
		"Parse error in mytest: Unexpected term (in) (Line:1 Pos:9)")

	testParseError(t, "1 +",
		"Parse error in mytest: Unexpected end (Line:1 Pos:4)")

	testParseError(t, "1 2",
		`Parse error in mytest: Unexpected term (extra token v:"2") (Line:1 Pos:3)`)

	testParseError(t, `"abc`,
		"Parse error in mytest: Lexical error (Unexpected end while reading string value (unclosed quotes)) (Line:1 Pos:1)")

	testParseError(t, "(a, b) => ",
		"Parse error in mytest: Unexpected end (Line:1 Pos:11)")

	testParseError(t, "section Test x = 1;",
		"Parse error in mytest: Unexpected term (x) (Line:1 Pos:14)")
}

func TestPartialParsing(t *testing.T) {

	// A document which ends inside the second binding leaves the open
	// productions behind as context nodes

	m, err := ParseDocument("mytest", "let x = 1, y = ")

	if err == nil {
		t.Error("Parse error expected")
		return
	}

	astCount, ctxCount := m.Counts()

	if astCount == 0 || ctxCount == 0 {
		t.Error("Unexpected counts:", astCount, ctxCount)
		return
	}

	// The document root must be the open let production

	root, ok := m.MaybeContextNode(m.RootID())

	if !ok || root.Name != NodeLetExpression {
		t.Error("Unexpected root:", root)
		return
	}

	// The first binding is completely parsed

	pairs := m.ChildIdsOfKind(m.RootID(), map[string]bool{NodeIdentifierPairedExpression: true})

	if len(pairs) != 1 {
		t.Error("Unexpected pairs:", pairs)
		return
	}

	if _, ok := m.MaybeAstNode(pairs[0]); !ok {
		t.Error("First binding should be a completed AST node")
		return
	}

	// The second binding is still an open context containing the leaves
	// which were read for it

	var openPair *ContextNode

	for _, cid := range m.ChildIds(m.RootID()) {
		if c, ok := m.MaybeContextNode(cid); ok && c.Name == NodeIdentifierPairedExpression {
			openPair = c
		}
	}

	if openPair == nil {
		t.Error("Second binding should be an open context")
		return
	}

	children := m.ChildIds(openPair.ID)

	if len(children) != 3 {
		t.Error("Unexpected children:", children)
		return
	}

	name, _ := m.MaybeAstNode(children[0])

	if name == nil || name.Name != NodeIdentifier || name.Token.Val != "y" {
		t.Error("Unexpected name leaf:", name)
		return
	}

	eq, _ := m.MaybeAstNode(children[1])

	if eq == nil || eq.Name != NodeConstant || eq.Token.Val != "=" {
		t.Error("Unexpected constant leaf:", eq)
		return
	}

	// The missing value is an open expression context

	if _, ok := m.MaybeContextNode(children[2]); !ok {
		t.Error("Value should be an open context")
		return
	}

	if err := m.Validate(); err != nil {
		t.Error("Partial map should be valid:", err)
		return
	}
}

func TestEmptyDocumentParsing(t *testing.T) {

	m, err := ParseDocument("mytest", "")

	if err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	if len(m.LeafIds()) != 0 {
		t.Error("Unexpected leaf ids:", m.LeafIds())
		return
	}

	astCount, ctxCount := m.Counts()

	if astCount != 0 || ctxCount != 0 {
		t.Error("Unexpected counts:", astCount, ctxCount)
		return
	}
}
