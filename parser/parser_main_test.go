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

func testParse(t *testing.T, input string, expectedOutput string) *ASTNode {
	astres, err := Parse("mytest", input)

	if err != nil || fmt.Sprint(astres) != expectedOutput {
		t.Error(fmt.Sprintf("Unexpected parser output:\n%vError: %v", astres, err))
		return nil
	}

	return astres
}

func TestLetExpressionParsing(t *testing.T) {

	testParse(t, "let x = 1, y = x in y", `
letexpression
  constant: let
  identifierpairedexpression
    identifier: x
    constant: =
    literal: 1
  constant: ,
  identifierpairedexpression
    identifier: y
    constant: =
    identifierexpression
      identifier: x
  constant: in
  identifierexpression
    identifier: y
`[1:])

	// A nested let expression

	testParse(t, "let x = let y = 1 in y in x", `
letexpression
  constant: let
  identifierpairedexpression
    identifier: x
    constant: =
    letexpression
      constant: let
      identifierpairedexpression
        identifier: y
        constant: =
        literal: 1
      constant: in
      identifierexpression
        identifier: y
  constant: in
  identifierexpression
    identifier: x
`[1:])
}

func TestSectionParsing(t *testing.T) {

	testParse(t, "section Test; x = 1; shared y = x;", `
section
  constant: section
  identifier: Test
  constant: ;
  sectionmember
    identifierpairedexpression
      identifier: x
      constant: =
      literal: 1
    constant: ;
  sectionmember
    constant: shared
    identifierpairedexpression
      identifier: y
      constant: =
      identifierexpression
        identifier: x
    constant: ;
`[1:])
}

func TestRecordParsing(t *testing.T) {

	// A record as the whole document is parsed in literal position

	testParse(t, "[f = 1, g = f]", `
recordliteral
  constant: [
  generalizedidentifierpairedexpression
    generalizedidentifier: f
    constant: =
    literal: 1
  constant: ,
  generalizedidentifierpairedexpression
    generalizedidentifier: g
    constant: =
    identifierexpression
      identifier: f
  constant: ]
`[1:])

	// A record inside an expression is a record expression

	testParse(t, "let r = [f = 1] in r", `
letexpression
  constant: let
  identifierpairedexpression
    identifier: r
    constant: =
    recordexpression
      constant: [
      generalizedidentifierpairedexpression
        generalizedidentifier: f
        constant: =
        literal: 1
      constant: ]
  constant: in
  identifierexpression
    identifier: r
`[1:])

	// An empty record

	testParse(t, "let r = [] in r", `
letexpression
  constant: let
  identifierpairedexpression
    identifier: r
    constant: =
    recordexpression
      constant: [
      constant: ]
  constant: in
  identifierexpression
    identifier: r
`[1:])
}

func TestFunctionExpressionParsing(t *testing.T) {

	testParse(t, "(a, b) => a + b", `
functionexpression
  parameterlist
    constant: (
    parameter
      identifier: a
    constant: ,
    parameter
      identifier: b
    constant: )
  constant: =>
  arithmeticexpression
    identifierexpression
      identifier: a
    constant: +
    identifierexpression
      identifier: b
`[1:])

	// A function without parameters

	testParse(t, "() => 1", `
functionexpression
  parameterlist
    constant: (
    constant: )
  constant: =>
  literal: 1
`[1:])
}

func TestEachExpressionParsing(t *testing.T) {

	testParse(t, "each _ + 1", `
eachexpression
  constant: each
  arithmeticexpression
    identifierexpression
      identifier: _
    constant: +
    literal: 1
`[1:])
}

func TestIfExpressionParsing(t *testing.T) {

	testParse(t, "if a then 1 else 2", `
ifexpression
  constant: if
  identifierexpression
    identifier: a
  constant: then
  literal: 1
  constant: else
  literal: 2
`[1:])
}

func TestMetaDataParsing(t *testing.T) {

	// Comments are attached to the surrounding leaves

	res := testParse(t, "let x = 1 in /* the result */ x", `
letexpression
  constant: let
  identifierpairedexpression
    identifier: x
    constant: =
    literal: 1
  constant: in
  identifierexpression
    identifier: x # the result
`[1:])

	if res == nil {
		return
	}

	leaf := res.Children[3].Children[0]

	if len(leaf.Meta) != 1 || leaf.Meta[0].Type() != MetaDataPreComment ||
		leaf.Meta[0].Value() != "the result" {
		t.Error("Unexpected meta data:", leaf.Meta)
		return
	}

	testParse(t, "1 // done", `
literal: 1 # done
`[1:])
}
