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

func testPrettyPrinting(t *testing.T, input, expectedOutput string) {

	astres, err := Parse("mytest", input)
	if err != nil {
		t.Error("Cannot parse test input:", err)
		return
	}

	ppres, err := PrettyPrint(astres)
	if err != nil || ppres != expectedOutput {
		t.Error(fmt.Sprintf("Unexpected result: %v (error: %v)", ppres, err))
		return
	}

	// Make sure the pretty printed result is valid M and produces the
	// same AST

	astres2, err := Parse("mytest", ppres)
	if err != nil {
		t.Error("Cannot parse pretty printed output:", err)
		return
	}

	if ok, msg := astres.Equals(astres2, true); !ok {
		t.Error("Pretty printed AST is different:", msg)
		return
	}
}

func TestExpressionPrinting(t *testing.T) {

	testPrettyPrinting(t, "(a,b)=>a+b", "(a, b) => a + b")
	testPrettyPrinting(t, "each _+1", "each _ + 1")
	testPrettyPrinting(t, "[f=1,g=f]", "[f = 1, g = f]")
	testPrettyPrinting(t, "[]", "[]")
	testPrettyPrinting(t, "if a then 1 else 2", "if a then 1 else 2")
	testPrettyPrinting(t, "@f(1,x)", "@f(1, x)")
	testPrettyPrinting(t, "{1,2}", "{1, 2}")
	testPrettyPrinting(t, "{}", "{}")
	testPrettyPrinting(t, "not true or false", "not true or false")
	testPrettyPrinting(t, "-1+ +2", "-1 + +2")
	testPrettyPrinting(t, "(1)", "(1)")
	testPrettyPrinting(t, "1+2*3=4", "1 + 2 * 3 = 4")
	testPrettyPrinting(t, `[#"my name"="a""b"]`, `[#"my name" = "a""b"]`)
}

func TestLetPrinting(t *testing.T) {

	testPrettyPrinting(t, "let x = 1, y = x in y", `
let
    x = 1,
    y = x
in
    y`[1:])

	testPrettyPrinting(t, "let x = let y = 1 in y in x", `
let
    x = let
            y = 1
        in
            y
in
    x`[1:])
}

func TestSectionPrinting(t *testing.T) {

	testPrettyPrinting(t, "section Test; x = 1; shared y = x;",
		"section Test;\n\nx = 1;\nshared y = x;")
}
