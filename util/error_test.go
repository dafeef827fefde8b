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
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"devt.de/krotik/mlang/parser"
)

func TestInspectionError(t *testing.T) {

	m, err := parser.ParseDocument("mytest", "let x = 1 in x")
	if err != nil {
		t.Error("Cannot parse test document:", err)
		return
	}

	root, _ := m.MaybeXorNode(m.RootID())

	ierr := NewInspectionError("mytest", ErrInvalidState, "testerror", root)

	if ierr.Error() != "MLang error in mytest: Invalid state (testerror) (Line:1 Pos:1)" {
		t.Error("Unexpected result:", ierr.Error())
		return
	}

	// An error without a node has no position information

	ierr = NewInspectionError("mytest", ErrUnknownConstruct, "testerror", parser.XorNode{})

	if ierr.Error() != "MLang error in mytest: Unknown construct (testerror)" {
		t.Error("Unexpected result:", ierr.Error())
		return
	}

	// Errors on context nodes carry the position of the opening token

	m, _ = parser.ParseDocument("mytest", "let x = ")

	ctxRoot, _ := m.MaybeXorNode(m.RootID())

	ierr = NewInspectionError("mytest", ErrInvariantViolation, "testerror", ctxRoot)

	if ierr.Error() != "MLang error in mytest: Invariant violation (testerror) (Line:1 Pos:1)" {
		t.Error("Unexpected result:", ierr.Error())
		return
	}
}

func TestInspectionErrorTrace(t *testing.T) {

	m, err := parser.ParseDocument("mytest", "let x = 1 in x")
	if err != nil {
		t.Error("Cannot parse test document:", err)
		return
	}

	root, _ := m.MaybeXorNode(m.RootID())

	ierr := NewInspectionError("mytest", ErrInvalidState, "testerror", root)

	te, ok := ierr.(TraceableInspectionError)

	if !ok {
		t.Error("Error should be traceable")
		return
	}

	te.AddTrace(root)

	if res := te.GetTrace(); len(res) != 1 || res[0].ID() != root.ID() {
		t.Error("Unexpected trace:", res)
		return
	}

	if res := te.GetTraceString(); len(res) != 1 ||
		!strings.HasPrefix(res[0], "ast letexpression") {
		t.Error("Unexpected trace:", res)
		return
	}

	// The error can be serialized

	out, err := json.Marshal(ierr)
	if err != nil {
		t.Error("Cannot marshal error:", err)
		return
	}

	var obj map[string]interface{}

	if err := json.Unmarshal(out, &obj); err != nil {
		t.Error("Cannot unmarshal error:", err)
		return
	}

	if obj["Type"] != "Invalid state" || obj["Detail"] != "testerror" {
		t.Error("Unexpected object:", fmt.Sprint(obj))
		return
	}
}
