/*
 * MLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package scope

import (
	"fmt"
	"strings"
	"testing"

	"devt.de/krotik/mlang/parser"
)

func testNodes(t *testing.T) (parser.XorNode, parser.XorNode) {

	m, err := parser.ParseDocument("test", "let x = 1, y = x in y")
	if err != nil {
		t.Fatal("Cannot parse test document:", err)
	}

	children := m.ChildIds(m.RootID())

	n1, _ := m.MaybeXorNode(children[1])
	n2, _ := m.MaybeXorNode(children[3])

	return n1, n2
}

func TestBindingsAddAndShadowing(t *testing.T) {

	n1, n2 := testNodes(t)

	b := NewBindings()

	if !b.Add("x", n1) {
		t.Error("First insertion should succeed")
		return
	}

	// The first insertion wins - an inner binding shadows an outer one

	if b.Add("x", n2) {
		t.Error("Second insertion should be rejected")
		return
	}

	if node, ok := b.Get("x"); !ok || node.ID() != n1.ID() {
		t.Error("Unexpected binding:", node)
		return
	}

	if !b.Has("x") || b.Has("y") || b.Len() != 1 {
		t.Error("Unexpected state:", b)
		return
	}
}

func TestBindingsNamesAndCopy(t *testing.T) {

	n1, n2 := testNodes(t)

	b := NewBindings()

	b.Add("zz", n1)
	b.Add("aa", n2)

	// Names preserves insertion order

	if res := fmt.Sprint(b.Names()); res != "[zz aa]" {
		t.Error("Unexpected names:", res)
		return
	}

	// SortedNames returns lexical order

	if res := fmt.Sprint(b.SortedNames()); res != "[aa zz]" {
		t.Error("Unexpected names:", res)
		return
	}

	b2 := b.Copy()

	if ok, msg := b.Equals(b2); !ok {
		t.Error("Copy should be equal:", msg)
		return
	}

	b2.Add("mm", n1)

	if ok, _ := b.Equals(b2); ok {
		t.Error("Sets of different size should not be equal")
		return
	}

	b3 := NewBindings()
	b3.Add("zz", n2)
	b3.Add("aa", n2)

	if ok, msg := b.Equals(b3); ok || !strings.Contains(msg, "Binding zz is different") {
		t.Error("Unexpected result:", msg)
		return
	}
}

func TestBindingsString(t *testing.T) {

	n1, _ := testNodes(t)

	b := NewBindings()
	b.Add("x", n1)

	if res := b.String(); !strings.HasPrefix(res, "bindings {\n    x : ast identifierpairedexpression") {
		t.Error("Unexpected string:", res)
		return
	}

	obj := b.ToJSONObject()

	if entry, ok := obj["x"].(map[string]interface{}); !ok ||
		entry["kind"] != parser.NodeIdentifierPairedExpression {
		t.Error("Unexpected JSON object:", obj)
		return
	}
}
