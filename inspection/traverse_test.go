/*
 * MLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package inspection

import (
	"errors"
	"fmt"
	"testing"

	"devt.de/krotik/mlang/parser"
)

func TestTraverseUpwardChain(t *testing.T) {

	m, err := parser.ParseDocument("mytest", "let x = 1 in x + 1")
	if err != nil {
		t.Error("Cannot parse test document:", err)
		return
	}

	// Start at the literal of the body

	leaf, ok := m.MaybeRightMostLeaf(m.RootID())
	if !ok {
		t.Error("Cannot find start leaf")
		return
	}

	var visited []string

	err = Traverse(parser.NewAstXorNode(leaf), ExpandToParent(m),
		func(x parser.XorNode) error {
			visited = append(visited, x.Kind())
			return nil
		}, nil)

	if err != nil || fmt.Sprint(visited) !=
		"[literal arithmeticexpression letexpression]" {
		t.Error("Unexpected traversal:", visited, err)
		return
	}
}

func TestTraverseEarlyExit(t *testing.T) {

	m, err := parser.ParseDocument("mytest", "let x = 1 in x + 1")
	if err != nil {
		t.Error("Cannot parse test document:", err)
		return
	}

	leaf, _ := m.MaybeRightMostLeaf(m.RootID())

	var visited []string

	err = Traverse(parser.NewAstXorNode(leaf), ExpandToParent(m),
		func(x parser.XorNode) error {
			visited = append(visited, x.Kind())
			return nil
		},
		func() bool {
			return len(visited) > 1
		})

	if err != nil || fmt.Sprint(visited) != "[literal arithmeticexpression]" {
		t.Error("Unexpected traversal:", visited, err)
		return
	}
}

func TestTraverseFailures(t *testing.T) {

	m, err := parser.ParseDocument("mytest", "1 + 2")
	if err != nil {
		t.Error("Cannot parse test document:", err)
		return
	}

	root, _ := m.MaybeXorNode(m.RootID())

	// A failing visit aborts the traversal

	testError := errors.New("visit failed")

	err = Traverse(root, ExpandToParent(m),
		func(x parser.XorNode) error {
			return testError
		}, nil)

	if err != testError {
		t.Error("Unexpected result:", err)
		return
	}

	// A failing expansion aborts the traversal

	expandError := errors.New("expand failed")

	err = Traverse(root,
		func(x parser.XorNode) ([]parser.XorNode, error) {
			return nil, expandError
		},
		func(x parser.XorNode) error {
			return nil
		}, nil)

	if err != expandError {
		t.Error("Unexpected result:", err)
		return
	}
}

func TestTraverseSubtree(t *testing.T) {

	m, err := parser.ParseDocument("mytest", "let x = 1 in x")
	if err != nil {
		t.Error("Cannot parse test document:", err)
		return
	}

	root, _ := m.MaybeXorNode(m.RootID())

	// The same driver performs a breadth-first subtree walk with a
	// different expansion function

	count := 0

	err = Traverse(root,
		func(x parser.XorNode) ([]parser.XorNode, error) {
			var ret []parser.XorNode

			for _, cid := range m.ChildIds(x.ID()) {
				if c, ok := m.MaybeXorNode(cid); ok {
					ret = append(ret, c)
				}
			}

			return ret, nil
		},
		func(x parser.XorNode) error {
			count++
			return nil
		}, nil)

	astCount, _ := m.Counts()

	if err != nil || count != astCount {
		t.Error("Unexpected count:", count, astCount, err)
		return
	}
}
