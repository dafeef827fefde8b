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
	"devt.de/krotik/mlang/parser"
)

/*
ExpandFunc returns the next frontier nodes for a given node.
*/
type ExpandFunc func(parser.XorNode) ([]parser.XorNode, error)

/*
VisitFunc processes a single node. An error aborts the traversal.
*/
type VisitFunc func(parser.XorNode) error

/*
EarlyExitFunc decides after each visit if the traversal should stop.
*/
type EarlyExitFunc func() bool

/*
Traverse visits nodes breadth-first starting from a given root node. The
expansion function yields the next frontier nodes - for an upward walk it
returns the parent of the given node which reduces the traversal to a
linear chain. The caller must guarantee that the expansion never produces
a cycle. An early exit function may be nil.
*/
func Traverse(root parser.XorNode, expand ExpandFunc, visit VisitFunc,
	earlyExit EarlyExitFunc) error {

	frontier := []parser.XorNode{root}

	for len(frontier) > 0 {

		node := frontier[0]
		frontier = frontier[1:]

		if err := visit(node); err != nil {
			return err
		}

		if earlyExit != nil && earlyExit() {
			return nil
		}

		next, err := expand(node)
		if err != nil {
			return err
		}

		frontier = append(frontier, next...)
	}

	return nil
}

/*
ExpandToParent returns an expansion function which yields the parent of a
given node or nothing at the document root.
*/
func ExpandToParent(m *parser.NodeIdMap) ExpandFunc {
	return func(node parser.XorNode) ([]parser.XorNode, error) {

		if p, ok := m.MaybeParentXorNode(node.ID()); ok {
			return []parser.XorNode{p}, nil
		}

		return nil, nil
	}
}
