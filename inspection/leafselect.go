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
maybeLeafNode selects the leaf at or nearest to the left of a given
position. A leaf whose start lies exactly on the position is not selected -
the caret sits to the immediate left of the character at the position.
Returns false if no leaf starts before the position.
*/
func maybeLeafNode(pos Position, m *parser.NodeIdMap, leafIds []uint64) (parser.XorNode, bool, error) {
	var best *parser.ASTNode

	for _, id := range leafIds {

		leaf, err := m.ExpectAstNode(id)
		if err != nil {
			return parser.XorNode{}, false, err
		}

		if leaf.Token == nil {
			continue
		}

		if !pos.afterTokenStart(leaf.Token) {
			continue
		}

		if best == nil || leaf.Token.Pos > best.Token.Pos {
			best = leaf
		}
	}

	if best == nil {
		return parser.XorNode{}, false, nil
	}

	return parser.NewAstXorNode(best), true, nil
}
