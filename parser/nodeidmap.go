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

	"devt.de/krotik/common/sortutil"
)

// Parser context nodes
// ====================

/*
ContextNode models a production which the parser has opened but not yet
completed. It knows its intended node kind but may miss children. Context
nodes which are still present after parsing has finished mark the spots
where the input ended or stopped making sense.
*/
type ContextNode struct {
	ID        uint64    // Unique node id within one document
	Name      string    // Name of the intended node kind
	Attribute int       // Child slot within the parent node (-1 for the root)
	Token     *LexToken // Token at which the production was opened (may be nil)
}

/*
String returns a string representation of this context node.
*/
func (c *ContextNode) String() string {
	return fmt.Sprintf("context %v (%v)", c.Name, c.ID)
}

// XorNode
// =======

/*
XorNode is a uniform handle over either a completely parsed AST node or a
parser-context node. Exactly one of the two cases is set.
*/
type XorNode struct {
	astNode     *ASTNode
	contextNode *ContextNode
}

/*
NewAstXorNode wraps an AST node into an XorNode.
*/
func NewAstXorNode(n *ASTNode) XorNode {
	return XorNode{n, nil}
}

/*
NewContextXorNode wraps a parser-context node into an XorNode.
*/
func NewContextXorNode(c *ContextNode) XorNode {
	return XorNode{nil, c}
}

/*
IsZero returns if this XorNode holds no node at all.
*/
func (x XorNode) IsZero() bool {
	return x.astNode == nil && x.contextNode == nil
}

/*
IsAst returns if this XorNode holds a completely parsed AST node.
*/
func (x XorNode) IsAst() bool {
	return x.astNode != nil
}

/*
ID returns the node id of the held node.
*/
func (x XorNode) ID() uint64 {
	if x.astNode != nil {
		return x.astNode.ID
	} else if x.contextNode != nil {
		return x.contextNode.ID
	}
	return 0
}

/*
Kind returns the node kind of the held node.
*/
func (x XorNode) Kind() string {
	if x.astNode != nil {
		return x.astNode.Name
	} else if x.contextNode != nil {
		return x.contextNode.Name
	}
	return ""
}

/*
Attribute returns the child slot of the held node within its parent
(-1 for the root).
*/
func (x XorNode) Attribute() int {
	if x.astNode != nil {
		return x.astNode.Attribute
	} else if x.contextNode != nil {
		return x.contextNode.Attribute
	}
	return -1
}

/*
Ast returns the held AST node or nil.
*/
func (x XorNode) Ast() *ASTNode {
	return x.astNode
}

/*
Context returns the held context node or nil.
*/
func (x XorNode) Context() *ContextNode {
	return x.contextNode
}

/*
AsAst returns the held AST node. It is an error if a context node is held.
*/
func (x XorNode) AsAst() (*ASTNode, error) {
	if x.astNode == nil {
		return nil, fmt.Errorf("Node %v is not a completed AST node", x.ID())
	}
	return x.astNode, nil
}

/*
String returns a string representation of this XorNode.
*/
func (x XorNode) String() string {
	if x.astNode != nil {
		return fmt.Sprintf("ast %v (%v)", x.astNode.Name, x.astNode.ID)
	} else if x.contextNode != nil {
		return x.contextNode.String()
	}
	return "none"
}

// NodeIdMap
// =========

/*
NodeIdMap is the document-wide id-indexed structural map produced by the
parser. Every node id appears in exactly one of the AST or the context index.
After parsing has finished the map is read-only and may be shared by any
number of concurrent readers.
*/
type NodeIdMap struct {
	source       string                  // Name of the source which was given to the parser
	astNodes     map[uint64]*ASTNode     // Completely parsed nodes by id
	contextNodes map[uint64]*ContextNode // Open productions by id
	parentIds    map[uint64]uint64       // Parent id by id (root absent)
	childIds     map[uint64][]uint64     // Ordered child ids by id
	leafIds      []uint64                // All leaf ids in source order
	rootID       uint64                  // Id of the document root
	counter      uint64                  // Id generator state
}

/*
NewNodeIdMap creates a new node id map instance.
*/
func NewNodeIdMap(source string) *NodeIdMap {
	return &NodeIdMap{
		source,
		make(map[uint64]*ASTNode),
		make(map[uint64]*ContextNode),
		make(map[uint64]uint64),
		make(map[uint64][]uint64),
		nil,
		0,
		0,
	}
}

/*
Source returns the name of the source which produced this map.
*/
func (m *NodeIdMap) Source() string {
	return m.source
}

/*
RootID returns the id of the document root.
*/
func (m *NodeIdMap) RootID() uint64 {
	return m.rootID
}

/*
LeafIds returns the ids of all leaf nodes in source order.
*/
func (m *NodeIdMap) LeafIds() []uint64 {
	return m.leafIds
}

/*
Counts returns the number of AST nodes and the number of context nodes.
*/
func (m *NodeIdMap) Counts() (int, int) {
	return len(m.astNodes), len(m.contextNodes)
}

/*
MaybeAstNode returns the AST node for a given id.
*/
func (m *NodeIdMap) MaybeAstNode(id uint64) (*ASTNode, bool) {
	n, ok := m.astNodes[id]
	return n, ok
}

/*
MaybeContextNode returns the context node for a given id.
*/
func (m *NodeIdMap) MaybeContextNode(id uint64) (*ContextNode, bool) {
	c, ok := m.contextNodes[id]
	return c, ok
}

/*
MaybeXorNode returns the node for a given id preferring the AST form.
*/
func (m *NodeIdMap) MaybeXorNode(id uint64) (XorNode, bool) {
	if n, ok := m.astNodes[id]; ok {
		return NewAstXorNode(n), true
	}
	if c, ok := m.contextNodes[id]; ok {
		return NewContextXorNode(c), true
	}
	return XorNode{}, false
}

/*
ExpectAstNode returns the AST node for a given id. The node must exist.
*/
func (m *NodeIdMap) ExpectAstNode(id uint64) (*ASTNode, error) {
	n, ok := m.astNodes[id]
	if !ok {
		return nil, fmt.Errorf("Unknown AST node id: %v", id)
	}
	return n, nil
}

/*
ExpectContextNode returns the context node for a given id. The node must exist.
*/
func (m *NodeIdMap) ExpectContextNode(id uint64) (*ContextNode, error) {
	c, ok := m.contextNodes[id]
	if !ok {
		return nil, fmt.Errorf("Unknown context node id: %v", id)
	}
	return c, nil
}

/*
ExpectXorNode returns the node for a given id. The node must exist.
*/
func (m *NodeIdMap) ExpectXorNode(id uint64) (XorNode, error) {
	x, ok := m.MaybeXorNode(id)
	if !ok {
		return XorNode{}, fmt.Errorf("Unknown node id: %v", id)
	}
	return x, nil
}

/*
MaybeParentID returns the parent id for a given id. The root has no parent.
*/
func (m *NodeIdMap) MaybeParentID(id uint64) (uint64, bool) {
	p, ok := m.parentIds[id]
	return p, ok
}

/*
MaybeParentXorNode returns the parent node for a given id preferring the
AST form. The root has no parent.
*/
func (m *NodeIdMap) MaybeParentXorNode(id uint64) (XorNode, bool) {
	if p, ok := m.parentIds[id]; ok {
		return m.MaybeXorNode(p)
	}
	return XorNode{}, false
}

/*
ChildIds returns the ordered child ids for a given id.
*/
func (m *NodeIdMap) ChildIds(id uint64) []uint64 {
	return m.childIds[id]
}

/*
ChildIdsOfKind returns the child ids for a given id whose node kind lies in
a given kind set. Child order is preserved.
*/
func (m *NodeIdMap) ChildIdsOfKind(id uint64, kinds map[string]bool) []uint64 {
	var ret []uint64

	for _, cid := range m.childIds[id] {
		if x, ok := m.MaybeXorNode(cid); ok && kinds[x.Kind()] {
			ret = append(ret, cid)
		}
	}

	return ret
}

/*
MaybeRightMostLeaf returns the right most AST leaf under a given subtree.
*/
func (m *NodeIdMap) MaybeRightMostLeaf(id uint64) (*ASTNode, bool) {
	return m.MaybeRightMostLeafWhere(id, nil)
}

/*
MaybeRightMostLeafWhere returns the deepest right most AST leaf under a
given subtree which matches a given predicate. Subtrees are searched right
to left and the first match wins.
*/
func (m *NodeIdMap) MaybeRightMostLeafWhere(id uint64, pred func(*ASTNode) bool) (*ASTNode, bool) {

	if n, ok := m.astNodes[id]; ok && n.IsLeaf() {
		if pred == nil || pred(n) {
			return n, true
		}
		return nil, false
	}

	children := m.childIds[id]

	for i := len(children) - 1; i >= 0; i-- {
		if leaf, ok := m.MaybeRightMostLeafWhere(children[i], pred); ok {
			return leaf, true
		}
	}

	return nil, false
}

/*
Validate checks the structural invariants of this map: every id is either
an AST or a context node, every child link mirrors a parent link and every
leaf id refers to an AST leaf.
*/
func (m *NodeIdMap) Validate() error {

	for id := range m.astNodes {
		if _, ok := m.contextNodes[id]; ok {
			return fmt.Errorf("Node id %v is both an AST and a context node", id)
		}
	}

	for id, pid := range m.parentIds {
		found := false
		for _, cid := range m.childIds[pid] {
			if cid == id {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("Node id %v is not a child of its parent %v", id, pid)
		}
	}

	for pid, cids := range m.childIds {
		if _, ok := m.MaybeXorNode(pid); !ok && len(cids) > 0 {
			return fmt.Errorf("Unknown parent node id: %v", pid)
		}
		for _, cid := range cids {
			if got, ok := m.parentIds[cid]; !ok || got != pid {
				return fmt.Errorf("Child id %v does not link back to its parent %v", cid, pid)
			}
		}
	}

	for _, lid := range m.leafIds {
		n, ok := m.astNodes[lid]
		if !ok || !n.IsLeaf() {
			return fmt.Errorf("Leaf id %v does not refer to an AST leaf", lid)
		}
	}

	return nil
}

/*
String returns a string representation of this map for debugging purposes.
*/
func (m *NodeIdMap) String() string {
	var ids []uint64

	for id := range m.astNodes {
		ids = append(ids, id)
	}
	for id := range m.contextNodes {
		ids = append(ids, id)
	}

	sortutil.UInt64s(ids)

	ret := fmt.Sprintf("NodeIdMap %v (root %v)\n", m.source, m.rootID)

	for _, id := range ids {
		x, _ := m.MaybeXorNode(id)
		ret += fmt.Sprintf("%5d: %v children:%v\n", id, x.String(), m.childIds[id])
	}

	return ret
}

// Builder operations (used by the parser while the document is read)
// ==================================================================

/*
newID produces the next free node id.
*/
func (m *NodeIdMap) newID() uint64 {
	m.counter++
	return m.counter
}

/*
openContext registers a new context node under a given parent context.
A nil parent makes the new context the document root.
*/
func (m *NodeIdMap) openContext(name string, parent *ContextNode, t *LexToken) *ContextNode {
	ctx := &ContextNode{m.newID(), name, -1, t}

	m.contextNodes[ctx.ID] = ctx

	if parent != nil {
		m.link(ctx.ID, parent.ID, &ctx.Attribute)
	} else {
		m.rootID = ctx.ID
	}

	return ctx
}

/*
addLeaf registers a new AST leaf under a given parent context.
*/
func (m *NodeIdMap) addLeaf(node *ASTNode, parent *ContextNode) {
	node.ID = m.newID()

	m.astNodes[node.ID] = node
	m.leafIds = append(m.leafIds, node.ID)

	if parent != nil {
		m.link(node.ID, parent.ID, &node.Attribute)
	} else {
		m.rootID = node.ID
	}
}

/*
sealContext turns a given context node into a completed AST node keeping
its id, slot and children.
*/
func (m *NodeIdMap) sealContext(ctx *ContextNode, node *ASTNode) {
	node.ID = ctx.ID
	node.Attribute = ctx.Attribute

	delete(m.contextNodes, ctx.ID)
	m.astNodes[ctx.ID] = node
}

/*
collapseContext removes a context node which turned out to be an unneeded
wrapper. Its children are spliced into the slot the wrapper occupied within
its parent.
*/
func (m *NodeIdMap) collapseContext(ctx *ContextNode) {
	children := m.childIds[ctx.ID]

	delete(m.contextNodes, ctx.ID)
	delete(m.childIds, ctx.ID)

	pid, hasParent := m.parentIds[ctx.ID]
	delete(m.parentIds, ctx.ID)

	if !hasParent {

		// The wrapper was the root - its only child becomes the root

		if len(children) == 1 {
			delete(m.parentIds, children[0])
			m.rootID = children[0]
			m.setAttribute(children[0], -1)
		}
		return
	}

	// Splice the children into the parent's child list

	pchildren := m.childIds[pid]

	var spliced []uint64
	for _, cid := range pchildren {
		if cid == ctx.ID {
			spliced = append(spliced, children...)
		} else {
			spliced = append(spliced, cid)
		}
	}

	m.childIds[pid] = spliced

	for i, cid := range spliced {
		m.parentIds[cid] = pid
		m.setAttribute(cid, i)
	}
}

/*
link attaches a child node to a parent node and records the child slot.
*/
func (m *NodeIdMap) link(child uint64, parent uint64, attribute *int) {
	*attribute = len(m.childIds[parent])
	m.parentIds[child] = parent
	m.childIds[parent] = append(m.childIds[parent], child)
}

/*
setAttribute updates the recorded child slot of a node.
*/
func (m *NodeIdMap) setAttribute(id uint64, attribute int) {
	if n, ok := m.astNodes[id]; ok {
		n.Attribute = attribute
	} else if c, ok := m.contextNodes[id]; ok {
		c.Attribute = attribute
	}
}
