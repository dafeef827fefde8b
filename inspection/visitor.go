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
	"fmt"

	"devt.de/krotik/mlang/parser"
	"devt.de/krotik/mlang/scope"
	"devt.de/krotik/mlang/util"
)

/*
Node kind sets for child selection
*/
var (
	kindSetParameterList = map[string]bool{parser.NodeParameterList: true}
	kindSetParameter     = map[string]bool{parser.NodeParameter: true}
	kindSetSectionMember = map[string]bool{parser.NodeSectionMember: true}

	kindSetIdentifierPair = map[string]bool{
		parser.NodeIdentifierPairedExpression: true,
	}
	kindSetGeneralizedPair = map[string]bool{
		parser.NodeGeneralizedIdentifierPairedExpression: true,
	}
)

/*
inspector is the visitor state of a single inspection. It accumulates the
ancestor descriptors, the visible bindings and the position identifier
while the ancestor chain of the caret leaf is walked from the inside out.
*/
type inspector struct {
	position       Position                  // Caret position
	m              *parser.NodeIdMap         // Document map (read-only)
	leaf           parser.XorNode            // Selected caret leaf
	identifier     *parser.ASTNode           // Effective caret identifier (nil if the caret is not on a name)
	recursive      bool                      // Flag if the caret identifier is reached through @
	result         *Inspected                // Accumulated result
	assignmentKeys map[uint64]parser.XorNode // Binding value by binding name leaf id
	previous       parser.XorNode            // Previously visited (deeper) node on the chain
	trail          []parser.XorNode          // All visited nodes
}

/*
newInspector creates a new inspector for a given caret leaf.
*/
func newInspector(pos Position, m *parser.NodeIdMap, leaf parser.XorNode) *inspector {

	insp := &inspector{pos, m, leaf, nil, false,
		&Inspected{nil, scope.NewBindings(), nil},
		make(map[uint64]parser.XorNode), parser.XorNode{}, nil}

	insp.resolveCaretIdentifier()

	return insp
}

/*
resolveCaretIdentifier determines the effective identifier at the caret.
A caret on the @ constant of an identifier expression counts as a caret on
the referenced name.
*/
func (i *inspector) resolveCaretIdentifier() {

	ast := i.leaf.Ast()
	if ast == nil || ast.Token == nil {
		return
	}

	switch ast.Name {

	case parser.NodeIdentifier, parser.NodeGeneralizedIdentifier:
		i.identifier = ast

	case parser.NodeConstant:
		if ast.Token.ID != parser.TokenAT {
			return
		}

	default:
		return
	}

	// Look for an @ constant and the name within the enclosing identifier
	// expression

	parent, ok := i.m.MaybeParentXorNode(ast.ID)
	if !ok || parent.Kind() != parser.NodeIdentifierExpression {
		return
	}

	for _, cid := range i.m.ChildIds(parent.ID()) {

		child, ok := i.m.MaybeAstNode(cid)
		if !ok || child.Token == nil {
			continue
		}

		if child.Name == parser.NodeConstant && child.Token.ID == parser.TokenAT {
			i.recursive = true
		}

		if i.identifier == nil && child.Name == parser.NodeIdentifier {
			i.identifier = child
		}
	}
}

// Visitor
// =======

/*
visit processes a single node of the ancestor chain.
*/
func (i *inspector) visit(x parser.XorNode) error {

	if x.IsZero() {
		return util.NewInspectionError(i.m.Source(), util.ErrInvalidState,
			"Traversal produced an empty node handle", x)
	}

	i.addDescriptor(x)

	switch x.Kind() {

	case parser.NodeEachExpression:

		// The implicit parameter _ is bound to the each expression itself

		i.addBinding("_", x)

	case parser.NodeFunctionExpression:
		i.inspectFunctionExpression(x)

	case parser.NodeLetExpression:
		i.inspectLetExpression(x)

	case parser.NodeRecordExpression, parser.NodeRecordLiteral:
		i.inspectRecord(x)

	case parser.NodeSection:
		i.inspectSection(x)

	case parser.NodeIdentifierPairedExpression,
		parser.NodeGeneralizedIdentifierPairedExpression:
		i.inspectPairedExpression(x)
	}

	i.previous = x
	i.trail = append(i.trail, x)

	return nil
}

/*
finalize resolves a caret which sits on the name leaf of a binding through
the recorded assignment keys and classifies an unresolved caret identifier
as undefined.
*/
func (i *inspector) finalize() {

	if i.identifier == nil || i.result.PositionIdentifier != nil {
		return
	}

	if def, ok := i.assignmentKeys[i.identifier.ID]; ok {

		// The caret sits on the name of a binding - the binding itself is
		// the definition and enters the scope

		i.result.Scope.Add(i.identifier.Token.Val, def)
		i.result.PositionIdentifier = &PositionIdentifier{i.identifier, def}

		return
	}

	i.result.PositionIdentifier = &PositionIdentifier{i.identifier, parser.XorNode{}}
}

/*
addDescriptor appends the descriptor for a visited node.
*/
func (i *inspector) addDescriptor(x parser.XorNode) {

	parent, ok := i.m.MaybeParentXorNode(x.ID())

	parentKind := ""
	if ok {
		parentKind = parent.Kind()
	}

	i.result.Nodes = append(i.result.Nodes, AncestorDescriptor{
		x, parentKind, x.Attribute(), i.describeRole(x, parent, ok)})
}

/*
addBinding inserts a binding into the scope. Bindings of inner constructs
are inserted first and shadow outer bindings of the same name. The first
inserted binding which matches the caret identifier resolves it.
*/
func (i *inspector) addBinding(name string, node parser.XorNode) {

	if !i.result.Scope.Add(name, node) {
		return
	}

	if i.result.PositionIdentifier == nil && i.identifier != nil &&
		i.identifier.Token != nil && i.identifier.Token.Val == name {

		i.result.PositionIdentifier = &PositionIdentifier{i.identifier, node}
	}
}

// Scope contributions
// ===================

/*
inspectFunctionExpression injects the formal parameters of a function
expression.
*/
func (i *inspector) inspectFunctionExpression(x parser.XorNode) {

	for _, plist := range i.m.ChildIdsOfKind(x.ID(), kindSetParameterList) {

		for _, pid := range i.m.ChildIdsOfKind(plist, kindSetParameter) {

			name, ok := i.maybeNameLeaf(pid)
			if !ok {
				continue
			}

			if pnode, ok := i.m.MaybeXorNode(pid); ok {
				i.addBinding(name.Token.Val, pnode)
			}
		}
	}
}

/*
inspectLetExpression injects the bindings of a let expression which are
visible at the caret. Inside the body all bindings are visible - inside
the value of a binding only the textually preceding bindings are visible.
*/
func (i *inspector) inspectLetExpression(x parser.XorNode) {

	pairs := i.m.ChildIdsOfKind(x.ID(), kindSetIdentifierPair)

	visible := len(pairs)

	if !i.previous.IsZero() {
		for idx, pid := range pairs {
			if pid == i.previous.ID() {
				visible = idx
				break
			}
		}
	}

	for idx, pid := range pairs {
		i.registerPair(pid, idx < visible)
	}
}

/*
inspectRecord injects all field names of a record. Record fields may refer
to each other regardless of their order.
*/
func (i *inspector) inspectRecord(x parser.XorNode) {

	for _, pid := range i.m.ChildIdsOfKind(x.ID(), kindSetGeneralizedPair) {
		i.registerPair(pid, true)
	}
}

/*
inspectSection injects all member names of a section document.
*/
func (i *inspector) inspectSection(x parser.XorNode) {

	for _, mid := range i.m.ChildIdsOfKind(x.ID(), kindSetSectionMember) {

		for _, pid := range i.m.ChildIdsOfKind(mid, kindSetIdentifierPair) {
			i.registerPair(pid, true)
		}
	}
}

/*
inspectPairedExpression records the assignment key of a binding pair on the
ancestor chain. If the caret identifier is reached through @ the name of
the pair is injected - @ is the only way to refer to the binding which is
currently being defined.
*/
func (i *inspector) inspectPairedExpression(x parser.XorNode) {

	name, key, value, ok := i.maybePairParts(x.ID())
	if !ok {
		return
	}

	i.assignmentKeys[key.ID] = value

	if i.recursive {
		i.addBinding(name, value)
	}
}

/*
registerPair records the assignment key of a binding pair and injects its
binding if it is visible. Pairs which miss their name or value (open
parser contexts) are skipped.
*/
func (i *inspector) registerPair(pid uint64, inject bool) {

	name, key, value, ok := i.maybePairParts(pid)
	if !ok {
		return
	}

	i.assignmentKeys[key.ID] = value

	if inject {
		i.addBinding(name, value)
	}
}

// Node access helpers
// ===================

/*
maybeNameLeaf returns the first name leaf under a given node.
*/
func (i *inspector) maybeNameLeaf(id uint64) (*parser.ASTNode, bool) {

	for _, cid := range i.m.ChildIds(id) {

		ast, ok := i.m.MaybeAstNode(cid)
		if !ok || ast.Token == nil {
			continue
		}

		if ast.Name == parser.NodeIdentifier || ast.Name == parser.NodeGeneralizedIdentifier {
			return ast, true
		}
	}

	return nil, false
}

/*
maybePairParts returns the name text, the name leaf and the value node of
a binding pair. Returns false if either part is missing - a pair which is
still an open parser context may miss its value.
*/
func (i *inspector) maybePairParts(pid uint64) (string, *parser.ASTNode, parser.XorNode, bool) {

	key, ok := i.maybeNameLeaf(pid)
	if !ok || key.Token == nil {
		return "", nil, parser.XorNode{}, false
	}

	children := i.m.ChildIds(pid)

	for idx := len(children) - 1; idx >= 0; idx-- {
		cid := children[idx]

		if cid == key.ID {
			break
		}

		x, ok := i.m.MaybeXorNode(cid)
		if !ok || x.Kind() == parser.NodeConstant {
			continue
		}

		return key.Token.Val, key, x, true
	}

	return "", nil, parser.XorNode{}, false
}

// Role description
// ================

/*
describeRole produces a descriptive role of a node within its parent for
consumers which reason about the autocompletion context.
*/
func (i *inspector) describeRole(x parser.XorNode, parent parser.XorNode, hasParent bool) string {

	if !hasParent {
		return "document root"
	}

	isConstant := x.Kind() == parser.NodeConstant

	switch parent.Kind() {

	case parser.NodeLetExpression:
		if isConstant {
			return "let syntax"
		}
		if name, _, _, ok := i.maybePairParts(x.ID()); ok {
			return fmt.Sprintf("let binding %v", name)
		}
		return "let body"

	case parser.NodeFunctionExpression:
		if x.Kind() == parser.NodeParameterList {
			return "function parameters"
		}
		if isConstant {
			return "function syntax"
		}
		return "function body"

	case parser.NodeParameterList:
		if isConstant {
			return "parameter syntax"
		}
		return "function parameter"

	case parser.NodeParameter:
		return "parameter name"

	case parser.NodeEachExpression:
		if isConstant {
			return "each keyword"
		}
		return "each body"

	case parser.NodeIdentifierExpression:
		return "identifier reference"

	case parser.NodeIdentifierPairedExpression,
		parser.NodeGeneralizedIdentifierPairedExpression:
		if isConstant {
			return "binding syntax"
		}
		if x.Attribute() == 0 {
			return "binding name"
		}
		if name, _, _, ok := i.maybePairParts(parent.ID()); ok {
			return fmt.Sprintf("binding value of %v", name)
		}
		return "binding value"

	case parser.NodeRecordExpression, parser.NodeRecordLiteral:
		if isConstant {
			return "record syntax"
		}
		if name, _, _, ok := i.maybePairParts(x.ID()); ok {
			return fmt.Sprintf("record field %v", name)
		}
		return "record field"

	case parser.NodeListExpression:
		if isConstant {
			return "list syntax"
		}
		return "list item"

	case parser.NodeSection:
		if x.Kind() == parser.NodeSectionMember {
			return "section member"
		}
		return "section syntax"

	case parser.NodeSectionMember:
		if isConstant {
			return "member syntax"
		}
		return "member binding"

	case parser.NodeInvokeExpression:
		if x.Attribute() == 0 {
			return "invocation target"
		}
		if isConstant {
			return "invocation syntax"
		}
		return fmt.Sprintf("invocation argument %v", i.argumentIndex(parent, x))

	case parser.NodeIfExpression:
		if isConstant {
			return "if syntax"
		}
		switch x.Attribute() {
		case 1:
			return "if condition"
		case 3:
			return "then branch"
		}
		return "else branch"
	}

	return fmt.Sprintf("%v child %v", parent.Kind(), x.Attribute())
}

/*
argumentIndex returns the zero based index of an invocation argument.
*/
func (i *inspector) argumentIndex(parent parser.XorNode, x parser.XorNode) int {
	idx := 0

	for _, cid := range i.m.ChildIds(parent.ID()) {

		if cid == x.ID() {
			break
		}

		c, ok := i.m.MaybeXorNode(cid)
		if !ok || c.Kind() == parser.NodeConstant || c.Attribute() == 0 {
			continue
		}

		idx++
	}

	return idx
}
