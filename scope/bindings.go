/*
 * MLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package scope contains the static binding model for MLang inspections.

A Bindings object maps identifier text which is visible at some point of a
document to the node which binds it. Entries keep their insertion order and
an existing entry is never overwritten - bindings from inner constructs are
added first and shadow outer bindings of the same name.
*/
package scope

import (
	"bytes"
	"fmt"
	"sort"

	"devt.de/krotik/mlang/parser"
)

/*
Bindings models the set of identifier bindings visible at one point of a
document.
*/
type Bindings struct {
	names   []string                  // Names in insertion order
	storage map[string]parser.XorNode // Binding node by name
}

/*
NewBindings creates a new empty binding set.
*/
func NewBindings() *Bindings {
	return &Bindings{nil, make(map[string]parser.XorNode)}
}

/*
Add inserts a new binding. A name which is already present is kept - the
first insertion wins. Returns if the binding was inserted.
*/
func (b *Bindings) Add(name string, node parser.XorNode) bool {

	if _, ok := b.storage[name]; ok {
		return false
	}

	b.names = append(b.names, name)
	b.storage[name] = node

	return true
}

/*
Get returns the binding node for a given name.
*/
func (b *Bindings) Get(name string) (parser.XorNode, bool) {
	node, ok := b.storage[name]
	return node, ok
}

/*
Has checks if a given name is bound.
*/
func (b *Bindings) Has(name string) bool {
	_, ok := b.storage[name]
	return ok
}

/*
Len returns the number of bindings.
*/
func (b *Bindings) Len() int {
	return len(b.names)
}

/*
Names returns all bound names in insertion order.
*/
func (b *Bindings) Names() []string {
	ret := make([]string, len(b.names))
	copy(ret, b.names)
	return ret
}

/*
SortedNames returns all bound names in lexical order.
*/
func (b *Bindings) SortedNames() []string {
	ret := b.Names()
	sort.Strings(ret)
	return ret
}

/*
Copy returns a copy of this binding set.
*/
func (b *Bindings) Copy() *Bindings {
	ret := NewBindings()

	for _, name := range b.names {
		ret.Add(name, b.storage[name])
	}

	return ret
}

/*
Equals checks if this binding set equals another binding set. Returns also
a message describing what is the found difference.
*/
func (b *Bindings) Equals(other *Bindings) (bool, string) {

	if len(b.names) != len(other.names) {
		return false, fmt.Sprintf("Number of bindings is different %v vs %v\n%v\nvs\n%v",
			len(b.names), len(other.names), b, other)
	}

	for _, name := range b.names {
		node, ok := b.storage[name]
		onode, ook := other.storage[name]

		if !ook {
			return false, fmt.Sprintf("Binding %v is missing\n%v\nvs\n%v", name, b, other)
		}

		if node.ID() != onode.ID() || node.Kind() != onode.Kind() {
			return false, fmt.Sprintf("Binding %v is different %v vs %v", name, node, onode)
		}
	}

	return true, ""
}

/*
String returns a string representation of this binding set.
*/
func (b *Bindings) String() string {
	var buf bytes.Buffer

	buf.WriteString("bindings {\n")

	for _, name := range b.SortedNames() {
		buf.WriteString(fmt.Sprintf("    %s : %v\n", name, b.storage[name]))
	}

	buf.WriteString("}")

	return buf.String()
}

/*
ToJSONObject returns this binding set as a JSON object.
*/
func (b *Bindings) ToJSONObject() map[string]interface{} {
	ret := make(map[string]interface{})

	for name, node := range b.storage {
		ret[name] = map[string]interface{}{
			"id":   node.ID(),
			"kind": node.Kind(),
		}
	}

	return ret
}
