// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package xmldom builds an in-memory tree over a pkg/xmltok token stream.
//
// It is a demonstration client, not part of the tokenizer's core (spec.md
// §1 lists "Higher-level DOM construction" as an external collaborator).
// Grounded on original_source/example/xml_dom.hpp, the original library's
// C++ recursive-descent DOM layer: xml_dom::element_t there builds one
// element by looping xml_next_token until it sees the matching end tag,
// recursing into child elements along the way. Build below follows the same
// recursion shape, adapted to Go's explicit-error idiom instead of C++
// exceptions.
package xmldom

import "github.com/google/uuid"

// Attribute is a name/value pair, either a declaration pseudo-attribute or
// an element attribute.
type Attribute struct {
	Name  string
	Value string
}

// Element is one node of the built tree. Unlike xml_dom::element_t, which
// only keeps the most recently seen Text() (later text silently overwrites
// earlier), Element concatenates every Text token encountered directly
// inside it, because pkg/xmltok (Open Question #6 in SPEC_FULL.md) flushes a
// separate Text token at every markup boundary rather than merging text
// around a nested sibling.
type Element struct {
	// ID is a stable per-build identity, independent of structural
	// equality, so that two DOM builds of the same document are diffable by
	// identity as well as by structure.
	ID         uuid.UUID
	Name       string
	Attributes []Attribute
	Text       string
	Children   []*Element
}

// Attr looks up an attribute by name.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// FirstChild returns the first direct child element with the given name,
// grounded on xml_dom::element_t::get_first_child.
func (e *Element) FirstChild(name string) (*Element, bool) {
	for _, c := range e.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Document is the result of a successful Build: the declaration
// pseudo-attributes of a leading <?xml ...?>, if any, plus the single root
// element.
type Document struct {
	ID           uuid.UUID
	Declarations []Attribute
	Root         *Element
}

// Declaration looks up a declaration pseudo-attribute by name, grounded on
// xml_dom::has_declaration / get_declaration.
func (d *Document) Declaration(name string) (string, bool) {
	for _, decl := range d.Declarations {
		if decl.Name == name {
			return decl.Value, true
		}
	}
	return "", false
}

// countElements and countAttributes walk the tree for the one-line
// per-document summary Build logs (see options.logger in builder.go).
func countElements(e *Element) int {
	if e == nil {
		return 0
	}
	n := 1
	for _, c := range e.Children {
		n += countElements(c)
	}
	return n
}

func countAttributes(e *Element) int {
	if e == nil {
		return 0
	}
	n := len(e.Attributes)
	for _, c := range e.Children {
		n += countAttributes(c)
	}
	return n
}
