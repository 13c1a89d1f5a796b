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

package xmltok

// Kind identifies the lexical event a Tokenizer has just emitted.
//
// The set is closed and emitted in this order over the lifetime of a
// document: Declaration*, StartDocument, (StartTag, StartAttributes,
// Attribute*, EndAttributes, (Text | nested element)*, EndTag)+, EndDocument.
// Error can occur at any point and is sticky once emitted.
type Kind int

const (
	// Declaration reports one pseudo-attribute of a leading <?xml ...?>
	// declaration. One Declaration token is emitted per attribute; there is
	// no single aggregate "declaration" event.
	Declaration Kind = iota
	// StartDocument is emitted exactly once, after any declaration and
	// before the first StartTag.
	StartDocument
	// StartTag opens an element. Name() reports the element name.
	StartTag
	// StartAttributes brackets the attribute list of the current element,
	// even when that list is empty.
	StartAttributes
	// Attribute reports one name/value pair inside a StartAttributes /
	// EndAttributes bracket.
	Attribute
	// EndAttributes closes the attribute list opened by StartAttributes.
	EndAttributes
	// Text reports a non-empty run of character data (after trim/collapse
	// policy and CDATA merging). Empty runs are never emitted.
	Text
	// EndTag closes the element most recently opened by a StartTag at the
	// same nesting depth.
	EndTag
	// EndDocument is emitted once after the last EndTag and is sticky:
	// every subsequent Next returns EndDocument again.
	EndDocument
	// Error is the sticky terminal state entered on any malformed input,
	// premature EOF, or I/O failure. LastError reports the message.
	Error
)

// String renders a Kind using the names from spec.md §3, mainly for
// logging and test failure messages.
func (k Kind) String() string {
	switch k {
	case Declaration:
		return "Declaration"
	case StartDocument:
		return "StartDocument"
	case StartTag:
		return "StartTag"
	case StartAttributes:
		return "StartAttributes"
	case Attribute:
		return "Attribute"
	case EndAttributes:
		return "EndAttributes"
	case Text:
		return "Text"
	case EndTag:
		return "EndTag"
	case EndDocument:
		return "EndDocument"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}
