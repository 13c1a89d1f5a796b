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

import (
	"strings"
	"testing"
)

// event is a flattened (kind, name, value, text) tuple, used to describe an
// expected token sequence without pulling in a generic diff library for
// straightforward equality checks.
type event struct {
	kind  Kind
	name  string
	value string
	text  string
}

func collect(t *testing.T, tok *Tokenizer, limit int) []event {
	t.Helper()
	var got []event
	for i := 0; i < limit; i++ {
		k := tok.Next()
		e := event{kind: k}
		if n, ok := tok.Name(); ok {
			e.name = n
		}
		if v, ok := tok.Value(); ok {
			e.value = v
		}
		if x, ok := tok.Text(); ok {
			e.text = x
		}
		got = append(got, e)
		if k == EndDocument || k == Error {
			break
		}
	}
	return got
}

func assertEvents(t *testing.T, got, want []event) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("event count: got %d want %d\ngot:  %#v\nwant: %#v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: got %#v want %#v", i, got[i], want[i])
		}
	}
}

func newTok(input string) *Tokenizer {
	return New(NewReaderSource(strings.NewReader(input)))
}

func TestTokenizer_S1_DeclarationAndSelfClosingRoot(t *testing.T) {
	tok := newTok(`<?xml version="1.0"?><r/>`)
	got := collect(t, tok, 20)
	want := []event{
		{kind: Declaration, name: "version", value: "1.0"},
		{kind: StartDocument},
		{kind: StartTag, name: "r"},
		{kind: StartAttributes},
		{kind: EndAttributes},
		{kind: EndTag, name: "r"},
		{kind: EndDocument},
	}
	assertEvents(t, got, want)
}

func TestTokenizer_S2_TextCollapseAndTrim(t *testing.T) {
	tok := newTok(`<a>hello   world</a>`)
	got := collect(t, tok, 20)
	want := []event{
		{kind: StartDocument},
		{kind: StartTag, name: "a"},
		{kind: StartAttributes},
		{kind: EndAttributes},
		{kind: Text, text: "hello world"},
		{kind: EndTag, name: "a"},
		{kind: EndDocument},
	}
	assertEvents(t, got, want)
}

func TestTokenizer_S3_XMLSpacePreserveSuppressesTrimAndCollapse(t *testing.T) {
	tok := newTok(`<a xml:space="preserve">  x  </a>`)
	got := collect(t, tok, 20)
	want := []event{
		{kind: StartDocument},
		{kind: StartTag, name: "a"},
		{kind: StartAttributes},
		{kind: EndAttributes},
		{kind: Text, text: "  x  "},
		{kind: EndTag, name: "a"},
		{kind: EndDocument},
	}
	assertEvents(t, got, want)
}

func TestTokenizer_S4_CDATAMergesIntoSurroundingText(t *testing.T) {
	tok := newTok(`<a>USA <![CDATA[(USA)]]></a>`)
	got := collect(t, tok, 20)
	want := []event{
		{kind: StartDocument},
		{kind: StartTag, name: "a"},
		{kind: StartAttributes},
		{kind: EndAttributes},
		{kind: Text, text: "USA (USA)"},
		{kind: EndTag, name: "a"},
		{kind: EndDocument},
	}
	assertEvents(t, got, want)
}

func TestTokenizer_S5_ValuelessAndSingleQuotedAttributes(t *testing.T) {
	tok := newTok(`<a b='1' c></a>`)
	got := collect(t, tok, 20)
	want := []event{
		{kind: StartDocument},
		{kind: StartTag, name: "a"},
		{kind: StartAttributes},
		{kind: Attribute, name: "b", value: "1"},
		{kind: Attribute, name: "c", value: "1"},
		{kind: EndAttributes},
		{kind: EndTag, name: "a"},
		{kind: EndDocument},
	}
	assertEvents(t, got, want)
}

func TestTokenizer_S6_CharacterReferences(t *testing.T) {
	tok := newTok(`<a>&amp;&lt;&gt;&#65;&#x42;</a>`)
	got := collect(t, tok, 20)
	want := []event{
		{kind: StartDocument},
		{kind: StartTag, name: "a"},
		{kind: StartAttributes},
		{kind: EndAttributes},
		{kind: Text, text: "&<>AB"},
		{kind: EndTag, name: "a"},
		{kind: EndDocument},
	}
	assertEvents(t, got, want)
}

func TestTokenizer_S7_TruncatedInputEntersStickyError(t *testing.T) {
	tok := newTok(`<a`)
	// The first token out of document() is always StartDocument
	// (tokenizer.go's document, after any declaration); the truncated tag
	// only fails once parseElement tries to read past it, on a later call.
	var k Kind
	for i := 0; i < 10; i++ {
		k = tok.Next()
		if k == Error {
			break
		}
	}
	if k != Error {
		t.Fatalf("expected Error, got %s", k)
	}
	msg, ok := tok.LastError()
	if !ok || msg != "Error: Unexpected end of file." {
		t.Fatalf("unexpected error message: %q (ok=%v)", msg, ok)
	}
	// Error is sticky: calling Next again must not advance or change state.
	for i := 0; i < 3; i++ {
		if k2 := tok.Next(); k2 != Error {
			t.Fatalf("Error should be sticky, got %s on repeat %d", k2, i)
		}
	}
}

func TestTokenizer_NestedElementsEachGetOwnTextRun(t *testing.T) {
	tok := newTok(`<a>x<b>y</b>z</a>`)
	got := collect(t, tok, 30)
	want := []event{
		{kind: StartDocument},
		{kind: StartTag, name: "a"},
		{kind: StartAttributes},
		{kind: EndAttributes},
		{kind: Text, text: "x"},
		{kind: StartTag, name: "b"},
		{kind: StartAttributes},
		{kind: EndAttributes},
		{kind: Text, text: "y"},
		{kind: EndTag, name: "b"},
		{kind: Text, text: "z"},
		{kind: EndTag, name: "a"},
		{kind: EndDocument},
	}
	assertEvents(t, got, want)
}

func TestTokenizer_CommentsAndDoctypeAreSkippedInProlog(t *testing.T) {
	tok := newTok("<!DOCTYPE r [ <!ELEMENT r EMPTY> ]>\n<!-- hi -->\n<r/>")
	got := collect(t, tok, 20)
	want := []event{
		{kind: StartDocument},
		{kind: StartTag, name: "r"},
		{kind: StartAttributes},
		{kind: EndAttributes},
		{kind: EndTag, name: "r"},
		{kind: EndDocument},
	}
	assertEvents(t, got, want)
}

func TestTokenizer_CommentInsideContentIsSkippedWithoutFlush(t *testing.T) {
	tok := newTok(`<a>x<!-- c -->y</a>`)
	got := collect(t, tok, 20)
	want := []event{
		{kind: StartDocument},
		{kind: StartTag, name: "a"},
		{kind: StartAttributes},
		{kind: EndAttributes},
		{kind: Text, text: "xy"},
		{kind: EndTag, name: "a"},
		{kind: EndDocument},
	}
	assertEvents(t, got, want)
}

func TestTokenizer_LeadingDigitNameIsAccepted(t *testing.T) {
	// Open Question #1 (SPEC_FULL.md): a name may start with a decimal
	// digit, matching the original C source's xml__isalnum-based check.
	tok := newTok(`<1b/>`)
	got := collect(t, tok, 20)
	want := []event{
		{kind: StartDocument},
		{kind: StartTag, name: "1b"},
		{kind: StartAttributes},
		{kind: EndAttributes},
		{kind: EndTag, name: "1b"},
		{kind: EndDocument},
	}
	assertEvents(t, got, want)
}

func TestTokenizer_MalformedTagReportsSyntaxError(t *testing.T) {
	tok := newTok("<a>\n<#bad/></a>")
	// Skip StartDocument/StartTag/StartAttributes/EndAttributes for <a>,
	// reach the malformed nested name.
	for i := 0; i < 4; i++ {
		tok.Next()
	}
	k := tok.Next()
	if k != Error {
		t.Fatalf("expected Error, got %s", k)
	}
	msg, ok := tok.LastError()
	if !ok || !strings.HasPrefix(msg, "Error(") {
		t.Fatalf("expected a row/column syntax error message, got %q", msg)
	}
}

func TestTokenizer_SetTrimFalsePreservesWhitespace(t *testing.T) {
	tok := newTok(`<a>  x  </a>`)
	// Collapse stays on, so each double space coalesces to one; with trim
	// off, the leading and trailing space survive.
	tok.SetTrim(false)
	got := collect(t, tok, 20)
	want := []event{
		{kind: StartDocument},
		{kind: StartTag, name: "a"},
		{kind: StartAttributes},
		{kind: EndAttributes},
		{kind: Text, text: " x "},
		{kind: EndTag, name: "a"},
		{kind: EndDocument},
	}
	assertEvents(t, got, want)
}

func TestTokenizer_SetCollapseFalseKeepsRunsOfWhitespace(t *testing.T) {
	tok := newTok(`<a>x   y</a>`)
	tok.SetCollapse(false)
	got := collect(t, tok, 20)
	want := []event{
		{kind: StartDocument},
		{kind: StartTag, name: "a"},
		{kind: StartAttributes},
		{kind: EndAttributes},
		{kind: Text, text: "x   y"},
		{kind: EndTag, name: "a"},
		{kind: EndDocument},
	}
	assertEvents(t, got, want)
}

func TestTokenizer_BOMIsSkipped(t *testing.T) {
	input := string([]byte{0xEF, 0xBB, 0xBF}) + "<r/>"
	tok := newTok(input)
	got := collect(t, tok, 20)
	want := []event{
		{kind: StartDocument},
		{kind: StartTag, name: "r"},
		{kind: StartAttributes},
		{kind: EndAttributes},
		{kind: EndTag, name: "r"},
		{kind: EndDocument},
	}
	assertEvents(t, got, want)
}

// Resource exhaustion (WithMaxStackBytes exceeded, or an xml:space nesting
// overflow) crashes the process by design (spec.md §7): the panic is raised
// on the tokenizer's internal worker goroutine and deliberately left
// unrecovered there, so it cannot be caught by a recover() in the calling
// goroutine. That also makes it untestable as an ordinary table case here;
// see DESIGN.md for the reasoning.
