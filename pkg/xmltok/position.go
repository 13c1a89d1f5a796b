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

// position tracks a 1-based (row, col) cursor over a byte stream.
//
// Row advances on '\n'; column resets to 1 on '\n' and otherwise increments
// by one per byte read. Nothing else (in particular, '\r') advances row.
type position struct {
	row, col int
}

func newPosition() position {
	return position{row: 1, col: 1}
}

// advance updates the cursor for one consumed byte.
func (p *position) advance(b byte) {
	if b == '\n' {
		p.row++
		p.col = 1
		return
	}
	p.col++
}

// reset returns the column to 1 without touching the row. Used after a
// leading BOM is skipped, so the first real character still reports column 1.
//
// This only fires on the BOM path (spec.md §4.1 scopes it there); the C
// original resets col unconditionally after the first byte of any document
// (xml-tokenizer.h:393), BOM or not, which is why a row-1 column reported
// here can be one higher than the original's for a BOM-less document.
func (p *position) resetColumn() {
	p.col = 1
}
