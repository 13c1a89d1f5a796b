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

import "strconv"

// The three sticky error messages of spec.md §7, worded exactly as the
// original xml__error_unexpected_end_of_file / xml__error_while_reading_file
// / xml__error_prefix+xml__unexpected_sign constants in
// original_source/xml-tokenizer.h.
const (
	errUnexpectedEOF = "Error: Unexpected end of file."
	errReadPrefix    = "Error: While reading file, code: "
)

func errSyntax(row, col int) string {
	return "Error(" + strconv.Itoa(row) + "," + strconv.Itoa(col) + "): Unexpected sign."
}

func errRead(code int) string {
	return errReadPrefix + strconv.Itoa(code)
}
