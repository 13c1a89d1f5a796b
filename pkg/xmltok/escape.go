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

import "strings"

// decodeEscape turns the text found between '&' and ';' (exclusive of both
// delimiters) into the single byte it denotes, per spec.md §4.3.
//
// Grounded on xml__escape_sign in original_source/xml-tokenizer.h. The
// hex-decode path there has a documented operator-precedence bug (spec.md
// §9: "(a-'0') << 4 missing parentheses"); decodeEscape implements the
// evidently intended semantics instead — shift the fully decoded high
// nibble by 4 — rather than carrying the bug forward.
func decodeEscape(body string) (byte, bool) {
	switch body {
	case "amp":
		return '&', true
	case "apos":
		return '\'', true
	case "lt":
		return '<', true
	case "gt":
		return '>', true
	case "quot":
		return '"', true
	}

	if rest, ok := strings.CutPrefix(body, "#x"); ok {
		return decodeHex(rest)
	}
	if rest, ok := strings.CutPrefix(body, "#"); ok {
		return decodeDecimal(rest)
	}
	return 0, false
}

// decodeDecimal handles &#d; / &#dd; / &#ddd; (1-3 decimal digits, i.e. 2-4
// bytes counting the '#', spec.md §4.3). Longer forms are rejected.
func decodeDecimal(digits string) (byte, bool) {
	switch len(digits) {
	case 1:
		d, ok := digitValue(digits[0])
		if !ok {
			return 0, false
		}
		return byte(d), true
	case 2:
		a, ok1 := digitValue(digits[0])
		b, ok2 := digitValue(digits[1])
		if !ok1 || !ok2 {
			return 0, false
		}
		return byte(a*10 + b), true
	case 3:
		a, ok1 := digitValue(digits[0])
		b, ok2 := digitValue(digits[1])
		c, ok3 := digitValue(digits[2])
		if !ok1 || !ok2 || !ok3 {
			return 0, false
		}
		return byte(a*100 + b*10 + c), true
	default:
		return 0, false
	}
}

// decodeHex handles &#xh; / &#xhh; (1-2 hex digits, i.e. 2-3 bytes counting
// the 'x', spec.md §4.3). Longer forms are rejected.
func decodeHex(digits string) (byte, bool) {
	switch len(digits) {
	case 1:
		a, ok := hexValue(digits[0])
		if !ok {
			return 0, false
		}
		return byte(a), true
	case 2:
		a, ok1 := hexValue(digits[0])
		b, ok2 := hexValue(digits[1])
		if !ok1 || !ok2 {
			return 0, false
		}
		return byte(a<<4 + b), true
	default:
		return 0, false
	}
}

func digitValue(c byte) (int, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

func hexValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
