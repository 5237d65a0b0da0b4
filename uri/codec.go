/*
Copyright 2025 Triton Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import (
	"strings"

	"github.com/jplu/triton/charset"
	"github.com/jplu/triton/percent"
)

// decodeElement checks and decodes a single URI element: a sequence of
// characters that may be percent-encoded and, where not, must belong to the
// allowed set for that element's grammar position. It returns the decoded
// element, never mutating its input; part names the element for error
// reporting.
func decodeElement(s, part string, allowed charset.Set) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	var dec percent.Decoder
	decoding := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case decoding:
			if !dec.Next(c) {
				return "", &ParseError{Kind: KindInvalidPercentEncoding, Part: part, Char: c}
			}
			if dec.Done() {
				b.WriteByte(dec.Decoded())
				decoding = false
			}
		case c == '%':
			dec.Reset()
			decoding = true
		default:
			if !allowed.Contains(c) {
				return "", &ParseError{Kind: KindInvalidCharacter, Part: part, Char: c}
			}
			b.WriteByte(c)
		}
	}
	if decoding {
		// The element ended in the middle of an escape sequence.
		return "", &ParseError{Kind: KindInvalidPercentEncoding, Part: part, Detail: s}
	}
	return b.String(), nil
}

// encodeElement percent-encodes every byte of a URI element that is not in
// the allowed set. Encoding never fails.
func encodeElement(s string, allowed charset.Set) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if allowed.Contains(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(hexDigit(c >> 4))
			b.WriteByte(hexDigit(c & 0x0F))
		}
	}
	return b.String()
}

// hexDigit returns the uppercase hexadecimal digit for a value below 16.
func hexDigit(v byte) byte {
	if v < 10 {
		return '0' + v
	}
	return 'A' + v - 10
}
