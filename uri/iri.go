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
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ParseIRI parses an internationalized identifier by mapping it to URI
// form first: the input is normalized to Unicode Normalization Form C and
// every non-ASCII byte of its UTF-8 encoding is percent-encoded, following
// RFC 3987, Section 3.1. The result is then parsed and validated as a URI.
// Hosts are not mapped through IDNA; an internationalized registered name
// survives as its percent-encoded form.
func ParseIRI(s string) (*URI, error) {
	normalized := norm.NFC.String(s)
	var b strings.Builder
	b.Grow(len(normalized))
	for i := 0; i < len(normalized); i++ {
		c := normalized[i]
		if c < utf8.RuneSelf {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(hexDigit(c >> 4))
			b.WriteByte(hexDigit(c & 0x0F))
		}
	}
	return Parse(b.String())
}
