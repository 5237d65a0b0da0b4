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

import "fmt"

// Kind identifies the category of a parse failure. It forms a closed
// enumeration so that callers (and tests) can match on the exact failure
// mode via errors.As without string comparison.
type Kind int

const (
	// KindInvalidScheme indicates an empty or grammar-violating scheme token.
	KindInvalidScheme Kind = iota + 1
	// KindInvalidPercentEncoding indicates a '%' not followed by two
	// hexadecimal digits, or an escape truncated at the end of its element.
	KindInvalidPercentEncoding
	// KindInvalidCharacter indicates a character outside the allowed set
	// for the element being parsed.
	KindInvalidCharacter
	// KindInvalidIPv4 indicates a host that claims to be an IPv4 literal
	// but fails validation.
	KindInvalidIPv4
	// KindInvalidIPv6 indicates a bracketed host that fails IPv6 validation.
	KindInvalidIPv6
	// KindInvalidPort indicates a non-numeric port or one outside the
	// 16-bit range.
	KindInvalidPort
	// KindMalformedAuthority indicates that the host parsing state machine
	// ended in a non-accepting state, such as an unterminated IP literal.
	KindMalformedAuthority
)

// String returns a short description of the failure category.
func (k Kind) String() string {
	switch k {
	case KindInvalidScheme:
		return "invalid scheme"
	case KindInvalidPercentEncoding:
		return "invalid percent encoding"
	case KindInvalidCharacter:
		return "invalid character"
	case KindInvalidIPv4:
		return "invalid IPv4 literal"
	case KindInvalidIPv6:
		return "invalid IPv6 literal"
	case KindInvalidPort:
		return "invalid port"
	case KindMalformedAuthority:
		return "malformed authority"
	default:
		return "unknown parse failure"
	}
}

// ParseError is the error type returned by parsing functions in this
// package. Kind is always set; Part, Char, and Detail carry whatever
// context the failing parse step had available.
type ParseError struct {
	// Kind is the category of the failure.
	Kind Kind
	// Part names the URI element being parsed when the failure occurred
	// ("scheme", "user-info", "host", "path", "query", "fragment").
	Part string
	// Char is the offending character, if the failure concerns one.
	Char byte
	// Detail is the offending substring, if the failure concerns one.
	Detail string
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	msg := "URI parse error: " + e.Kind.String()
	if e.Part != "" {
		msg += " in " + e.Part
	}
	if e.Char != 0 {
		msg += fmt.Sprintf(" %q", string(e.Char))
	} else if e.Detail != "" {
		msg += fmt.Sprintf(" %q", e.Detail)
	}
	return msg
}
