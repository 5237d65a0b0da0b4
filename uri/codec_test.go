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

//nolint:testpackage // White-box tests for the element codec.
package uri

import (
	"errors"
	"testing"
)

func TestDecodeElement(t *testing.T) {
	testCases := []struct {
		name     string
		element  string
		decoded  string
		wantKind Kind
	}{
		{name: "plain element", element: "abc-123", decoded: "abc-123"},
		{name: "empty element", element: "", decoded: ""},
		{name: "single escape", element: "a%20b", decoded: "a b"},
		{name: "lowercase escape digits", element: "%2f", decoded: "/"},
		{name: "consecutive escapes", element: "%41%42%43", decoded: "ABC"},
		{name: "escape decodes reserved byte", element: "%3F", decoded: "?"},
		{name: "non-hex escape", element: "%zz", wantKind: KindInvalidPercentEncoding},
		{name: "escape cut after percent", element: "abc%", wantKind: KindInvalidPercentEncoding},
		{name: "escape cut after one digit", element: "abc%4", wantKind: KindInvalidPercentEncoding},
		{name: "disallowed character", element: "a b", wantKind: KindInvalidCharacter},
		{name: "disallowed high byte", element: "a\x80b", wantKind: KindInvalidCharacter},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decoded, err := decodeElement(tc.element, "path", pcharNotPctEncoded)
			if tc.wantKind != 0 {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("decodeElement(%q) error = %v, want *ParseError", tc.element, err)
				}
				if parseErr.Kind != tc.wantKind {
					t.Errorf("decodeElement(%q) kind = %v, want %v", tc.element, parseErr.Kind, tc.wantKind)
				}
				if parseErr.Part != "path" {
					t.Errorf("decodeElement(%q) part = %q, want %q", tc.element, parseErr.Part, "path")
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeElement(%q) error = %v", tc.element, err)
			}
			if decoded != tc.decoded {
				t.Errorf("decodeElement(%q) = %q, want %q", tc.element, decoded, tc.decoded)
			}
		})
	}
}

func TestEncodeElement(t *testing.T) {
	testCases := []struct {
		name    string
		element string
		encoded string
	}{
		{name: "all allowed", element: "abc-123", encoded: "abc-123"},
		{name: "space", element: "a b", encoded: "a%20b"},
		{name: "percent itself", element: "50%", encoded: "50%25"},
		{name: "high bytes", element: "\xC3\xA9", encoded: "%C3%A9"},
		{name: "empty", element: "", encoded: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := encodeElement(tc.element, pcharNotPctEncoded); got != tc.encoded {
				t.Errorf("encodeElement(%q) = %q, want %q", tc.element, got, tc.encoded)
			}
		})
	}
}

// Query serialization escapes '+' even though the query grammar allows it
// unescaped on input.
func TestEncodeQueryEscapesPlus(t *testing.T) {
	if got := encodeElement("a+b", queryNotPctEncodedWithoutPlus); got != "a%2Bb" {
		t.Errorf("encodeElement = %q, want %q", got, "a%2Bb")
	}
	if decoded, err := decodeElement("a+b", "query", queryOrFragmentNotPctEncoded); err != nil || decoded != "a+b" {
		t.Errorf("decodeElement = %q, %v, want %q, nil", decoded, err, "a+b")
	}
}

// Encoding an arbitrary byte string and decoding it through the same
// allowed set yields the original string.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	var all []byte
	for c := 0; c < 256; c++ {
		all = append(all, byte(c))
	}
	inputs := []string{
		string(all),
		"plain",
		"with space and %",
		"/path?query#fragment",
		"",
	}
	for _, input := range inputs {
		encoded := encodeElement(input, unreserved)
		decoded, err := decodeElement(encoded, "element", unreserved)
		if err != nil {
			t.Fatalf("decodeElement(%q) error = %v", encoded, err)
		}
		if decoded != input {
			t.Errorf("round trip of %q = %q", input, decoded)
		}
	}
}
