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

//nolint:testpackage // White-box tests for the scheme parser.
package uri

import (
	"errors"
	"testing"
)

func TestParseScheme(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		scheme  string
		rest    string
		wantErr bool
	}{
		{name: "http", input: "http://example.com", scheme: "http", rest: "//example.com"},
		{name: "lower-cased on storage", input: "HTTP://example.com", scheme: "http", rest: "//example.com"},
		{name: "digits and marks after first", input: "x1+2-3.4:rest", scheme: "x1+2-3.4", rest: "rest"},
		{name: "urn", input: "urn:oasis:names", scheme: "urn", rest: "oasis:names"},
		{name: "no colon means relative", input: "foo/bar", scheme: "", rest: "foo/bar"},
		{name: "empty input", input: "", scheme: "", rest: ""},
		{name: "colon after slash is not a scheme", input: "/a:b", scheme: "", rest: "/a:b"},
		{name: "network path reference", input: "//host:80/x", scheme: "", rest: "//host:80/x"},
		{name: "empty scheme", input: ":rest", wantErr: true},
		{name: "leading digit", input: "1http:rest", wantErr: true},
		{name: "illegal character", input: "ht~tp:rest", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scheme, rest, err := parseScheme(tc.input)
			if tc.wantErr {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) || parseErr.Kind != KindInvalidScheme {
					t.Fatalf("parseScheme(%q) error = %v, want KindInvalidScheme", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseScheme(%q) error = %v", tc.input, err)
			}
			if scheme != tc.scheme || rest != tc.rest {
				t.Errorf("parseScheme(%q) = %q, %q, want %q, %q", tc.input, scheme, rest, tc.scheme, tc.rest)
			}
		})
	}
}
