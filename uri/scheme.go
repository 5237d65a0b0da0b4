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

import "strings"

// parseScheme extracts the scheme component from the front of a URI string,
// returning the lower-cased scheme and the remainder after the ':'. The
// search for the delimiting colon stops at the first '/', because the
// authority and path elements may contain colons of their own which must
// not be mistaken for the scheme delimiter. An absent colon means the
// string is a relative reference; the scheme is empty and the whole input
// is the remainder.
func parseScheme(s string) (string, string, error) {
	limit := strings.IndexByte(s, '/')
	if limit < 0 {
		limit = len(s)
	}
	colon := strings.IndexByte(s[:limit], ':')
	if colon < 0 {
		return "", s, nil
	}
	scheme := s[:colon]
	if !isValidScheme(scheme) {
		return "", "", &ParseError{Kind: KindInvalidScheme, Part: "scheme", Detail: scheme}
	}
	return strings.ToLower(scheme), s[colon+1:], nil
}

// isValidScheme reports whether s matches the scheme grammar: an alphabetic
// first character followed by alphanumerics, '+', '-', or '.'.
func isValidScheme(s string) bool {
	if s == "" || !alpha.Contains(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !schemeNotFirst.Contains(s[i]) {
			return false
		}
	}
	return true
}
