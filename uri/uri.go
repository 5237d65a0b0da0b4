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

// Package uri provides parsing, validation, normalization, comparison, and
// serialization of Uniform Resource Identifiers as defined by RFC 3986.
//
// The central type is URI, a decomposed value holding the scheme, the
// authority (user-info, host, port), the path as a sequence of decoded
// segments, the query, and the fragment. Every component is validated
// against the grammar for its position during parsing, and percent-escapes
// are decoded on the way in and re-applied on the way out.
//
// Key features include:
//   - Strict parsing and validation against RFC 3986, with a closed
//     enumeration of failure kinds.
//   - Reference resolution (Resolve) to compute a target URI from a base
//     and a relative reference, per RFC 3986, Section 5.2.2.
//   - Path normalization (NormalizePath) implementing the dot-segment
//     removal algorithm of Section 5.2.4.
//   - Canonical round-trip serialization and presence-aware equality.
//   - Support for JSON marshalling and unmarshalling.
package uri

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// URI is a decomposed Uniform Resource Identifier or relative reference.
// All fields are owned by the value; accessors and mutators copy, so two
// URI values never share mutable state. The zero value is the empty
// relative reference.
//
// A URI value is safe for concurrent read-only use; concurrent mutation of
// the same value must be synchronized by the caller.
type URI struct {
	scheme      string
	userInfo    string
	host        string
	hasPort     bool
	port        uint16
	path        []string
	hasQuery    bool
	query       string
	hasFragment bool
	fragment    string
}

// Parse parses and validates a URI string, returning the decomposed value.
// Parsing is atomic: on failure only the error is returned, and no
// partially populated value escapes.
func Parse(s string) (*URI, error) {
	u := &URI{}

	scheme, rest, err := parseScheme(s)
	if err != nil {
		return nil, err
	}
	u.scheme = scheme

	// The query and fragment begin at the first '?' or '#'; everything
	// before that is the authority (if any) followed by the path.
	authorityAndPath := rest
	queryAndFragment := ""
	if end := strings.IndexAny(rest, "?#"); end >= 0 {
		authorityAndPath = rest[:end]
		queryAndFragment = rest[end:]
	}

	pathString := authorityAndPath
	if strings.HasPrefix(authorityAndPath, "//") {
		authorityAndPath = authorityAndPath[2:]
		end := strings.IndexByte(authorityAndPath, '/')
		if end < 0 {
			end = len(authorityAndPath)
		}
		a, err := parseAuthority(authorityAndPath[:end])
		if err != nil {
			return nil, err
		}
		u.userInfo = a.userInfo
		u.host = a.host
		u.hasPort = a.hasPort
		u.port = a.port
		pathString = authorityAndPath[end:]
	}

	u.path, err = parsePath(pathString)
	if err != nil {
		return nil, err
	}
	if u.host != "" && len(u.path) == 0 {
		// An authority with no explicit path canonically has the path "/".
		u.path = []string{""}
	}

	// The fragment terminates everything else, so it is split off first.
	queryString := queryAndFragment
	if hash := strings.IndexByte(queryAndFragment, '#'); hash >= 0 {
		fragment, err := decodeElement(queryAndFragment[hash+1:], "fragment", queryOrFragmentNotPctEncoded)
		if err != nil {
			return nil, err
		}
		u.fragment = fragment
		u.hasFragment = true
		queryString = queryAndFragment[:hash]
	}
	if queryString != "" {
		query, err := decodeElement(queryString[1:], "query", queryOrFragmentNotPctEncoded)
		if err != nil {
			return nil, err
		}
		u.query = query
		u.hasQuery = true
	}
	return u, nil
}

// Scheme returns the scheme, lower-cased, or the empty string for a
// relative reference.
func (u *URI) Scheme() string { return u.scheme }

// UserInfo returns the decoded user-info, or the empty string when absent.
// Absent and empty user-info are not distinguished.
func (u *URI) UserInfo() string { return u.userInfo }

// Host returns the decoded host. Registered names are lower-cased; IP
// literals are stored without brackets.
func (u *URI) Host() string { return u.host }

// Port returns the port number and whether one is present. The presence
// flag matters because 0 is a valid port.
func (u *URI) Port() (uint16, bool) { return u.port, u.hasPort }

// Path returns a copy of the decoded path segments. A leading empty
// segment marks an absolute path.
func (u *URI) Path() []string { return slices.Clone(u.path) }

// Query returns the decoded query and whether one is present.
func (u *URI) Query() (string, bool) { return u.query, u.hasQuery }

// Fragment returns the decoded fragment and whether one is present.
func (u *URI) Fragment() (string, bool) { return u.fragment, u.hasFragment }

// IsRelativeReference reports whether the URI has no scheme.
func (u *URI) IsRelativeReference() bool { return u.scheme == "" }

// ContainsRelativePath reports whether the path is not absolute.
func (u *URI) ContainsRelativePath() bool { return !u.pathIsAbsolute() }

// SetScheme replaces the scheme.
func (u *URI) SetScheme(scheme string) { u.scheme = scheme }

// SetUserInfo replaces the user-info.
func (u *URI) SetUserInfo(userInfo string) { u.userInfo = userInfo }

// SetHost replaces the host.
func (u *URI) SetHost(host string) { u.host = host }

// SetPort sets the port number and marks it present.
func (u *URI) SetPort(port uint16) {
	u.port = port
	u.hasPort = true
}

// ClearPort removes the port.
func (u *URI) ClearPort() {
	u.port = 0
	u.hasPort = false
}

// SetPath replaces the path segments with a copy of the given sequence.
func (u *URI) SetPath(segments []string) { u.path = slices.Clone(segments) }

// SetQuery sets the query and marks it present.
func (u *URI) SetQuery(query string) {
	u.query = query
	u.hasQuery = true
}

// ClearQuery removes the query.
func (u *URI) ClearQuery() {
	u.query = ""
	u.hasQuery = false
}

// SetFragment sets the fragment and marks it present.
func (u *URI) SetFragment(fragment string) {
	u.fragment = fragment
	u.hasFragment = true
}

// ClearFragment removes the fragment.
func (u *URI) ClearFragment() {
	u.fragment = ""
	u.hasFragment = false
}

// NormalizePath applies the dot-segment removal algorithm of RFC 3986,
// Section 5.2.4 to the path, in place.
func (u *URI) NormalizePath() {
	u.path = normalizePath(u.path)
}

// Equal reports whether two URIs have identical components, presence flags
// included. No normalization is performed first; callers wanting
// RFC-equivalence must normalize before comparing.
func (u *URI) Equal(other *URI) bool {
	return u.scheme == other.scheme &&
		u.userInfo == other.userInfo &&
		u.host == other.host &&
		u.hasPort == other.hasPort &&
		(!u.hasPort || u.port == other.port) &&
		slices.Equal(u.path, other.path) &&
		u.hasQuery == other.hasQuery &&
		(!u.hasQuery || u.query == other.query) &&
		u.hasFragment == other.hasFragment &&
		(!u.hasFragment || u.fragment == other.fragment)
}

// String returns the canonical serialization of the URI, re-applying
// percent-encoding to every component. A host that validates as an IPv6
// address is bracketed and lower-cased; any other host is encoded as a
// registered name.
func (u *URI) String() string {
	var b strings.Builder
	if u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteByte(':')
	}
	if u.hasAuthority() {
		b.WriteString("//")
		if u.userInfo != "" {
			b.WriteString(encodeElement(u.userInfo, userInfoNotPctEncoded))
			b.WriteByte('@')
		}
		if u.host != "" {
			if ValidateIPv6(u.host) {
				b.WriteByte('[')
				b.WriteString(strings.ToLower(u.host))
				b.WriteByte(']')
			} else {
				b.WriteString(encodeElement(u.host, regNameNotPctEncoded))
			}
		}
		if u.hasPort {
			b.WriteByte(':')
			b.WriteString(strconv.FormatUint(uint64(u.port), 10))
		}
	}
	if u.pathIsAbsolute() && len(u.path) == 1 {
		// Absolute but otherwise empty path.
		b.WriteByte('/')
	}
	for i, segment := range u.path {
		b.WriteString(encodeElement(segment, pcharNotPctEncoded))
		if i+1 < len(u.path) {
			b.WriteByte('/')
		}
	}
	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(encodeElement(u.query, queryNotPctEncodedWithoutPlus))
	}
	if u.hasFragment {
		b.WriteByte('#')
		b.WriteString(encodeElement(u.fragment, queryOrFragmentNotPctEncoded))
	}
	return b.String()
}

// MarshalJSON implements the json.Marshaler interface, encoding the URI as
// its serialized string.
func (u *URI) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a
// JSON string into a URI, performing full validation in the process.
func (u *URI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

// hasAuthority reports whether any authority component is present.
func (u *URI) hasAuthority() bool {
	return u.host != "" || u.userInfo != "" || u.hasPort
}

// pathIsAbsolute reports whether the path begins with the absolute-path
// marker (a leading empty segment).
func (u *URI) pathIsAbsolute() bool {
	return len(u.path) > 0 && u.path[0] == ""
}
