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

import "slices"

// Resolve resolves a reference against the base URI u, following the
// transformation algorithm of RFC 3986, Section 5.2.2. It returns a new
// URI and never modifies either input. Resolution cannot fail: it is
// defined for any two well-formed URI values.
func (u *URI) Resolve(ref *URI) *URI {
	target := &URI{}
	if ref.scheme != "" {
		target.scheme = ref.scheme
		target.copyAuthority(ref)
		target.path = normalizePath(ref.path)
		target.copyQuery(ref)
	} else {
		switch {
		case ref.host != "":
			target.copyAuthority(ref)
			target.path = normalizePath(ref.path)
			target.copyQuery(ref)
		case len(ref.path) == 0:
			target.path = slices.Clone(u.path)
			if ref.query != "" {
				target.copyQuery(ref)
			} else {
				target.copyQuery(u)
			}
			target.copyAuthority(u)
		case ref.pathIsAbsolute():
			target.path = normalizePath(ref.path)
			target.copyQuery(ref)
			target.copyAuthority(u)
		default:
			// Merge: the base path minus its last segment, then the
			// reference's segments.
			merged := slices.Clone(u.path)
			if len(merged) > 1 {
				merged = merged[:len(merged)-1]
			}
			merged = append(merged, ref.path...)
			target.path = normalizePath(merged)
			target.copyQuery(ref)
			target.copyAuthority(u)
		}
		target.scheme = u.scheme
	}
	target.hasFragment = ref.hasFragment
	target.fragment = ref.fragment
	return target
}

// copyAuthority replaces the URI's authority with that of another URI.
func (u *URI) copyAuthority(other *URI) {
	u.userInfo = other.userInfo
	u.host = other.host
	u.hasPort = other.hasPort
	u.port = other.port
}

// copyQuery replaces the URI's query with that of another URI.
func (u *URI) copyQuery(other *URI) {
	u.hasQuery = other.hasQuery
	u.query = other.query
}
