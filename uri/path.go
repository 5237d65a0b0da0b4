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

// parsePath splits a path string into its decoded segments. A leading
// empty segment encodes an absolute path; this is the sole representation
// of the leading '/'. The path "/" is special-cased to a single empty
// segment, meaning "absolute but otherwise empty". A path ending in '/'
// yields a trailing empty segment.
func parsePath(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	if s == "/" {
		return []string{""}, nil
	}
	segments := strings.Split(s, "/")
	for i, segment := range segments {
		decoded, err := decodeElement(segment, "path", pcharNotPctEncoded)
		if err != nil {
			return nil, err
		}
		segments[i] = decoded
	}
	return segments, nil
}

// normalizePath applies the remove_dot_segments algorithm of RFC 3986,
// Section 5.2.4 to a segment sequence, returning the normalized sequence.
// A "." segment is dropped and marks a directory boundary; a ".." segment
// pops the last retained segment when that is legal (never past an absolute
// path's root marker) and marks a boundary; an empty segment is dropped
// when the walk is already at a boundary. If the walk ends at a boundary
// after a non-empty segment, a trailing empty segment records the trailing
// slash.
func normalizePath(segments []string) []string {
	out := make([]string, 0, len(segments))
	atDirectoryLevel := false
	for _, segment := range segments {
		switch segment {
		case ".":
			atDirectoryLevel = true
		case "..":
			if len(out) > 0 && canNavigateUp(out) {
				out = out[:len(out)-1]
			}
			atDirectoryLevel = true
		default:
			if !atDirectoryLevel || segment != "" {
				out = append(out, segment)
			}
			atDirectoryLevel = segment == ""
		}
	}
	if atDirectoryLevel && len(out) > 0 && out[len(out)-1] != "" {
		out = append(out, "")
	}
	return out
}

// canNavigateUp reports whether removing the last segment actually changes
// the path: navigating above the root of an absolute path is not possible.
func canNavigateUp(segments []string) bool {
	isAbsolute := len(segments) > 0 && segments[0] == ""
	return !isAbsolute || len(segments) > 1
}
