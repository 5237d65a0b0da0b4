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

// Package charset provides an immutable set type over US-ASCII characters,
// built from single characters, contiguous ranges, and unions of other sets.
// It backs the per-position grammar checks of the URI parser, where each
// component of a URI allows a different set of unescaped characters.
package charset

// Set is an immutable set of US-ASCII characters with constant-time
// membership tests. The zero value is the empty set. Bytes outside the
// ASCII range (0x80 and above) are never members.
type Set struct {
	bits [2]uint64
}

// Of returns a Set containing exactly the given characters.
func Of(chars ...byte) Set {
	var s Set
	for _, c := range chars {
		s.add(c)
	}
	return s
}

// Range returns a Set containing every character from lo through hi,
// inclusive. It returns the empty set if lo is greater than hi.
func Range(lo, hi byte) Set {
	var s Set
	for c := lo; c <= hi; c++ {
		s.add(c)
		if c == 0xFF {
			break
		}
	}
	return s
}

// Union returns a Set containing every character that is a member of at
// least one of the given sets.
func Union(sets ...Set) Set {
	var s Set
	for _, other := range sets {
		s.bits[0] |= other.bits[0]
		s.bits[1] |= other.bits[1]
	}
	return s
}

// With returns the union of s and the given sets, leaving s unchanged.
func (s Set) With(sets ...Set) Set {
	out := s
	for _, other := range sets {
		out.bits[0] |= other.bits[0]
		out.bits[1] |= other.bits[1]
	}
	return out
}

// Contains reports whether c is a member of the set.
func (s Set) Contains(c byte) bool {
	if c >= 0x80 {
		return false
	}
	return s.bits[c>>6]&(1<<(c&0x3F)) != 0
}

func (s *Set) add(c byte) {
	if c >= 0x80 {
		return
	}
	s.bits[c>>6] |= 1 << (c & 0x3F)
}
