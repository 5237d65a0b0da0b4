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

// ValidateIPv4 reports whether s is a well-formed IPv4 literal: four
// dot-separated all-digit groups, each with a numeric value of at most 255.
// Leading zeros and groups longer than three digits are accepted as long as
// the value fits, which is looser than the strict dotted-quad grammar.
func ValidateIPv4(s string) bool {
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for _, group := range groups {
		if group == "" {
			return false
		}
		value := 0
		for i := 0; i < len(group); i++ {
			c := group[i]
			if !digit.Contains(c) {
				return false
			}
			value = value*10 + int(c-'0')
			if value > 255 {
				return false
			}
		}
	}
	return true
}

// ipv6State enumerates the states of the IPv6 validation state machine.
// Keeping the machine explicit keeps its transition coverage auditable and
// testable in isolation.
type ipv6State int

const (
	// ipv6NoGroupsYet is the initial state, before any group or colon.
	ipv6NoGroupsYet ipv6State = iota
	// ipv6ColonButNoGroupsYet follows a leading ':'; only a second ':' is
	// legal here.
	ipv6ColonButNoGroupsYet
	// ipv6AfterDoubleColon follows a "::" compression.
	ipv6AfterDoubleColon
	// ipv6InGroupNotIPv4 is inside a group that contains a hex letter and
	// therefore cannot start an embedded IPv4 address.
	ipv6InGroupNotIPv4
	// ipv6InGroupCouldBeIPv4 is inside a group seen so far as digits only,
	// which may turn out to start an embedded IPv4 address.
	ipv6InGroupCouldBeIPv4
	// ipv6ColonAfterGroup follows the ':' that terminated a group.
	ipv6ColonAfterGroup
)

// ValidateIPv6 reports whether s is a well-formed IPv6 literal, without
// surrounding brackets. It accepts at most one "::" compression (standing
// for one or more zero groups), groups of one to four hexadecimal digits,
// and a trailing embedded IPv4 address, which counts as two groups. Eight
// groups are required without compression, at most seven with it.
func ValidateIPv6(s string) bool {
	state := ipv6NoGroupsYet
	numGroups := 0
	numDigits := 0
	doubleColon := false
	ipv4Start := 0
	ipv4Found := false

scan:
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch state {
		case ipv6NoGroupsYet:
			switch {
			case c == ':':
				state = ipv6ColonButNoGroupsYet
			case digit.Contains(c):
				ipv4Start = i
				numDigits = 1
				state = ipv6InGroupCouldBeIPv4
			case hexdig.Contains(c):
				numDigits = 1
				state = ipv6InGroupNotIPv4
			default:
				return false
			}

		case ipv6ColonButNoGroupsYet:
			if c != ':' {
				return false
			}
			doubleColon = true
			state = ipv6AfterDoubleColon

		case ipv6AfterDoubleColon:
			switch {
			case digit.Contains(c):
				ipv4Start = i
				numDigits++
				state = ipv6InGroupCouldBeIPv4
			case hexdig.Contains(c):
				numDigits++
				state = ipv6InGroupNotIPv4
			default:
				return false
			}

		case ipv6InGroupNotIPv4:
			switch {
			case c == ':':
				numDigits = 0
				numGroups++
				state = ipv6ColonAfterGroup
			case hexdig.Contains(c):
				numDigits++
				if numDigits > 4 {
					return false
				}
			default:
				return false
			}

		case ipv6InGroupCouldBeIPv4:
			switch {
			case c == ':':
				numDigits = 0
				numGroups++
				state = ipv6ColonAfterGroup
			case c == '.':
				ipv4Found = true
				break scan
			case digit.Contains(c):
				numDigits++
				if numDigits > 4 {
					return false
				}
			case hexdig.Contains(c):
				numDigits++
				if numDigits > 4 {
					return false
				}
				state = ipv6InGroupNotIPv4
			default:
				return false
			}

		case ipv6ColonAfterGroup:
			switch {
			case c == ':':
				if doubleColon {
					return false
				}
				doubleColon = true
				state = ipv6AfterDoubleColon
			case digit.Contains(c):
				ipv4Start = i
				numDigits++
				state = ipv6InGroupCouldBeIPv4
			case hexdig.Contains(c):
				numDigits++
				state = ipv6InGroupNotIPv4
			default:
				return false
			}
		}
	}

	switch state {
	case ipv6InGroupNotIPv4:
		numGroups++
	case ipv6InGroupCouldBeIPv4:
		// The group is counted as part of the embedded IPv4 address when
		// one was found.
		if !ipv4Found {
			numGroups++
		}
	case ipv6ColonButNoGroupsYet, ipv6ColonAfterGroup:
		// Trailing lone colon.
		return false
	}

	if ipv4Found {
		if !ValidateIPv4(s[ipv4Start:]) {
			return false
		}
		numGroups += 2
	}
	if doubleColon {
		return numGroups <= 7
	}
	return numGroups == 8
}
