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
	"strconv"
	"strings"

	"github.com/jplu/triton/percent"
)

// authority holds the decoded components of a URI authority.
type authority struct {
	userInfo string
	host     string
	hasPort  bool
	port     uint16
}

// hostParsingState enumerates the states of the state machine that splits
// the host and port out of an authority string and validates each against
// its grammar.
type hostParsingState int

const (
	// hostFirstCharacter classifies the first character: '[' opens an IP
	// literal, anything else starts a registered name.
	hostFirstCharacter hostParsingState = iota
	// hostNotIPLiteral accumulates a registered name, decoding
	// percent-escapes inline.
	hostNotIPLiteral
	// hostPercentEncoded is inside a percent escape of a registered name.
	hostPercentEncoded
	// hostIPLiteral classifies the character after '[': 'v' opens an
	// IPvFuture literal, anything else an IPv6 address.
	hostIPLiteral
	// hostIPv6Address accumulates raw characters up to ']', which are then
	// validated as an IPv6 address.
	hostIPv6Address
	// hostIPvFutureNumber accumulates the version part of an IPvFuture
	// literal, up to the '.'.
	hostIPvFutureNumber
	// hostIPvFutureBody accumulates the address part of an IPvFuture
	// literal, up to ']'.
	hostIPvFutureBody
	// hostGarbageCheck follows a closing ']'; only a port delimiter may
	// appear here.
	hostGarbageCheck
	// hostPort accumulates the port characters after ':'.
	hostPort
)

// hostMachine is the host-and-port parsing state machine. The two
// classification states (hostFirstCharacter and hostIPLiteral) re-dispatch
// the same input character under the state they select, so every character
// is processed by exactly one accumulating state.
type hostMachine struct {
	state     hostParsingState
	host      strings.Builder
	port      strings.Builder
	dec       percent.Decoder
	isRegName bool
}

// step feeds one character to the machine.
func (m *hostMachine) step(c byte) error {
	switch m.state {
	case hostFirstCharacter:
		if c == '[' {
			m.state = hostIPLiteral
			return nil
		}
		m.state = hostNotIPLiteral
		m.isRegName = true
		return m.step(c)

	case hostNotIPLiteral:
		switch {
		case c == '%':
			m.dec.Reset()
			m.state = hostPercentEncoded
		case c == ':':
			m.state = hostPort
		case regNameNotPctEncoded.Contains(c):
			m.host.WriteByte(c)
		default:
			return &ParseError{Kind: KindInvalidCharacter, Part: "host", Char: c}
		}

	case hostPercentEncoded:
		if !m.dec.Next(c) {
			return &ParseError{Kind: KindInvalidPercentEncoding, Part: "host", Char: c}
		}
		if m.dec.Done() {
			m.host.WriteByte(m.dec.Decoded())
			m.state = hostNotIPLiteral
		}

	case hostIPLiteral:
		if c == 'v' {
			m.host.WriteByte(c)
			m.state = hostIPvFutureNumber
			return nil
		}
		m.state = hostIPv6Address
		return m.step(c)

	case hostIPv6Address:
		if c == ']' {
			if !ValidateIPv6(m.host.String()) {
				return &ParseError{Kind: KindInvalidIPv6, Part: "host", Detail: m.host.String()}
			}
			m.state = hostGarbageCheck
		} else {
			m.host.WriteByte(c)
		}

	case hostIPvFutureNumber:
		switch {
		case c == '.':
			m.state = hostIPvFutureBody
		case !hexdig.Contains(c):
			return &ParseError{Kind: KindInvalidCharacter, Part: "host", Char: c}
		}
		m.host.WriteByte(c)

	case hostIPvFutureBody:
		switch {
		case c == ']':
			m.state = hostGarbageCheck
		case ipvFutureLastPart.Contains(c):
			m.host.WriteByte(c)
		default:
			return &ParseError{Kind: KindInvalidCharacter, Part: "host", Char: c}
		}

	case hostGarbageCheck:
		// Nothing but a port delimiter may follow a closing ']'.
		if c != ':' {
			return &ParseError{Kind: KindMalformedAuthority, Part: "host", Char: c}
		}
		m.state = hostPort

	case hostPort:
		m.port.WriteByte(c)
	}
	return nil
}

// accepting reports whether the machine may legally stop in its current
// state. Stopping mid-escape or inside an unterminated IP literal is an
// error.
func (m *hostMachine) accepting() bool {
	switch m.state {
	case hostFirstCharacter, hostNotIPLiteral, hostGarbageCheck, hostPort:
		return true
	default:
		return false
	}
}

// parseAuthority parses the string between "//" and the end of the
// authority (the next '/', '?', '#', or end of input) into its user-info,
// host, and port components. User-info is split off at the last '@' so that
// an '@' inside the (percent-encodable) user-info cannot shift the host
// boundary.
func parseAuthority(s string) (authority, error) {
	var a authority
	hostPort := s
	if at := strings.LastIndexByte(s, '@'); at >= 0 {
		userInfo, err := decodeElement(s[:at], "user-info", userInfoNotPctEncoded)
		if err != nil {
			return authority{}, err
		}
		a.userInfo = userInfo
		hostPort = s[at+1:]
	}

	var m hostMachine
	for i := 0; i < len(hostPort); i++ {
		if err := m.step(hostPort[i]); err != nil {
			return authority{}, err
		}
	}
	if !m.accepting() {
		return authority{}, &ParseError{Kind: KindMalformedAuthority, Part: "host", Detail: hostPort}
	}

	a.host = m.host.String()
	if m.isRegName {
		a.host = strings.ToLower(a.host)
	}

	if port := m.port.String(); port != "" {
		value, err := strconv.ParseUint(port, 10, 16)
		if err != nil {
			return authority{}, &ParseError{Kind: KindInvalidPort, Part: "port", Detail: port}
		}
		a.port = uint16(value)
		a.hasPort = true
	}
	return a, nil
}
