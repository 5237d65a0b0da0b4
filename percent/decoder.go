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

// Package percent provides an incremental decoder for percent-encoded
// octets (a '%' followed by two hexadecimal digits). The caller consumes
// the '%' marker itself and feeds the decoder the following characters one
// at a time, which suits parsers that scan their input a single character
// per step.
package percent

// Decoder decodes a single percent-encoded octet. The zero value is ready
// to use; call Reset to reuse a Decoder for the next escape sequence.
type Decoder struct {
	value  byte
	digits int
}

// Next feeds the decoder the next character of the escape sequence. It
// reports whether the character was accepted; a character that is not a
// hexadecimal digit, or any character fed after the sequence is already
// complete, is rejected.
func (d *Decoder) Next(c byte) bool {
	if d.digits == 2 {
		return false
	}
	v, ok := hexValue(c)
	if !ok {
		return false
	}
	d.value = d.value<<4 | v
	d.digits++
	return true
}

// Done reports whether both hexadecimal digits have been consumed.
func (d *Decoder) Done() bool {
	return d.digits == 2
}

// Decoded returns the decoded octet. It is only meaningful once Done
// reports true.
func (d *Decoder) Decoded() byte {
	return d.value
}

// Reset returns the decoder to its initial state.
func (d *Decoder) Reset() {
	*d = Decoder{}
}

func hexValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
