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

package percent

import "testing"

func TestDecoder(t *testing.T) {
	testCases := []struct {
		name    string
		digits  string
		decoded byte
	}{
		{name: "uppercase hex", digits: "4A", decoded: 0x4A},
		{name: "lowercase hex", digits: "ff", decoded: 0xFF},
		{name: "mixed case", digits: "aB", decoded: 0xAB},
		{name: "digits only", digits: "20", decoded: 0x20},
		{name: "zero", digits: "00", decoded: 0x00},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var d Decoder
			for i := 0; i < len(tc.digits); i++ {
				if !d.Next(tc.digits[i]) {
					t.Fatalf("Next(%q) = false, want true", tc.digits[i])
				}
			}
			if !d.Done() {
				t.Fatal("Done() = false after two digits, want true")
			}
			if got := d.Decoded(); got != tc.decoded {
				t.Errorf("Decoded() = %#x, want %#x", got, tc.decoded)
			}
		})
	}
}

func TestDecoderRejectsNonHex(t *testing.T) {
	for _, c := range []byte{'g', 'G', ' ', '%', '-', 0x00, 0xFF} {
		var d Decoder
		if d.Next(c) {
			t.Errorf("Next(%q) = true, want false", c)
		}
	}
}

func TestDecoderIncomplete(t *testing.T) {
	var d Decoder
	if d.Done() {
		t.Error("Done() = true on fresh decoder, want false")
	}
	if !d.Next('4') {
		t.Fatal("Next('4') = false, want true")
	}
	if d.Done() {
		t.Error("Done() = true after one digit, want false")
	}
}

func TestDecoderRejectsAfterDone(t *testing.T) {
	var d Decoder
	d.Next('4')
	d.Next('1')
	if d.Next('2') {
		t.Error("Next after Done = true, want false")
	}
	if got := d.Decoded(); got != 0x41 {
		t.Errorf("Decoded() = %#x, want 0x41", got)
	}
}

func TestDecoderReset(t *testing.T) {
	var d Decoder
	d.Next('f')
	d.Next('f')
	d.Reset()
	if d.Done() {
		t.Error("Done() = true after Reset, want false")
	}
	d.Next('2')
	d.Next('0')
	if got := d.Decoded(); got != 0x20 {
		t.Errorf("Decoded() = %#x, want 0x20", got)
	}
}
