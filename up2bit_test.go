// Copyright © 2024 The DNAHash Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package dnahash

import (
	"math/rand"
	"testing"
)

func TestEncodeDecodeEmptyString(t *testing.T) {
	h, err := Encode("")
	if err != nil {
		t.Fatalf("Encode(\"\"): unexpected error: %v", err)
	}
	if h != 1 {
		t.Errorf("Encode(\"\") = %d, want 1", h)
	}
	if got := Decode(1); got != "" {
		t.Errorf("Decode(1) = %q, want empty string", got)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bases := []byte("ACTG")

	for n := 0; n <= MaxFragmentLength; n++ {
		for trial := 0; trial < 20; trial++ {
			s := make([]byte, n)
			for j := range s {
				s[j] = bases[rng.Intn(4)]
			}
			seq := string(s)

			h, err := Encode(seq)
			if err != nil {
				t.Fatalf("Encode(%q): unexpected error: %v", seq, err)
			}
			if h < 1 {
				t.Fatalf("Encode(%q) = %d, want >= 1", seq, h)
			}

			if got := Decode(h); got != seq {
				t.Errorf("Decode(Encode(%q)) = %q, want %q", seq, got, seq)
			}
		}
	}
}

func TestEncodeInvalidBase(t *testing.T) {
	if _, err := Encode("ACNG"); err == nil {
		t.Fatal("expected error for invalid base, got nil")
	}
}

func TestEncodeTooLong(t *testing.T) {
	s := make([]byte, MaxFragmentLength+1)
	for i := range s {
		s[i] = 'A'
	}
	if _, err := Encode(string(s)); err == nil {
		t.Fatal("expected error for over-long fragment, got nil")
	}
}

func TestEncodeSingleBase(t *testing.T) {
	cases := map[string]uint64{
		"A": 1<<2 | 0,
		"C": 1<<2 | 1,
		"T": 1<<2 | 2,
		"G": 1<<2 | 3,
	}
	for s, want := range cases {
		h, err := Encode(s)
		if err != nil {
			t.Fatalf("Encode(%q): unexpected error: %v", s, err)
		}
		if h != want {
			t.Errorf("Encode(%q) = %d, want %d", s, h, want)
		}
	}
}
