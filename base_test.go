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

func TestReverseComplementKnownValues(t *testing.T) {
	cases := map[string]string{
		"A":      "T",
		"T":      "A",
		"C":      "G",
		"G":      "C",
		"ACTG":   "CAGT",
		"CGGTTC": "GAACCG",
	}

	for in, want := range cases {
		got, err := ReverseComplement(in)
		if err != nil {
			t.Fatalf("ReverseComplement(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("ReverseComplement(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bases := []byte("ACTG")

	for i := 0; i < 1000; i++ {
		n := rng.Intn(40) + 1
		s := make([]byte, n)
		for j := range s {
			s[j] = bases[rng.Intn(4)]
		}
		seq := string(s)

		rc, err := ReverseComplement(seq)
		if err != nil {
			t.Fatalf("ReverseComplement(%q): unexpected error: %v", seq, err)
		}

		rc2, err := ReverseComplement(rc)
		if err != nil {
			t.Fatalf("ReverseComplement(%q): unexpected error: %v", rc, err)
		}

		if rc2 != seq {
			t.Errorf("ReverseComplement not involutive for %q: got %q back, want %q", seq, rc2, seq)
		}
	}
}

func TestReverseComplementInvalidBase(t *testing.T) {
	if _, err := ReverseComplement("ACNG"); err == nil {
		t.Fatal("expected error for invalid base, got nil")
	}
}

func TestFirstInvalidBase(t *testing.T) {
	if idx := firstInvalidBase("ACTG"); idx != -1 {
		t.Errorf("firstInvalidBase(\"ACTG\") = %d, want -1", idx)
	}
	if idx := firstInvalidBase("ACNG"); idx != 2 {
		t.Errorf("firstInvalidBase(\"ACNG\") = %d, want 2", idx)
	}
}
