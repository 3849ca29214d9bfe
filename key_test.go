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

func TestEncodeDecodeKeyShortSequence(t *testing.T) {
	key, err := EncodeKey("ACTG")
	if err != nil {
		t.Fatalf("EncodeKey: unexpected error: %v", err)
	}
	if len(key) != 1 {
		t.Fatalf("EncodeKey(\"ACTG\") produced %d fragments, want 1", len(key))
	}
	if got := DecodeKey(key); got != "ACTG" {
		t.Errorf("DecodeKey = %q, want %q", got, "ACTG")
	}
}

func TestEncodeDecodeKeyLongSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	bases := []byte("ACTG")

	s := make([]byte, 500)
	for i := range s {
		s[i] = bases[rng.Intn(4)]
	}
	seq := string(s)

	key, err := EncodeKey(seq)
	if err != nil {
		t.Fatalf("EncodeKey: unexpected error: %v", err)
	}

	wantFragments := (500 + MaxFragmentLength - 1) / MaxFragmentLength
	if len(key) != wantFragments {
		t.Fatalf("EncodeKey produced %d fragments, want %d", len(key), wantFragments)
	}

	if got := DecodeKey(key); got != seq {
		t.Errorf("DecodeKey(EncodeKey(seq)) did not round-trip a %d-base sequence", len(seq))
	}
}

func TestEncodeDecodeKeyEmpty(t *testing.T) {
	key, err := EncodeKey("")
	if err != nil {
		t.Fatalf("EncodeKey(\"\"): unexpected error: %v", err)
	}
	if got := DecodeKey(key); got != "" {
		t.Errorf("DecodeKey(EncodeKey(\"\")) = %q, want empty string", got)
	}
}

func TestKeyEqual(t *testing.T) {
	a, _ := EncodeKey("ACTGACTG")
	b, _ := EncodeKey("ACTGACTG")
	c, _ := EncodeKey("ACTGACTT")

	if !a.Equal(b) {
		t.Error("expected equal keys for identical sequences")
	}
	if a.Equal(c) {
		t.Error("expected unequal keys for different sequences")
	}
}

func TestPackUnpackKeyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	bases := []byte("ACTG")

	for _, n := range []int{0, 1, 4, 31, 75, 500} {
		s := make([]byte, n)
		for i := range s {
			s[i] = bases[rng.Intn(4)]
		}

		key, err := EncodeKey(string(s))
		if err != nil {
			t.Fatalf("EncodeKey: unexpected error: %v", err)
		}

		packed := packKey(key)
		unpacked := unpackKey(packed)

		if !key.Equal(unpacked) {
			t.Errorf("packKey/unpackKey round-trip failed for n=%d: got %v, want %v", n, unpacked, key)
		}
	}
}
