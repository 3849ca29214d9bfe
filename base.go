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

import "github.com/pkg/errors"

// Codes:
//
// 	  A    00
// 	  C    01
// 	  T    10
// 	  G    11
//
// This ordering (not the alphabetical ACGT) is part of the on-key contract:
// decoded sequences must equal encoded ones byte-exactly, and the ordering
// of canonical tokens depends on it staying fixed.
const (
	baseA = 0
	baseC = 1
	baseT = 2
	baseG = 3
)

// bit2base maps a 2-bit encoding back to its base letter.
var bit2base = [4]byte{'A', 'C', 'T', 'G'}

// encodeBase returns the 2-bit encoding for a single base, or ErrInvalidBase
// if c is outside {A,C,T,G}.
func encodeBase(c byte) (uint64, error) {
	switch c {
	case 'A':
		return baseA, nil
	case 'C':
		return baseC, nil
	case 'T':
		return baseT, nil
	case 'G':
		return baseG, nil
	default:
		return 0, ErrInvalidBase
	}
}

// complementBase returns the complementary base letter (A<->T, C<->G).
func complementBase(c byte) (byte, error) {
	switch c {
	case 'A':
		return 'T', nil
	case 'T':
		return 'A', nil
	case 'C':
		return 'G', nil
	case 'G':
		return 'C', nil
	default:
		return 0, ErrInvalidBase
	}
}

// ReverseComplement returns the reverse complement of seq: the sequence is
// reversed and each base is complemented (A<->T, C<->G). ReverseComplement is
// an involution: ReverseComplement(ReverseComplement(s)) == s for any valid s.
func ReverseComplement(seq string) (string, error) {
	n := len(seq)
	out := make([]byte, n)

	for i := 0; i < n; i++ {
		c, err := complementBase(seq[n-1-i])
		if err != nil {
			return "", errors.Wrapf(err, "invalid base at offset %d", n-1-i)
		}
		out[i] = c
	}

	return string(out), nil
}

// isValidSeq reports whether every character of seq is a member of the base
// alphabet {A,C,T,G}.
func isValidSeq(seq string) bool {
	return firstInvalidBase(seq) < 0
}

// firstInvalidBase returns the index of the first character of seq outside
// the base alphabet {A,C,T,G}, or -1 if seq is entirely valid.
func firstInvalidBase(seq string) int {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'C', 'T', 'G':
		default:
			return i
		}
	}
	return -1
}
