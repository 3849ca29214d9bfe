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
	"math/bits"

	"github.com/pkg/errors"
)

// upBit is the high marker bit that every packed fragment carries, one
// position above its highest base group. It both guarantees a packed
// fragment is never the zero value and lets Decode find where the base
// groups end without a separate length field.
const upBit = 1

// MaxFragmentLength is the largest number of bases a single up2bit integer
// can hold on a 64-bit machine word: floor((64-1)/2), one bit reserved for
// upBit.
const MaxFragmentLength = 31

// Encode packs a fragment of at most MaxFragmentLength bases into a single
// up2bit integer. The encoding is: start with upBit, then for each base from
// last to first, shift left two bits and add the base's 2-bit code. The
// rightmost (lowest) 2-bit group always holds the first base of the
// fragment; the position of the highest set bit marks the fragment's length.
//
// The empty string encodes to exactly upBit (1).
func Encode(fragment string) (uint64, error) {
	n := len(fragment)
	if n > MaxFragmentLength {
		return 0, errors.Wrapf(ErrKOverflow, "fragment of length %d exceeds %d", n, MaxFragmentLength)
	}

	h := uint64(upBit)

	for i := n - 1; i >= 0; i-- {
		code, err := encodeBase(fragment[i])
		if err != nil {
			return 0, errors.Wrapf(err, "invalid base at offset %d", i)
		}

		h <<= 2
		h |= code
	}

	return h, nil
}

// Decode unpacks an up2bit integer back into its fragment. Decode(Encode(s))
// == s for every valid s of length <= MaxFragmentLength. Decode(1) returns
// the empty string.
func Decode(h uint64) string {
	if h == upBit {
		return ""
	}

	// bits.Len64(h)-1 is the 0-based position of the cap bit; everything
	// below it is base groups, two bits per base.
	n := (bits.Len64(h) - 1) / 2

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = bit2base[h&3]
		h >>= 2
	}

	return string(out)
}
