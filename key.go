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

import "strings"

// Key is the packed representation of a variable-length sequence: an
// ordered tuple of up2bit fragments. Most sequences (those no longer than
// MaxFragmentLength) produce a single-element Key; longer sequences spill
// into additional fragments.
type Key []uint64

// EncodeKey packs seq into a Key by splitting it into MaxFragmentLength-sized
// fragments and packing each one with Encode.
func EncodeKey(seq string) (Key, error) {
	chunks := splitFragments(seq, MaxFragmentLength)

	key := make(Key, len(chunks))
	for i, chunk := range chunks {
		h, err := Encode(chunk)
		if err != nil {
			return nil, err
		}
		key[i] = h
	}

	return key, nil
}

// DecodeKey reconstructs the original sequence from a Key. Cap-only
// fragments (value 1, the empty-string encoding) are skipped; the
// fragmenter never produces one for a non-empty input, but the rule guards
// against a defensively malformed Key.
func DecodeKey(key Key) string {
	var sb strings.Builder
	for _, h := range key {
		if h == upBit {
			continue
		}
		sb.WriteString(Decode(h))
	}
	return sb.String()
}

// Equal reports whether two Keys are componentwise equal.
func (k Key) Equal(other Key) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// byteLength returns the minimum number of big-endian bytes needed to hold
// h, at least 1 (so the zero value still round-trips).
func byteLength(h uint64) int {
	n := 1
	for h >= 1<<8 {
		h >>= 8
		n++
	}
	return n
}

// packKey serializes a Key into a compact, self-delimiting byte string
// suitable for use as a Go map key. Each fragment is written as a one-byte
// length prefix (1-8) followed by its minimal big-endian byte representation,
// trimming leading zero bytes the same way a group-varint encoder would:
// most fragments are small up2bit integers (a handful of bases), so this is
// usually 2-3 bytes instead of a fixed 8.
func packKey(key Key) string {
	var buf []byte
	for _, h := range key {
		n := byteLength(h)
		buf = append(buf, byte(n))

		start := len(buf)
		buf = append(buf, make([]byte, n)...)
		for i := n - 1; i >= 0; i-- {
			buf[start+i] = byte(h & 0xff)
			h >>= 8
		}
	}
	return string(buf)
}

// unpackKey is the inverse of packKey.
func unpackKey(s string) Key {
	buf := []byte(s)

	var key Key
	for i := 0; i < len(buf); {
		n := int(buf[i])
		i++

		var h uint64
		for j := 0; j < n; j++ {
			h <<= 8
			h |= uint64(buf[i+j])
		}
		i += n

		key = append(key, h)
	}

	return key
}
