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

// splitFragments splits seq into non-overlapping chunks of at most n bases,
// suitable for passing to Encode one at a time. If seq is shorter than n the
// whole sequence is returned as the only chunk. The final chunk may be
// shorter than n. This is the core's internal fragmenter (distinct from the
// Fragment tokenizer in tokenizer.go, which additionally validates and drops
// or rejects invalid bases); it is only ever called on input already known
// to be alphabet-valid, so it does no validation itself.
func splitFragments(seq string, n int) []string {
	m := len(seq)
	if m < n {
		return []string{seq}
	}

	chunks := make([]string, 0, (m+n-1)/n)
	for i := 0; i < m; i += n {
		end := i + n
		if end > m {
			end = m
		}
		chunks = append(chunks, seq[i:end])
	}

	return chunks
}
