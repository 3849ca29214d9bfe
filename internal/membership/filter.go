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

// Package membership wraps a scalable Bloom filter behind the exists /
// exists-or-insert contract the counting store depends on. It is the
// counting store's only collaborator that is allowed false positives.
package membership

import boom "github.com/tylertreat/BoomFilters"

// growthRatio is the tightening ratio passed to the underlying scalable
// filter when it grows an additional layer.
const growthRatio = 0.8

// Filter is an approximate set with a bounded false-positive rate and no
// false negatives. It satisfies the store's component-D contract: Exists is
// read-only, ExistsOrInsert reports prior membership and then guarantees
// membership.
type Filter struct {
	sbf *boom.ScalableBloomFilter
}

// New returns a Filter sized for roughly layerSize entries at up to
// maxFalsePositiveRate false positives, growing additional layers under the
// hood as more than layerSize distinct sequences are added. numHashes is
// accepted for configuration-surface parity with the public DNAHash
// constructor but is not forwarded: the underlying scalable filter derives
// its own optimal hash count per layer from maxFalsePositiveRate.
func New(maxFalsePositiveRate float64, numHashes uint, layerSize uint64) *Filter {
	_ = numHashes

	return &Filter{
		sbf: boom.NewScalableBloomFilter(uint(layerSize), maxFalsePositiveRate, growthRatio),
	}
}

// Exists reports whether seq may have been inserted before. It may return a
// false positive at a rate bounded by the filter's configured
// max-false-positive rate, but never a false negative.
func (f *Filter) Exists(seq string) bool {
	return f.sbf.Test([]byte(seq))
}

// ExistsOrInsert reports prior membership of seq and then ensures seq is a
// member, as a single logical step from the store's single-writer point of
// view. It calls Test then Add rather than relying on the library's
// TestAndAdd, since the store never calls this concurrently with itself.
func (f *Filter) ExistsOrInsert(seq string) bool {
	b := []byte(seq)

	existed := f.sbf.Test(b)
	if !existed {
		f.sbf.Add(b)
	}

	return existed
}
