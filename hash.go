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

// Package dnahash implements a singleton-elided approximate counter for
// short DNA sequences. It trades exactness for memory: a sequence seen only
// once costs a few bits in a membership filter, never an entry in the
// explicit counter map that backs Get, Max, Argmax and Top.
package dnahash

import (
	"sort"

	"github.com/andrewdalpino/DNAHash/internal/membership"
	"github.com/pkg/errors"
)

// DNAHash is a singleton-elided approximate multiset of DNA sequences. It is
// single-threaded with respect to mutation: Increment, Insert and Get all
// touch the membership filter and must not be called concurrently with one
// another or with themselves.
type DNAHash struct {
	filter     *membership.Filter
	counts     map[string]uint64 // packKey(Key) -> count, count always >= 2
	singletons uint64
}

// New constructs a DNAHash. maxFalsePositiveRate, numHashes and layerSize
// tune the underlying membership filter and are forwarded to it untouched
// (save for numHashes; see internal/membership.New).
func New(maxFalsePositiveRate float64, numHashes uint, layerSize uint64) *DNAHash {
	logger.Debugf("constructing DNAHash: max_fp_rate=%v num_hashes=%v layer_size=%v",
		maxFalsePositiveRate, numHashes, layerSize)

	return &DNAHash{
		filter: membership.New(maxFalsePositiveRate, numHashes, layerSize),
		counts: make(map[string]uint64),
	}
}

// NewWithConfig constructs a DNAHash from a Config, e.g. DefaultConfig().
func NewWithConfig(cfg Config) *DNAHash {
	return New(cfg.MaxFalsePositiveRate, cfg.NumHashes, cfg.LayerSize)
}

// NumSequences returns the total number of observations counted so far.
func (h *DNAHash) NumSequences() uint64 {
	return h.NumNonSingletons() + h.singletons
}

// NumUniqueSequences returns the number of distinct sequences counted so
// far, singleton or not.
func (h *DNAHash) NumUniqueSequences() uint64 {
	return uint64(len(h.counts)) + h.singletons
}

// NumSingletons returns the number of sequences known to the filter but not
// yet promoted into the explicit counter map, i.e. sequences seen exactly
// once.
func (h *DNAHash) NumSingletons() uint64 {
	return h.singletons
}

// NumNonSingletons returns the sum of every value in the counter map: the
// total number of observations of sequences seen two or more times.
func (h *DNAHash) NumNonSingletons() uint64 {
	var total uint64
	for _, c := range h.counts {
		total += c
	}
	return total
}

// Len returns NumUniqueSequences, matching the public API's len().
func (h *DNAHash) Len() uint64 {
	return h.NumUniqueSequences()
}

// Increment records one new observation of seq.
func (h *DNAHash) Increment(seq string) error {
	existed := h.filter.ExistsOrInsert(seq)

	if !existed {
		h.singletons++
		return nil
	}

	key, err := EncodeKey(seq)
	if err != nil {
		return errors.Wrap(err, "increment")
	}

	mk := packKey(key)
	if count, ok := h.counts[mk]; ok {
		h.counts[mk] = count + 1
		return nil
	}

	h.singletons--
	h.counts[mk] = 2

	return nil
}

// Insert bulk-inserts seq with an explicit observed count. count must be at
// least 1.
func (h *DNAHash) Insert(seq string, count uint64) error {
	if count < 1 {
		return errors.Wrapf(ErrInvalidCount, "got %d", count)
	}

	existed := h.filter.ExistsOrInsert(seq)

	if count > 1 {
		key, err := EncodeKey(seq)
		if err != nil {
			return errors.Wrap(err, "insert")
		}

		mk := packKey(key)

		if existed {
			if _, ok := h.counts[mk]; !ok {
				h.singletons--
			}
		}

		h.counts[mk] = count

		return nil
	}

	if !existed {
		h.singletons++
	}

	return nil
}

// Get returns the observed count for seq, or 0 if it has never been seen.
//
// Get may return 1 for a sequence that was never inserted, due to the
// membership filter's bounded false-positive rate: a false positive on
// Exists is indistinguishable, from inside the store, from a genuine
// singleton. This is inherent to the singleton-elision design and is
// documented rather than worked around.
func (h *DNAHash) Get(seq string) (uint64, error) {
	if !h.filter.Exists(seq) {
		return 0, nil
	}

	key, err := EncodeKey(seq)
	if err != nil {
		return 0, errors.Wrap(err, "get")
	}

	if count, ok := h.counts[packKey(key)]; ok {
		return count, nil
	}

	return 1, nil
}

// Max returns the largest count in the counter map. It returns ErrEmpty if
// the counter map has no entries, i.e. every sequence counted so far is
// still a singleton.
func (h *DNAHash) Max() (uint64, error) {
	if len(h.counts) == 0 {
		return 0, ErrEmpty
	}

	var max uint64
	for _, c := range h.counts {
		if c > max {
			max = c
		}
	}

	return max, nil
}

// Argmax returns the decoded sequence with the highest count in the counter
// map. Ties are broken by map iteration order, which Go randomizes per
// process; callers should treat any maximal entry as a valid answer rather
// than relying on a specific one. It returns ErrEmpty under the same
// condition as Max.
func (h *DNAHash) Argmax() (string, error) {
	if len(h.counts) == 0 {
		return "", ErrEmpty
	}

	var bestKey string
	var bestCount uint64
	first := true

	for mk, c := range h.counts {
		if first || c > bestCount {
			bestKey = mk
			bestCount = c
			first = false
		}
	}

	return DecodeKey(unpackKey(bestKey)), nil
}

// Top returns up to k (sequence, count) pairs from the counter map, sorted
// by count descending. Top snapshots the counter map into a slice before
// sorting, so a caller driving the returned slice to completion never
// observes a partially-sorted view even if it happens to read it slowly;
// concurrent mutation of the store while that slice is still being read is
// outside this package's single-writer contract.
func (h *DNAHash) Top(k uint64) []SequenceCount {
	entries := make([]countEntry, 0, len(h.counts))
	for mk, c := range h.counts {
		entries = append(entries, countEntry{mapKey: mk, count: c})
	}

	sort.Sort(byCountDesc(entries))

	if uint64(len(entries)) > k {
		entries = entries[:k]
	}

	out := make([]SequenceCount, len(entries))
	for i, e := range entries {
		out[i] = SequenceCount{
			Sequence: DecodeKey(unpackKey(e.mapKey)),
			Count:    e.count,
		}
	}

	return out
}

// SequenceCount is one (sequence, count) result from Top.
type SequenceCount struct {
	Sequence string
	Count    uint64
}
