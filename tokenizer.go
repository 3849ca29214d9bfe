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

// Tokenizer produces a lazy Stream of tokens from a raw read. Implementations
// must not buffer the whole token stream: tokens are produced one at a time
// as the caller drives the Stream, a pull-based shape akin to NextKmer-style
// iterators.
type Tokenizer interface {
	Tokenize(seq string) Stream
}

// Stream is a lazy, single-pass sequence of string tokens, modeled on
// bufio.Scanner: call Next until it returns false, reading Token after each
// true return, then check Err for anything other than exhaustion.
type Stream interface {
	// Next advances the stream to the next token and reports whether one
	// is available. It returns false at the end of input or on error.
	Next() bool

	// Token returns the token produced by the most recent true call to
	// Next. Its result is undefined before the first call to Next or
	// after Next has returned false.
	Token() string

	// Err returns the first error encountered by the stream, if any.
	Err() error
}

// KmerTokenizer generates tokens of a fixed length k via a sliding window of
// stride 1.
type KmerTokenizer struct {
	k           int
	skipInvalid bool
}

// NewKmer returns a KmerTokenizer. k must be at least 1. If skipInvalid is
// true, windows containing a base outside {A,C,T,G} are skipped past rather
// than raising ErrInvalidBase.
func NewKmer(k int, skipInvalid bool) (*KmerTokenizer, error) {
	if k < 1 {
		return nil, errors.Wrapf(ErrInvalidK, "got %d", k)
	}
	return &KmerTokenizer{k: k, skipInvalid: skipInvalid}, nil
}

// Tokenize implements Tokenizer.
func (t *KmerTokenizer) Tokenize(seq string) Stream {
	return &kmerStream{seq: seq, k: t.k, skipInvalid: t.skipInvalid}
}

type kmerStream struct {
	seq         string
	k           int
	skipInvalid bool
	pos         int
	token       string
	err         error
	dropped     int
}

// Dropped returns the number of bases skipped over due to invalid-base
// windows so far. Only meaningful when the tokenizer was built with
// skipInvalid true; it is a diagnostic counter, not part of the counting
// contract.
func (s *kmerStream) Dropped() int { return s.dropped }

func (s *kmerStream) Next() bool {
	if s.err != nil {
		return false
	}

	for s.pos+s.k <= len(s.seq) {
		candidate := s.seq[s.pos : s.pos+s.k]

		if idx := firstInvalidBase(candidate); idx >= 0 {
			if !s.skipInvalid {
				s.err = errors.Wrapf(ErrInvalidBase, "offset %d", s.pos+idx)
				return false
			}

			skip := 1 + idx
			s.dropped += skip
			s.pos += skip
			continue
		}

		s.token = candidate
		s.pos++
		return true
	}

	return false
}

func (s *kmerStream) Token() string { return s.token }
func (s *kmerStream) Err() error    { return s.err }

// CanonicalTokenizer wraps another Tokenizer and emits each token in its
// canonical form: the lexicographically smaller of the token and its reverse
// complement. It owns inner, but the relationship is composition, not a
// cycle: inner never refers back to the Canonical wrapper.
type CanonicalTokenizer struct {
	inner Tokenizer
}

// NewCanonical wraps inner in a CanonicalTokenizer.
func NewCanonical(inner Tokenizer) *CanonicalTokenizer {
	return &CanonicalTokenizer{inner: inner}
}

// Tokenize implements Tokenizer.
func (t *CanonicalTokenizer) Tokenize(seq string) Stream {
	return &canonicalStream{inner: t.inner.Tokenize(seq)}
}

type canonicalStream struct {
	inner Stream
	token string
	err   error
}

func (s *canonicalStream) Next() bool {
	if s.err != nil {
		return false
	}

	if !s.inner.Next() {
		s.err = s.inner.Err()
		return false
	}

	token := s.inner.Token()

	rc, err := ReverseComplement(token)
	if err != nil {
		s.err = errors.Wrapf(err, "canonical form of %q", token)
		return false
	}

	if rc < token {
		s.token = rc
	} else {
		s.token = token
	}

	return true
}

func (s *canonicalStream) Token() string { return s.token }
func (s *canonicalStream) Err() error    { return s.err }

// FragmentTokenizer generates non-overlapping windows of length n from a
// sequence. It is distinct from the core's internal fragmenter
// (splitFragments in fragment.go), which assumes clean input and never
// drops or rejects a chunk; FragmentTokenizer is the external-facing
// counterpart that validates each window against the base alphabet.
type FragmentTokenizer struct {
	n           int
	skipInvalid bool
}

// NewFragment returns a FragmentTokenizer. n must be at least 1.
func NewFragment(n int, skipInvalid bool) (*FragmentTokenizer, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidK, "got %d", n)
	}
	return &FragmentTokenizer{n: n, skipInvalid: skipInvalid}, nil
}

// Tokenize implements Tokenizer.
func (t *FragmentTokenizer) Tokenize(seq string) Stream {
	return &fragmentStream{seq: seq, n: t.n, skipInvalid: t.skipInvalid}
}

type fragmentStream struct {
	seq         string
	n           int
	skipInvalid bool
	pos         int
	token       string
	err         error
	dropped     int
}

// Dropped returns the number of whole windows dropped so far because they
// contained an invalid base. Only meaningful when the tokenizer was built
// with skipInvalid true.
func (s *fragmentStream) Dropped() int { return s.dropped }

func (s *fragmentStream) Next() bool {
	if s.err != nil {
		return false
	}

	for s.pos < len(s.seq) {
		end := s.pos + s.n
		if end > len(s.seq) {
			end = len(s.seq)
		}

		candidate := s.seq[s.pos:end]
		s.pos = end

		if idx := firstInvalidBase(candidate); idx >= 0 {
			if !s.skipInvalid {
				s.err = errors.Wrapf(ErrInvalidBase, "offset %d", end-len(candidate)+idx)
				return false
			}

			s.dropped++
			continue
		}

		s.token = candidate
		return true
	}

	return false
}

func (s *fragmentStream) Token() string { return s.token }
func (s *fragmentStream) Err() error    { return s.err }
