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

import "errors"

// ErrInvalidBase means a character outside {A,C,T,G} was encountered by the
// up2bit codec, Canonical's reverse complement, or a non-skipping tokenizer.
var ErrInvalidBase = errors.New("dnahash: invalid base")

// ErrKOverflow means a fragment is longer than MaxFragmentLength bases.
var ErrKOverflow = errors.New("dnahash: fragment exceeds MaxFragmentLength")

// ErrInvalidCount means Insert was called with a count less than 1.
var ErrInvalidCount = errors.New("dnahash: count must be at least 1")

// ErrInvalidK means a tokenizer was constructed with k < 1.
var ErrInvalidK = errors.New("dnahash: k must be at least 1")

// ErrEmpty means Max or Argmax was invoked on a store whose counter map has
// no entries, i.e. every sequence seen so far is still a singleton.
var ErrEmpty = errors.New("dnahash: counter map is empty")
