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

import "github.com/shenwei356/go-logging"

// logger emits a single debug line when a DNAHash is constructed; it is
// never called from Increment/Insert/Get's hot path. DNAHash configures no
// backend of its own: with go-logging's default backend (stderr, all levels)
// the construction line is printed, and embedding programs can redirect or
// silence it with logging.SetBackend and logging.SetLevel.
var logger = logging.MustGetLogger("dnahash")

// Config holds the tunables for a DNAHash's membership filter. Configuration
// is purely constructor-time: there is no mutation API once a DNAHash exists.
type Config struct {
	// MaxFalsePositiveRate bounds the filter's false-positive rate.
	MaxFalsePositiveRate float64

	// NumHashes is accepted and logged but not forwarded to the filter,
	// which derives its own hash count per layer from MaxFalsePositiveRate
	// (see internal/membership.New).
	NumHashes uint

	// LayerSize is the number of distinct sequences a single filter layer
	// is sized to hold before the filter grows another layer.
	LayerSize uint64
}

// DefaultConfig returns the same defaults as the reference implementation:
// a 1% false-positive rate, 4 hash functions, and layers sized for 32
// million sequences.
func DefaultConfig() Config {
	return Config{
		MaxFalsePositiveRate: 0.01,
		NumHashes:            4,
		LayerSize:            32_000_000,
	}
}
