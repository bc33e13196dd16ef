// Copyright (c) 2019 Oasis Labs Inc. <info@oasislabs.com>
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN
// ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package t64 provides a table driven Kalyna implementation that operates
// on 64-bit words, with SubBytes, ShiftRows and MixColumns fused into
// lookups.
//
// WARNING: THIS IMPLEMENTATION IS NOT CONSTANT TIME.  Table lookups are
// indexed by secret state bytes.
package t64

import "github.com/oasisprotocol/kalyna/internal/api"

var Factory api.Factory = &t64Factory{}

type t64Factory struct{}

func (f *t64Factory) Name() string {
	return "t64"
}

func (f *t64Factory) New(g api.Geometry, key []byte) api.Instance {
	return api.NewCipher(g, key, RoundFunction)
}

// RoundFunction is the table driven round transform.
var RoundFunction api.RoundFunction = roundFunction{}

type roundFunction struct{}

func (roundFunction) Forward(s []uint64) {
	var tmp [api.MaxWords]uint64

	nb := len(s)
	for col := 0; col < nb; col++ {
		var w uint64
		for row := 0; row < api.WordSize; row++ {
			// The byte landing in col came from col - shift.
			src := (col - api.RowShift(row, nb) + nb) % nb
			w ^= encTable[row][byte(s[src]>>(8*row))]
		}
		tmp[col] = w
	}
	copy(s, tmp[:nb])
	api.ZeroWords(tmp[:])
}

func (roundFunction) Inverse(s []uint64) {
	var tmp [api.MaxWords]uint64

	nb := len(s)
	for col := 0; col < nb; col++ {
		var w uint64
		v := s[col]
		for row := 0; row < api.WordSize; row++ {
			w ^= decTable[row][byte(v>>(8*row))]
		}
		tmp[col] = w
	}

	for col := 0; col < nb; col++ {
		var w uint64
		for row := 0; row < api.WordSize; row++ {
			src := (col + api.RowShift(row, nb)) % nb
			b := api.InvSBox[row%4][byte(tmp[src]>>(8*row))]
			w |= uint64(b) << (8 * row)
		}
		s[col] = w
	}
	api.ZeroWords(tmp[:])
}
