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

package t64

import "github.com/oasisprotocol/kalyna/internal/api"

var (
	// encTable[row][x] is column row of MDS scaled by SBox[row%4][x],
	// packed as a little-endian word.
	encTable [api.WordSize][256]uint64

	// decTable[row][x] is column row of InvMDS scaled by x.
	decTable [api.WordSize][256]uint64
)

func init() {
	for row := 0; row < api.WordSize; row++ {
		for x := 0; x < 256; x++ {
			sb := api.SBox[row%4][x]

			var e, d uint64
			for i := 0; i < api.WordSize; i++ {
				e |= uint64(api.GFMul(sb, api.MDS[i][row])) << (8 * i)
				d |= uint64(api.GFMul(byte(x), api.InvMDS[i][row])) << (8 * i)
			}
			encTable[row][x] = e
			decTable[row][x] = d
		}
	}
}
