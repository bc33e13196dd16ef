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

package vartime

import "github.com/oasisprotocol/kalyna/internal/api"

// The state is viewed as a matrix of 8 rows and len(b)/8 columns, stored
// column major: column c is word c, and row r is byte r of each word.

func subBytes(b []byte, sbox *[4][256]byte) {
	for i, v := range b {
		b[i] = sbox[i%4][v]
	}
}

func shiftRows(b []byte) {
	var tmp [api.MaxBlockSize]byte

	nb := len(b) / api.WordSize
	for row := 0; row < api.WordSize; row++ {
		shift := api.RowShift(row, nb)
		for col := 0; col < nb; col++ {
			tmp[row+((col+shift)%nb)*api.WordSize] = b[row+col*api.WordSize]
		}
	}
	copy(b, tmp[:len(b)])
}

func invShiftRows(b []byte) {
	var tmp [api.MaxBlockSize]byte

	nb := len(b) / api.WordSize
	for row := 0; row < api.WordSize; row++ {
		shift := api.RowShift(row, nb)
		for col := 0; col < nb; col++ {
			tmp[row+col*api.WordSize] = b[row+((col+shift)%nb)*api.WordSize]
		}
	}
	copy(b, tmp[:len(b)])
}

func mixColumns(b []byte, m *[8][8]byte) {
	var col [api.WordSize]byte

	for off := 0; off < len(b); off += api.WordSize {
		copy(col[:], b[off:off+api.WordSize])
		for row := range col {
			var p byte
			for i, v := range col {
				p ^= api.GFMul(v, m[row][i])
			}
			b[off+row] = p
		}
	}
}
