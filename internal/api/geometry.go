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

package api

// Geometry is the shape of a keyed cipher: the block and key widths in
// 64-bit words, and the number of rounds.
type Geometry struct {
	BlockWords int
	KeyWords   int
	Rounds     int
}

// ValidateBlockBits checks that blockBits is one of the block sizes
// defined by the standard.
func ValidateBlockBits(blockBits int) error {
	switch blockBits {
	case 128, 256, 512:
		return nil
	default:
		return ErrInvalidBlockSize
	}
}

// NewGeometry returns the Geometry for a block and key size pair, both
// in bits.
func NewGeometry(blockBits, keyBits int) (Geometry, error) {
	if err := ValidateBlockBits(blockBits); err != nil {
		return Geometry{}, err
	}

	var rounds int
	switch keyBits {
	case 128:
		rounds = 10
	case 256:
		rounds = 14
	case 512:
		rounds = 18
	default:
		return Geometry{}, ErrInvalidKeySize
	}

	// The key is either as wide as the block, or twice as wide.
	if keyBits != blockBits && keyBits != 2*blockBits {
		return Geometry{}, ErrKeySizeNotPermitted
	}

	return Geometry{
		BlockWords: blockBits / 64,
		KeyWords:   keyBits / 64,
		Rounds:     rounds,
	}, nil
}

// BlockSize returns the block size in bytes.
func (g Geometry) BlockSize() int {
	return g.BlockWords * WordSize
}

// KeySize returns the key size in bytes.
func (g Geometry) KeySize() int {
	return g.KeyWords * WordSize
}

// RowShift returns how many columns row is rotated by in ShiftRows, for a
// state of columns words.  This is only defined for 2, 4 and 8 columns.
func RowShift(row, columns int) int {
	return row / (rows / columns)
}
