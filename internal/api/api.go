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

// Package api provides the primitives shared by every Kalyna
// (DSTU 7624:2014) implementation, and the interfaces the round
// function back-ends implement.
package api

import "errors"

const (
	// WordSize is the size of a state word in bytes.
	WordSize = 8

	// MaxWords is the widest block or key, in 64-bit words.
	MaxWords = 8

	// MaxBlockSize is the widest block, in bytes.
	MaxBlockSize = MaxWords * WordSize

	// MaxRounds is the largest round count, used with 512-bit keys.
	MaxRounds = 18

	// rows is the number of byte rows in the state matrix, one per byte
	// position within a word.
	rows = WordSize
)

var (
	// ErrInvalidBlockSize is the error returned when the block size is
	// not 128, 256 or 512 bits.
	ErrInvalidBlockSize = errors.New("kalyna: invalid block size")

	// ErrInvalidKeySize is the error returned when the key size is not
	// 128, 256 or 512 bits.
	ErrInvalidKeySize = errors.New("kalyna: invalid key size")

	// ErrKeySizeNotPermitted is the error returned when the key size is
	// valid, but not allowed in combination with the block size.
	ErrKeySizeNotPermitted = errors.New("kalyna: key size not permitted for block size")
)

// RoundKeys is the round key table, indexed 0 through Rounds inclusive.
// Only the first BlockWords words of each entry are used.
type RoundKeys [MaxRounds + 1][MaxWords]uint64

// RoundFunction is the keyless part of a Kalyna round, applied in place
// to a state of BlockWords words.
type RoundFunction interface {
	// Forward applies SubBytes, ShiftRows and MixColumns.
	Forward(s []uint64)

	// Inverse applies InvMixColumns, InvShiftRows and InvSubBytes.
	Inverse(s []uint64)
}

// Factory constructs keyed instances of a back-end.
type Factory interface {
	// Name returns the name of the back-end.
	Name() string

	// New returns a new Instance keyed with key.  The key length must
	// already have been validated against g.
	New(g Geometry, key []byte) Instance
}

// Instance is a keyed single block cipher.
type Instance interface {
	// Encrypt encrypts the first block of src into dst.  dst and src may
	// overlap entirely.
	Encrypt(dst, src []byte)

	// Decrypt decrypts the first block of src into dst.  dst and src may
	// overlap entirely.
	Decrypt(dst, src []byte)

	// Reset clears the instance such that no sensitive keying material
	// remains in memory.
	Reset()
}
