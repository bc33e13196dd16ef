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

import "encoding/binary"

// LoadWords unpacks len(dst) little-endian words from src.
func LoadWords(dst []uint64, src []byte) {
	_ = src[len(dst)*WordSize-1] // Bounds check elimination.
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(src[i*WordSize:])
	}
}

// StoreWords packs src into dst as little-endian words.
func StoreWords(dst []byte, src []uint64) {
	_ = dst[len(src)*WordSize-1] // Bounds check elimination.
	for i, w := range src {
		binary.LittleEndian.PutUint64(dst[i*WordSize:], w)
	}
}

// AddWords sets s to s + k, word-wise modulo 2^64.
func AddWords(s, k []uint64) {
	for i := range s {
		s[i] += k[i]
	}
}

// SubWords sets s to s - k, word-wise modulo 2^64.
func SubWords(s, k []uint64) {
	for i := range s {
		s[i] -= k[i]
	}
}

// XORWords sets s to s ^ k.
func XORWords(s, k []uint64) {
	for i := range s {
		s[i] ^= k[i]
	}
}

// RotateBytesLeft sets dst to src, viewed as a little-endian byte buffer,
// rotated left by n bytes.  dst and src must have the same length and may
// alias.
func RotateBytesLeft(dst, src []uint64, n int) {
	var tmp, rot [MaxBlockSize]byte

	sz := len(src) * WordSize
	StoreWords(tmp[:sz], src)
	n %= sz
	copy(rot[:], tmp[n:sz])
	copy(rot[sz-n:], tmp[:n])
	LoadWords(dst, rot[:sz])

	Bzero(tmp[:])
	Bzero(rot[:])
}

// rotateWordsLeft rotates w left by one word, moving w[0] to the end.
func rotateWordsLeft(w []uint64) {
	first := w[0]
	copy(w, w[1:])
	w[len(w)-1] = first
}

// Bzero clears the slice.
func Bzero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ZeroWords clears the slice.
func ZeroWords(w []uint64) {
	for i := range w {
		w[i] = 0
	}
}
