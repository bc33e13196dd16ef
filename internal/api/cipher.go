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

// Cipher is a keyed Instance built on top of a back-end's RoundFunction.
type Cipher struct {
	geometry  Geometry
	rf        RoundFunction
	roundKeys RoundKeys
	state     [MaxWords]uint64
}

// NewCipher unpacks key, and expands it into the round key table of a new
// Cipher.  len(key) must equal g.KeySize().
func NewCipher(g Geometry, key []byte, rf RoundFunction) *Cipher {
	var k [MaxWords]uint64

	c := &Cipher{
		geometry: g,
		rf:       rf,
	}
	LoadWords(k[:g.KeyWords], key)
	ExpandKey(&c.roundKeys, g, k[:g.KeyWords], rf)
	ZeroWords(k[:])

	return c
}

// Geometry returns the cipher's geometry.
func (c *Cipher) Geometry() Geometry {
	return c.geometry
}

// RoundKey returns a copy of round key idx.
func (c *Cipher) RoundKey(idx int) []uint64 {
	rk := make([]uint64, c.geometry.BlockWords)
	copy(rk, c.roundKeys[idx][:])
	return rk
}

// Encrypt encrypts a single block.
func (c *Cipher) Encrypt(dst, src []byte) {
	nb, nr := c.geometry.BlockWords, c.geometry.Rounds
	s := c.state[:nb]

	LoadWords(s, src)
	AddWords(s, c.roundKeys[0][:nb])
	for r := 1; r < nr; r++ {
		c.rf.Forward(s)
		XORWords(s, c.roundKeys[r][:nb])
	}
	c.rf.Forward(s)
	AddWords(s, c.roundKeys[nr][:nb])
	StoreWords(dst, s)
}

// Decrypt decrypts a single block.
func (c *Cipher) Decrypt(dst, src []byte) {
	nb, nr := c.geometry.BlockWords, c.geometry.Rounds
	s := c.state[:nb]

	LoadWords(s, src)
	SubWords(s, c.roundKeys[nr][:nb])
	for r := nr - 1; r > 0; r-- {
		c.rf.Inverse(s)
		XORWords(s, c.roundKeys[r][:nb])
	}
	c.rf.Inverse(s)
	SubWords(s, c.roundKeys[0][:nb])
	StoreWords(dst, s)
}

// Reset clears the round keys and the working state.
func (c *Cipher) Reset() {
	for i := range c.roundKeys {
		ZeroWords(c.roundKeys[i][:])
	}
	ZeroWords(c.state[:])
}

var _ Instance = (*Cipher)(nil)
