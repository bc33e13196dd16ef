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

package kalyna

import (
	"crypto/cipher"

	"github.com/oasisprotocol/kalyna/internal/api"
)

type kalynaCipher struct {
	inst      api.Instance
	blockSize int
}

// BlockSize returns the cipher's block size in bytes.
func (c *kalynaCipher) BlockSize() int {
	return c.blockSize
}

// Encrypt encrypts the first block of src into dst.  dst and src must
// overlap entirely or not at all.
func (c *kalynaCipher) Encrypt(dst, src []byte) {
	if len(src) < c.blockSize {
		panic("kalyna: input not full block")
	}
	if len(dst) < c.blockSize {
		panic("kalyna: output not full block")
	}
	c.inst.Encrypt(dst[:c.blockSize], src[:c.blockSize])
}

// Decrypt decrypts the first block of src into dst.  dst and src must
// overlap entirely or not at all.
func (c *kalynaCipher) Decrypt(dst, src []byte) {
	if len(src) < c.blockSize {
		panic("kalyna: input not full block")
	}
	if len(dst) < c.blockSize {
		panic("kalyna: output not full block")
	}
	c.inst.Decrypt(dst[:c.blockSize], src[:c.blockSize])
}

// NewCipher creates a new cipher.Block backed by Kalyna with blockBits
// bit blocks, keyed with the provided key.
func NewCipher(blockBits int, key []byte) (cipher.Block, error) {
	g, err := api.NewGeometry(blockBits, len(key)*8)
	if err != nil {
		return nil, err
	}

	return &kalynaCipher{
		inst:      factory.New(g, key),
		blockSize: g.BlockSize(),
	}, nil
}

var _ cipher.Block = (*kalynaCipher)(nil)
