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

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/kalyna/internal/api"
	"github.com/oasisprotocol/kalyna/internal/vartime"
)

func TestRoundFunction(t *testing.T) {
	require := require.New(t)

	var buf [api.MaxBlockSize]byte
	for _, nb := range []int{2, 4, 8} {
		for i := 0; i < 64; i++ {
			_, err := rand.Read(buf[:])
			require.NoError(err, "rand.Read()")

			s, expected := make([]uint64, nb), make([]uint64, nb)
			for j := range s {
				s[j] = binary.LittleEndian.Uint64(buf[j*8:])
			}

			copy(expected, s)
			vartime.RoundFunction.Forward(expected)
			actual := append([]uint64{}, s...)
			RoundFunction.Forward(actual)
			require.Equal(expected, actual, "Forward(): %d words", nb)

			copy(expected, s)
			vartime.RoundFunction.Inverse(expected)
			actual = append(actual[:0], s...)
			RoundFunction.Inverse(actual)
			require.Equal(expected, actual, "Inverse(): %d words", nb)
		}
	}
}

func TestFactory(t *testing.T) {
	require := require.New(t)

	g, err := api.NewGeometry(128, 128)
	require.NoError(err, "NewGeometry()")

	key := make([]byte, g.KeySize())
	for i := range key {
		key[i] = byte(i)
	}
	pt := make([]byte, g.BlockSize())
	for i := range pt {
		pt[i] = byte(0x10 + i)
	}

	require.Equal("t64", Factory.Name(), "Name()")
	inst := Factory.New(g, key)

	ct := make([]byte, len(pt))
	inst.Encrypt(ct, pt)
	require.Equal([]byte{
		0x81, 0xbf, 0x1c, 0x7d, 0x77, 0x9b, 0xac, 0x20,
		0xe1, 0xc9, 0xea, 0x39, 0xb4, 0xd2, 0xad, 0x06,
	}, ct, "Encrypt()")

	d := make([]byte, len(ct))
	inst.Decrypt(d, ct)
	require.Equal(pt, d, "Decrypt()")
}
