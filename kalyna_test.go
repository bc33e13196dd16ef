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
	"bytes"
	"crypto/rand"
	"fmt"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/kalyna/internal/api"
	"github.com/oasisprotocol/kalyna/internal/t64"
	"github.com/oasisprotocol/kalyna/internal/vartime"
)

var testFactories = []api.Factory{
	t64.Factory,
	vartime.Factory,
}

type geometry struct {
	blockBits, keyBits int
}

func (g geometry) String() string {
	return fmt.Sprintf("%d_%d", g.blockBits, g.keyBits)
}

var testGeometries = []geometry{
	{128, 128},
	{128, 256},
	{256, 256},
	{256, 512},
	{512, 512},
}

func TestImpl(t *testing.T) {
	oldFactory := factory
	defer func() {
		factory = oldFactory
	}()

	for _, testFactory := range testFactories {
		t.Run("Implementation_"+testFactory.Name(), func(t *testing.T) {
			factory = testFactory
			doTestImpl(t)
			doTestRoundTrip(t)
			doTestAvalanche(t)
			doTestCipherBlock(t)
		})
	}
}

func doTestImpl(t *testing.T) {
	require := require.New(t)

	// New with an invalid block size should fail.
	for _, blockBits := range []int{0, 64, 192, 1024} {
		e, err := New(blockBits)
		require.Nil(e, "New(%d)", blockBits)
		require.Equal(ErrInvalidBlockSize, err, "New(%d)", blockBits)
	}

	e, err := New(128)
	require.NoError(err, "New(128)")
	require.Equal(16, e.BlockSize(), "BlockSize()")
	require.Equal("DSTU7624", e.AlgorithmName(), "AlgorithmName()")

	// ProcessBlock before Init should fail.
	var in, out [64]byte
	n, err := e.ProcessBlock(in[:], 0, out[:], 0)
	require.Equal(ErrNotInitialized, err, "ProcessBlock(): Not initialized")
	require.Zero(n, "ProcessBlock(): Not initialized")

	// Init with an invalid or disallowed key size should fail.
	var key [64]byte
	require.Equal(ErrInvalidKeySize, e.Init(true, key[:15]), "Init(): Truncated key")
	require.Equal(ErrInvalidKeySize, e.Init(true, key[:24]), "Init(): 192-bit key")
	require.Equal(ErrKeySizeNotPermitted, e.Init(true, key[:64]), "Init(): 512-bit key, 128-bit block")

	e256, err := New(256)
	require.NoError(err, "New(256)")
	require.Equal(ErrKeySizeNotPermitted, e256.Init(true, key[:16]), "Init(): 128-bit key, 256-bit block")

	e512, err := New(512)
	require.NoError(err, "New(512)")
	require.Equal(ErrKeySizeNotPermitted, e512.Init(true, key[:16]), "Init(): 128-bit key, 512-bit block")
	require.Equal(ErrKeySizeNotPermitted, e512.Init(true, key[:32]), "Init(): 256-bit key, 512-bit block")

	// A failed Init must not leave the engine usable.
	_, err = e.ProcessBlock(in[:], 0, out[:], 0)
	require.Equal(ErrNotInitialized, err, "ProcessBlock(): After failed Init")

	require.NoError(e.Init(true, key[:16]), "Init()")

	// Undersized buffers should fail without writing output.
	for i := range out {
		out[i] = 0xa5
	}
	expectedOut := out

	_, err = e.ProcessBlock(in[:15], 0, out[:], 0)
	require.Equal(ErrShortInput, err, "ProcessBlock(): Truncated input")
	_, err = e.ProcessBlock(in[:], len(in)-15, out[:], 0)
	require.Equal(ErrShortInput, err, "ProcessBlock(): Input offset")
	_, err = e.ProcessBlock(in[:], 0, out[:15], 0)
	require.Equal(ErrShortOutput, err, "ProcessBlock(): Truncated output")
	_, err = e.ProcessBlock(in[:], 0, out[:], len(out)-15)
	require.Equal(ErrShortOutput, err, "ProcessBlock(): Output offset")
	_, err = e.ProcessBlock(in[:], -1, out[:], 0)
	require.Equal(ErrInvalidOffset, err, "ProcessBlock(): Negative input offset")
	_, err = e.ProcessBlock(in[:], 0, out[:], -1)
	require.Equal(ErrInvalidOffset, err, "ProcessBlock(): Negative output offset")
	require.Equal(expectedOut, out, "ProcessBlock(): Output untouched on failure")

	// Offsets select the block, and only BlockSize() bytes are written.
	n, err = e.ProcessBlock(in[:], 7, out[:], 9)
	require.NoError(err, "ProcessBlock(): Offsets")
	require.Equal(16, n, "ProcessBlock(): Bytes written")
	require.Equal(expectedOut[:9], out[:9], "ProcessBlock(): Prefix untouched")
	require.Equal(expectedOut[25:], out[25:], "ProcessBlock(): Suffix untouched")

	// A failed re-Init must leave the previous key in effect.
	var ct [16]byte
	_, err = e.ProcessBlock(in[:], 0, ct[:], 0)
	require.NoError(err, "ProcessBlock()")
	require.Equal(ErrKeySizeNotPermitted, e.Init(false, key[:64]), "Init(): Disallowed re-Init")
	var ct2 [16]byte
	_, err = e.ProcessBlock(in[:], 0, ct2[:], 0)
	require.NoError(err, "ProcessBlock(): After failed re-Init")
	require.Equal(ct, ct2, "ProcessBlock(): Key and direction preserved")

	// Reset must require a new Init.
	e.Reset()
	_, err = e.ProcessBlock(in[:], 0, out[:], 0)
	require.Equal(ErrNotInitialized, err, "ProcessBlock(): After Reset")
}

func doTestRoundTrip(t *testing.T) {
	for _, g := range testGeometries {
		t.Run("RoundTrip_"+g.String(), func(t *testing.T) {
			require := require.New(t)

			key := make([]byte, g.keyBits/8)
			_, err := rand.Read(key)
			require.NoError(err, "rand.Read()")

			enc, err := New(g.blockBits)
			require.NoError(err, "New()")
			require.NoError(enc.Init(true, key), "Init(true)")
			dec, err := New(g.blockBits)
			require.NoError(err, "New()")
			require.NoError(dec.Init(false, key), "Init(false)")

			blockSize := enc.BlockSize()
			pt := make([]byte, blockSize)
			ct := make([]byte, blockSize)
			ct2 := make([]byte, blockSize)
			d := make([]byte, blockSize)
			for i := 0; i < 32; i++ {
				_, err = rand.Read(pt)
				require.NoError(err, "rand.Read()")

				n, err := enc.ProcessBlock(pt, 0, ct, 0)
				require.NoError(err, "Encrypt")
				require.Equal(blockSize, n, "Encrypt: Bytes written")
				require.NotEqual(pt, ct, "Encrypt: Ciphertext differs")

				_, err = enc.ProcessBlock(pt, 0, ct2, 0)
				require.NoError(err, "Encrypt")
				require.Equal(ct, ct2, "Encrypt: Deterministic")

				_, err = dec.ProcessBlock(ct, 0, d, 0)
				require.NoError(err, "Decrypt")
				require.Equal(pt, d, "Decrypt: Round trip")

				// In-place processing.
				copy(d, pt)
				_, err = enc.ProcessBlock(d, 0, d, 0)
				require.NoError(err, "Encrypt: In-place")
				require.Equal(ct, d, "Encrypt: In-place")
				_, err = dec.ProcessBlock(d, 0, d, 0)
				require.NoError(err, "Decrypt: In-place")
				require.Equal(pt, d, "Decrypt: In-place")
			}

			// Re-keying with the same key gives the same cipher.
			require.NoError(enc.Init(true, key), "Init(): Re-Init")
			_, err = enc.ProcessBlock(pt, 0, ct2, 0)
			require.NoError(err, "Encrypt: After re-Init")
			require.Equal(ct, ct2, "Encrypt: Stable after re-Init")
		})
	}
}

func doTestAvalanche(t *testing.T) {
	const trials = 64

	for _, g := range testGeometries {
		t.Run("Avalanche_"+g.String(), func(t *testing.T) {
			require := require.New(t)

			key := make([]byte, g.keyBits/8)
			_, err := rand.Read(key)
			require.NoError(err, "rand.Read()")
			c, err := NewCipher(g.blockBits, key)
			require.NoError(err, "NewCipher()")

			blockSize := c.BlockSize()
			pt := make([]byte, blockSize)
			ct := make([]byte, blockSize)
			ct2 := make([]byte, blockSize)

			var flipped int
			for i := 0; i < trials; i++ {
				_, err = rand.Read(pt)
				require.NoError(err, "rand.Read()")
				c.Encrypt(ct, pt)

				bit := i % (blockSize * 8)
				pt[bit/8] ^= 1 << uint(bit%8)
				c.Encrypt(ct2, pt)

				for j := range ct {
					flipped += bits.OnesCount8(ct[j] ^ ct2[j])
				}
			}

			// Expect roughly half of the output bits to flip.
			ratio := float64(flipped) / float64(trials*blockSize*8)
			require.InDelta(0.5, ratio, 0.05, "Avalanche ratio")
		})
	}
}

func doTestCipherBlock(t *testing.T) {
	require := require.New(t)

	var key [64]byte
	c, err := NewCipher(64, key[:16])
	require.Nil(c, "NewCipher(): Invalid block size")
	require.Equal(ErrInvalidBlockSize, err, "NewCipher(): Invalid block size")
	c, err = NewCipher(128, key[:64])
	require.Nil(c, "NewCipher(): Disallowed key size")
	require.Equal(ErrKeySizeNotPermitted, err, "NewCipher(): Disallowed key size")

	for _, g := range testGeometries {
		_, err = rand.Read(key[:])
		require.NoError(err, "rand.Read()")

		c, err = NewCipher(g.blockBits, key[:g.keyBits/8])
		require.NoError(err, "NewCipher(): %s", g)
		require.Equal(g.blockBits/8, c.BlockSize(), "BlockSize(): %s", g)

		e, err := New(g.blockBits)
		require.NoError(err, "New(): %s", g)
		require.NoError(e.Init(true, key[:g.keyBits/8]), "Init(): %s", g)

		blockSize := c.BlockSize()
		pt := make([]byte, blockSize)
		_, err = rand.Read(pt)
		require.NoError(err, "rand.Read()")

		ct, expectedCt := make([]byte, blockSize), make([]byte, blockSize)
		c.Encrypt(ct, pt)
		_, err = e.ProcessBlock(pt, 0, expectedCt, 0)
		require.NoError(err, "ProcessBlock(): %s", g)
		require.Equal(expectedCt, ct, "Encrypt(): Matches Engine, %s", g)

		d := make([]byte, blockSize)
		c.Decrypt(d, ct)
		require.Equal(pt, d, "Decrypt(): %s", g)

		require.Panics(func() {
			c.Encrypt(ct, pt[:blockSize-1])
		}, "Encrypt(): Truncated input")
		require.Panics(func() {
			c.Decrypt(d[:blockSize-1], ct)
		}, "Decrypt(): Truncated output")
	}
}

func TestImplementationsAgree(t *testing.T) {
	require := require.New(t)

	for _, g := range testGeometries {
		geom, err := api.NewGeometry(g.blockBits, g.keyBits)
		require.NoError(err, "api.NewGeometry(): %s", g)

		key := make([]byte, geom.KeySize())
		_, err = rand.Read(key)
		require.NoError(err, "rand.Read()")

		var insts []api.Instance
		for _, f := range testFactories {
			insts = append(insts, f.New(geom, key))
		}

		pt := make([]byte, geom.BlockSize())
		expected, ct := make([]byte, len(pt)), make([]byte, len(pt))
		for i := 0; i < 16; i++ {
			_, err = rand.Read(pt)
			require.NoError(err, "rand.Read()")

			insts[0].Encrypt(expected, pt)
			for j, inst := range insts[1:] {
				inst.Encrypt(ct, pt)
				require.True(bytes.Equal(expected, ct), "%s: %s disagrees", g, testFactories[j+1].Name())
			}
		}
	}
}

func BenchmarkKalyna(b *testing.B) {
	oldFactory := factory
	defer func() {
		factory = oldFactory
	}()

	for _, testFactory := range testFactories {
		factory = testFactory
		for _, g := range testGeometries {
			bn := "Kalyna_" + factory.Name() + "_" + g.String()
			b.Run(bn+"_Encrypt", func(b *testing.B) { doBenchmarkProcessBlock(b, g, true) })
			b.Run(bn+"_Decrypt", func(b *testing.B) { doBenchmarkProcessBlock(b, g, false) })
			b.Run(bn+"_KeySchedule", func(b *testing.B) { doBenchmarkInit(b, g) })
		}
	}
}

func doBenchmarkProcessBlock(b *testing.B, g geometry, forEncryption bool) {
	b.StopTimer()
	b.SetBytes(int64(g.blockBits / 8))

	key, blk := make([]byte, g.keyBits/8), make([]byte, g.blockBits/8)
	_, _ = rand.Read(key)
	_, _ = rand.Read(blk)
	e, _ := New(g.blockBits)
	_ = e.Init(forEncryption, key)

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.ProcessBlock(blk, 0, blk, 0); err != nil {
			b.Fatalf("ProcessBlock failed")
		}
	}
}

func doBenchmarkInit(b *testing.B, g geometry) {
	b.StopTimer()

	key := make([]byte, g.keyBits/8)
	_, _ = rand.Read(key)
	e, _ := New(g.blockBits)

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		if err := e.Init(true, key); err != nil {
			b.Fatalf("Init failed")
		}
	}
}
