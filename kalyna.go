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

// Package kalyna implements the Kalyna block cipher, as specified by the
// Ukrainian national standard DSTU 7624:2014.
//
// Kalyna operates on 128, 256 or 512-bit blocks.  The key is either as
// wide as the block, or twice as wide, and 512-bit blocks require a
// 512-bit key.
//
// This package provides the single block primitive only.  Modes of
// operation and padding are the caller's responsibility, for example by
// wrapping the cipher.Block returned by NewCipher.
//
// See: https://eprint.iacr.org/2015/650.pdf
package kalyna

import (
	"errors"

	"github.com/oasisprotocol/kalyna/internal/api"
	"github.com/oasisprotocol/kalyna/internal/t64"
)

// AlgorithmName is the name of the standard implemented by this package.
const AlgorithmName = "DSTU7624"

var (
	// ErrInvalidBlockSize is the error returned when the block size is
	// not 128, 256 or 512 bits.
	ErrInvalidBlockSize = api.ErrInvalidBlockSize

	// ErrInvalidKeySize is the error returned when the key is not 16, 32
	// or 64 bytes long.
	ErrInvalidKeySize = api.ErrInvalidKeySize

	// ErrKeySizeNotPermitted is the error returned when the key size may
	// not be used with the engine's block size.
	ErrKeySizeNotPermitted = api.ErrKeySizeNotPermitted

	// ErrNotInitialized is the error returned when a block is processed
	// before Init.
	ErrNotInitialized = errors.New("kalyna: engine not initialized")

	// ErrShortInput is the error returned when the input buffer does not
	// hold a full block at the given offset.
	ErrShortInput = errors.New("kalyna: input buffer too short")

	// ErrShortOutput is the error returned when the output buffer can not
	// hold a full block at the given offset.
	ErrShortOutput = errors.New("kalyna: output buffer too short")

	// ErrInvalidOffset is the error returned when a buffer offset is
	// negative.
	ErrInvalidOffset = errors.New("kalyna: invalid buffer offset")

	factory api.Factory = t64.Factory
)

// Engine is a Kalyna block cipher engine with a fixed block size, that is
// keyed for a single direction by Init.
//
// An Engine reuses its working state across calls, and is not safe for
// concurrent use.
type Engine struct {
	blockBits     int
	forEncryption bool
	inst          api.Instance
}

// New returns a new, uninitialized Engine for blockBits bit blocks.
func New(blockBits int) (*Engine, error) {
	if err := api.ValidateBlockBits(blockBits); err != nil {
		return nil, err
	}

	return &Engine{
		blockBits: blockBits,
	}, nil
}

// Init keys the engine, and sets the direction of subsequent ProcessBlock
// calls.  If Init fails, the engine's previous key and direction (if any)
// remain in effect.
func (e *Engine) Init(forEncryption bool, key []byte) error {
	g, err := api.NewGeometry(e.blockBits, len(key)*8)
	if err != nil {
		return err
	}

	inst := factory.New(g, key)
	if e.inst != nil {
		e.inst.Reset()
	}
	e.inst = inst
	e.forEncryption = forEncryption

	return nil
}

// ProcessBlock encrypts or decrypts the block at in[inOff:] into
// out[outOff:], and returns the number of bytes written.  in and out may
// overlap entirely.
func (e *Engine) ProcessBlock(in []byte, inOff int, out []byte, outOff int) (int, error) {
	if e.inst == nil {
		return 0, ErrNotInitialized
	}
	if inOff < 0 || outOff < 0 {
		return 0, ErrInvalidOffset
	}

	blockSize := e.BlockSize()
	if len(in)-inOff < blockSize {
		return 0, ErrShortInput
	}
	if len(out)-outOff < blockSize {
		return 0, ErrShortOutput
	}

	dst, src := out[outOff:outOff+blockSize], in[inOff:inOff+blockSize]
	if e.forEncryption {
		e.inst.Encrypt(dst, src)
	} else {
		e.inst.Decrypt(dst, src)
	}

	return blockSize, nil
}

// BlockSize returns the block size in bytes.
func (e *Engine) BlockSize() int {
	return e.blockBits / 8
}

// AlgorithmName returns the name of the algorithm.
func (e *Engine) AlgorithmName() string {
	return AlgorithmName
}

// Reset clears the engine such that no sensitive keying material remains
// in memory.  The engine must be initialized again before use.
func (e *Engine) Reset() {
	if e.inst != nil {
		e.inst.Reset()
		e.inst = nil
	}
}
