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

// Package vartime provides a slow, byte oriented Kalyna implementation
// that follows the standard's description of the round transform step
// by step.
//
// WARNING: THIS IMPLEMENTATION IS NOT CONSTANT TIME.
package vartime

import "github.com/oasisprotocol/kalyna/internal/api"

var Factory api.Factory = &vartimeFactory{}

type vartimeFactory struct{}

func (f *vartimeFactory) Name() string {
	return "vartime"
}

func (f *vartimeFactory) New(g api.Geometry, key []byte) api.Instance {
	return api.NewCipher(g, key, RoundFunction)
}

// RoundFunction is the byte oriented round transform.
var RoundFunction api.RoundFunction = roundFunction{}

type roundFunction struct{}

func (roundFunction) Forward(s []uint64) {
	var b [api.MaxBlockSize]byte

	buf := b[:len(s)*api.WordSize]
	api.StoreWords(buf, s)
	subBytes(buf, &api.SBox)
	shiftRows(buf)
	mixColumns(buf, &api.MDS)
	api.LoadWords(s, buf)
	api.Bzero(b[:])
}

func (roundFunction) Inverse(s []uint64) {
	var b [api.MaxBlockSize]byte

	buf := b[:len(s)*api.WordSize]
	api.StoreWords(buf, s)
	mixColumns(buf, &api.InvMDS)
	invShiftRows(buf)
	subBytes(buf, &api.InvSBox)
	api.LoadWords(s, buf)
	api.Bzero(b[:])
}
