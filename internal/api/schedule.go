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

// maskInit is the initial value of every word of the even round key mask.
const maskInit = 0x0001000100010001

// ExpandKey derives the round keys for key into rks, using rf as the
// cipher's forward round.  len(key) must equal g.KeyWords.
func ExpandKey(rks *RoundKeys, g Geometry, key []uint64, rf RoundFunction) {
	var kt [MaxWords]uint64

	deriveTweak(kt[:g.BlockWords], g, key, rf)
	expandEvenKeys(rks, g, kt[:g.BlockWords], key, rf)
	expandOddKeys(rks, g)

	ZeroWords(kt[:])
}

// deriveTweak computes the per-key constant KT that every even round key
// is derived from.
func deriveTweak(kt []uint64, g Geometry, key []uint64, rf RoundFunction) {
	nb := g.BlockWords

	ZeroWords(kt)
	kt[0] = uint64(g.BlockWords + g.KeyWords + 1)

	k0, k1 := key[:nb], key[:nb]
	if g.KeyWords != nb {
		k1 = key[nb : 2*nb]
	}

	AddWords(kt, k0)
	rf.Forward(kt)
	XORWords(kt, k1)
	rf.Forward(kt)
	AddWords(kt, k0)
	rf.Forward(kt)
}

func expandEvenKeys(rks *RoundKeys, g Geometry, kt, key []uint64, rf RoundFunction) {
	var mask, ktRound, data [MaxWords]uint64

	nb := g.BlockWords
	for i := range mask[:nb] {
		mask[i] = maskInit
	}
	copy(data[:], key)

	deriveKey := func(idx int, initial []uint64) {
		copy(ktRound[:nb], kt)
		AddWords(ktRound[:nb], mask[:nb])

		s := rks[idx][:nb]
		copy(s, initial)
		AddWords(s, ktRound[:nb])
		rf.Forward(s)
		XORWords(s, ktRound[:nb])
		rf.Forward(s)
		AddWords(s, ktRound[:nb])
	}

	for idx := 0; ; {
		deriveKey(idx, data[:nb])
		if idx == g.Rounds {
			break
		}

		// Double width keys yield a second key per iteration, from the
		// upper half of the rotated key.
		if g.KeyWords != nb {
			idx += 2
			nextMask(mask[:nb])
			deriveKey(idx, data[nb:2*nb])
			if idx == g.Rounds {
				break
			}
		}

		idx += 2
		nextMask(mask[:nb])
		rotateWordsLeft(data[:g.KeyWords])
	}

	ZeroWords(ktRound[:])
	ZeroWords(data[:])
}

// nextMask shifts every word of the mask left by one bit, and reverses the
// word order.
func nextMask(mask []uint64) {
	for i := range mask {
		mask[i] <<= 1
	}
	for i, j := 0, len(mask)-1; i < j; i, j = i+1, j-1 {
		mask[i], mask[j] = mask[j], mask[i]
	}
}

// expandOddKeys sets every odd round key to the preceding even key rotated
// left by 2*BlockWords+3 bytes.
func expandOddKeys(rks *RoundKeys, g Geometry) {
	nb := g.BlockWords
	for i := 1; i < g.Rounds; i += 2 {
		RotateBytesLeft(rks[i][:nb], rks[i-1][:nb], 2*nb+3)
	}
}
