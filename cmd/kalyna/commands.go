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

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/oasisprotocol/kalyna"
)

var blockFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "block, b",
		Value: 128,
		Usage: "the block size in bits, one of 128, 256 or 512",
	},
	cli.StringFlag{
		Name: "key, k",
		Usage: "the hex encoded key; it must be as wide as the " +
			"block, or twice as wide",
	},
}

var encryptCommand = cli.Command{
	Name:      "encrypt",
	Usage:     "Encrypt a single block.",
	ArgsUsage: "hex_block",
	Description: `
	Encrypt exactly one hex encoded block under the given key, and print
	the hex encoded ciphertext. No mode of operation or padding is
	applied.

	kalyna encrypt --block=128 --key=000102030405060708090a0b0c0d0e0f 101112131415161718191a1b1c1d1e1f
	`,
	Flags: blockFlags,
	Action: func(ctx *cli.Context) error {
		return processBlock(ctx, true)
	},
}

var decryptCommand = cli.Command{
	Name:      "decrypt",
	Usage:     "Decrypt a single block.",
	ArgsUsage: "hex_block",
	Description: `
	Decrypt exactly one hex encoded block under the given key, and print
	the hex encoded plaintext.
	`,
	Flags: blockFlags,
	Action: func(ctx *cli.Context) error {
		return processBlock(ctx, false)
	},
}

func processBlock(ctx *cli.Context, forEncryption bool) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}

	key, err := hex.DecodeString(ctx.String("key"))
	if err != nil {
		return fmt.Errorf("unable to decode key: %v", err)
	}
	in, err := hex.DecodeString(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("unable to decode block: %v", err)
	}

	e, err := kalyna.New(ctx.Int("block"))
	if err != nil {
		return err
	}
	if err = e.Init(forEncryption, key); err != nil {
		return err
	}
	if len(in) != e.BlockSize() {
		return fmt.Errorf("block must be %d bytes, got %d",
			e.BlockSize(), len(in))
	}

	out := make([]byte, e.BlockSize())
	if _, err = e.ProcessBlock(in, 0, out, 0); err != nil {
		return err
	}
	e.Reset()

	fmt.Println(hex.EncodeToString(out))
	return nil
}

var vectorsCommand = cli.Command{
	Name:  "vectors",
	Usage: "Print known answer vectors for every block and key size.",
	Description: `
	Print a JSON list of known answer vectors, one encryption and one
	decryption vector per permitted block and key size pair. The keys
	and inputs are the sequential byte patterns of the standard's
	examples: ascending for encryption, and descending for decryption.
	`,
	Action: printVectors,
}

type vector struct {
	BlockBits int    `json:"block_bits"`
	KeyBits   int    `json:"key_bits"`
	Direction string `json:"direction"`
	Key       string `json:"key"`
	Input     string `json:"input"`
	Output    string `json:"output"`
}

var vectorGeometries = [][2]int{
	{128, 128},
	{128, 256},
	{256, 256},
	{256, 512},
	{512, 512},
}

// sequence returns n consecutive byte values starting at start, counting
// down instead of up if descending is set.
func sequence(start, n int, descending bool) []byte {
	b := make([]byte, n)
	for i := range b {
		if descending {
			b[i] = byte(start + n - 1 - i)
		} else {
			b[i] = byte(start + i)
		}
	}
	return b
}

func printVectors(_ *cli.Context) error {
	var vectors []vector

	for _, pair := range vectorGeometries {
		blockBits, keyBits := pair[0], pair[1]
		for _, forEncryption := range []bool{true, false} {
			key := sequence(0, keyBits/8, !forEncryption)
			in := sequence(keyBits/8, blockBits/8, !forEncryption)

			e, err := kalyna.New(blockBits)
			if err != nil {
				return err
			}
			if err = e.Init(forEncryption, key); err != nil {
				return err
			}
			out := make([]byte, e.BlockSize())
			if _, err = e.ProcessBlock(in, 0, out, 0); err != nil {
				return err
			}
			e.Reset()

			direction := "decrypt"
			if forEncryption {
				direction = "encrypt"
			}
			vectors = append(vectors, vector{
				BlockBits: blockBits,
				KeyBits:   keyBits,
				Direction: direction,
				Key:       hex.EncodeToString(key),
				Input:     hex.EncodeToString(in),
				Output:    hex.EncodeToString(out),
			})
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "    ")
	return enc.Encode(vectors)
}
