/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package claim encodes identity claims into their canonical 8-word layout.
//
// A claim is made of eight 256-bit words. Words 0-3 form the index part, words 4-7 the value part.
// Serialized, every word is 32 little-endian bytes and the whole claim is 256 bytes:
//
//	word 0: schema hash (bytes 0-15) | flags (16-19) | version (20-23) | reserved (24-31)
//	word 1: subject id when located in the index
//	word 2: index data slot A, or merklized root located in the index
//	word 3: index data slot B
//	word 4: revocation nonce (bits 0-63) | expiration date (bits 64-127)
//	word 5: subject id when located in the value
//	word 6: value data slot A, or merklized root located in the value
//	word 7: value data slot B
package claim

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/hyperledger/aries-claim-encoder/pkg/doc/util/bytesutil"
)

const (
	// WordCount is the number of words in a claim.
	WordCount = 8

	// WordSize is the byte length of one word.
	WordSize = bytesutil.Uint256Size

	// Size is the byte length of a serialized claim.
	Size = WordCount * WordSize

	// SchemaHashSize is the byte length of the schema hash segment of word 0.
	SchemaHashSize = 16
)

// Position tells where an optional field lives inside the claim.
type Position uint8

// Field positions.
const (
	PositionNone Position = iota
	PositionIndex
	PositionValue
)

var positionNames = map[Position]string{ //nolint:gochecknoglobals
	PositionNone:  "none",
	PositionIndex: "index",
	PositionValue: "value",
}

// String returns the lower-case name of the position.
func (p Position) String() string {
	if s, ok := positionNames[p]; ok {
		return s
	}

	return fmt.Sprintf("position(%d)", uint8(p))
}

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	_, ok := positionNames[p]

	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("marshal %s: unknown position", p)
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	pos, err := ParsePosition(string(text))
	if err != nil {
		return err
	}

	*p = pos

	return nil
}

// ParsePosition parses a position name. An empty name is PositionNone.
func ParsePosition(s string) (Position, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return PositionNone, nil
	}

	for p, n := range positionNames {
		if n == name {
			return p, nil
		}
	}

	return PositionNone, fmt.Errorf("unknown position %q", s)
}

// Description is the input of the encoder. Nil integers are read as zero.
type Description struct {
	SchemaHash *big.Int

	IDPosition Position
	ID         *big.Int

	Expirable      bool
	ExpirationDate uint64

	Updatable bool
	Version   uint32

	MerklizedRootPosition Position
	MerklizedRoot         *big.Int

	RevocationNonce uint64

	IndexDataSlotA *big.Int
	IndexDataSlotB *big.Int
	ValueDataSlotA *big.Int
	ValueDataSlotB *big.Int
}

// Word is a 256-bit unsigned integer stored as 32 little-endian bytes.
type Word [WordSize]byte

// NewWord converts v into a Word. A nil v is zero.
func NewWord(v *big.Int) (Word, error) {
	var w Word

	b, err := bytesutil.Uint256ToBytes(v)
	if err != nil {
		return w, fmt.Errorf("%w: %v", ErrValueOverflow, err)
	}

	copy(w[:], bytesutil.SwapEndianness(b[:]))

	return w, nil
}

// BigInt returns the integer value of the word.
func (w Word) BigInt() *big.Int {
	return new(big.Int).SetBytes(bytesutil.SwapEndianness(w[:]))
}

// IsZero reports whether all bytes of the word are zero.
func (w Word) IsZero() bool {
	return w == Word{}
}

// Claim is an encoded claim. Words 0-3 are the index part and words 4-7 the value part.
type Claim [WordCount]Word

// IndexWords returns words 0-3 as integers.
func (c Claim) IndexWords() [4]*big.Int {
	var out [4]*big.Int

	for i := range out {
		out[i] = c[i].BigInt()
	}

	return out
}

// ValueWords returns words 4-7 as integers.
func (c Claim) ValueWords() [4]*big.Int {
	var out [4]*big.Int

	for i := range out {
		out[i] = c[i+4].BigInt()
	}

	return out
}

// Words returns all eight words as integers.
func (c Claim) Words() [WordCount]*big.Int {
	var out [WordCount]*big.Int

	for i := range out {
		out[i] = c[i].BigInt()
	}

	return out
}

func isZero(v *big.Int) bool {
	return v == nil || v.Sign() == 0
}
