/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import (
	"fmt"
	"math/big"

	"github.com/hyperledger/aries-claim-encoder/pkg/doc/util/bytesutil"
)

const (
	expirationShift = 64
	reservedSize    = 8
)

// Encode validates d and returns its canonical 8-word encoding.
// Nothing is produced when d breaks a claim invariant: the zero Claim is returned with the error.
func Encode(d *Description) (Claim, error) {
	if d == nil {
		return Claim{}, ErrNilDescription
	}

	f, err := d.flags()
	if err != nil {
		return Claim{}, err
	}

	var words [WordCount]*big.Int
	for i := range words {
		words[i] = new(big.Int)
	}

	switch f.Subject {
	case PositionIndex:
		words[1].Set(d.ID)
	case PositionValue:
		words[5].Set(d.ID)
	}

	switch f.Merklized {
	case PositionIndex:
		words[2].Or(words[2], orZero(d.MerklizedRoot))
	case PositionValue:
		words[6].Or(words[6], orZero(d.MerklizedRoot))
	}

	words[0], err = headerWord(d.SchemaHash, f.Uint32(), d.Version)
	if err != nil {
		return Claim{}, fmt.Errorf("assemble word 0: %w", err)
	}

	words[2].Or(words[2], orZero(d.IndexDataSlotA))
	words[3].Set(orZero(d.IndexDataSlotB))

	words[4].Lsh(new(big.Int).SetUint64(d.ExpirationDate), expirationShift)
	words[4].Or(words[4], new(big.Int).SetUint64(d.RevocationNonce))

	words[6].Or(words[6], orZero(d.ValueDataSlotA))
	words[7].Set(orZero(d.ValueDataSlotB))

	var c Claim

	for i, w := range words {
		c[i], err = NewWord(w)
		if err != nil {
			return Claim{}, fmt.Errorf("word %d: %w", i, err)
		}
	}

	return c, nil
}

// Validate checks d against the claim invariants without encoding it.
func (d *Description) Validate() error {
	if d == nil {
		return ErrNilDescription
	}

	_, err := d.flags()

	return err
}

// Flags returns the flags d encodes to, or the first invariant d breaks.
func (d *Description) Flags() (Flags, error) {
	if d == nil {
		return Flags{}, ErrNilDescription
	}

	return d.flags()
}

func (d *Description) flags() (Flags, error) {
	var f Flags

	if err := d.checkWidths(); err != nil {
		return f, err
	}

	switch d.IDPosition {
	case PositionNone:
		if !isZero(d.ID) {
			return f, ErrIDShouldBeEmpty
		}
	case PositionIndex, PositionValue:
		if isZero(d.ID) {
			return f, ErrIDShouldBeNotEmpty
		}
	default:
		return f, fmt.Errorf("%w: %s", ErrInvalidIDPosition, d.IDPosition)
	}

	f.Subject = d.IDPosition

	if !d.Expirable && d.ExpirationDate != 0 {
		return f, ErrExpirationDateShouldBeZero
	}

	f.Expirable = d.Expirable

	if !d.Updatable && d.Version != 0 {
		return f, ErrVersionShouldBeZero
	}

	f.Updatable = d.Updatable

	switch d.MerklizedRootPosition {
	case PositionNone:
		if !isZero(d.MerklizedRoot) {
			return f, ErrMerklizedRootShouldBeZero
		}
	case PositionIndex, PositionValue:
		if !isZero(d.IndexDataSlotA) || !isZero(d.IndexDataSlotB) ||
			!isZero(d.ValueDataSlotA) || !isZero(d.ValueDataSlotB) {
			return f, ErrDataSlotsShouldBeEmpty
		}
	default:
		return f, fmt.Errorf("%w: %s", ErrInvalidMerklizedRootPosition, d.MerklizedRootPosition)
	}

	f.Merklized = d.MerklizedRootPosition

	return f, nil
}

func (d *Description) checkWidths() error {
	fields := []struct {
		name string
		v    *big.Int
	}{
		{"schemaHash", d.SchemaHash},
		{"id", d.ID},
		{"merklizedRoot", d.MerklizedRoot},
		{"indexDataSlotA", d.IndexDataSlotA},
		{"indexDataSlotB", d.IndexDataSlotB},
		{"valueDataSlotA", d.ValueDataSlotA},
		{"valueDataSlotB", d.ValueDataSlotB},
	}

	for _, field := range fields {
		if field.v != nil && (field.v.Sign() < 0 || field.v.BitLen() > WordSize*8) {
			return fmt.Errorf("%w: %s", ErrValueOverflow, field.name)
		}
	}

	return nil
}

// headerWord lays out schema, flags and version at their little-endian offsets of word 0.
// The 32-byte image is built in wire order, read as a big-endian integer and byte-reversed,
// so that serializing the resulting word little-endian gives the image back.
func headerWord(schemaHash *big.Int, flags, version uint32) (*big.Int, error) {
	reversed, err := bytesutil.ReverseUint256(schemaHash)
	if err != nil {
		return nil, err
	}

	le, err := bytesutil.Uint256ToBytes(reversed)
	if err != nil {
		return nil, err
	}

	schema, err := bytesutil.Slice(le[:], 0, SchemaHashSize)
	if err != nil {
		return nil, err
	}

	image := bytesutil.Concat(schema, bytesutil.Uint32ToBytes(bytesutil.ReverseUint32(flags)))
	image = bytesutil.Concat(image, bytesutil.Uint32ToBytes(bytesutil.ReverseUint32(version)))
	image = bytesutil.Concat(image, make([]byte, reservedSize))

	v, err := bytesutil.Uint256FromBytes(image)
	if err != nil {
		return nil, err
	}

	return bytesutil.ReverseUint256(v)
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}

	return v
}
