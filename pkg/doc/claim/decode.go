/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/hyperledger/aries-claim-encoder/pkg/doc/util/bytesutil"
)

const (
	flagsOffset   = SchemaHashSize
	versionOffset = flagsOffset + 4
	reservedStart = versionOffset + 4

	nonceEnd      = 8
	expirationEnd = 16
)

// Flags reads the flags field of word 0.
func (c Claim) Flags() (Flags, error) {
	return ParseFlags(binary.LittleEndian.Uint32(c[0][flagsOffset:versionOffset]))
}

// SchemaHash returns the 128-bit schema hash stored in word 0.
func (c Claim) SchemaHash() *big.Int {
	return new(big.Int).SetBytes(bytesutil.SwapEndianness(c[0][:SchemaHashSize]))
}

// Version returns the claim version stored in word 0.
func (c Claim) Version() uint32 {
	return binary.LittleEndian.Uint32(c[0][versionOffset:reservedStart])
}

// RevocationNonce returns the low 64 bits of word 4.
func (c Claim) RevocationNonce() uint64 {
	return binary.LittleEndian.Uint64(c[4][:nonceEnd])
}

// ExpirationDate returns bits 64-127 of word 4.
func (c Claim) ExpirationDate() uint64 {
	return binary.LittleEndian.Uint64(c[4][nonceEnd:expirationEnd])
}

// ID returns the subject id and where it is stored. The id is nil for PositionNone.
func (c Claim) ID() (*big.Int, Position, error) {
	f, err := c.Flags()
	if err != nil {
		return nil, PositionNone, err
	}

	switch f.Subject {
	case PositionIndex:
		return c[1].BigInt(), PositionIndex, nil
	case PositionValue:
		return c[5].BigInt(), PositionValue, nil
	default:
		return nil, PositionNone, nil
	}
}

// MerklizedRoot returns the merklized root and where it is stored. The root is nil for PositionNone.
func (c Claim) MerklizedRoot() (*big.Int, Position, error) {
	f, err := c.Flags()
	if err != nil {
		return nil, PositionNone, err
	}

	switch f.Merklized {
	case PositionIndex:
		return c[2].BigInt(), PositionIndex, nil
	case PositionValue:
		return c[6].BigInt(), PositionValue, nil
	default:
		return nil, PositionNone, nil
	}
}

// Description reads the claim back into the description it was encoded from.
// Claims with reserved bits set, or with data the flags do not account for, are rejected.
func (c Claim) Description() (*Description, error) {
	f, err := c.Flags()
	if err != nil {
		return nil, err
	}

	if err = c.checkReserved(); err != nil {
		return nil, err
	}

	d := &Description{
		SchemaHash:            c.SchemaHash(),
		IDPosition:            f.Subject,
		Expirable:             f.Expirable,
		ExpirationDate:        c.ExpirationDate(),
		Updatable:             f.Updatable,
		Version:               c.Version(),
		MerklizedRootPosition: f.Merklized,
		RevocationNonce:       c.RevocationNonce(),
		IndexDataSlotA:        c[2].BigInt(),
		IndexDataSlotB:        c[3].BigInt(),
		ValueDataSlotA:        c[6].BigInt(),
		ValueDataSlotB:        c[7].BigInt(),
	}

	if err = c.readID(d); err != nil {
		return nil, err
	}

	switch f.Merklized {
	case PositionIndex:
		d.MerklizedRoot, d.IndexDataSlotA = d.IndexDataSlotA, new(big.Int)
	case PositionValue:
		d.MerklizedRoot, d.ValueDataSlotA = d.ValueDataSlotA, new(big.Int)
	}

	if err = d.Validate(); err != nil {
		return nil, fmt.Errorf("decode claim: %w", err)
	}

	return d, nil
}

func (c Claim) readID(d *Description) error {
	switch d.IDPosition {
	case PositionIndex:
		if !c[5].IsZero() {
			return fmt.Errorf("decode claim: word 5: %w", ErrIDShouldBeEmpty)
		}

		d.ID = c[1].BigInt()
	case PositionValue:
		if !c[1].IsZero() {
			return fmt.Errorf("decode claim: word 1: %w", ErrIDShouldBeEmpty)
		}

		d.ID = c[5].BigInt()
	default:
		if !c[1].IsZero() || !c[5].IsZero() {
			return fmt.Errorf("decode claim: %w", ErrIDShouldBeEmpty)
		}
	}

	return nil
}

func (c Claim) checkReserved() error {
	for _, b := range c[0][reservedStart:] {
		if b != 0 {
			return fmt.Errorf("%w: word 0 bytes %d-%d", ErrReservedBitsSet, reservedStart, WordSize-1)
		}
	}

	for _, b := range c[4][expirationEnd:] {
		if b != 0 {
			return fmt.Errorf("%w: word 4 bytes %d-%d", ErrReservedBitsSet, expirationEnd, WordSize-1)
		}
	}

	return nil
}
