/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import "fmt"

// Flag bit layout. Only the low byte of the 32-bit flags field is used.
const (
	subjectMask = 0b111

	subjectSelf           = 0b000
	subjectOtherIdenIndex = 0b010
	subjectOtherIdenValue = 0b011

	expirableBit = 1 << 3
	updatableBit = 1 << 4

	merklizedShift = 5
	merklizedMask  = 0b11 << merklizedShift
	merklizedIndex = 1 << merklizedShift // 32
	merklizedValue = 2 << merklizedShift // 64

	usedBits = subjectMask | expirableBit | updatableBit | merklizedMask
)

// Flags is the decoded flags field of word 0.
type Flags struct {
	// Subject is where the subject id is stored. PositionNone means the claim is about its issuer.
	Subject   Position `json:"subject"`
	Expirable bool     `json:"expirable"`
	Updatable bool     `json:"updatable"`
	Merklized Position `json:"merklized"`
}

// Uint32 returns the flags field as stored in the claim.
func (f Flags) Uint32() uint32 {
	var v uint32

	switch f.Subject {
	case PositionIndex:
		v |= subjectOtherIdenIndex
	case PositionValue:
		v |= subjectOtherIdenValue
	default:
		v |= subjectSelf
	}

	if f.Expirable {
		v |= expirableBit
	}

	if f.Updatable {
		v |= updatableBit
	}

	switch f.Merklized {
	case PositionIndex:
		v |= merklizedIndex
	case PositionValue:
		v |= merklizedValue
	}

	return v
}

// ParseFlags reads a flags field. Reserved bits must be zero.
func ParseFlags(v uint32) (Flags, error) {
	var f Flags

	if v&^uint32(usedBits) != 0 {
		return f, fmt.Errorf("%w: flags 0x%08x", ErrReservedBitsSet, v)
	}

	switch v & subjectMask {
	case subjectSelf:
		f.Subject = PositionNone
	case subjectOtherIdenIndex:
		f.Subject = PositionIndex
	case subjectOtherIdenValue:
		f.Subject = PositionValue
	default:
		return f, fmt.Errorf("%w: 0b%03b", ErrInvalidSubjectFlag, v&subjectMask)
	}

	switch v & merklizedMask {
	case 0:
		f.Merklized = PositionNone
	case merklizedIndex:
		f.Merklized = PositionIndex
	case merklizedValue:
		f.Merklized = PositionValue
	default:
		return f, fmt.Errorf("%w: 0b%02b", ErrInvalidMerklizedFlag, (v&merklizedMask)>>merklizedShift)
	}

	f.Expirable = v&expirableBit != 0
	f.Updatable = v&updatableBit != 0

	return f, nil
}
