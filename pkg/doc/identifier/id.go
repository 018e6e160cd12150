/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package identifier parses the identity identifiers stored as claim subjects.
//
// An identifier is 31 bytes: a 2-byte type, a 27-byte genesis state digest and a 2-byte checksum.
// Its textual form is base58 (optionally multibase base58btc), its claim form is the
// little-endian integer of the 31 bytes.
package identifier

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcutil/base58"
	"github.com/multiformats/go-multibase"

	"github.com/hyperledger/aries-claim-encoder/pkg/doc/util/bytesutil"
)

const (
	// TypeSize is the byte length of the identifier type.
	TypeSize = 2

	// GenesisSize is the byte length of the genesis digest.
	GenesisSize = 27

	// ChecksumSize is the byte length of the checksum.
	ChecksumSize = 2

	// Size is the byte length of an identifier.
	Size = TypeSize + GenesisSize + ChecksumSize
)

var (
	// ErrInvalidLength is returned when the decoded identifier is not 31 bytes.
	ErrInvalidLength = errors.New("invalid identifier length")

	// ErrInvalidChecksum is returned when the trailing checksum does not match.
	ErrInvalidChecksum = errors.New("invalid identifier checksum")

	// ErrEmptyID is returned for the all-zero identifier.
	ErrEmptyID = errors.New("empty identifier")

	// ErrUnsupportedEncoding is returned for multibase encodings other than base58btc.
	ErrUnsupportedEncoding = errors.New("unsupported identifier encoding")
)

// ID is an identity identifier.
type ID [Size]byte

// NewID builds an identifier from its type and genesis digest and appends the checksum.
func NewID(typ [TypeSize]byte, genesis [GenesisSize]byte) ID {
	var id ID

	copy(id[:TypeSize], typ[:])
	copy(id[TypeSize:TypeSize+GenesisSize], genesis[:])

	sum := Checksum(typ, genesis)
	copy(id[TypeSize+GenesisSize:], sum[:])

	return id
}

// Checksum is the little-endian 16-bit sum of the type and genesis bytes.
func Checksum(typ [TypeSize]byte, genesis [GenesisSize]byte) [ChecksumSize]byte {
	var s uint16

	for _, b := range typ {
		s += uint16(b)
	}

	for _, b := range genesis {
		s += uint16(b)
	}

	var out [ChecksumSize]byte

	binary.LittleEndian.PutUint16(out[:], s)

	return out
}

// IDFromBytes reads a 31-byte identifier and verifies its checksum.
func IDFromBytes(b []byte) (ID, error) {
	var id ID

	if len(b) != Size {
		return id, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), Size)
	}

	copy(id[:], b)

	if id == (ID{}) {
		return ID{}, ErrEmptyID
	}

	if Checksum(id.Type(), id.Genesis()) != id.checksum() {
		return ID{}, ErrInvalidChecksum
	}

	return id, nil
}

// ParseID parses a base58 identifier.
func ParseID(s string) (ID, error) {
	return IDFromBytes(base58.Decode(s))
}

// ParseMultibaseID parses a multibase identifier. Only base58btc is accepted.
func ParseMultibaseID(s string) (ID, error) {
	enc, data, err := multibase.Decode(s)
	if err != nil {
		return ID{}, fmt.Errorf("multibase decode: %w", err)
	}

	if enc != multibase.Base58BTC {
		return ID{}, fmt.Errorf("%w: multibase code %q", ErrUnsupportedEncoding, rune(enc))
	}

	return IDFromBytes(data)
}

// IDFromInt converts the claim form of an identifier back to the identifier.
func IDFromInt(v *big.Int) (ID, error) {
	if v == nil || v.Sign() < 0 {
		return ID{}, fmt.Errorf("%w: negative or nil integer", ErrInvalidLength)
	}

	be := v.Bytes()
	if len(be) > Size {
		return ID{}, fmt.Errorf("%w: integer has %d bytes", ErrInvalidLength, len(be))
	}

	le := make([]byte, Size)
	copy(le, bytesutil.SwapEndianness(be))

	return IDFromBytes(le)
}

// BigInt returns the claim form of the identifier: its bytes read little-endian.
func (id ID) BigInt() *big.Int {
	return new(big.Int).SetBytes(bytesutil.SwapEndianness(id[:]))
}

// Type returns the identifier type bytes.
func (id ID) Type() [TypeSize]byte {
	var typ [TypeSize]byte

	copy(typ[:], id[:TypeSize])

	return typ
}

// Genesis returns the genesis digest.
func (id ID) Genesis() [GenesisSize]byte {
	var g [GenesisSize]byte

	copy(g[:], id[TypeSize:TypeSize+GenesisSize])

	return g
}

func (id ID) checksum() [ChecksumSize]byte {
	var c [ChecksumSize]byte

	copy(c[:], id[TypeSize+GenesisSize:])

	return c
}

// String returns the base58 form.
func (id ID) String() string {
	return base58.Encode(id[:])
}

// Multibase returns the multibase base58btc form.
func (id ID) Multibase() string {
	// base58btc is a known encoding, Encode cannot fail.
	s, _ := multibase.Encode(multibase.Base58BTC, id[:]) //nolint:errcheck

	return s
}
