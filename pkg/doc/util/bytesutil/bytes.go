/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bytesutil holds the fixed-width byte helpers used by the claim codec.
// Integers are converted to and from their big-endian form, reversal gives the little-endian one.
package bytesutil

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
)

// Uint256Size is the byte length of a 256-bit unsigned integer.
const Uint256Size = 32

var (
	// ErrOutOfRange is returned when a slice request falls outside the source buffer.
	ErrOutOfRange = errors.New("slice out of range")

	// ErrOverflow is returned when an integer does not fit into 256 unsigned bits.
	ErrOverflow = errors.New("value does not fit into uint256")
)

// ReverseUint32 reverses the byte order of a 32-bit unsigned integer.
func ReverseUint32(v uint32) uint32 {
	return v>>24 | (v>>8)&0xff00 | (v<<8)&0xff0000 | v<<24
}

// ReverseUint256 reverses the byte order of a 256-bit unsigned integer.
func ReverseUint256(v *big.Int) (*big.Int, error) {
	b, err := Uint256ToBytes(v)
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetBytes(SwapEndianness(b[:])), nil
}

// Slice returns a copy of length bytes of buf starting at start.
func Slice(buf []byte, start, length int) ([]byte, error) {
	if start < 0 || length < 0 || start+length > len(buf) {
		return nil, fmt.Errorf("%w: start %d length %d buffer %d", ErrOutOfRange, start, length, len(buf))
	}

	out := make([]byte, length)
	copy(out, buf[start:start+length])

	return out, nil
}

// Concat returns a new buffer holding a followed by b.
func Concat(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}

// Uint32ToBytes returns the big-endian representation of v.
func Uint32ToBytes(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)

	return b
}

// Uint256ToBytes returns the 32-byte big-endian representation of v. A nil v is zero.
func Uint256ToBytes(v *big.Int) ([Uint256Size]byte, error) {
	var out [Uint256Size]byte

	if v == nil {
		return out, nil
	}

	if v.Sign() < 0 || v.BitLen() > Uint256Size*8 {
		return out, ErrOverflow
	}

	v.FillBytes(out[:])

	return out, nil
}

// Uint256FromBytes reads a big-endian unsigned integer of at most 32 bytes.
func Uint256FromBytes(b []byte) (*big.Int, error) {
	if len(b) > Uint256Size {
		return nil, fmt.Errorf("%w: %d bytes", ErrOverflow, len(b))
	}

	return new(big.Int).SetBytes(b), nil
}

// SwapEndianness returns a reversed copy of b.
func SwapEndianness(b []byte) []byte {
	out := make([]byte, len(b))

	for i, c := range b {
		out[len(b)-1-i] = c
	}

	return out
}
