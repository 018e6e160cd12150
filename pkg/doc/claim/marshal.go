/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Bytes returns the 256-byte wire image: every word little-endian, words in order.
func (c Claim) Bytes() [Size]byte {
	var out [Size]byte

	for i, w := range c {
		copy(out[i*WordSize:], w[:])
	}

	return out
}

// ClaimFromBytes reads a 256-byte wire image. Only the length is checked.
func ClaimFromBytes(b []byte) (Claim, error) {
	var c Claim

	if len(b) != Size {
		return c, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidClaimLength, len(b), Size)
	}

	for i := range c {
		copy(c[i][:], b[i*WordSize:(i+1)*WordSize])
	}

	return c, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c Claim) MarshalBinary() ([]byte, error) {
	b := c.Bytes()

	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *Claim) UnmarshalBinary(data []byte) error {
	parsed, err := ClaimFromBytes(data)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// MarshalText encodes the wire image as hex.
func (c Claim) MarshalText() ([]byte, error) {
	b := c.Bytes()

	return []byte(hex.EncodeToString(b[:])), nil
}

// UnmarshalText decodes a hex wire image.
func (c *Claim) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("decode claim hex: %w", err)
	}

	return c.UnmarshalBinary(b)
}

// MarshalJSON encodes the claim as an array of eight decimal strings.
func (c Claim) MarshalJSON() ([]byte, error) {
	words := make([]string, WordCount)

	for i, w := range c {
		words[i] = w.BigInt().String()
	}

	return json.Marshal(words)
}

// UnmarshalJSON decodes an array of eight decimal strings.
func (c *Claim) UnmarshalJSON(data []byte) error {
	var words []string

	if err := json.Unmarshal(data, &words); err != nil {
		return err
	}

	parsed, err := ClaimFromWords(words)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// ClaimFromWords builds a claim from eight decimal (or 0x-prefixed hex) word strings.
func ClaimFromWords(words []string) (Claim, error) {
	var c Claim

	if len(words) != WordCount {
		return c, fmt.Errorf("%w: got %d words, want %d", ErrInvalidClaimLength, len(words), WordCount)
	}

	for i, s := range words {
		v, err := parseUint(s)
		if err != nil {
			return Claim{}, fmt.Errorf("word %d: %w", i, err)
		}

		w, err := NewWord(v)
		if err != nil {
			return Claim{}, fmt.Errorf("word %d: %w", i, err)
		}

		c[i] = w
	}

	return c, nil
}
