/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import (
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func bigHex(t *testing.T, s string) *big.Int {
	t.Helper()

	v, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok)

	return v
}

func TestEncodeExampleVector(t *testing.T) {
	c, err := Encode(&Description{
		SchemaHash:      big.NewInt(1),
		RevocationNonce: 7,
	})
	require.NoError(t, err)

	words := c.Words()
	require.Equal(t, int64(1), words[0].Int64())
	require.Equal(t, int64(7), words[4].Int64())

	for _, i := range []int{1, 2, 3, 5, 6, 7} {
		require.Zero(t, words[i].Sign(), "word %d", i)
	}

	f, err := c.Flags()
	require.NoError(t, err)
	require.Equal(t, uint32(0), f.Uint32())

	b := c.Bytes()
	require.Equal(t, byte(1), b[0])
	require.Equal(t, byte(7), b[4*WordSize])
}

func TestEncodeHeaderLayout(t *testing.T) {
	schema := new(big.Int).SetBytes([]byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
		0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20,
	})

	c, err := Encode(&Description{
		SchemaHash:     schema,
		IDPosition:     PositionIndex,
		ID:             big.NewInt(42),
		Expirable:      true,
		ExpirationDate: 1700000000,
		Updatable:      true,
		Version:        0x01020304,
	})
	require.NoError(t, err)

	require.Equal(t, "201f1e1d1c1b1a1918171615141312111a000000040302010000000000000000", hex.EncodeToString(c[0][:]))
	require.Equal(t, bigHex(t, "10203040000001a1112131415161718191a1b1c1d1e1f20"), c[0].BigInt())

	// low 128 bits of schema | flags << 128 | version << 160
	expected := new(big.Int).And(schema, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))
	expected.Or(expected, new(big.Int).Lsh(big.NewInt(0x1a), 128))
	expected.Or(expected, new(big.Int).Lsh(big.NewInt(0x01020304), 160))
	require.Equal(t, 0, expected.Cmp(c[0].BigInt()))

	require.Equal(t, 0, new(big.Int).Lsh(big.NewInt(1700000000), 64).Cmp(c[4].BigInt()))
	require.Equal(t, int64(42), c[1].BigInt().Int64())
	require.True(t, c[5].IsZero())
}

func TestEncodeFlags(t *testing.T) {
	root := bigHex(t, "1234567890abcdef")

	c, err := Encode(&Description{
		SchemaHash:            big.NewInt(5),
		IDPosition:            PositionValue,
		ID:                    big.NewInt(99),
		Expirable:             true,
		ExpirationDate:        10,
		Updatable:             true,
		Version:               3,
		MerklizedRootPosition: PositionValue,
		MerklizedRoot:         root,
	})
	require.NoError(t, err)

	f, err := c.Flags()
	require.NoError(t, err)
	require.Equal(t, uint32(91), f.Uint32())
	require.Equal(t, Flags{Subject: PositionValue, Expirable: true, Updatable: true, Merklized: PositionValue}, f)
	require.Equal(t, byte(0b01011011), c[0][flagsOffset])

	require.Equal(t, 0, root.Cmp(c[6].BigInt()))
	require.Equal(t, int64(99), c[5].BigInt().Int64())
	require.True(t, c[1].IsZero())
	require.True(t, c[2].IsZero())
}

func TestEncodeSlots(t *testing.T) {
	slots := []*big.Int{big.NewInt(11), big.NewInt(12), big.NewInt(13), big.NewInt(14)}

	c, err := Encode(&Description{
		IndexDataSlotA: slots[0],
		IndexDataSlotB: slots[1],
		ValueDataSlotA: slots[2],
		ValueDataSlotB: slots[3],
	})
	require.NoError(t, err)

	require.Equal(t, int64(11), c[2].BigInt().Int64())
	require.Equal(t, int64(12), c[3].BigInt().Int64())
	require.Equal(t, int64(13), c[6].BigInt().Int64())
	require.Equal(t, int64(14), c[7].BigInt().Int64())

	index := c.IndexWords()
	value := c.ValueWords()
	require.Equal(t, int64(11), index[2].Int64())
	require.Equal(t, int64(14), value[3].Int64())

	t.Run("merklized index root", func(t *testing.T) {
		c, err := Encode(&Description{
			MerklizedRootPosition: PositionIndex,
			MerklizedRoot:         big.NewInt(77),
		})
		require.NoError(t, err)
		require.Equal(t, int64(77), c[2].BigInt().Int64())
		require.Equal(t, byte(32), c[0][flagsOffset])
	})

	t.Run("full width slot", func(t *testing.T) {
		max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

		c, err := Encode(&Description{ValueDataSlotB: max})
		require.NoError(t, err)
		require.Equal(t, 0, max.Cmp(c[7].BigInt()))
	})
}

func TestEncodeDeterministic(t *testing.T) {
	d := &Description{
		SchemaHash:      bigHex(t, "ffeeddccbbaa99887766554433221100ffeeddccbbaa99887766554433221100"),
		IDPosition:      PositionIndex,
		ID:              big.NewInt(1),
		RevocationNonce: 1 << 63,
		IndexDataSlotB:  big.NewInt(3),
	}

	first, err := Encode(d)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		next, err := Encode(d)
		require.NoError(t, err)
		require.Equal(t, first, next)
	}

	// only the low 128 bits of the schema hash are kept
	require.Equal(t, bigHex(t, "ffeeddccbbaa99887766554433221100"), first.SchemaHash())
	require.Equal(t, uint64(1<<63), first.RevocationNonce())
}

func TestEncodeValidation(t *testing.T) {
	one := big.NewInt(1)

	tests := []struct {
		name string
		d    *Description
		err  error
	}{
		{"nil description", nil, ErrNilDescription},
		{"id without position", &Description{ID: big.NewInt(5)}, ErrIDShouldBeEmpty},
		{"index position without id", &Description{IDPosition: PositionIndex}, ErrIDShouldBeNotEmpty},
		{"value position with zero id", &Description{IDPosition: PositionValue, ID: new(big.Int)}, ErrIDShouldBeNotEmpty},
		{"unknown id position", &Description{IDPosition: Position(3), ID: one}, ErrInvalidIDPosition},
		{"expiration without expirable", &Description{ExpirationDate: 1}, ErrExpirationDateShouldBeZero},
		{"version without updatable", &Description{Version: 1}, ErrVersionShouldBeZero},
		{"root without position", &Description{MerklizedRoot: one}, ErrMerklizedRootShouldBeZero},
		{
			"unknown root position",
			&Description{MerklizedRootPosition: Position(7)},
			ErrInvalidMerklizedRootPosition,
		},
		{"negative slot", &Description{IndexDataSlotA: big.NewInt(-1)}, ErrValueOverflow},
		{"wide schema", &Description{SchemaHash: new(big.Int).Lsh(one, 256)}, ErrValueOverflow},
	}

	for _, slot := range []string{"indexA", "indexB", "valueA", "valueB"} {
		for _, pos := range []Position{PositionIndex, PositionValue} {
			d := &Description{
				MerklizedRootPosition: pos,
				MerklizedRoot:         big.NewInt(9),
				Expirable:             true,
				ExpirationDate:        100,
			}

			switch slot {
			case "indexA":
				d.IndexDataSlotA = one
			case "indexB":
				d.IndexDataSlotB = one
			case "valueA":
				d.ValueDataSlotA = one
			case "valueB":
				d.ValueDataSlotB = one
			}

			tests = append(tests, struct {
				name string
				d    *Description
				err  error
			}{"merklized " + pos.String() + " with " + slot, d, ErrDataSlotsShouldBeEmpty})
		}
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c, err := Encode(tc.d)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.err), "got %v", err)
			require.Equal(t, Claim{}, c)
			require.True(t, errors.Is(tc.d.Validate(), tc.err))
		})
	}
}

func TestEncodeNonExpirableNonUpdatable(t *testing.T) {
	for nonce := uint64(0); nonce < 5; nonce++ {
		c, err := Encode(&Description{
			SchemaHash:      big.NewInt(int64(nonce) + 100),
			IDPosition:      PositionValue,
			ID:              big.NewInt(int64(nonce) + 1),
			RevocationNonce: nonce,
		})
		require.NoError(t, err)

		require.Zero(t, c.ExpirationDate())
		require.Zero(t, new(big.Int).Rsh(c[4].BigInt(), 64).Sign())
		require.Zero(t, c.Version())

		id, pos, err := c.ID()
		require.NoError(t, err)
		require.Equal(t, PositionValue, pos)
		require.Equal(t, int64(nonce)+1, id.Int64())
	}
}

func TestFlagsRoundTrip(t *testing.T) {
	positions := []Position{PositionNone, PositionIndex, PositionValue}

	for _, subject := range positions {
		for _, merklized := range positions {
			for _, expirable := range []bool{false, true} {
				for _, updatable := range []bool{false, true} {
					f := Flags{Subject: subject, Expirable: expirable, Updatable: updatable, Merklized: merklized}

					parsed, err := ParseFlags(f.Uint32())
					require.NoError(t, err)
					require.Equal(t, f, parsed)
					require.Zero(t, f.Uint32()&^0xff)
				}
			}
		}
	}

	_, err := ParseFlags(0b001)
	require.True(t, errors.Is(err, ErrInvalidSubjectFlag))

	_, err = ParseFlags(0b100)
	require.True(t, errors.Is(err, ErrInvalidSubjectFlag))

	_, err = ParseFlags(96)
	require.True(t, errors.Is(err, ErrInvalidMerklizedFlag))

	_, err = ParseFlags(128)
	require.True(t, errors.Is(err, ErrReservedBitsSet))

	_, err = ParseFlags(1 << 8)
	require.True(t, errors.Is(err, ErrReservedBitsSet))
}

func TestPosition(t *testing.T) {
	for _, s := range []string{"none", "index", "value"} {
		p, err := ParsePosition(s)
		require.NoError(t, err)
		require.Equal(t, s, p.String())

		text, err := p.MarshalText()
		require.NoError(t, err)
		require.Equal(t, s, string(text))
	}

	p, err := ParsePosition(" Index ")
	require.NoError(t, err)
	require.Equal(t, PositionIndex, p)

	p, err = ParsePosition("")
	require.NoError(t, err)
	require.Equal(t, PositionNone, p)

	_, err = ParsePosition("middle")
	require.Error(t, err)

	_, err = Position(9).MarshalText()
	require.Error(t, err)
	require.Equal(t, "position(9)", Position(9).String())

	var q Position
	require.NoError(t, q.UnmarshalText([]byte("value")))
	require.Equal(t, PositionValue, q)
	require.Error(t, q.UnmarshalText([]byte("x")))
}
