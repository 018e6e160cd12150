/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bytesutil

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReverseUint32(t *testing.T) {
	require.Equal(t, uint32(0x78563412), ReverseUint32(0x12345678))
	require.Equal(t, uint32(0x5b000000), ReverseUint32(91))
	require.Equal(t, uint32(0), ReverseUint32(0))
	require.Equal(t, uint32(0x12345678), ReverseUint32(ReverseUint32(0x12345678)))
}

func TestReverseUint256(t *testing.T) {
	t.Run("one becomes top byte", func(t *testing.T) {
		r, err := ReverseUint256(big.NewInt(1))
		require.NoError(t, err)
		require.Equal(t, new(big.Int).Lsh(big.NewInt(1), 248), r)
	})

	t.Run("twice is identity", func(t *testing.T) {
		v, ok := new(big.Int).SetString("1234567890abcdef1234567890abcdef1234567890abcdef", 16)
		require.True(t, ok)

		r, err := ReverseUint256(v)
		require.NoError(t, err)

		back, err := ReverseUint256(r)
		require.NoError(t, err)
		require.Equal(t, 0, v.Cmp(back))
	})

	t.Run("nil is zero", func(t *testing.T) {
		r, err := ReverseUint256(nil)
		require.NoError(t, err)
		require.Zero(t, r.Sign())
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := ReverseUint256(new(big.Int).Lsh(big.NewInt(1), 256))
		require.True(t, errors.Is(err, ErrOverflow))

		_, err = ReverseUint256(big.NewInt(-1))
		require.True(t, errors.Is(err, ErrOverflow))
	})
}

func TestSlice(t *testing.T) {
	buf := []byte{0, 1, 2, 3, 4, 5}

	out, err := Slice(buf, 2, 3)
	require.NoError(t, err)
	require.Equal(t, []byte{2, 3, 4}, out)

	out[0] = 9
	require.Equal(t, byte(2), buf[2])

	out, err = Slice(buf, 6, 0)
	require.NoError(t, err)
	require.Empty(t, out)

	for _, tc := range []struct{ start, length int }{{5, 2}, {-1, 1}, {0, -1}, {7, 0}} {
		_, err = Slice(buf, tc.start, tc.length)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrOutOfRange))
	}
}

func TestConcat(t *testing.T) {
	a := []byte{1, 2}
	b := []byte{3}

	require.Equal(t, []byte{1, 2, 3}, Concat(a, b))
	require.Equal(t, []byte{3}, Concat(nil, b))
	require.Empty(t, Concat(nil, nil))
}

func TestUint256Bytes(t *testing.T) {
	b, err := Uint256ToBytes(big.NewInt(0x0102))
	require.NoError(t, err)
	require.Equal(t, byte(0x01), b[30])
	require.Equal(t, byte(0x02), b[31])

	v, err := Uint256FromBytes(b[:])
	require.NoError(t, err)
	require.Equal(t, int64(0x0102), v.Int64())

	_, err = Uint256FromBytes(make([]byte, 33))
	require.True(t, errors.Is(err, ErrOverflow))

	require.Equal(t, []byte{0, 0, 0, 91}, Uint32ToBytes(91))
	require.Equal(t, []byte{3, 2, 1}, SwapEndianness([]byte{1, 2, 3}))
}
