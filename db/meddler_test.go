package db

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestBigIntMeddler(t *testing.T) {
	m := BigIntMeddler{}

	yield, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	saved, err := m.PreWrite(yield)
	require.NoError(t, err)
	require.Equal(t, "123456789012345678901234567890", saved)

	saved, err = m.PreWrite((*big.Int)(nil))
	require.NoError(t, err)
	require.Equal(t, "", saved)

	_, err = m.PreWrite(uint64(1))
	require.Error(t, err)

	var field *big.Int
	target, err := m.PreRead(&field)
	require.NoError(t, err)
	*target.(*string) = "42"
	require.NoError(t, m.PostRead(&field, target))
	require.Equal(t, big.NewInt(42), field)

	*target.(*string) = ""
	require.NoError(t, m.PostRead(&field, target))
	require.Nil(t, field)

	*target.(*string) = "0xzz"
	require.Error(t, m.PostRead(&field, target))
	require.ErrorIs(t, m.PostRead(&field, new(int)), errUnexpectedScanTarget)
}

func TestHashMeddler(t *testing.T) {
	m := HashMeddler{}
	hash := common.HexToHash("0x1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef")

	tests := []struct {
		name      string
		fieldPtr  interface{}
		wantValue interface{}
		wantErr   bool
	}{
		{name: "hash", fieldPtr: hash, wantValue: hash.Hex()},
		{name: "hash pointer", fieldPtr: &hash, wantValue: hash.Hex()},
		{name: "nil hash pointer", fieldPtr: (*common.Hash)(nil), wantValue: []byte{}},
		{name: "not a hash", fieldPtr: "0x01", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.PreWrite(tt.fieldPtr)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantValue, got)
		})
	}

	var field common.Hash
	target, err := m.PreRead(&field)
	require.NoError(t, err)
	*target.(*string) = hash.Hex()
	require.NoError(t, m.PostRead(&field, target))
	require.Equal(t, hash, field)

	var fieldPtr *common.Hash
	*target.(*string) = ""
	require.NoError(t, m.PostRead(&fieldPtr, target))
	require.Nil(t, fieldPtr)

	require.Error(t, m.PostRead(new(string), target))
}
