package cascade

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

type fakeCaller struct {
	output []byte
	err    error
	calls  []ethereum.CallMsg
}

func (f *fakeCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x1}, nil
}

func (f *fakeCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.calls = append(f.calls, call)
	return f.output, f.err
}

func TestPackEmitCascade(t *testing.T) {
	data, err := PackEmitCascade(`{"tag":"000001"}`, 2)
	require.NoError(t, err)
	require.Equal(t, crypto.Keccak256([]byte("emitCascade(string,uint256)"))[:4], data[:4])

	parsed, err := CascadeMetaData.GetAbi()
	require.NoError(t, err)
	args, err := parsed.Methods[methodEmitCascade].Inputs.Unpack(data[4:])
	require.NoError(t, err)
	require.Equal(t, `{"tag":"000001"}`, args[0])
	require.Equal(t, big.NewInt(2), args[1])
}

func TestPackClaimYield(t *testing.T) {
	data, err := PackClaimYield("sig")
	require.NoError(t, err)
	require.Equal(t, crypto.Keccak256([]byte("claimYield(string)"))[:4], data[:4])
}

func TestAlreadyClaimedSelector(t *testing.T) {
	expected := common.Bytes2Hex(crypto.Keccak256([]byte("AlreadyClaimed()"))[:4])
	require.Equal(t, expected, AlreadyClaimedSelector())
}

func TestGetSignalStatus(t *testing.T) {
	parsed, err := CascadeMetaData.GetAbi()
	require.NoError(t, err)
	output, err := parsed.Methods[methodGetSignalStatus].Outputs.Pack(true, big.NewInt(250), big.NewInt(7))
	require.NoError(t, err)

	addr := common.HexToAddress("0xc0ffee")
	caller := &fakeCaller{output: output}
	registry, err := NewRegistry(addr, caller)
	require.NoError(t, err)
	require.Equal(t, addr, registry.Address())

	status, err := registry.GetSignalStatus(context.Background(), "sig")
	require.NoError(t, err)
	require.True(t, status.Active)
	require.Equal(t, big.NewInt(250), status.Royalty)
	require.Equal(t, big.NewInt(7), status.Yield)
	require.Len(t, caller.calls, 1)
	require.Equal(t, &addr, caller.calls[0].To)

	caller.err = errors.New("connection refused")
	_, err = registry.GetSignalStatus(context.Background(), "sig")
	require.ErrorContains(t, err, "connection refused")
}
