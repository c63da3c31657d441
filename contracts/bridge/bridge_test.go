package bridge

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

var bridgeAddr = common.HexToAddress("0xb41d6e")

func packAmount(t *testing.T, event string, amount *big.Int) []byte {
	t.Helper()
	parsed, err := BridgeMetaData.GetAbi()
	require.NoError(t, err)
	data, err := parsed.Events[event].Inputs.NonIndexed().Pack(amount)
	require.NoError(t, err)
	return data
}

func TestTopics(t *testing.T) {
	require.Equal(t, crypto.Keccak256Hash([]byte("BridgeRequest(address,uint256)")), BridgeRequestTopic)
	require.Equal(t, crypto.Keccak256Hash([]byte("BridgeComplete(bytes32,uint256)")), BridgeCompleteTopic)
}

func TestParseBridgeRequest(t *testing.T) {
	f, err := NewFilterer(bridgeAddr)
	require.NoError(t, err)

	from := common.HexToAddress("0xAAAA000000000000000000000000000000000001")
	log := types.Log{
		Address:     bridgeAddr,
		Topics:      []common.Hash{BridgeRequestTopic, common.BytesToHash(from.Bytes())},
		Data:        packAmount(t, eventBridgeRequest, big.NewInt(500)),
		BlockNumber: 1000,
	}

	event, err := f.ParseBridgeRequest(log)
	require.NoError(t, err)
	require.Equal(t, from, event.From)
	require.Equal(t, big.NewInt(500), event.Amount)
	require.Equal(t, uint64(1000), event.Raw.BlockNumber)
}

func TestParseBridgeComplete(t *testing.T) {
	f, err := NewFilterer(bridgeAddr)
	require.NoError(t, err)

	requestID := common.HexToHash("0x1234")
	log := types.Log{
		Address: bridgeAddr,
		Topics:  []common.Hash{BridgeCompleteTopic, requestID},
		Data:    packAmount(t, eventBridgeComplete, big.NewInt(42)),
	}

	event, err := f.ParseBridgeComplete(log)
	require.NoError(t, err)
	require.Equal(t, [32]byte(requestID), event.RequestId)
	require.Equal(t, big.NewInt(42), event.Amount)
}

func TestParseWrongTopic(t *testing.T) {
	f, err := NewFilterer(bridgeAddr)
	require.NoError(t, err)

	log := types.Log{
		Topics: []common.Hash{BridgeCompleteTopic, common.HexToHash("0x01")},
		Data:   packAmount(t, eventBridgeComplete, big.NewInt(1)),
	}
	_, err = f.ParseBridgeRequest(log)
	require.Error(t, err)

	_, err = f.ParseBridgeRequest(types.Log{})
	require.Error(t, err)
}
