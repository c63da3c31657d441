package signal

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Unix(1_700_000_000, 0) }

func tradeCalldata(selector []byte, amountIn, minOut, deadline int64) []byte {
	data := append([]byte{}, selector...)
	data = append(data, common.LeftPadBytes(big.NewInt(amountIn).Bytes(), 32)...)
	data = append(data, common.LeftPadBytes(big.NewInt(minOut).Bytes(), 32)...)
	data = append(data, common.LeftPadBytes(big.NewInt(deadline).Bytes(), 32)...)
	return data
}

func TestBuildBridge(t *testing.T) {
	b := NewBuilder(nil, fixedNow)
	lineage := NewLineage()
	from := common.HexToAddress("0xAAAA000000000000000000000000000000000001")

	s, err := b.BuildBridge(lineage, BridgeRequest{BlockNumber: 1000, From: from, Amount: big.NewInt(500)})
	require.NoError(t, err)
	require.Equal(t, BridgeIntent, s.Intent)
	require.Equal(t, "500", s.Amount)
	require.Equal(t, from.Hex(), s.BridgeFrom)
	require.Equal(t, FeeTierBridge, s.FeeTier)
	require.Equal(t, ZeroParent, s.Parent)
	require.Equal(t, "br-1000-aaaa0000", s.Tag)
	require.Equal(t, BridgeEntropy.Hex(), s.Kws)
	require.Equal(t, int64(1_700_000_000), s.Ts)
	require.Equal(t, DefaultPath, s.Path)
	require.Empty(t, s.Hash)
	require.Empty(t, s.Child)
	require.Equal(t, uint64(0), lineage.Snapshot().Counter, "bridge signals do not use the trade counter")

	_, err = b.BuildBridge(lineage, BridgeRequest{BlockNumber: 1})
	require.ErrorIs(t, err, ErrDecode)
}

func TestBuildTrade(t *testing.T) {
	b := NewBuilder([]string{"WETH", "DAI"}, fixedNow)
	lineage := NewLineage()
	from := common.HexToAddress("0xBBBB000000000000000000000000000000000002")
	selector := []byte{0x38, 0xed, 0x17, 0x39}
	data := tradeCalldata(selector, 1000, 990, 1_700_000_600)
	tx := types.NewTx(&types.DynamicFeeTx{Gas: 150_000, Data: data})
	header := &types.Header{Number: big.NewInt(144), GasUsed: 1_000_000, Time: 1_699_999_999}

	s, err := b.BuildTrade(lineage, TradeTx{Tx: tx, From: from, Header: header, TxCount: 10})
	require.NoError(t, err)
	require.Equal(t, "000001", s.Tag)
	require.Equal(t, "swap_38ed1739", s.Intent)
	require.Equal(t, []string{"WETH", "DAI"}, s.Path)
	require.Equal(t, "1000", s.In)
	require.Equal(t, "990", s.Out)
	require.Equal(t, "1700000600", s.Dead)
	require.Equal(t, ExtractEntropy(from, data).Hex(), s.Kws)
	require.Equal(t, GasMid, s.Gas)
	require.Equal(t, uint64(1), s.Phi)
	require.Equal(t, uint64(144), s.Blk)
	require.Equal(t, int64(1_699_999_999), s.Ts)
	require.Equal(t, ZeroParent, s.Parent)
	require.Equal(t, FeeTierLow, s.FeeTier)

	// stripping hash and child and deriving them again reproduces the same values
	text, err := Marshal(s)
	require.NoError(t, err)
	stored, err := Unmarshal(text)
	require.NoError(t, err)
	stripped := stored.WithoutIdentifiers()
	require.NoError(t, AppendIdentifiers(stripped, ExtractEntropy(from, data)))
	require.Equal(t, s.Hash, stripped.Hash)
	require.Equal(t, s.Child, stripped.Child)

	id, err := s.ID()
	require.NoError(t, err)
	require.Equal(t, id.Hex(), s.Hash)

	// the next signal chains to the submitted one
	lineage.MarkSubmitted(id)
	s2, err := b.BuildTrade(lineage, TradeTx{Tx: tx, From: from, Header: header, TxCount: 10})
	require.NoError(t, err)
	require.Equal(t, "000002", s2.Tag)
	require.Equal(t, id.Hex(), s2.Parent)
	require.NotEqual(t, s.Hash, s2.Hash)
}

func TestBuildTradeShortCalldata(t *testing.T) {
	b := NewBuilder(nil, fixedNow)
	tx := types.NewTx(&types.DynamicFeeTx{Data: []byte{0x38, 0xed, 0x17, 0x39, 0x00}})
	header := &types.Header{Number: big.NewInt(1)}

	_, err := b.BuildTrade(NewLineage(), TradeTx{Tx: tx, Header: header})
	require.ErrorIs(t, err, ErrDecode)

	_, err = b.BuildTrade(NewLineage(), TradeTx{})
	require.ErrorIs(t, err, ErrDecode)
}

func TestSelector(t *testing.T) {
	sel, ok := Selector([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	require.True(t, ok)
	require.Equal(t, [4]byte{0x01, 0x02, 0x03, 0x04}, sel)

	_, ok = Selector([]byte{0x01})
	require.False(t, ok)
}
