package signal

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyFeeTier(t *testing.T) {
	tests := []struct {
		name     string
		amountIn *big.Int
		minOut   *big.Int
		bridge   bool
		expected uint64
	}{
		{name: "bridge", bridge: true, expected: FeeTierBridge},
		{name: "bridge ignores amounts", amountIn: big.NewInt(1), minOut: big.NewInt(1000), bridge: true, expected: FeeTierBridge},
		{name: "zero amount in", amountIn: big.NewInt(0), minOut: big.NewInt(5), expected: FeeTierLow},
		{name: "no price impact", amountIn: big.NewInt(1000), minOut: big.NewInt(1000), expected: FeeTierLow},
		// |1_000_000 - 999_999| * 1e6 / 1_000_000 == 1
		{name: "ratio exactly one", amountIn: big.NewInt(1_000_000), minOut: big.NewInt(999_999), expected: 1},
		{name: "high price impact stays in the low tier", amountIn: big.NewInt(1000), minOut: big.NewInt(500), expected: FeeTierLow},
		{name: "min out above amount in", amountIn: big.NewInt(1000), minOut: big.NewInt(3000), expected: FeeTierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ClassifyFeeTier(tt.amountIn, tt.minOut, tt.bridge))
		})
	}
}

func TestClassifyGasBucket(t *testing.T) {
	tests := []struct {
		name         string
		txGas        uint64
		blockGasUsed uint64
		txCount      int
		expected     GasBucket
	}{
		{name: "equal to the average", txGas: 100, blockGasUsed: 1000, txCount: 10, expected: GasMid},
		{name: "below the average", txGas: 99, blockGasUsed: 1000, txCount: 10, expected: GasLow},
		{name: "exactly half above", txGas: 150, blockGasUsed: 1000, txCount: 10, expected: GasMid},
		{name: "more than half above", txGas: 151, blockGasUsed: 1000, txCount: 10, expected: GasHigh},
		{name: "zero transactions", txGas: 21000, blockGasUsed: 21000, txCount: 0, expected: GasMid},
		{name: "empty block", txGas: 1, blockGasUsed: 0, txCount: 0, expected: GasHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ClassifyGasBucket(tt.txGas, tt.blockGasUsed, tt.txCount))
		})
	}
}

func TestCyclicIndex(t *testing.T) {
	// 1 divides everything and is checked first
	for _, block := range []uint64{610, 144, 13, 1000, 7} {
		require.Equal(t, uint64(1), CyclicIndex(block), "block %d", block)
	}
	require.Equal(t, uint64(1), CyclicIndex(0))
}
