package signal

import (
	"math/big"
)

const (
	// FeeTierLow is the fee tier of trade signals
	FeeTierLow uint64 = 1
	// FeeTierBridge is the fee tier of bridge signals
	FeeTierBridge uint64 = 2

	ratioScale = 1_000_000
)

// cyclicSequence is searched in ascending order, first divisor wins
var cyclicSequence = []uint64{1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377, 610}

// ClassifyFeeTier maps the price impact of a trade, |in-out|*1e6/in, to a fee tier.
// Bridge signals always get FeeTierBridge.
func ClassifyFeeTier(amountIn, minOut *big.Int, bridge bool) uint64 {
	if bridge {
		return FeeTierBridge
	}
	if amountIn == nil || amountIn.Sign() == 0 {
		return FeeTierLow
	}
	if minOut == nil {
		minOut = new(big.Int)
	}

	ratio := new(big.Int).Sub(amountIn, minOut)
	ratio.Abs(ratio)
	ratio.Mul(ratio, big.NewInt(ratioScale))
	ratio.Quo(ratio, amountIn)

	switch ratio.Cmp(big.NewInt(1)) {
	case -1:
		return FeeTierLow
	case 1:
		// TODO: high impact trades fall into the low tier as well. Return a higher tier once
		// the product decides which one, this changes the royalty sent on-chain.
		return FeeTierLow
	default:
		return ratio.Uint64()
	}
}

// ClassifyGasBucket compares the gas limit of a transaction with the average gas used per
// transaction of its block
func ClassifyGasBucket(txGasLimit, blockGasUsed uint64, txCount int) GasBucket {
	if txCount < 1 {
		txCount = 1
	}
	avg := new(big.Int).SetUint64(blockGasUsed / uint64(txCount))
	delta := new(big.Int).Sub(new(big.Int).SetUint64(txGasLimit), avg)

	switch {
	case delta.Sign() < 0:
		return GasLow
	case new(big.Int).Mul(delta, big.NewInt(2)).Cmp(avg) > 0:
		return GasHigh
	default:
		return GasMid
	}
}

// CyclicIndex returns the first element of the cyclic sequence dividing blockNumber, 0 if none does
func CyclicIndex(blockNumber uint64) uint64 {
	for _, v := range cyclicSequence {
		if blockNumber%v == 0 {
			return v
		}
	}
	return 0
}
