package signal

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/iden3/go-iden3-crypto/keccak256"
)

var (
	stringArgs = mustArguments("string")
	childArgs  = mustArguments("bytes32", "uint256", "bytes32")

	// BridgeEntropy is the fixed entropy of every bridge signal
	BridgeEntropy = crypto.Keccak256Hash([]byte("bridge"))
)

func mustArguments(typeNames ...string) abi.Arguments {
	args := make(abi.Arguments, 0, len(typeNames))
	for _, name := range typeNames {
		typ, err := abi.NewType(name, "", nil)
		if err != nil {
			panic(err)
		}
		args = append(args, abi.Argument{Type: typ})
	}
	return args
}

// HashSignal returns keccak256(abi.encode(signalText))
func HashSignal(signalText string) common.Hash {
	encoded, err := stringArgs.Pack(signalText)
	if err != nil {
		// a string always packs
		panic(err)
	}
	return crypto.Keccak256Hash(encoded)
}

// HashChild returns keccak256(abi.encode(signalHash, blockNumber, entropy))
func HashChild(signalHash common.Hash, blockNumber uint64, entropy common.Hash) common.Hash {
	encoded, err := childArgs.Pack(
		[32]byte(signalHash),
		new(big.Int).SetUint64(blockNumber),
		[32]byte(entropy),
	)
	if err != nil {
		panic(err)
	}
	return crypto.Keccak256Hash(encoded)
}

// ExtractEntropy returns keccak256(sender ‖ calldata)
func ExtractEntropy(sender common.Address, calldata []byte) common.Hash {
	return common.BytesToHash(keccak256.Hash(sender.Bytes(), calldata))
}
