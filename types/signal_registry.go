package types

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// SignalStatus is the on-chain state of a signal
type SignalStatus struct {
	Active  bool
	Royalty *big.Int
	Yield   *big.Int
}

// SignalRegistry is the read side of the cascade contract
type SignalRegistry interface {
	// Address returns the cascade contract address
	Address() common.Address
	// GetSignalStatus queries the status of the signal identified by its canonical text
	GetSignalStatus(ctx context.Context, signalText string) (SignalStatus, error)
}
