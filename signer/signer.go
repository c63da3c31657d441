package signer

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Signer holds the key of the account sending signals and claims
type Signer interface {
	Initialize(ctx context.Context) error
	SignHash(ctx context.Context, hash common.Hash) ([]byte, error)
	SignTx(ctx context.Context, chainID *big.Int, tx *types.Transaction) (*types.Transaction, error)
	PublicAddress() common.Address
	String() string
}
