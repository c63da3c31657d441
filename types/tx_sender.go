package types

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrFeeTooLow is returned when the pool rejects a transaction because its fee is too low
	ErrFeeTooLow = errors.New("fee too low")
	// ErrNonceConflict is returned when the nonce used was already taken or is out of order
	ErrNonceConflict = errors.New("nonce conflict")
)

// CallOpts are the parameters of a single transaction attempt
type CallOpts struct {
	Nonce       uint64
	GasLimit    uint64
	FeePerGas   *big.Int
	PriorityFee *big.Int
}

// TxSender signs and sends contract calls on behalf of a single account
type TxSender interface {
	// From returns the sending account
	From() common.Address
	// PendingNonce returns the pending-inclusive nonce of the sending account
	PendingNonce(ctx context.Context) (uint64, error)
	// SendCall sends a transaction to `to` with the given calldata. Pool rejections are
	// classified as ErrFeeTooLow or ErrNonceConflict; any other error is returned wrapped
	SendCall(ctx context.Context, to common.Address, data []byte, opts CallOpts) (common.Hash, error)
}

// IsTransientSendError reports whether a SendCall error is worth retrying with a higher fee
func IsTransientSendError(err error) bool {
	return errors.Is(err, ErrFeeTooLow) || errors.Is(err, ErrNonceConflict)
}
