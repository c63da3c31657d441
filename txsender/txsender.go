// Package txsender signs and sends the transactions of the cascade account, classifying pool rejections.
package txsender

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/agglayer/cascadekit/signer"
	cascadetypes "github.com/agglayer/cascadekit/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var _ cascadetypes.TxSender = (*Sender)(nil)

// EthTxClienter is the subset of the node client needed to send transactions
type EthTxClienter interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// pool rejection messages, matched lowercase
var (
	feeTooLowMessages = []string{
		"underpriced",
		"fee too low",
		"max fee per gas less than block base fee",
	}
	nonceConflictMessages = []string{
		"nonce too low",
		"nonce too high",
		"already known",
	}
)

// Sender builds EIP-1559 transactions, signs them and sends them to the node
type Sender struct {
	logger  cascadetypes.Logger
	client  EthTxClienter
	signer  signer.Signer
	chainID *big.Int
}

// New creates a Sender for the account held by signer
func New(logger cascadetypes.Logger, client EthTxClienter, signer signer.Signer, chainID uint64) *Sender {
	return &Sender{
		logger:  logger,
		client:  client,
		signer:  signer,
		chainID: new(big.Int).SetUint64(chainID),
	}
}

// From returns the sending account
func (s *Sender) From() common.Address {
	return s.signer.PublicAddress()
}

// PendingNonce returns the pending-inclusive nonce of the sending account
func (s *Sender) PendingNonce(ctx context.Context) (uint64, error) {
	nonce, err := s.client.PendingNonceAt(ctx, s.From())
	if err != nil {
		return 0, fmt.Errorf("failed to get pending nonce of %s: %w", s.From().Hex(), err)
	}
	return nonce, nil
}

// SendCall signs and sends a call to `to`. The fee is used as fee cap, the priority fee as tip
// (the fee as well when no priority fee is given).
func (s *Sender) SendCall(ctx context.Context, to common.Address, data []byte,
	opts cascadetypes.CallOpts) (common.Hash, error) {
	if opts.FeePerGas == nil {
		return common.Hash{}, fmt.Errorf("missing fee per gas for call to %s", to.Hex())
	}
	tip := opts.PriorityFee
	if tip == nil {
		tip = opts.FeePerGas
	}
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   s.chainID,
		Nonce:     opts.Nonce,
		GasTipCap: new(big.Int).Set(tip),
		GasFeeCap: new(big.Int).Set(opts.FeePerGas),
		Gas:       opts.GasLimit,
		To:        &to,
		Data:      data,
	})

	signed, err := s.signer.SignTx(ctx, s.chainID, tx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign tx with nonce %d: %w", opts.Nonce, err)
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, ClassifySendError(err)
	}
	s.logger.Debugf("sent tx %s (nonce: %d, fee: %s, gas: %d) to %s",
		signed.Hash().Hex(), opts.Nonce, opts.FeePerGas.String(), opts.GasLimit, to.Hex())
	return signed.Hash(), nil
}

// ClassifySendError maps a pool rejection to ErrFeeTooLow or ErrNonceConflict, keeping the
// original message. Other errors are returned wrapped and unclassified.
func ClassifySendError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	for _, m := range feeTooLowMessages {
		if strings.Contains(msg, m) {
			return fmt.Errorf("%w: %s", cascadetypes.ErrFeeTooLow, err.Error())
		}
	}
	for _, m := range nonceConflictMessages {
		if strings.Contains(msg, m) {
			return fmt.Errorf("%w: %s", cascadetypes.ErrNonceConflict, err.Error())
		}
	}
	return fmt.Errorf("send transaction failed: %w", err)
}
