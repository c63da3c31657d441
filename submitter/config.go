package submitter

import (
	"github.com/agglayer/cascadekit/config/types"
	"github.com/ethereum/go-ethereum/common"
)

// Config of the signal submission engine. Fees are in wei
type Config struct {
	// CascadeAddr is the target contract receiving emitCascade and claimYield
	CascadeAddr common.Address `mapstructure:"CascadeAddr"`
	// MaxAttempts bounds the number of transactions sent for one signal
	MaxAttempts int `mapstructure:"MaxAttempts"`
	// BaseFee is the fee per gas of the first attempt, used as fee cap and tip
	BaseFee uint64 `mapstructure:"BaseFee"`
	// FeeStep is added to the fee after each transient rejection
	FeeStep uint64 `mapstructure:"FeeStep"`
	// MaxFee is the highest fee per gas ever offered
	MaxFee uint64 `mapstructure:"MaxFee"`
	// GasLimit of every emitCascade transaction
	GasLimit uint64 `mapstructure:"GasLimit"`
	// BackoffBase is the delay after the first rejection, doubled on every further one
	BackoffBase types.Duration `mapstructure:"BackoffBase"`
}
