package claimreconciler

import (
	"github.com/agglayer/cascadekit/config/types"
)

// Config of the claim reconciler. Fee is in wei
type Config struct {
	// Period between two reconciliation passes
	Period types.Duration `mapstructure:"Period"`
	// GasLimit of every claimYield transaction
	GasLimit uint64 `mapstructure:"GasLimit"`
	// Fee per gas of every claimYield transaction, used as fee cap and tip
	Fee uint64 `mapstructure:"Fee"`
}
