package blocknotifier

import (
	"github.com/agglayer/cascadekit/config/types"
	"github.com/agglayer/cascadekit/etherman"
)

// Config of the polling block notifier
type Config struct {
	// BlockFinality is the block tag polled for new blocks
	BlockFinality etherman.BlockNumberFinality `jsonschema:"enum=LatestBlock, enum=SafeBlock, enum=FinalizedBlock" mapstructure:"BlockFinality"` //nolint:lll
	// CheckNewBlockInterval forces a fixed polling interval. If zero the interval adapts to the block rate
	CheckNewBlockInterval types.Duration `mapstructure:"CheckNewBlockInterval"`
	// MaxCatchUpBlocks bounds the number of missed blocks emitted after a gap. Zero means no bound
	MaxCatchUpBlocks uint64 `mapstructure:"MaxCatchUpBlocks"`
}
