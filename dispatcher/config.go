package dispatcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/agglayer/cascadekit/config/types"
	"github.com/ethereum/go-ethereum/common"
)

const (
	// DefaultBridgeCacheRetention is how long a bridge request stays in the observability cache
	DefaultBridgeCacheRetention = 10 * time.Minute
	defaultRPCRetries           = 3
	defaultRPCRetryDelay        = 500 * time.Millisecond
)

// DefaultSelectors are the swap entry points of a UniswapV2 style router
var DefaultSelectors = []string{
	"38ed1739", // swapExactTokensForTokens
	"8803dbee", // swapTokensForExactTokens
	"7ff36ab5", // swapExactETHForTokens
	"18cbafe5", // swapExactTokensForETH
}

// Config of the event dispatcher
type Config struct {
	// TradeAddr is the contract whose transactions are turned into trade signals
	TradeAddr common.Address `mapstructure:"TradeAddr"`
	// BridgeAddr is the contract whose BridgeRequest logs are turned into bridge signals
	BridgeAddr common.Address `mapstructure:"BridgeAddr"`
	// Selectors is the allow-list of 4 byte selectors (hex, with or without 0x)
	Selectors []string `mapstructure:"Selectors"`
	// BridgeCacheRetention is how long a bridge request is kept in the cache
	BridgeCacheRetention types.Duration `mapstructure:"BridgeCacheRetention"`
	// RPCRetries is the number of attempts of every chain read of a block
	RPCRetries uint `mapstructure:"RPCRetries"`
	// RPCRetryDelay is the first delay between chain read attempts, doubled on each retry
	RPCRetryDelay types.Duration `mapstructure:"RPCRetryDelay"`
	// MaxBlockIdle marks the dispatcher unhealthy when no block is processed for this long. 0 disables the check
	MaxBlockIdle types.Duration `mapstructure:"MaxBlockIdle"`
}

func (c Config) withDefaults() Config {
	if len(c.Selectors) == 0 {
		c.Selectors = DefaultSelectors
	}
	if c.BridgeCacheRetention.Duration <= 0 {
		c.BridgeCacheRetention = types.NewDuration(DefaultBridgeCacheRetention)
	}
	if c.RPCRetries == 0 {
		c.RPCRetries = defaultRPCRetries
	}
	if c.RPCRetryDelay.Duration <= 0 {
		c.RPCRetryDelay = types.NewDuration(defaultRPCRetryDelay)
	}
	return c
}

func parseSelectors(selectors []string) (map[[4]byte]struct{}, error) {
	res := make(map[[4]byte]struct{}, len(selectors))
	for _, s := range selectors {
		raw := common.FromHex(strings.TrimSpace(s))
		if len(raw) != 4 { //nolint:mnd
			return nil, fmt.Errorf("invalid selector %q: expected 4 bytes, got %d", s, len(raw))
		}
		var sel [4]byte
		copy(sel[:], raw)
		res[sel] = struct{}{}
	}
	return res, nil
}
