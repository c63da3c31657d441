package etherman

import (
	"github.com/agglayer/cascadekit/config/types"
)

// Config is the configuration of the chain RPC connection
type Config struct {
	// URL is the URL of the chain node
	URL string `mapstructure:"URL"`
	// ChainID is the expected chain id. 0 means accept whatever the node reports
	ChainID uint64 `mapstructure:"ChainID"`
	// DialTimeout bounds the initial connection and chain id query
	DialTimeout types.Duration `mapstructure:"DialTimeout"`
}
