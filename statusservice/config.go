package statusservice

import "github.com/agglayer/cascadekit/config/types"

// Config of the REST status service
type Config struct {
	Enabled      bool           `mapstructure:"Enabled"`
	Host         string         `mapstructure:"Host"`
	Port         int            `mapstructure:"Port"`
	ReadTimeout  types.Duration `mapstructure:"ReadTimeout"`
	WriteTimeout types.Duration `mapstructure:"WriteTimeout"`
}
