package journal

import "github.com/agglayer/cascadekit/config/types"

// Config of the outcome journal
type Config struct {
	// Enabled turns the sqlite journal on. It is only written, never read back on start
	Enabled bool `mapstructure:"Enabled"`
	// DBPath is the path of the sqlite file
	DBPath string `mapstructure:"DBPath"`
	// RetentionPeriod is how long records are kept. 0 keeps them forever
	RetentionPeriod types.Duration `mapstructure:"RetentionPeriod"`
	// PruneInterval is how often old records are deleted
	PruneInterval types.Duration `mapstructure:"PruneInterval"`
}
