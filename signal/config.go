package signal

// Config of the signal builder
type Config struct {
	// Path is the informational route written in every signal. Empty means DefaultPath
	Path []string `mapstructure:"Path"`
}
