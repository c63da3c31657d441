package submitter

import (
	"errors"
	"math/big"
	"time"
)

const (
	// DefaultMaxAttempts is the number of sends tried for one signal
	DefaultMaxAttempts = 13
	// DefaultBackoffBase is the delay after the first transient rejection
	DefaultBackoffBase = 300 * time.Millisecond
	// maxBackoffShift keeps the exponential delay from overflowing
	maxBackoffShift = 20
)

// Policy bounds the fee escalation of a submission. Fees grow linearly per attempt while the
// delay between attempts grows exponentially.
type Policy struct {
	MaxAttempts int
	BaseFee     *big.Int
	FeeStep     *big.Int
	MaxFee      *big.Int
	GasLimit    uint64
	// Backoff returns the delay to wait before attempt number `attempt` (1 based)
	Backoff func(attempt int) time.Duration
}

// ExponentialBackoff returns base * 2^attempt
func ExponentialBackoff(base time.Duration) func(attempt int) time.Duration {
	return func(attempt int) time.Duration {
		if attempt < 0 {
			attempt = 0
		}
		if attempt > maxBackoffShift {
			attempt = maxBackoffShift
		}
		return base << attempt
	}
}

// NewPolicy builds the policy described by cfg
func NewPolicy(cfg Config) Policy {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	backoffBase := cfg.BackoffBase.Duration
	if backoffBase <= 0 {
		backoffBase = DefaultBackoffBase
	}
	return Policy{
		MaxAttempts: maxAttempts,
		BaseFee:     new(big.Int).SetUint64(cfg.BaseFee),
		FeeStep:     new(big.Int).SetUint64(cfg.FeeStep),
		MaxFee:      new(big.Int).SetUint64(cfg.MaxFee),
		GasLimit:    cfg.GasLimit,
		Backoff:     ExponentialBackoff(backoffBase),
	}
}

// Validate checks that the policy can be used
func (p Policy) Validate() error {
	switch {
	case p.MaxAttempts <= 0:
		return errors.New("max attempts must be positive")
	case p.BaseFee == nil || p.FeeStep == nil || p.MaxFee == nil:
		return errors.New("base fee, fee step and max fee are required")
	case p.BaseFee.Cmp(p.MaxFee) > 0:
		return errors.New("base fee is above max fee")
	case p.GasLimit == 0:
		return errors.New("gas limit must be positive")
	case p.Backoff == nil:
		return errors.New("backoff function is required")
	}
	return nil
}
