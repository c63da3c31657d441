// Package signal builds the records emitted to the cascade contract and derives their identifiers.
package signal

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrDecode is returned when a log or a transaction payload does not have the expected shape
	ErrDecode = errors.New("decode failure")
)

// Kind tells where a signal was detected
type Kind string

const (
	KindTrade  Kind = "trade"
	KindBridge Kind = "bridge"
)

// GasBucket is the relative gas usage class of a trade transaction
type GasBucket string

const (
	GasLow  GasBucket = "low"
	GasMid  GasBucket = "mid"
	GasHigh GasBucket = "high"
)

const (
	// BridgeIntent is the intent of every bridge signal
	BridgeIntent = "bridge_incoming"
	// ZeroParent is the parent of the first signal submitted by the process
	ZeroParent = "0x0"
)

// Signal is the record submitted to the cascade contract. The field order is the canonical
// serialization order and must not change.
type Signal struct {
	Tag        string    `json:"tag"`
	Intent     string    `json:"intent"`
	Path       []string  `json:"path"`
	In         string    `json:"in,omitempty"`
	Out        string    `json:"out,omitempty"`
	Dead       string    `json:"dead,omitempty"`
	Amount     string    `json:"amount,omitempty"`
	BridgeFrom string    `json:"bridgeFrom,omitempty"`
	Kws        string    `json:"kws"`
	Gas        GasBucket `json:"gas,omitempty"`
	Phi        uint64    `json:"phi"`
	Blk        uint64    `json:"blk"`
	Ts         int64     `json:"ts"`
	Parent     string    `json:"parent"`
	Hash       string    `json:"hash,omitempty"`
	Child      string    `json:"child,omitempty"`

	// FeeTier travels with the record and is passed to emitCascade, it is not serialized
	FeeTier uint64 `json:"-"`
}

// Kind returns whether the signal comes from a bridge log or a trade transaction
func (s *Signal) Kind() Kind {
	if s.Intent == BridgeIntent {
		return KindBridge
	}
	return KindTrade
}

// Marshal returns the canonical text of the signal
func Marshal(s *Signal) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal signal %s: %w", s.Tag, err)
	}
	return string(b), nil
}

// Unmarshal parses a canonical signal text
func Unmarshal(text string) (*Signal, error) {
	s := &Signal{}
	if err := json.Unmarshal([]byte(text), s); err != nil {
		return nil, fmt.Errorf("%w: invalid signal text: %w", ErrDecode, err)
	}
	return s, nil
}

// Text returns the canonical text, the value passed on-chain
func (s *Signal) Text() (string, error) {
	return Marshal(s)
}

// WithoutIdentifiers returns a copy of the signal with hash and child removed
func (s *Signal) WithoutIdentifiers() *Signal {
	c := *s
	c.Path = append([]string(nil), s.Path...)
	c.Hash = ""
	c.Child = ""
	return &c
}

// ID returns the hash of the signal content, excluding hash and child
func (s *Signal) ID() (common.Hash, error) {
	text, err := Marshal(s.WithoutIdentifiers())
	if err != nil {
		return common.Hash{}, err
	}
	return HashSignal(text), nil
}

// String is used by the logs
func (s *Signal) String() string {
	return fmt.Sprintf("signal %s (intent: %s, block: %d, feeTier: %d)", s.Tag, s.Intent, s.Blk, s.FeeTier)
}
