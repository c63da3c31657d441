package signal

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Lineage links every signal to the last submitted one and numbers trade signals.
// It lives for the process lifetime only: a restart starts from counter 0 and parent 0x0.
type Lineage struct {
	mu            sync.Mutex
	counter       uint64
	lastSubmitted common.Hash
	submissions   uint64
}

// LineageSnapshot is a point in time view of a Lineage
type LineageSnapshot struct {
	Counter       uint64      `json:"counter"`
	LastSubmitted common.Hash `json:"lastSubmitted"`
	Submissions   uint64      `json:"submissions"`
}

// NewLineage returns an empty lineage
func NewLineage() *Lineage {
	return &Lineage{}
}

// NextTag advances the trade counter and returns its zero padded form
func (l *Lineage) NextTag() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counter++
	return fmt.Sprintf("%06d", l.counter)
}

// Parent returns the parent field for the next signal
func (l *Lineage) Parent() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lastSubmitted == (common.Hash{}) {
		return ZeroParent
	}
	return l.lastSubmitted.Hex()
}

// MarkSubmitted records the hash of the signal whose submission was just attempted
func (l *Lineage) MarkSubmitted(hash common.Hash) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastSubmitted = hash
	l.submissions++
}

// Snapshot returns the current state
func (l *Lineage) Snapshot() LineageSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return LineageSnapshot{
		Counter:       l.counter,
		LastSubmitted: l.lastSubmitted,
		Submissions:   l.submissions,
	}
}
