package statusservice

import (
	"context"

	"github.com/agglayer/cascadekit/claimreconciler"
	"github.com/agglayer/cascadekit/dispatcher"
	"github.com/agglayer/cascadekit/journal"
)

// Dispatcherer exposes the progress of the block dispatcher
type Dispatcherer interface {
	Status() dispatcher.Status
	BridgeRequests() []dispatcher.BridgeRequestRecord
}

// ClaimQueuer exposes the pending claims
type ClaimQueuer interface {
	Snapshot() []claimreconciler.EntrySnapshot
}

// JournalReader reads the latest terminal outcomes
type JournalReader interface {
	LastSubmissions(ctx context.Context, limit int) ([]*journal.SubmissionRecord, error)
	LastClaims(ctx context.Context, limit int) ([]*journal.ClaimRecord, error)
}
