package rpc

import (
	"context"

	"github.com/agglayer/cascadekit/claimreconciler"
	"github.com/agglayer/cascadekit/dispatcher"
	"github.com/agglayer/cascadekit/journal"
)

type Dispatcherer interface {
	Status() dispatcher.Status
	BridgeRequests() []dispatcher.BridgeRequestRecord
}

type ClaimQueuer interface {
	Snapshot() []claimreconciler.EntrySnapshot
}

type JournalReader interface {
	LastSubmissions(ctx context.Context, limit int) ([]*journal.SubmissionRecord, error)
	LastClaims(ctx context.Context, limit int) ([]*journal.ClaimRecord, error)
}
