package statusservice

import (
	"github.com/agglayer/cascadekit/claimreconciler"
	"github.com/agglayer/cascadekit/dispatcher"
	"github.com/agglayer/cascadekit/journal"
)

// StatusResult is the response of /status
type StatusResult struct {
	Version        string            `json:"version"`
	Dispatcher     dispatcher.Status `json:"dispatcher"`
	ClaimQueueSize int               `json:"claimQueueSize"`
	JournalEnabled bool              `json:"journalEnabled"`
}

// ClaimsResult is the response of /claims. History is only filled when the journal is enabled
type ClaimsResult struct {
	Pending []claimreconciler.EntrySnapshot `json:"pending"`
	Count   int                             `json:"count"`
	History []*journal.ClaimRecord          `json:"history,omitempty"`
}

// BridgeRequestsResult is the response of /bridge-requests
type BridgeRequestsResult struct {
	BridgeRequests []dispatcher.BridgeRequestRecord `json:"bridgeRequests"`
	Count          int                              `json:"count"`
}

// SubmissionsResult is the response of /submissions
type SubmissionsResult struct {
	Submissions []*journal.SubmissionRecord `json:"submissions"`
	Count       int                         `json:"count"`
}
