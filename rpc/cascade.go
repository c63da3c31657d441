package rpc

import (
	"context"
	"fmt"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/agglayer/cascadekit/claimreconciler"
	"github.com/agglayer/cascadekit/dispatcher"
	"github.com/agglayer/cascadekit/journal"
	"github.com/agglayer/cascadekit/log"
	"github.com/agglayer/cascadekit/signal"
	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	// CASCADE is the namespace of the cascade service
	CASCADE   = "cascade"
	meterName = "github.com/agglayer/cascadekit/rpc"

	defaultLimit = 20
	maxLimit     = 200
)

// CascadeEndpoints contains implementations for the "cascade" RPC endpoints
type CascadeEndpoints struct {
	logger      *log.Logger
	meter       metric.Meter
	readTimeout time.Duration
	version     string
	dispatcher  Dispatcherer
	claims      ClaimQueuer
	journal     JournalReader
}

// NewCascadeEndpoints returns CascadeEndpoints. journal may be nil
func NewCascadeEndpoints(
	logger *log.Logger,
	readTimeout time.Duration,
	version string,
	dispatcher Dispatcherer,
	claims ClaimQueuer,
	journal JournalReader,
) *CascadeEndpoints {
	return &CascadeEndpoints{
		logger:      logger,
		meter:       otel.Meter(meterName),
		readTimeout: readTimeout,
		version:     version,
		dispatcher:  dispatcher,
		claims:      claims,
		journal:     journal,
	}
}

// StatusResult contains the progress of the relayer
type StatusResult struct {
	Version        string            `json:"version"`
	Dispatcher     dispatcher.Status `json:"dispatcher"`
	ClaimQueueSize int               `json:"claimQueueSize"`
}

// ClaimsResult contains the pending claims
type ClaimsResult struct {
	Claims []claimreconciler.EntrySnapshot `json:"claims"`
	Count  int                             `json:"count"`
}

// BridgeRequestsResult contains the cached bridge requests
type BridgeRequestsResult struct {
	BridgeRequests []dispatcher.BridgeRequestRecord `json:"bridgeRequests"`
	Count          int                              `json:"count"`
}

// SubmissionsResult contains the latest journaled submissions
type SubmissionsResult struct {
	Submissions []*journal.SubmissionRecord `json:"submissions"`
	Count       int                         `json:"count"`
}

// DecodedSignal is a signal parsed from its canonical text
type DecodedSignal struct {
	Signal *signal.Signal `json:"signal"`
	ID     common.Hash    `json:"id"`
	Kind   signal.Kind    `json:"kind"`
}

// GetStatus returns the dispatcher progress and the size of the claim queue
func (c *CascadeEndpoints) GetStatus() (interface{}, rpc.Error) {
	c.count("get_status")
	return &StatusResult{
		Version:        c.version,
		Dispatcher:     c.dispatcher.Status(),
		ClaimQueueSize: len(c.claims.Snapshot()),
	}, nil
}

// GetClaims returns the claims waiting for the next reconciliation pass
func (c *CascadeEndpoints) GetClaims() (interface{}, rpc.Error) {
	c.count("get_claims")
	claims := c.claims.Snapshot()
	return &ClaimsResult{Claims: claims, Count: len(claims)}, nil
}

// GetBridgeRequests returns the bridge requests seen in the cache retention window
func (c *CascadeEndpoints) GetBridgeRequests() (interface{}, rpc.Error) {
	c.count("get_bridge_requests")
	reqs := c.dispatcher.BridgeRequests()
	return &BridgeRequestsResult{BridgeRequests: reqs, Count: len(reqs)}, nil
}

// GetSubmissions returns the latest submission outcomes recorded by the journal
func (c *CascadeEndpoints) GetSubmissions(limit *uint32) (interface{}, rpc.Error) {
	c.logger.Debugf("GetSubmissions invoked (limit=%v)", limit)
	c.count("get_submissions")
	if c.journal == nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, "the outcome journal is disabled")
	}
	n := defaultLimit
	if limit != nil {
		if *limit == 0 || *limit > maxLimit {
			return nil, rpc.NewRPCError(rpc.InvalidRequestErrorCode,
				fmt.Sprintf("limit must be between 1 and %d", maxLimit))
		}
		n = int(*limit)
	}

	ctx, cancel := c.requestContext()
	defer cancel()
	subs, err := c.journal.LastSubmissions(ctx, n)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get submissions, error: %s", err))
	}
	return &SubmissionsResult{Submissions: subs, Count: len(subs)}, nil
}

// DecodeSignal parses the canonical text of a signal and returns it with its identifier
func (c *CascadeEndpoints) DecodeSignal(text string) (interface{}, rpc.Error) {
	c.count("decode_signal")
	s, err := signal.Unmarshal(text)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.InvalidParamsErrorCode, err.Error())
	}
	id, err := s.ID()
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, err.Error())
	}
	return &DecodedSignal{Signal: s, ID: id, Kind: s.Kind()}, nil
}

func (c *CascadeEndpoints) requestContext() (context.Context, context.CancelFunc) {
	if c.readTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.readTimeout)
}

func (c *CascadeEndpoints) count(counterName string) {
	counter, err := c.meter.Int64Counter(counterName)
	if err != nil {
		c.logger.Warnf("failed to create %s counter: %s", counterName, err)
		return
	}
	counter.Add(context.Background(), 1)
}
