// Package claimreconciler periodically claims the yield of the signals accepted on-chain.
package claimreconciler

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/agglayer/cascadekit/contracts/cascade"
	"github.com/agglayer/cascadekit/journal"
	"github.com/agglayer/cascadekit/metrics"
	"github.com/agglayer/cascadekit/signal"
	cascadetypes "github.com/agglayer/cascadekit/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-collections/collections/queue"
)

const (
	alreadyClaimedMessage = "already claimed"

	OutcomeClaimed          = "claimed"
	OutcomeRemovedZeroYield = "removed-zero-yield"
)

var ErrInvalidPeriod = errors.New("claim reconciler period must be greater than zero")

// AlreadyClaimed() revert selector
var alreadyClaimedRevertCode = cascade.AlreadyClaimedSelector()

// Entry is a submitted signal waiting for its yield to be claimed
type Entry struct {
	Signal      *signal.Signal
	BlockNumber uint64
}

// EntrySnapshot is the exported view of a queued entry
type EntrySnapshot struct {
	Tag         string `json:"tag"`
	SignalID    string `json:"signalId"`
	BlockNumber uint64 `json:"blockNumber"`
}

// ClaimJournal stores claim outcomes
type ClaimJournal interface {
	RecordClaim(ctx context.Context, rec *journal.ClaimRecord) error
}

// ClaimReconciler owns the claim queue. Entries are added by the submission engine and removed
// here once claimed or once their yield is zero. Retries are unbounded.
type ClaimReconciler struct {
	logger   cascadetypes.Logger
	registry cascadetypes.SignalRegistry
	sender   cascadetypes.TxSender
	journal  ClaimJournal
	period   time.Duration
	gasLimit uint64
	fee      *big.Int

	mu    sync.Mutex
	queue *queue.Queue

	// serializes passes
	reconcileMu sync.Mutex
}

// New creates a claim reconciler. journal may be nil
func New(
	logger cascadetypes.Logger,
	cfg Config,
	registry cascadetypes.SignalRegistry,
	sender cascadetypes.TxSender,
	journal ClaimJournal,
) (*ClaimReconciler, error) {
	if cfg.Period.Duration <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidPeriod, cfg.Period.String())
	}
	return &ClaimReconciler{
		logger:   logger,
		registry: registry,
		sender:   sender,
		journal:  journal,
		period:   cfg.Period.Duration,
		gasLimit: cfg.GasLimit,
		fee:      new(big.Int).SetUint64(cfg.Fee),
		queue:    queue.New(),
	}, nil
}

// Enqueue appends an entry to the claim queue
func (c *ClaimReconciler) Enqueue(entry Entry) {
	c.mu.Lock()
	c.queue.Enqueue(entry)
	size := c.queue.Len()
	c.mu.Unlock()
	metrics.ClaimQueueSize(size)
}

// Len returns the number of queued entries
func (c *ClaimReconciler) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Len()
}

// Snapshot returns the queued entries in order
func (c *ClaimReconciler) Snapshot() []EntrySnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.queue.Len()
	res := make([]EntrySnapshot, 0, n)
	for i := 0; i < n; i++ {
		entry, ok := c.queue.Dequeue().(Entry)
		if !ok {
			continue
		}
		c.queue.Enqueue(entry)
		snap := EntrySnapshot{Tag: entry.Signal.Tag, BlockNumber: entry.BlockNumber}
		if id, err := entry.Signal.ID(); err == nil {
			snap.SignalID = id.Hex()
		}
		res = append(res, snap)
	}
	return res
}

// Start runs a reconciliation pass every period until ctx is done
func (c *ClaimReconciler) Start(ctx context.Context) {
	c.logger.Infof("starting claim reconciler, period %s", c.period.String())
	ticker := time.NewTicker(c.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("claim reconciler shutting down")
			return
		case <-ticker.C:
			c.Reconcile(ctx)
		}
	}
}

// Reconcile checks every queued entry once. A failure on one entry never stops the pass
func (c *ClaimReconciler) Reconcile(ctx context.Context) {
	c.reconcileMu.Lock()
	defer c.reconcileMu.Unlock()

	pending := c.drain()
	if len(pending) == 0 {
		return
	}
	c.logger.Debugf("reconciling %d claims", len(pending))

	kept := make([]Entry, 0, len(pending))
	for _, entry := range pending {
		if ctx.Err() != nil {
			kept = append(kept, entry)
			continue
		}
		if c.reconcileEntry(ctx, entry) {
			kept = append(kept, entry)
		}
	}
	c.restore(kept)
}

// reconcileEntry returns true when the entry must stay queued
func (c *ClaimReconciler) reconcileEntry(ctx context.Context, entry Entry) bool {
	s := entry.Signal
	text, err := s.Text()
	if err != nil {
		c.logger.Errorf("claim of %s: %v", s.Tag, err)
		return true
	}

	status, err := c.registry.GetSignalStatus(ctx, text)
	if err != nil {
		metrics.ClaimError()
		c.logger.Errorf("claim of %s: yield query failed: %v", s.Tag, err)
		return true
	}
	if status.Yield == nil || status.Yield.Sign() == 0 {
		c.logger.Infof("claim of %s (block %d): no yield, removing from queue", s.Tag, entry.BlockNumber)
		c.record(ctx, entry, OutcomeRemovedZeroYield, status.Yield, 0, common.Hash{})
		return false
	}

	nonce, err := c.sender.PendingNonce(ctx)
	if err != nil {
		metrics.ClaimError()
		c.logger.Errorf("claim of %s: %v", s.Tag, err)
		return true
	}
	data, err := cascade.PackClaimYield(text)
	if err != nil {
		c.logger.Errorf("claim of %s: %v", s.Tag, err)
		return true
	}

	txHash, err := c.sender.SendCall(ctx, c.registry.Address(), data, cascadetypes.CallOpts{
		Nonce:       nonce,
		GasLimit:    c.gasLimit,
		FeePerGas:   new(big.Int).Set(c.fee),
		PriorityFee: new(big.Int).Set(c.fee),
	})
	if err != nil {
		if isAlreadyClaimed(err) {
			// removed by the zero yield check of a later pass
			return true
		}
		metrics.ClaimError()
		c.logger.Errorf("claim of %s (block %d, nonce %d) failed: %v", s.Tag, entry.BlockNumber, nonce, err)
		return true
	}

	metrics.ClaimSent()
	c.logger.Infof("claimed yield %s of %s (block %d): tx %s, nonce %d",
		status.Yield.String(), s.Tag, entry.BlockNumber, txHash.Hex(), nonce)
	c.record(ctx, entry, OutcomeClaimed, status.Yield, nonce, txHash)
	return false
}

func (c *ClaimReconciler) record(ctx context.Context, entry Entry, outcome string,
	yield *big.Int, nonce uint64, txHash common.Hash) {
	if c.journal == nil {
		return
	}
	rec := &journal.ClaimRecord{
		Tag:      entry.Signal.Tag,
		BlockNum: entry.BlockNumber,
		Outcome:  outcome,
		Yield:    yield,
		Nonce:    nonce,
		TxHash:   txHash,
	}
	if id, err := entry.Signal.ID(); err == nil {
		rec.SignalID = id
	}
	if err := c.journal.RecordClaim(ctx, rec); err != nil {
		c.logger.Errorf("failed to journal claim of %s: %v", entry.Signal.Tag, err)
	}
}

// drain empties the queue
func (c *ClaimReconciler) drain() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries := make([]Entry, 0, c.queue.Len())
	for c.queue.Len() > 0 {
		if entry, ok := c.queue.Dequeue().(Entry); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// restore puts kept entries back ahead of the ones enqueued during the pass
func (c *ClaimReconciler) restore(kept []Entry) {
	c.mu.Lock()
	defer func() {
		size := c.queue.Len()
		c.mu.Unlock()
		metrics.ClaimQueueSize(size)
	}()
	fresh := queue.New()
	for _, entry := range kept {
		fresh.Enqueue(entry)
	}
	for c.queue.Len() > 0 {
		fresh.Enqueue(c.queue.Dequeue())
	}
	c.queue = fresh
}

func isAlreadyClaimed(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, alreadyClaimedMessage) ||
		(alreadyClaimedRevertCode != "" && strings.Contains(msg, alreadyClaimedRevertCode))
}

