// Package submitter sends signals to the cascade contract with fee escalating retries.
package submitter

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/agglayer/cascadekit/claimreconciler"
	"github.com/agglayer/cascadekit/contracts/cascade"
	"github.com/agglayer/cascadekit/journal"
	"github.com/agglayer/cascadekit/metrics"
	"github.com/agglayer/cascadekit/signal"
	cascadetypes "github.com/agglayer/cascadekit/types"
	"github.com/ethereum/go-ethereum/common"
)

// Outcome is the terminal state of a submission
type Outcome string

const (
	OutcomeActiveSkip       Outcome = "active-skip"
	OutcomeSubmitted        Outcome = "submitted"
	OutcomeGasExceeded      Outcome = "gas-exceeded"
	OutcomeRetriesExhausted Outcome = "retries-exhausted"
	OutcomeFatalError       Outcome = "fatal-error"
)

// Result describes how a submission ended
type Result struct {
	Outcome  Outcome
	SignalID common.Hash
	// Attempts is the number of transactions sent
	Attempts int
	// Fee is the fee of the last attempt, or the fee that exceeded the maximum
	Fee    *big.Int
	Nonce  uint64
	TxHash common.Hash
	Err    error
}

// ClaimEnqueuer receives the signals accepted on-chain
type ClaimEnqueuer interface {
	Enqueue(entry claimreconciler.Entry)
}

// SubmissionJournal stores terminal outcomes
type SubmissionJournal interface {
	RecordSubmission(ctx context.Context, rec *journal.SubmissionRecord) error
}

// Engine runs the submission state machine of every signal
type Engine struct {
	logger   cascadetypes.Logger
	policy   Policy
	registry cascadetypes.SignalRegistry
	sender   cascadetypes.TxSender
	queue    ClaimEnqueuer
	journal  SubmissionJournal
}

// New creates a submission engine. journal may be nil
func New(
	logger cascadetypes.Logger,
	policy Policy,
	registry cascadetypes.SignalRegistry,
	sender cascadetypes.TxSender,
	queue ClaimEnqueuer,
	journal SubmissionJournal,
) (*Engine, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid submission policy: %w", err)
	}
	return &Engine{
		logger:   logger,
		policy:   policy,
		registry: registry,
		sender:   sender,
		queue:    queue,
		journal:  journal,
	}, nil
}

// Submit drives s to a terminal outcome. The active status check is best-effort deduplication:
// two processes, or a reveal mined right after the check, can both pass it.
func (e *Engine) Submit(ctx context.Context, s *signal.Signal) Result {
	res := e.submit(ctx, s)
	e.finish(ctx, s, res)
	return res
}

func (e *Engine) submit(ctx context.Context, s *signal.Signal) Result {
	res := Result{Fee: new(big.Int).Set(e.policy.BaseFee)}

	text, err := s.Text()
	if err != nil {
		return e.fatal(res, err)
	}
	if res.SignalID, err = s.ID(); err != nil {
		return e.fatal(res, err)
	}

	status, err := e.registry.GetSignalStatus(ctx, text)
	if err != nil {
		return e.fatal(res, fmt.Errorf("status query failed: %w", err))
	}
	if status.Active {
		res.Outcome = OutcomeActiveSkip
		return res
	}

	data, err := cascade.PackEmitCascade(text, s.FeeTier)
	if err != nil {
		return e.fatal(res, err)
	}

	fee := new(big.Int).Set(e.policy.BaseFee)
	for attempt := 0; attempt < e.policy.MaxAttempts; {
		res.Fee = new(big.Int).Set(fee)
		if fee.Cmp(e.policy.MaxFee) > 0 {
			res.Outcome = OutcomeGasExceeded
			return res
		}

		nonce, err := e.sender.PendingNonce(ctx)
		if err != nil {
			return e.fatal(res, err)
		}
		res.Nonce = nonce
		res.Attempts++

		txHash, err := e.sender.SendCall(ctx, e.registry.Address(), data, cascadetypes.CallOpts{
			Nonce:       nonce,
			GasLimit:    e.policy.GasLimit,
			FeePerGas:   new(big.Int).Set(fee),
			PriorityFee: new(big.Int).Set(fee),
		})
		if err == nil {
			res.Outcome = OutcomeSubmitted
			res.TxHash = txHash
			e.queue.Enqueue(claimreconciler.Entry{Signal: s, BlockNumber: s.Blk})
			return res
		}
		if !cascadetypes.IsTransientSendError(err) {
			return e.fatal(res, err)
		}

		fee.Add(fee, e.policy.FeeStep)
		attempt++
		metrics.SendRetry()
		e.logger.Warnf("%s rejected (attempt %d, nonce %d, fee %s): %v. Retrying with fee %s",
			s.String(), attempt, nonce, res.Fee.String(), err, fee.String())

		// the next attempt would stop at the ceiling, no need to wait for it
		if attempt < e.policy.MaxAttempts && fee.Cmp(e.policy.MaxFee) > 0 {
			res.Fee = new(big.Int).Set(fee)
			res.Outcome = OutcomeGasExceeded
			return res
		}

		if err := sleepCtx(ctx, e.policy.Backoff(attempt)); err != nil {
			return e.fatal(res, fmt.Errorf("retry loop stopped: %w", err))
		}
	}

	res.Outcome = OutcomeRetriesExhausted
	return res
}

func (e *Engine) fatal(res Result, err error) Result {
	res.Outcome = OutcomeFatalError
	res.Err = err
	return res
}

// finish logs, counts and journals the terminal outcome
func (e *Engine) finish(ctx context.Context, s *signal.Signal, res Result) {
	metrics.SubmissionOutcome(string(res.Outcome))

	switch res.Outcome {
	case OutcomeSubmitted:
		e.logger.Infof("%s submitted: id %s, tx %s, nonce %d, fee %s, attempts %d",
			s.String(), res.SignalID.Hex(), res.TxHash.Hex(), res.Nonce, res.Fee.String(), res.Attempts)
	case OutcomeActiveSkip:
		e.logger.Infof("%s already active on-chain, skipping: id %s", s.String(), res.SignalID.Hex())
	case OutcomeGasExceeded:
		e.logger.Warnf("%s not submitted, fee %s above max %s: id %s, last nonce %d, attempts %d",
			s.String(), res.Fee.String(), e.policy.MaxFee.String(), res.SignalID.Hex(), res.Nonce, res.Attempts)
	case OutcomeRetriesExhausted:
		e.logger.Warnf("%s not submitted after %d attempts: id %s, last nonce %d, fee %s",
			s.String(), res.Attempts, res.SignalID.Hex(), res.Nonce, res.Fee.String())
	case OutcomeFatalError:
		e.logger.Errorf("%s failed: id %s, nonce %d, attempts %d: %v",
			s.String(), res.SignalID.Hex(), res.Nonce, res.Attempts, res.Err)
	}

	if e.journal == nil {
		return
	}
	rec := &journal.SubmissionRecord{
		SignalID: res.SignalID,
		Tag:      s.Tag,
		Kind:     string(s.Kind()),
		BlockNum: s.Blk,
		Outcome:  string(res.Outcome),
		Attempts: res.Attempts,
		Fee:      res.Fee,
		Nonce:    res.Nonce,
		TxHash:   res.TxHash,
	}
	if res.Err != nil {
		rec.Error = res.Err.Error()
	}
	if err := e.journal.RecordSubmission(ctx, rec); err != nil {
		e.logger.Errorf("failed to journal submission of %s: %v", s.Tag, err)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
