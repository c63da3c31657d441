// Package blocknotifier turns a polled block number into a stream of new block events.
package blocknotifier

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/agglayer/cascadekit/common"
	"github.com/agglayer/cascadekit/etherman"
	cascadetypes "github.com/agglayer/cascadekit/types"
)

const (
	minBlockInterval  = time.Second
	// percentage of the block period waited before asking for the next block
	percentage        = 80
	subscribersBuffer = 100
)

var (
	timeNowFunc = time.Now
)

type blockNotifierPollingInternalStatus struct {
	lastBlockSeen     uint64
	lastBlockTime     time.Time      // first time the lastBlockSeen was seen
	previousBlockTime *time.Duration // time between the last two consecutive blocks
}

func (s *blockNotifierPollingInternalStatus) String() string {
	if s == nil {
		return "nil"
	}
	blockTime := "unknown"
	if s.previousBlockTime != nil {
		blockTime = s.previousBlockTime.String()
	}
	return fmt.Sprintf("lastBlockSeen: %d, lastBlockTime: %s, blockTime: %s",
		s.lastBlockSeen, s.lastBlockTime.Format(time.RFC3339), blockTime)
}

// BlockNotifierPolling polls the configured finality block and publishes every new block number
type BlockNotifierPolling struct {
	ethClient     HeaderReader
	blockFinality *big.Int
	config        Config
	mu            sync.Mutex
	lastStatus    *blockNotifierPollingInternalStatus
	logger        cascadetypes.Logger
	subscribers   *common.GenericSubscriberImpl[EventNewBlock]
}

// NewBlockNotifierPolling creates a notifier. subscriber may be nil
func NewBlockNotifierPolling(ethClient HeaderReader,
	config Config,
	logger cascadetypes.Logger,
	subscriber *common.GenericSubscriberImpl[EventNewBlock]) (*BlockNotifierPolling, error) {
	if subscriber == nil {
		subscriber = common.NewGenericSubscriberImpl[EventNewBlock](subscribersBuffer)
	}
	finality := config.BlockFinality
	if finality.IsEmpty() {
		finality = etherman.LatestBlock
		config.BlockFinality = finality
	}
	blockFinality, err := finality.ToBlockNum()
	if err != nil {
		return nil, fmt.Errorf("failed to convert block finality type to block number: %w", err)
	}

	return &BlockNotifierPolling{
		ethClient:     ethClient,
		blockFinality: blockFinality,
		config:        config,
		logger:        logger,
		subscribers:   subscriber,
	}, nil
}

func (b *BlockNotifierPolling) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	res := fmt.Sprintf("BlockNotifierPolling: finality=%s", b.config.BlockFinality.String())
	if b.lastStatus != nil {
		res += fmt.Sprintf(" lastStatus=%s", b.lastStatus.String())
	}
	return res
}

// Subscribe returns a channel receiving every new block
func (b *BlockNotifierPolling) Subscribe(id string) <-chan EventNewBlock {
	return b.subscribers.Subscribe(id)
}

// GetCurrentBlockNumber returns the last block seen, 0 before the first poll
func (b *BlockNotifierPolling) GetCurrentBlockNumber() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.lastStatus == nil {
		return 0
	}
	return b.lastStatus.lastBlockSeen
}

// Start polls until ctx is done. The block present at start up is not published
func (b *BlockNotifierPolling) Start(ctx context.Context) {
	var status *blockNotifierPollingInternalStatus
	for {
		delay, newStatus, events := b.step(ctx, status)
		status = newStatus
		b.setLastStatus(status)
		for _, event := range events {
			if err := b.subscribers.PublishWithContext(ctx, event); err != nil {
				return
			}
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

func (b *BlockNotifierPolling) setLastStatus(status *blockNotifierPollingInternalStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastStatus = status
}

func (b *BlockNotifierPolling) step(ctx context.Context,
	previousState *blockNotifierPollingInternalStatus) (time.Duration,
	*blockNotifierPollingInternalStatus, []EventNewBlock) {
	currentBlock, err := b.ethClient.HeaderByNumber(ctx, b.blockFinality)
	if err == nil && currentBlock == nil {
		err = fmt.Errorf("failed to get block number: return a nil block")
	}
	if err != nil {
		b.logger.Errorf("Failed to get block number %s: %v", b.config.BlockFinality.String(), err)
		newState := previousState
		if newState == nil {
			newState = &blockNotifierPollingInternalStatus{}
		}
		return b.nextBlockRequestDelay(previousState, err), newState, nil
	}
	blockNumber := currentBlock.Number.Uint64()
	now := timeNowFunc()

	if previousState == nil || previousState.lastBlockTime.IsZero() {
		newState := &blockNotifierPollingInternalStatus{
			lastBlockSeen: blockNumber,
			lastBlockTime: now,
		}
		return b.nextBlockRequestDelay(newState, nil), newState, nil
	}

	if blockNumber <= previousState.lastBlockSeen {
		if blockNumber < previousState.lastBlockSeen {
			b.logger.Warnf("Block number went back [finality:%s]: %d -> %d. Waiting for block %d",
				b.config.BlockFinality.String(), previousState.lastBlockSeen, blockNumber, previousState.lastBlockSeen+1)
		}
		return b.nextBlockRequestDelay(previousState, nil), previousState, nil
	}

	newState := &blockNotifierPollingInternalStatus{
		lastBlockSeen: blockNumber,
		lastBlockTime: now,
	}
	from := previousState.lastBlockSeen + 1
	if blockNumber == from {
		period := now.Sub(previousState.lastBlockTime)
		newState.previousBlockTime = &period
	} else {
		if b.config.BlockFinality == etherman.LatestBlock {
			b.logger.Warnf("Missed block(s) [finality:%s]: %d -> %d",
				b.config.BlockFinality.String(), previousState.lastBlockSeen, blockNumber)
		}
		if b.config.MaxCatchUpBlocks > 0 && blockNumber-from+1 > b.config.MaxCatchUpBlocks {
			skipTo := blockNumber - b.config.MaxCatchUpBlocks + 1
			b.logger.Warnf("Skipping blocks %d to %d, catch up is bounded to %d blocks",
				from, skipTo-1, b.config.MaxCatchUpBlocks)
			from = skipTo
		}
	}

	var blockRate time.Duration
	if newState.previousBlockTime != nil {
		blockRate = *newState.previousBlockTime
	}
	events := make([]EventNewBlock, 0, blockNumber-from+1)
	for n := from; n <= blockNumber; n++ {
		events = append(events, EventNewBlock{
			BlockNumber:       n,
			BlockFinalityType: b.config.BlockFinality,
			BlockRate:         blockRate,
		})
	}
	return b.nextBlockRequestDelay(newState, nil), newState, events
}

func (b *BlockNotifierPolling) nextBlockRequestDelay(status *blockNotifierPollingInternalStatus,
	err error) time.Duration {
	if b.config.CheckNewBlockInterval.Duration > 0 {
		return b.config.CheckNewBlockInterval.Duration
	}
	if err != nil || status == nil || status.previousBlockTime == nil {
		return minBlockInterval
	}
	expectedNextBlock := status.lastBlockTime.Add(*status.previousBlockTime)
	delay := expectedNextBlock.Sub(timeNowFunc()) * percentage / 100
	if delay < minBlockInterval {
		return minBlockInterval
	}
	return delay
}
