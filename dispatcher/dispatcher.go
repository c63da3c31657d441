// Package dispatcher turns every new block into bridge and trade signals and hands them, one at a
// time, to the submission engine.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/agglayer/cascadekit/blocknotifier"
	cascadecommon "github.com/agglayer/cascadekit/common"
	"github.com/agglayer/cascadekit/contracts/bridge"
	"github.com/agglayer/cascadekit/metrics"
	"github.com/agglayer/cascadekit/signal"
	"github.com/agglayer/cascadekit/submitter"
	cascadetypes "github.com/agglayer/cascadekit/types"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const subscriberName = "dispatcher"

// ChainReader fetches the logs and transactions of a block
type ChainReader interface {
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
}

// Submitter drives one signal to a terminal outcome
type Submitter interface {
	Submit(ctx context.Context, s *signal.Signal) submitter.Result
}

// BlockSubscriber delivers new blocks in ascending order
type BlockSubscriber interface {
	Subscribe(id string) <-chan blocknotifier.EventNewBlock
}

// LogAppenderMap routes a bridge log to its handler by topic0
type LogAppenderMap map[common.Hash]func(ctx context.Context, blockNum uint64, l types.Log) error

// GetTopics returns the topics handled by the map
func (m LogAppenderMap) GetTopics() []common.Hash {
	topics := make([]common.Hash, 0, len(m))
	for topic := range m {
		topics = append(topics, topic)
	}
	return topics
}

// Status is a point in time view of the dispatcher
type Status struct {
	LastBlock       uint64                 `json:"lastBlock"`
	LastProcessedAt time.Time              `json:"lastProcessedAt"`
	BridgeCacheSize int                    `json:"bridgeCacheSize"`
	Lineage         signal.LineageSnapshot `json:"lineage"`
}

// Dispatcher processes blocks strictly one after the other
type Dispatcher struct {
	logger    cascadetypes.Logger
	cfg       Config
	chain     ChainReader
	submitter Submitter
	builder   *signal.Builder
	lineage   *signal.Lineage
	filterer  *bridge.Filterer
	txSigner  types.Signer
	selectors map[[4]byte]struct{}
	appender  LogAppenderMap
	cache     *bridgeCache
	now       func() time.Time

	mu              sync.Mutex
	startedAt       time.Time
	lastBlock       uint64
	lastProcessedAt time.Time
}

// New creates a dispatcher for the chain with id chainID
func New(
	logger cascadetypes.Logger,
	cfg Config,
	chainID uint64,
	chain ChainReader,
	sub Submitter,
	builder *signal.Builder,
	lineage *signal.Lineage,
) (*Dispatcher, error) {
	cfg = cfg.withDefaults()
	if cfg.TradeAddr == (common.Address{}) && cfg.BridgeAddr == (common.Address{}) {
		return nil, errors.New("at least one of the trade and bridge addresses is required")
	}
	selectors, err := parseSelectors(cfg.Selectors)
	if err != nil {
		return nil, err
	}
	filterer, err := bridge.NewFilterer(cfg.BridgeAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to create bridge log decoder: %w", err)
	}
	if builder == nil {
		builder = signal.NewBuilder(nil, nil)
	}
	if lineage == nil {
		lineage = signal.NewLineage()
	}

	d := &Dispatcher{
		logger:    logger,
		cfg:       cfg,
		chain:     chain,
		submitter: sub,
		builder:   builder,
		lineage:   lineage,
		filterer:  filterer,
		txSigner:  types.LatestSignerForChainID(new(big.Int).SetUint64(chainID)),
		selectors: selectors,
		cache:     newBridgeCache(),
		now:       time.Now,
	}
	d.appender = d.buildAppender()
	return d, nil
}

func (d *Dispatcher) buildAppender() LogAppenderMap {
	appender := make(LogAppenderMap)

	appender[bridge.BridgeRequestTopic] = func(ctx context.Context, blockNum uint64, l types.Log) error {
		event, err := d.filterer.ParseBridgeRequest(l)
		if err != nil {
			return fmt.Errorf("%w: %w", signal.ErrDecode, err)
		}
		d.cache.add(BridgeRequestRecord{
			BlockNumber: blockNum,
			From:        event.From,
			Amount:      event.Amount,
			Timestamp:   d.now(),
		})
		s, err := d.builder.BuildBridge(d.lineage, signal.BridgeRequest{
			BlockNumber: blockNum,
			From:        event.From,
			Amount:      event.Amount,
		})
		if err != nil {
			return err
		}
		d.logger.Infof("bridge request detected at block %d: from %s, amount %s, tx %s",
			blockNum, event.From.Hex(), event.Amount.String(), l.TxHash.Hex())
		d.submit(ctx, s)
		return nil
	}

	appender[bridge.BridgeCompleteTopic] = func(_ context.Context, blockNum uint64, l types.Log) error {
		event, err := d.filterer.ParseBridgeComplete(l)
		if err != nil {
			return fmt.Errorf("%w: %w", signal.ErrDecode, err)
		}
		d.logger.Infof("bridge complete at block %d: request %s, amount %s",
			blockNum, common.Hash(event.RequestId).Hex(), event.Amount.String())
		return nil
	}

	return appender
}

// Start processes the blocks delivered by notifier until ctx is done
func (d *Dispatcher) Start(ctx context.Context, notifier BlockSubscriber) {
	ch := notifier.Subscribe(subscriberName)
	d.mu.Lock()
	d.startedAt = d.now()
	d.mu.Unlock()
	d.logger.Infof("dispatcher started: trade contract %s, bridge contract %s, %d selectors",
		d.cfg.TradeAddr.Hex(), d.cfg.BridgeAddr.Hex(), len(d.selectors))

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("dispatcher stopped")
			return
		case ev := <-ch:
			d.ProcessBlock(ctx, ev.BlockNumber)
		}
	}
}

// ProcessBlock handles the bridge logs and then the trade transactions of blockNum. No error in
// one event prevents the others from being processed.
func (d *Dispatcher) ProcessBlock(ctx context.Context, blockNum uint64) {
	d.logger.Debugf("processing block %d", blockNum)

	if d.cfg.BridgeAddr != (common.Address{}) {
		d.processBridgeLogs(ctx, blockNum)
	}
	if d.cfg.TradeAddr != (common.Address{}) {
		d.processTrades(ctx, blockNum)
	}

	size := d.cache.purge(d.now().Add(-d.cfg.BridgeCacheRetention.Duration))
	metrics.BridgeCacheSize(size)
	metrics.LastBlockProcessed(blockNum)

	d.mu.Lock()
	d.lastBlock = blockNum
	d.lastProcessedAt = d.now()
	d.mu.Unlock()
}

func (d *Dispatcher) processBridgeLogs(ctx context.Context, blockNum uint64) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(blockNum),
		ToBlock:   new(big.Int).SetUint64(blockNum),
		Addresses: []common.Address{d.cfg.BridgeAddr},
		Topics:    [][]common.Hash{d.appender.GetTopics()},
	}
	var logs []types.Log
	err := d.retry(ctx, func() error {
		var err error
		logs, err = d.chain.FilterLogs(ctx, query)
		return err
	})
	if err != nil {
		d.logger.Errorf("failed to fetch bridge logs of block %d: %v", blockNum, err)
		return
	}

	for _, l := range logs {
		if len(l.Topics) == 0 {
			continue
		}
		handler, ok := d.appender[l.Topics[0]]
		if !ok {
			d.logger.Debugf("ignoring log with topic %s at block %d", l.Topics[0].Hex(), blockNum)
			continue
		}
		if err := handler(ctx, blockNum, l); err != nil {
			d.eventError(blockNum, fmt.Sprintf("log %d of tx %s", l.Index, l.TxHash.Hex()), err)
		}
	}
}

func (d *Dispatcher) processTrades(ctx context.Context, blockNum uint64) {
	var block *types.Block
	err := d.retry(ctx, func() error {
		var err error
		block, err = d.chain.BlockByNumber(ctx, new(big.Int).SetUint64(blockNum))
		if err == nil && block == nil {
			err = fmt.Errorf("block %d not found", blockNum)
		}
		return err
	})
	if err != nil {
		d.logger.Errorf("failed to fetch block %d: %v", blockNum, err)
		return
	}

	txs := block.Transactions()
	header := block.Header()
	for _, tx := range txs {
		if !d.isTrade(tx) {
			continue
		}
		if err := d.processTrade(ctx, tx, header, len(txs)); err != nil {
			d.eventError(blockNum, "tx "+tx.Hash().Hex(), err)
		}
	}
}

func (d *Dispatcher) isTrade(tx *types.Transaction) bool {
	to := tx.To()
	if to == nil || *to != d.cfg.TradeAddr {
		return false
	}
	sel, ok := signal.Selector(tx.Data())
	if !ok {
		return false
	}
	_, allowed := d.selectors[sel]
	return allowed
}

func (d *Dispatcher) processTrade(ctx context.Context, tx *types.Transaction, header *types.Header, txCount int) error {
	from, err := types.Sender(d.txSigner, tx)
	if err != nil {
		return fmt.Errorf("%w: cannot recover sender: %w", signal.ErrDecode, err)
	}
	s, err := d.builder.BuildTrade(d.lineage, signal.TradeTx{
		Tx:      tx,
		From:    from,
		Header:  header,
		TxCount: txCount,
	})
	if err != nil {
		return err
	}
	d.logger.Infof("trade detected at block %d: tx %s from %s, intent %s",
		header.Number.Uint64(), tx.Hash().Hex(), from.Hex(), s.Intent)
	d.submit(ctx, s)
	return nil
}

// submit hands s to the engine and links the next signals to it once the attempt is over
func (d *Dispatcher) submit(ctx context.Context, s *signal.Signal) {
	metrics.SignalDetected(string(s.Kind()))
	res := d.submitter.Submit(ctx, s)
	if res.SignalID != (common.Hash{}) {
		d.lineage.MarkSubmitted(res.SignalID)
	}
}

func (d *Dispatcher) eventError(blockNum uint64, what string, err error) {
	if errors.Is(err, signal.ErrDecode) {
		metrics.DecodeFailure()
		d.logger.Warnf("skipping %s at block %d: %v", what, blockNum, err)
		return
	}
	d.logger.Errorf("failed to process %s at block %d: %v", what, blockNum, err)
}

func (d *Dispatcher) retry(ctx context.Context, fn func() error) error {
	return cascadecommon.RetryWithExponentialBackoff(ctx, d.cfg.RPCRetries, d.cfg.RPCRetryDelay.Duration, fn)
}

// BridgeRequests returns the cached bridge requests ordered by block
func (d *Dispatcher) BridgeRequests() []BridgeRequestRecord {
	return d.cache.list()
}

// Status returns the progress of the dispatcher
func (d *Dispatcher) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Status{
		LastBlock:       d.lastBlock,
		LastProcessedAt: d.lastProcessedAt,
		BridgeCacheSize: len(d.cache.list()),
		Lineage:         d.lineage.Snapshot(),
	}
}

// LivenessCheck fails when no block was processed during the last maxIdle
func (d *Dispatcher) LivenessCheck(maxIdle time.Duration) func() error {
	return func() error {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.startedAt.IsZero() {
			return errors.New("dispatcher not started")
		}
		last := d.lastProcessedAt
		if last.IsZero() {
			last = d.startedAt
		}
		if idle := d.now().Sub(last); idle > maxIdle {
			return fmt.Errorf("no block processed for %s (last block %d)", idle.Round(time.Second), d.lastBlock)
		}
		return nil
	}
}
