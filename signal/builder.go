package signal

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	selectorSize = 4
	wordSize     = 32
	// calldata words read after the selector: amountIn, minOut, deadline
	tradeWords = 3
	// bridge tags keep the first 8 hex chars of the sender
	bridgeTagSenderHexLen = 8
)

// DefaultPath is the informational route written in every signal
var DefaultPath = []string{"WETH", "USDC"}

// BridgeRequest is a decoded BridgeRequest log
type BridgeRequest struct {
	BlockNumber uint64
	From        common.Address
	Amount      *big.Int
}

// TradeTx is a transaction sent to the trade contract with an allowed selector
type TradeTx struct {
	Tx      *types.Transaction
	From    common.Address
	Header  *types.Header
	TxCount int
}

// Builder assembles signals from detected events
type Builder struct {
	path []string
	now  func() time.Time
}

// NewBuilder creates a signal builder. An empty path falls back to DefaultPath, a nil clock to time.Now
func NewBuilder(path []string, now func() time.Time) *Builder {
	if len(path) == 0 {
		path = DefaultPath
	}
	if now == nil {
		now = time.Now
	}
	return &Builder{path: path, now: now}
}

// BuildBridge creates the signal of a bridge deposit
func (b *Builder) BuildBridge(lineage *Lineage, req BridgeRequest) (*Signal, error) {
	if req.Amount == nil {
		return nil, fmt.Errorf("%w: bridge request at block %d without amount", ErrDecode, req.BlockNumber)
	}
	senderHex := common.Bytes2Hex(req.From.Bytes())[:bridgeTagSenderHexLen]

	return &Signal{
		Tag:        fmt.Sprintf("br-%d-%s", req.BlockNumber, senderHex),
		Intent:     BridgeIntent,
		Path:       b.copyPath(),
		Amount:     req.Amount.String(),
		BridgeFrom: req.From.Hex(),
		Kws:        BridgeEntropy.Hex(),
		Phi:        CyclicIndex(req.BlockNumber),
		Blk:        req.BlockNumber,
		Ts:         b.now().Unix(),
		Parent:     lineage.Parent(),
		FeeTier:    ClassifyFeeTier(nil, nil, true),
	}, nil
}

// BuildTrade creates the signal of a trade transaction. hash and child are computed once every
// other field is final.
func (b *Builder) BuildTrade(lineage *Lineage, trade TradeTx) (*Signal, error) {
	if trade.Tx == nil || trade.Header == nil {
		return nil, fmt.Errorf("%w: trade without transaction or header", ErrDecode)
	}
	data := trade.Tx.Data()
	words, err := DecodeTradeWords(data)
	if err != nil {
		return nil, fmt.Errorf("tx %s: %w", trade.Tx.Hash().Hex(), err)
	}
	amountIn, minOut, deadline := words[0], words[1], words[2]
	blockNumber := trade.Header.Number.Uint64()
	entropy := ExtractEntropy(trade.From, data)

	s := &Signal{
		Tag:     lineage.NextTag(),
		Intent:  fmt.Sprintf("swap_%s", common.Bytes2Hex(data[:selectorSize])),
		Path:    b.copyPath(),
		In:      amountIn.String(),
		Out:     minOut.String(),
		Dead:    deadline.String(),
		Kws:     entropy.Hex(),
		Gas:     ClassifyGasBucket(trade.Tx.Gas(), trade.Header.GasUsed, trade.TxCount),
		Phi:     CyclicIndex(blockNumber),
		Blk:     blockNumber,
		Ts:      int64(trade.Header.Time), //nolint:gosec
		Parent:  lineage.Parent(),
		FeeTier: ClassifyFeeTier(amountIn, minOut, false),
	}

	if err := AppendIdentifiers(s, entropy); err != nil {
		return nil, err
	}
	return s, nil
}

// AppendIdentifiers computes hash and child over the signal without them and sets both
func AppendIdentifiers(s *Signal, entropy common.Hash) error {
	id, err := s.ID()
	if err != nil {
		return err
	}
	s.Hash = id.Hex()
	s.Child = HashChild(id, s.Blk, entropy).Hex()
	return nil
}

// DecodeTradeWords reads amountIn, minOut and deadline, the three 32 byte words after the selector
func DecodeTradeWords(data []byte) ([tradeWords]*big.Int, error) {
	var words [tradeWords]*big.Int
	if len(data) < selectorSize+tradeWords*wordSize {
		return words, fmt.Errorf("%w: calldata has %d bytes, need at least %d",
			ErrDecode, len(data), selectorSize+tradeWords*wordSize)
	}
	for i := range words {
		start := selectorSize + i*wordSize
		words[i] = new(big.Int).SetBytes(data[start : start+wordSize])
	}
	return words, nil
}

// Selector returns the first 4 bytes of the calldata, false if it is shorter
func Selector(data []byte) ([selectorSize]byte, bool) {
	var sel [selectorSize]byte
	if len(data) < selectorSize {
		return sel, false
	}
	copy(sel[:], data[:selectorSize])
	return sel, true
}

func (b *Builder) copyPath() []string {
	return append([]string(nil), b.path...)
}
