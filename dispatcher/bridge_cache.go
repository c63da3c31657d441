package dispatcher

import (
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// BridgeRequestRecord is a bridge request seen recently. It is only kept for status queries
type BridgeRequestRecord struct {
	BlockNumber uint64         `json:"blockNumber"`
	From        common.Address `json:"from"`
	Amount      *big.Int       `json:"amount"`
	Timestamp   time.Time      `json:"timestamp"`
}

type bridgeCache struct {
	mu      sync.Mutex
	records map[uint64][]BridgeRequestRecord
}

func newBridgeCache() *bridgeCache {
	return &bridgeCache{records: make(map[uint64][]BridgeRequestRecord)}
}

func (c *bridgeCache) add(rec BridgeRequestRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[rec.BlockNumber] = append(c.records[rec.BlockNumber], rec)
}

// purge drops the records seen before cutoff and returns how many are left
func (c *bridgeCache) purge(cutoff time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	size := 0
	for blockNum, recs := range c.records {
		kept := recs[:0]
		for _, rec := range recs {
			if !rec.Timestamp.Before(cutoff) {
				kept = append(kept, rec)
			}
		}
		if len(kept) == 0 {
			delete(c.records, blockNum)
			continue
		}
		c.records[blockNum] = kept
		size += len(kept)
	}
	return size
}

// list returns every record ordered by block
func (c *bridgeCache) list() []BridgeRequestRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	blocks := make([]uint64, 0, len(c.records))
	for blockNum := range c.records {
		blocks = append(blocks, blockNum)
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i] < blocks[j] })
	res := make([]BridgeRequestRecord, 0, len(blocks))
	for _, blockNum := range blocks {
		res = append(res, c.records[blockNum]...)
	}
	return res
}
