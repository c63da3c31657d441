package blocknotifier

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/agglayer/cascadekit/etherman"
	"github.com/ethereum/go-ethereum/core/types"
)

// EventNewBlock is published once per block number, in ascending order
type EventNewBlock struct {
	BlockNumber       uint64
	BlockFinalityType etherman.BlockNumberFinality
	BlockRate         time.Duration
}

func (e EventNewBlock) String() string {
	return fmt.Sprintf("EventNewBlock{BlockNumber: %d, Finality: %s, BlockRate: %s}",
		e.BlockNumber, e.BlockFinalityType.String(), e.BlockRate)
}

// HeaderReader is the subset of the eth client used to poll blocks
type HeaderReader interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// BlockNotifier is the interface that wraps the basic methods to notify a new block.
type BlockNotifier interface {
	Subscribe(id string) <-chan EventNewBlock
	GetCurrentBlockNumber() uint64
	String() string
}
