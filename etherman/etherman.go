package etherman

import (
	"context"
	"errors"
	"fmt"

	"github.com/agglayer/cascadekit/log"
	cascadetypes "github.com/agglayer/cascadekit/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

var (
	ErrInvalidChainID = errors.New("invalid chain id")
)

// DialFunc connects to a chain node
type DialFunc func(rawurl string) (cascadetypes.EthClienter, error)

// DefaultDial dials the node with go-ethereum's ethclient
func DefaultDial(rawurl string) (cascadetypes.EthClienter, error) {
	return ethclient.Dial(rawurl)
}

// Client wraps the chain RPC client together with the chain id it is connected to
type Client struct {
	EthClient cascadetypes.EthClienter
	ChainID   uint64
}

// NewClient dials the node and checks that it serves the expected chain
func NewClient(ctx context.Context, cfg Config, dial DialFunc) (*Client, error) {
	if dial == nil {
		dial = DefaultDial
	}
	ethClient, err := dial(cfg.URL)
	if err != nil {
		log.Errorf("error connecting to %s: %+v", cfg.URL, err)
		return nil, err
	}

	if cfg.DialTimeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout.Duration)
		defer cancel()
	}

	chainID, err := ethClient.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve chain id from %s: %w", cfg.URL, err)
	}
	if !chainID.IsUint64() || chainID.Uint64() == 0 {
		return nil, fmt.Errorf("%w: node reported %s", ErrInvalidChainID, chainID.String())
	}
	if cfg.ChainID != 0 && cfg.ChainID != chainID.Uint64() {
		return nil, fmt.Errorf("%w: expected %d, node reported %d", ErrInvalidChainID, cfg.ChainID, chainID.Uint64())
	}
	log.Infof("connected to %s, chain id %d", cfg.URL, chainID.Uint64())

	return &Client{
		EthClient: ethClient,
		ChainID:   chainID.Uint64(),
	}, nil
}
