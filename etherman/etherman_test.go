package etherman

import (
	"context"
	"errors"
	"testing"

	cascadetypes "github.com/agglayer/cascadekit/types"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"
)

// simulated backends always report chain id 1337
const simulatedChainID = 1337

func TestNewClient(t *testing.T) {
	backend := simulated.NewBackend(types.GenesisAlloc{})
	t.Cleanup(func() { _ = backend.Close() })

	okDial := func(string) (cascadetypes.EthClienter, error) {
		return backend.Client(), nil
	}

	tests := []struct {
		name        string
		cfg         Config
		dial        DialFunc
		expectedErr string
	}{
		{
			name: "success with expected chain id",
			cfg:  Config{URL: "sim", ChainID: simulatedChainID},
			dial: okDial,
		},
		{
			name: "success accepting any chain id",
			cfg:  Config{URL: "sim"},
			dial: okDial,
		},
		{
			name: "dial fails",
			cfg:  Config{URL: "fail"},
			dial: func(string) (cascadetypes.EthClienter, error) {
				return nil, errors.New("dial error")
			},
			expectedErr: "dial error",
		},
		{
			name:        "chain id mismatch",
			cfg:         Config{URL: "sim", ChainID: 1},
			dial:        okDial,
			expectedErr: ErrInvalidChainID.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(context.Background(), tt.cfg, tt.dial)
			if tt.expectedErr != "" {
				require.ErrorContains(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, uint64(simulatedChainID), client.ChainID)
		})
	}
}
