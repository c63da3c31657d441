// Package cascade holds the binding of the cascade contract: the registry signals are emitted to
// and yield is claimed from.
package cascade

import (
	"context"
	"fmt"
	"math/big"

	"github.com/agglayer/cascadekit/types"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const (
	methodEmitCascade     = "emitCascade"
	methodClaimYield      = "claimYield"
	methodGetSignalStatus = "getSignalStatus"
	errorAlreadyClaimed   = "AlreadyClaimed"
)

// CascadeMetaData contains all meta data concerning the Cascade contract.
var CascadeMetaData = &bind.MetaData{
	ABI: `[
	{"type":"function","name":"emitCascade","stateMutability":"nonpayable",
	 "inputs":[{"name":"signal","type":"string"},{"name":"royaltyBps","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"claimYield","stateMutability":"nonpayable",
	 "inputs":[{"name":"signal","type":"string"}],"outputs":[]},
	{"type":"function","name":"getSignalStatus","stateMutability":"view",
	 "inputs":[{"name":"signal","type":"string"}],
	 "outputs":[{"name":"active","type":"bool"},{"name":"royalty","type":"uint256"},{"name":"yield","type":"uint256"}]},
	{"type":"error","name":"AlreadyClaimed","inputs":[]}
]`,
}

var _ types.SignalRegistry = (*Registry)(nil)

// Registry is the read-only binding of a deployed cascade contract
type Registry struct {
	address  common.Address
	contract *bind.BoundContract
}

// NewRegistry binds the cascade contract deployed at address
func NewRegistry(address common.Address, caller bind.ContractCaller) (*Registry, error) {
	parsed, err := CascadeMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	return &Registry{
		address:  address,
		contract: bind.NewBoundContract(address, *parsed, caller, nil, nil),
	}, nil
}

// Address returns the contract address
func (r *Registry) Address() common.Address {
	return r.address
}

// GetSignalStatus calls getSignalStatus(signal)
func (r *Registry) GetSignalStatus(ctx context.Context, signalText string) (types.SignalStatus, error) {
	var out []interface{}
	if err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodGetSignalStatus, signalText); err != nil {
		return types.SignalStatus{}, fmt.Errorf("%s call failed: %w", methodGetSignalStatus, err)
	}
	if len(out) != 3 { //nolint:mnd
		return types.SignalStatus{}, fmt.Errorf("%s: unexpected number of outputs %d", methodGetSignalStatus, len(out))
	}

	return types.SignalStatus{
		Active:  *abi.ConvertType(out[0], new(bool)).(*bool),
		Royalty: *abi.ConvertType(out[1], new(*big.Int)).(**big.Int),
		Yield:   *abi.ConvertType(out[2], new(*big.Int)).(**big.Int),
	}, nil
}

// PackEmitCascade returns the calldata of emitCascade(signal, feeTier)
func PackEmitCascade(signalText string, feeTier uint64) ([]byte, error) {
	parsed, err := CascadeMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	return parsed.Pack(methodEmitCascade, signalText, new(big.Int).SetUint64(feeTier))
}

// PackClaimYield returns the calldata of claimYield(signal)
func PackClaimYield(signalText string) ([]byte, error) {
	parsed, err := CascadeMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	return parsed.Pack(methodClaimYield, signalText)
}

// AlreadyClaimedSelector returns the hex encoded 4 byte selector of the AlreadyClaimed() revert
func AlreadyClaimedSelector() string {
	parsed, err := CascadeMetaData.GetAbi()
	if err != nil {
		return ""
	}
	return common.Bytes2Hex(parsed.Errors[errorAlreadyClaimed].ID.Bytes()[:4])
}
