// Package bridge decodes the logs emitted by the bridge contract.
package bridge

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	eventBridgeRequest  = "BridgeRequest"
	eventBridgeComplete = "BridgeComplete"
)

// BridgeMetaData contains all meta data concerning the Bridge contract events.
var BridgeMetaData = &bind.MetaData{
	ABI: `[
	{"type":"event","name":"BridgeRequest","anonymous":false,
	 "inputs":[{"name":"from","type":"address","indexed":true},{"name":"amount","type":"uint256","indexed":false}]},
	{"type":"event","name":"BridgeComplete","anonymous":false,
	 "inputs":[{"name":"requestId","type":"bytes32","indexed":true},{"name":"amount","type":"uint256","indexed":false}]}
]`,
}

var (
	// BridgeRequestTopic is the topic0 of BridgeRequest(address,uint256)
	BridgeRequestTopic = mustEventID(eventBridgeRequest)
	// BridgeCompleteTopic is the topic0 of BridgeComplete(bytes32,uint256)
	BridgeCompleteTopic = mustEventID(eventBridgeComplete)
)

// BridgeRequest represents a BridgeRequest event raised by the bridge contract
type BridgeRequest struct {
	From   common.Address
	Amount *big.Int
	Raw    types.Log
}

// BridgeComplete represents a BridgeComplete event raised by the bridge contract
type BridgeComplete struct {
	RequestId [32]byte //nolint:stylecheck
	Amount    *big.Int
	Raw       types.Log
}

// Filterer decodes bridge contract logs
type Filterer struct {
	contract *bind.BoundContract
}

// NewFilterer creates a log decoder for the bridge contract deployed at address
func NewFilterer(address common.Address) (*Filterer, error) {
	parsed, err := BridgeMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	return &Filterer{contract: bind.NewBoundContract(address, *parsed, nil, nil, nil)}, nil
}

// ParseBridgeRequest decodes a BridgeRequest log
func (f *Filterer) ParseBridgeRequest(log types.Log) (*BridgeRequest, error) {
	event := new(BridgeRequest)
	if err := f.contract.UnpackLog(event, eventBridgeRequest, log); err != nil {
		return nil, fmt.Errorf("failed to decode %s log: %w", eventBridgeRequest, err)
	}
	event.Raw = log
	return event, nil
}

// ParseBridgeComplete decodes a BridgeComplete log
func (f *Filterer) ParseBridgeComplete(log types.Log) (*BridgeComplete, error) {
	event := new(BridgeComplete)
	if err := f.contract.UnpackLog(event, eventBridgeComplete, log); err != nil {
		return nil, fmt.Errorf("failed to decode %s log: %w", eventBridgeComplete, err)
	}
	event.Raw = log
	return event, nil
}

func mustEventID(name string) common.Hash {
	parsed, err := BridgeMetaData.GetAbi()
	if err != nil {
		panic(err)
	}
	return parsed.Events[name].ID
}
