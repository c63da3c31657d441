package db

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var errUnexpectedScanTarget = errors.New("scanTarget is not *string")

// BigIntMeddler encodes or decodes the field value to or from a decimal string
type BigIntMeddler struct{}

// PreRead is called before a Scan operation for fields that have the BigIntMeddler
func (b BigIntMeddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(string), nil
}

// PostRead is called after a Scan operation for fields that have the BigIntMeddler
func (b BigIntMeddler) PostRead(fieldPtr, scanTarget interface{}) error {
	ptr, ok := scanTarget.(*string)
	if !ok {
		return errUnexpectedScanTarget
	}
	field, ok := fieldPtr.(**big.Int)
	if !ok {
		return errors.New("fieldPtr is not *big.Int")
	}
	if *ptr == "" {
		*field = nil
		return nil
	}
	n, ok := new(big.Int).SetString(*ptr, 10) //nolint:mnd
	if !ok {
		return fmt.Errorf("invalid big.Int value %q", *ptr)
	}
	*field = n
	return nil
}

// PreWrite is called before an Insert or Update operation for fields that have the BigIntMeddler
func (b BigIntMeddler) PreWrite(fieldPtr interface{}) (saveValue interface{}, err error) {
	field, ok := fieldPtr.(*big.Int)
	if !ok {
		return nil, errors.New("fieldPtr is not *big.Int")
	}
	if field == nil {
		return "", nil
	}
	return field.String(), nil
}

// HashMeddler encodes or decodes the field value to or from a hex string
type HashMeddler struct{}

// PreRead is called before a Scan operation for fields that have the HashMeddler
func (h HashMeddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(string), nil
}

// PostRead is called after a Scan operation for fields that have the HashMeddler
func (h HashMeddler) PostRead(fieldPtr, scanTarget interface{}) error {
	ptr, ok := scanTarget.(*string)
	if !ok {
		return errUnexpectedScanTarget
	}
	switch field := fieldPtr.(type) {
	case *common.Hash:
		*field = common.HexToHash(*ptr)
	case **common.Hash:
		if *ptr == "" {
			*field = nil
			return nil
		}
		h := common.HexToHash(*ptr)
		*field = &h
	default:
		return errors.New("fieldPtr is not common.Hash or *common.Hash")
	}
	return nil
}

// PreWrite is called before an Insert or Update operation for fields that have the HashMeddler
func (h HashMeddler) PreWrite(fieldPtr interface{}) (saveValue interface{}, err error) {
	switch field := fieldPtr.(type) {
	case common.Hash:
		return field.Hex(), nil
	case *common.Hash:
		if field == nil {
			return []byte{}, nil
		}
		return field.Hex(), nil
	default:
		return nil, errors.New("fieldPtr is not common.Hash or *common.Hash")
	}
}
