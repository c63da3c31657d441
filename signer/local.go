package signer

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	cascadecommon "github.com/agglayer/cascadekit/common"
	configtypes "github.com/agglayer/cascadekit/config/types"
	cascadetypes "github.com/agglayer/cascadekit/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrNoPrivateKey = errors.New("private key is nil")
)

type KeyStoreFileSign struct {
	name          string
	logger        cascadetypes.Logger
	file          configtypes.KeystoreFileConfig
	privateKey    *ecdsa.PrivateKey
	publicAddress common.Address
}

func NewKeyStoreFileConfig(cfg SignerConfig) (configtypes.KeystoreFileConfig, error) {
	var res configtypes.KeystoreFileConfig
	if cfg.Method != MethodLocal {
		return res, fmt.Errorf("invalid signer method %s", cfg.Method)
	}
	path, err := configString(cfg.Config, "path")
	if err != nil {
		return res, err
	}
	pass, err := configString(cfg.Config, "pass")
	if err != nil {
		return res, err
	}
	res = configtypes.KeystoreFileConfig{
		Path:     path,
		Password: pass,
	}
	return res, nil
}

// configString returns "" for a missing key, an error only for a key of the wrong type
func configString(cfg map[string]interface{}, key string) (string, error) {
	v, ok := cfg[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("signer config field %s is not a string", key)
	}
	return s, nil
}

func NewKeyStoreFileSign(name string, logger cascadetypes.Logger, file configtypes.KeystoreFileConfig) *KeyStoreFileSign {
	return &KeyStoreFileSign{
		name:   name,
		logger: logger,
		file:   file,
	}
}

// NewKeyStoreFileSignFromKey creates an already initialized signer around key
func NewKeyStoreFileSignFromKey(name string, logger cascadetypes.Logger,
	key *ecdsa.PrivateKey) *KeyStoreFileSign {
	return &KeyStoreFileSign{
		name:          name,
		logger:        logger,
		privateKey:    key,
		publicAddress: crypto.PubkeyToAddress(key.PublicKey),
	}
}

func (e *KeyStoreFileSign) Initialize(ctx context.Context) error {
	if e.privateKey != nil {
		return nil
	}
	privateKey, err := cascadecommon.NewKeyFromKeystore(e.file)
	if err != nil {
		return err
	}
	e.privateKey = privateKey
	e.publicAddress = crypto.PubkeyToAddress(privateKey.PublicKey)
	e.logger.Infof("signer %s initialized with address %s", e.name, e.publicAddress.Hex())
	return nil
}

func (e *KeyStoreFileSign) SignHash(ctx context.Context, hash common.Hash) ([]byte, error) {
	if e.privateKey == nil {
		return nil, ErrNoPrivateKey
	}
	return crypto.Sign(hash.Bytes(), e.privateKey)
}

// SignTx signs tx with the latest signer of chainID
func (e *KeyStoreFileSign) SignTx(ctx context.Context, chainID *big.Int,
	tx *types.Transaction) (*types.Transaction, error) {
	if e.privateKey == nil {
		return nil, ErrNoPrivateKey
	}
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), e.privateKey)
}

func (e *KeyStoreFileSign) PublicAddress() common.Address {
	return e.publicAddress
}

func (e *KeyStoreFileSign) String() string {
	return fmt.Sprintf("local[%s]: path:%s, pubAddr: %s", e.name, e.file.Path, e.publicAddress.String())
}
