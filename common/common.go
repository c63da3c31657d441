package common

import (
	"crypto/ecdsa"
	"errors"
	"os"
	"path/filepath"

	"github.com/agglayer/cascadekit/config/types"
	"github.com/ethereum/go-ethereum/accounts/keystore"
)

var ErrEmptyKeystore = errors.New("keystore path and password are empty")

// NewKeyFromKeystore creates a private key from a keystore file
func NewKeyFromKeystore(cfg types.KeystoreFileConfig) (*ecdsa.PrivateKey, error) {
	if cfg.Path == "" && cfg.Password == "" {
		return nil, ErrEmptyKeystore
	}
	keystoreEncrypted, err := os.ReadFile(filepath.Clean(cfg.Path))
	if err != nil {
		return nil, err
	}
	key, err := keystore.DecryptKey(keystoreEncrypted, cfg.Password)
	if err != nil {
		return nil, err
	}
	return key.PrivateKey, nil
}
