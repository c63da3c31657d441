package signer

import (
	"context"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	cascadecommon "github.com/agglayer/cascadekit/common"
	configtypes "github.com/agglayer/cascadekit/config/types"
	"github.com/agglayer/cascadekit/log"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func writeKeystore(t *testing.T, password string) (string, common.Address) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	id, err := uuid.NewRandom()
	require.NoError(t, err)
	encrypted, err := keystore.EncryptKey(&keystore.Key{
		Id:         id,
		Address:    crypto.PubkeyToAddress(key.PublicKey),
		PrivateKey: key,
	}, password, keystore.LightScryptN, keystore.LightScryptP)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "signer.keystore")
	require.NoError(t, os.WriteFile(path, encrypted, 0o600))
	return path, crypto.PubkeyToAddress(key.PublicKey)
}

func TestNewKeyStoreFileConfig(t *testing.T) {
	cfg, err := NewKeyStoreFileConfig(SignerConfig{Method: MethodLocal})
	require.NoError(t, err)
	require.Equal(t, "", cfg.Path)
	require.Equal(t, "", cfg.Password)

	cfg, err = NewKeyStoreFileConfig(SignerConfig{Method: MethodLocal,
		Config: map[string]interface{}{"path": "/tmp/a.keystore", "pass": "secret"}})
	require.NoError(t, err)
	require.Equal(t, "/tmp/a.keystore", cfg.Path)
	require.Equal(t, "secret", cfg.Password)

	_, err = NewKeyStoreFileConfig(SignerConfig{Method: MethodLocal, Config: map[string]interface{}{"path": 1}})
	require.Error(t, err)

	_, err = NewKeyStoreFileConfig(SignerConfig{Method: "remote"})
	require.Error(t, err)
}

func TestNewSignerFromKeystore(t *testing.T) {
	path, addr := writeKeystore(t, "testonly")
	s, err := NewSigner(context.Background(), "test", log.GetDefaultLogger(), SignerConfig{
		Config: map[string]interface{}{"path": path, "pass": "testonly"},
	})
	require.NoError(t, err)
	require.Equal(t, addr, s.PublicAddress())
	require.Contains(t, s.String(), addr.String())

	_, err = NewSigner(context.Background(), "test", log.GetDefaultLogger(), SignerConfig{
		Method: MethodLocal,
		Config: map[string]interface{}{"path": path, "pass": "wrong"},
	})
	require.Error(t, err)

	_, err = NewSigner(context.Background(), "test", log.GetDefaultLogger(), SignerConfig{Method: MethodLocal})
	require.ErrorIs(t, err, cascadecommon.ErrEmptyKeystore)

	_, err = NewSigner(context.Background(), "test", log.GetDefaultLogger(), SignerConfig{Method: "kms"})
	require.ErrorIs(t, err, ErrUnknownSignerMethod)
}

func TestSignTx(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	s := NewKeyStoreFileSignFromKey("test", log.GetDefaultLogger(), key)
	chainID := big.NewInt(1337)

	tx := types.NewTx(&types.DynamicFeeTx{ChainID: chainID, Nonce: 3, Gas: 21000,
		GasFeeCap: big.NewInt(10), GasTipCap: big.NewInt(10)})
	signed, err := s.SignTx(context.Background(), chainID, tx)
	require.NoError(t, err)

	sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	require.NoError(t, err)
	require.Equal(t, s.PublicAddress(), sender)

	sig, err := s.SignHash(context.Background(), common.HexToHash("0x01"))
	require.NoError(t, err)
	require.Len(t, sig, crypto.SignatureLength)

	empty := NewKeyStoreFileSign("empty", log.GetDefaultLogger(), configtypes.KeystoreFileConfig{})
	_, err = empty.SignTx(context.Background(), chainID, tx)
	require.ErrorIs(t, err, ErrNoPrivateKey)
}
