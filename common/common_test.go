package common

import (
	"testing"

	"github.com/agglayer/cascadekit/config/types"
	"github.com/stretchr/testify/require"
)

func TestNewKeyFromKeystore(t *testing.T) {
	_, err := NewKeyFromKeystore(types.KeystoreFileConfig{})
	require.ErrorIs(t, err, ErrEmptyKeystore)

	_, err = NewKeyFromKeystore(types.KeystoreFileConfig{Path: "/does/not/exist.keystore", Password: "x"})
	require.Error(t, err)
}
