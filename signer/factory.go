package signer

import (
	"context"
	"fmt"

	cascadetypes "github.com/agglayer/cascadekit/types"
)

var (
	ErrUnknownSignerMethod = fmt.Errorf("unknown signer method")
)

func NewSigner(ctx context.Context, name string, logger cascadetypes.Logger, cfg SignerConfig) (Signer, error) {
	if cfg.Method == "" {
		logger.Warnf("No signer method specified, defaulting to local (keystore file)")
		cfg.Method = MethodLocal
	}
	var res Signer
	switch cfg.Method {
	case MethodLocal:
		specificCfg, err := NewKeyStoreFileConfig(cfg)
		if err != nil {
			return nil, err
		}
		res = NewKeyStoreFileSign(name, logger, specificCfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSignerMethod, cfg.Method)
	}
	err := res.Initialize(ctx)
	return res, err
}
