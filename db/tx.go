package db

import (
	"context"

	"github.com/agglayer/cascadekit/db/types"
)

// NewTx begins a transaction on db
func NewTx(ctx context.Context, db types.DBer) (types.Txer, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return tx, nil
}
