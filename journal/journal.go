// Package journal keeps an append-only sqlite log of submission and claim outcomes.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"
	"time"

	"github.com/agglayer/cascadekit/db"
	"github.com/agglayer/cascadekit/journal/migrations"
	"github.com/agglayer/cascadekit/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

const (
	submissionTable = "submission"
	claimTable      = "claim"
)

// SubmissionRecord is the terminal outcome of one signal submission
type SubmissionRecord struct {
	ID        int64       `meddler:"id,pk"              json:"id"`
	SignalID  common.Hash `meddler:"signal_id,hash"     json:"signal_id"`
	Tag       string      `meddler:"tag"                json:"tag"`
	Kind      string      `meddler:"kind"               json:"kind"`
	BlockNum  uint64      `meddler:"block_num"          json:"block_num"`
	Outcome   string      `meddler:"outcome"            json:"outcome"`
	Attempts  int         `meddler:"attempts"           json:"attempts"`
	Fee       *big.Int    `meddler:"fee,bigint"         json:"fee"`
	Nonce     uint64      `meddler:"nonce"              json:"nonce"`
	TxHash    common.Hash `meddler:"tx_hash,hash"       json:"tx_hash"`
	Error     string      `meddler:"error"              json:"error,omitempty"`
	CreatedAt int64       `meddler:"created_at"         json:"created_at"`
}

// ClaimRecord is the result of one claim attempt
type ClaimRecord struct {
	ID        int64       `meddler:"id,pk"          json:"id"`
	SignalID  common.Hash `meddler:"signal_id,hash" json:"signal_id"`
	Tag       string      `meddler:"tag"            json:"tag"`
	BlockNum  uint64      `meddler:"block_num"      json:"block_num"`
	Outcome   string      `meddler:"outcome"        json:"outcome"`
	Yield     *big.Int    `meddler:"yield,bigint"   json:"yield"`
	Nonce     uint64      `meddler:"nonce"          json:"nonce"`
	TxHash    common.Hash `meddler:"tx_hash,hash"   json:"tx_hash"`
	Error     string      `meddler:"error"          json:"error,omitempty"`
	CreatedAt int64       `meddler:"created_at"     json:"created_at"`
}

// Journal writes outcome records to sqlite
type Journal struct {
	logger *log.Logger
	db     *sql.DB
	now    func() time.Time
}

// New runs the migrations and opens the journal at dbPath
func New(logger *log.Logger, dbPath string) (*Journal, error) {
	if err := migrations.RunMigrations(dbPath); err != nil {
		return nil, err
	}
	sqlDB, err := db.NewSQLiteDB(dbPath)
	if err != nil {
		return nil, err
	}
	return &Journal{
		logger: logger,
		db:     sqlDB,
		now:    time.Now,
	}, nil
}

// RecordSubmission appends a submission outcome
func (j *Journal) RecordSubmission(ctx context.Context, rec *SubmissionRecord) error {
	if rec.CreatedAt == 0 {
		rec.CreatedAt = j.now().Unix()
	}
	if rec.Fee == nil {
		rec.Fee = new(big.Int)
	}
	if err := meddler.Insert(j.db, submissionTable, rec); err != nil {
		return fmt.Errorf("failed to insert submission of %s: %w", rec.Tag, err)
	}
	return nil
}

// RecordClaim appends a claim outcome
func (j *Journal) RecordClaim(ctx context.Context, rec *ClaimRecord) error {
	if rec.CreatedAt == 0 {
		rec.CreatedAt = j.now().Unix()
	}
	if rec.Yield == nil {
		rec.Yield = new(big.Int)
	}
	if err := meddler.Insert(j.db, claimTable, rec); err != nil {
		return fmt.Errorf("failed to insert claim of %s: %w", rec.Tag, err)
	}
	return nil
}

// LastSubmissions returns up to limit submissions, newest first
func (j *Journal) LastSubmissions(ctx context.Context, limit int) ([]*SubmissionRecord, error) {
	var records []*SubmissionRecord
	err := meddler.QueryAll(j.db, &records,
		`SELECT * FROM submission ORDER BY id DESC LIMIT $1;`, limit)
	if err != nil {
		return nil, db.ReturnErrNotFound(err)
	}
	return records, nil
}

// LastClaims returns up to limit claims, newest first
func (j *Journal) LastClaims(ctx context.Context, limit int) ([]*ClaimRecord, error) {
	var records []*ClaimRecord
	err := meddler.QueryAll(j.db, &records,
		`SELECT * FROM claim ORDER BY id DESC LIMIT $1;`, limit)
	if err != nil {
		return nil, db.ReturnErrNotFound(err)
	}
	return records, nil
}

// Prune deletes every record created before olderThan
func (j *Journal) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	tx, err := db.NewTx(ctx, j.db)
	if err != nil {
		return 0, err
	}
	shouldRollback := true
	defer func() {
		if shouldRollback {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				j.logger.Errorf("error while rolling back tx %v", errRllbck)
			}
		}
	}()

	var deleted int64
	for _, table := range []string{submissionTable, claimTable} {
		res, err := tx.Exec(fmt.Sprintf(`DELETE FROM %s WHERE created_at < $1;`, table), olderThan.Unix())
		if err != nil {
			return 0, fmt.Errorf("failed to prune %s: %w", table, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		deleted += n
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	shouldRollback = false
	return deleted, nil
}

// Start prunes records older than retention every interval until ctx is done
func (j *Journal) Start(ctx context.Context, retention, interval time.Duration) {
	if retention <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := j.Prune(ctx, j.now().Add(-retention))
			if err != nil {
				j.logger.Errorf("error pruning journal: %v", err)
				continue
			}
			if n > 0 {
				j.logger.Debugf("pruned %d journal records", n)
			}
		}
	}
}

// Close closes the underlying database
func (j *Journal) Close() error {
	return j.db.Close()
}
