package journal

import (
	"context"
	"math/big"
	"path"
	"testing"
	"time"

	"github.com/agglayer/cascadekit/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := New(log.WithFields("module", "journal"), path.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestRecordSubmission(t *testing.T) {
	ctx := context.Background()
	j := newTestJournal(t)

	for i := 1; i <= 3; i++ {
		err := j.RecordSubmission(ctx, &SubmissionRecord{
			SignalID: common.BigToHash(big.NewInt(int64(i))),
			Tag:      "00000" + string(rune('0'+i)),
			Kind:     "trade",
			BlockNum: uint64(100 + i),
			Outcome:  "submitted",
			Attempts: i,
			Fee:      big.NewInt(int64(i) * 1_000_000_000),
			Nonce:    uint64(i),
			TxHash:   common.HexToHash("0xdead"),
		})
		require.NoError(t, err)
	}

	records, err := j.LastSubmissions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "000003", records[0].Tag)
	require.Equal(t, big.NewInt(3_000_000_000), records[0].Fee)
	require.Equal(t, common.BigToHash(big.NewInt(3)), records[0].SignalID)
	require.Equal(t, "000002", records[1].Tag)
	require.NotZero(t, records[0].CreatedAt)
}

func TestRecordClaim(t *testing.T) {
	ctx := context.Background()
	j := newTestJournal(t)

	require.NoError(t, j.RecordClaim(ctx, &ClaimRecord{Tag: "000001", BlockNum: 1, Outcome: "removed-zero-yield"}))
	require.NoError(t, j.RecordClaim(ctx, &ClaimRecord{Tag: "000002", BlockNum: 2, Outcome: "claimed",
		Yield: big.NewInt(9), TxHash: common.HexToHash("0x01")}))

	records, err := j.LastClaims(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, big.NewInt(9), records[0].Yield)
	require.Equal(t, big.NewInt(0), records[1].Yield)
}

func TestPrune(t *testing.T) {
	ctx := context.Background()
	j := newTestJournal(t)
	now := time.Unix(1_700_000_000, 0)
	j.now = func() time.Time { return now }

	require.NoError(t, j.RecordSubmission(ctx, &SubmissionRecord{Tag: "old", CreatedAt: now.Add(-2 * time.Hour).Unix()}))
	require.NoError(t, j.RecordClaim(ctx, &ClaimRecord{Tag: "old", CreatedAt: now.Add(-2 * time.Hour).Unix()}))
	require.NoError(t, j.RecordSubmission(ctx, &SubmissionRecord{Tag: "new"}))

	deleted, err := j.Prune(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	records, err := j.LastSubmissions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "new", records[0].Tag)
}
