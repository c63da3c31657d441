package claimreconciler

import (
	"context"
	"errors"
	"math/big"
	"path"
	"testing"
	"time"

	configtypes "github.com/agglayer/cascadekit/config/types"
	"github.com/agglayer/cascadekit/journal"
	"github.com/agglayer/cascadekit/log"
	"github.com/agglayer/cascadekit/signal"
	cascadetypes "github.com/agglayer/cascadekit/types"
	"github.com/agglayer/cascadekit/types/mocks"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var cascadeAddr = common.HexToAddress("0xca5cade")

func newSignal(t *testing.T, tag string, blk uint64) (Entry, string) {
	t.Helper()
	s := &signal.Signal{Tag: tag, Intent: "swap_38ed1739", Path: signal.DefaultPath, Kws: "0x01",
		Phi: 1, Blk: blk, Parent: signal.ZeroParent, FeeTier: 1}
	text, err := s.Text()
	require.NoError(t, err)
	return Entry{Signal: s, BlockNumber: blk}, text
}

func newTestReconciler(t *testing.T, j ClaimJournal) (*ClaimReconciler, *mocks.SignalRegistry, *mocks.TxSender) {
	t.Helper()
	registry := mocks.NewSignalRegistry(t)
	sender := mocks.NewTxSender(t)
	registry.EXPECT().Address().Return(cascadeAddr).Maybe()
	r, err := New(log.WithFields("module", "claimreconciler"), Config{
		Period:   configtypes.NewDuration(time.Second),
		GasLimit: 200_000,
		Fee:      3_000_000_000,
	}, registry, sender, j)
	require.NoError(t, err)
	return r, registry, sender
}

func TestReconcileZeroYieldRemovesWithoutClaim(t *testing.T) {
	r, registry, _ := newTestReconciler(t, nil)
	entry, text := newSignal(t, "000001", 10)
	r.Enqueue(entry)

	registry.EXPECT().GetSignalStatus(mock.Anything, text).
		Return(cascadetypes.SignalStatus{Active: true, Yield: big.NewInt(0)}, nil).Once()

	r.Reconcile(context.Background())
	require.Equal(t, 0, r.Len())
}

func TestReconcileClaimSuccess(t *testing.T) {
	j, err := journal.New(log.WithFields("module", "journal"), path.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	r, registry, sender := newTestReconciler(t, j)
	entry, text := newSignal(t, "000001", 10)
	r.Enqueue(entry)

	registry.EXPECT().GetSignalStatus(mock.Anything, text).
		Return(cascadetypes.SignalStatus{Active: true, Yield: big.NewInt(42)}, nil).Once()
	sender.EXPECT().PendingNonce(mock.Anything).Return(uint64(7), nil).Once()
	sender.EXPECT().SendCall(mock.Anything, cascadeAddr, mock.Anything, cascadetypes.CallOpts{
		Nonce:       7,
		GasLimit:    200_000,
		FeePerGas:   big.NewInt(3_000_000_000),
		PriorityFee: big.NewInt(3_000_000_000),
	}).Return(common.HexToHash("0xc1a1"), nil).Once()

	r.Reconcile(context.Background())
	require.Equal(t, 0, r.Len())

	records, err := j.LastClaims(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, OutcomeClaimed, records[0].Outcome)
	require.Equal(t, big.NewInt(42), records[0].Yield)
	require.Equal(t, common.HexToHash("0xc1a1"), records[0].TxHash)
}

func TestReconcileAlreadyClaimedKeepsEntryUntilZeroYield(t *testing.T) {
	r, registry, sender := newTestReconciler(t, nil)
	entry, text := newSignal(t, "000001", 10)
	r.Enqueue(entry)

	registry.EXPECT().GetSignalStatus(mock.Anything, text).
		Return(cascadetypes.SignalStatus{Yield: big.NewInt(5)}, nil).Once()
	sender.EXPECT().PendingNonce(mock.Anything).Return(uint64(1), nil).Once()
	sender.EXPECT().SendCall(mock.Anything, cascadeAddr, mock.Anything, mock.Anything).
		Return(common.Hash{}, errors.New("execution reverted: 0x"+alreadyClaimedRevertCode)).Once()

	r.Reconcile(context.Background())
	require.Equal(t, 1, r.Len())

	registry.EXPECT().GetSignalStatus(mock.Anything, text).
		Return(cascadetypes.SignalStatus{Yield: big.NewInt(0)}, nil).Once()
	r.Reconcile(context.Background())
	require.Equal(t, 0, r.Len())
}

func TestReconcileFailuresKeepEntriesAndDoNotBlockOthers(t *testing.T) {
	r, registry, sender := newTestReconciler(t, nil)
	statusErr, statusErrText := newSignal(t, "000001", 10)
	sendErr, sendErrText := newSignal(t, "000002", 11)
	ok, okText := newSignal(t, "000003", 12)
	r.Enqueue(statusErr)
	r.Enqueue(sendErr)
	r.Enqueue(ok)

	registry.EXPECT().GetSignalStatus(mock.Anything, statusErrText).
		Return(cascadetypes.SignalStatus{}, errors.New("timeout")).Once()
	registry.EXPECT().GetSignalStatus(mock.Anything, sendErrText).
		Return(cascadetypes.SignalStatus{Yield: big.NewInt(1)}, nil).Once()
	registry.EXPECT().GetSignalStatus(mock.Anything, okText).
		Return(cascadetypes.SignalStatus{Yield: big.NewInt(1)}, nil).Once()
	sender.EXPECT().PendingNonce(mock.Anything).Return(uint64(3), nil).Twice()
	sender.EXPECT().SendCall(mock.Anything, cascadeAddr, mock.Anything, mock.Anything).
		Return(common.Hash{}, errors.New("insufficient funds")).Once()
	sender.EXPECT().SendCall(mock.Anything, cascadeAddr, mock.Anything, mock.Anything).
		Return(common.HexToHash("0x01"), nil).Once()

	r.Reconcile(context.Background())

	snapshot := r.Snapshot()
	require.Len(t, snapshot, 2)
	require.Equal(t, "000001", snapshot[0].Tag)
	require.Equal(t, "000002", snapshot[1].Tag)
	require.Equal(t, uint64(11), snapshot[1].BlockNumber)
}

func TestReconcileNonceErrorKeepsEntry(t *testing.T) {
	r, registry, sender := newTestReconciler(t, nil)
	entry, text := newSignal(t, "000001", 10)
	r.Enqueue(entry)

	registry.EXPECT().GetSignalStatus(mock.Anything, text).
		Return(cascadetypes.SignalStatus{Yield: big.NewInt(1)}, nil).Once()
	sender.EXPECT().PendingNonce(mock.Anything).Return(uint64(0), errors.New("rpc down")).Once()

	r.Reconcile(context.Background())
	require.Equal(t, 1, r.Len())
}

func TestReconcileEmptyQueue(t *testing.T) {
	r, _, _ := newTestReconciler(t, nil)
	r.Reconcile(context.Background())
	require.Equal(t, 0, r.Len())
	require.Empty(t, r.Snapshot())
}

func TestStartStopsOnCancel(t *testing.T) {
	r, registry, _ := newTestReconciler(t, nil)
	r.period = 10 * time.Millisecond
	entry, text := newSignal(t, "000001", 10)
	r.Enqueue(entry)
	registry.EXPECT().GetSignalStatus(mock.Anything, text).
		Return(cascadetypes.SignalStatus{Yield: big.NewInt(0)}, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestNewRejectsNonPositivePeriod(t *testing.T) {
	for _, period := range []time.Duration{0, -time.Second} {
		r, err := New(log.GetDefaultLogger(), Config{Period: configtypes.NewDuration(period)}, nil, nil, nil)
		require.ErrorIs(t, err, ErrInvalidPeriod)
		require.Nil(t, r)
	}

	r, err := New(log.GetDefaultLogger(), Config{}, nil, nil, nil)
	require.ErrorIs(t, err, ErrInvalidPeriod)
	require.Nil(t, r)
}

func TestIsAlreadyClaimed(t *testing.T) {
	require.True(t, isAlreadyClaimed(errors.New("execution reverted: Already Claimed")))
	require.True(t, isAlreadyClaimed(errors.New("execution reverted: custom error 0x"+alreadyClaimedRevertCode)))
	require.False(t, isAlreadyClaimed(errors.New("nonce too low")))
	require.False(t, isAlreadyClaimed(nil))
}
