package statusservice

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agglayer/cascadekit/claimreconciler"
	"github.com/agglayer/cascadekit/dispatcher"
	"github.com/agglayer/cascadekit/healthcheck"
	"github.com/agglayer/cascadekit/journal"
	"github.com/agglayer/cascadekit/log"
	"github.com/agglayer/cascadekit/signal"
	"github.com/agglayer/cascadekit/statusservice/mocks"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type statusWithMocks struct {
	service    *StatusService
	dispatcher *mocks.Dispatcherer
	claims     *mocks.ClaimQueuer
	journal    *mocks.JournalReader
}

func newStatusWithMocks(t *testing.T, withJournal bool) statusWithMocks {
	t.Helper()
	s := statusWithMocks{
		dispatcher: mocks.NewDispatcherer(t),
		claims:     mocks.NewClaimQueuer(t),
	}
	var j JournalReader
	if withJournal {
		s.journal = mocks.NewJournalReader(t)
		j = s.journal
	}
	health := healthcheck.NewHealthCheckHandler(log.WithFields("module", "healthcheck")).
		AddChecker("always", func() error { return nil })
	s.service = New(log.WithFields("module", "test status service"), time.Second, time.Second,
		"v0.1.0", s.dispatcher, s.claims, j, health)
	return s
}

func performRequest(t *testing.T, router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var pendingClaims = []claimreconciler.EntrySnapshot{
	{Tag: "000001", SignalID: common.HexToHash("0x01").Hex(), BlockNumber: 10},
	{Tag: "br-11-aaaaaaaa", SignalID: common.HexToHash("0x02").Hex(), BlockNumber: 11},
}

func TestGetStatusHandler(t *testing.T) {
	s := newStatusWithMocks(t, true)
	status := dispatcher.Status{
		LastBlock:       144,
		BridgeCacheSize: 1,
		Lineage:         signal.LineageSnapshot{Counter: 3, LastSubmitted: common.HexToHash("0x03"), Submissions: 4},
	}
	s.dispatcher.EXPECT().Status().Return(status).Once()
	s.claims.EXPECT().Snapshot().Return(pendingClaims).Once()

	w := performRequest(t, s.service.router, http.MethodGet, "/status")
	require.Equal(t, http.StatusOK, w.Code)

	var res StatusResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, "v0.1.0", res.Version)
	require.Equal(t, 2, res.ClaimQueueSize)
	require.True(t, res.JournalEnabled)
	require.Equal(t, uint64(144), res.Dispatcher.LastBlock)
	require.Equal(t, uint64(3), res.Dispatcher.Lineage.Counter)
	require.Equal(t, common.HexToHash("0x03"), res.Dispatcher.Lineage.LastSubmitted)
}

func TestGetClaimsHandler(t *testing.T) {
	t.Run("pending and history", func(t *testing.T) {
		s := newStatusWithMocks(t, true)
		s.claims.EXPECT().Snapshot().Return(pendingClaims).Once()
		history := []*journal.ClaimRecord{
			{ID: 1, Tag: "000000", Outcome: claimreconciler.OutcomeClaimed, Yield: big.NewInt(7)},
		}
		s.journal.EXPECT().LastClaims(mock.Anything, 5).Return(history, nil).Once()

		w := performRequest(t, s.service.router, http.MethodGet, "/claims?limit=5")
		require.Equal(t, http.StatusOK, w.Code)

		var res ClaimsResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Equal(t, 2, res.Count)
		require.Equal(t, pendingClaims, res.Pending)
		require.Len(t, res.History, 1)
		require.Equal(t, big.NewInt(7), res.History[0].Yield)
	})

	t.Run("without journal", func(t *testing.T) {
		s := newStatusWithMocks(t, false)
		s.claims.EXPECT().Snapshot().Return(nil).Once()

		w := performRequest(t, s.service.router, http.MethodGet, "/claims")
		require.Equal(t, http.StatusOK, w.Code)

		var res ClaimsResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Equal(t, 0, res.Count)
		require.Empty(t, res.History)
	})

	t.Run("invalid limit", func(t *testing.T) {
		s := newStatusWithMocks(t, true)
		w := performRequest(t, s.service.router, http.MethodGet, "/claims?limit=1000")
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "limit must be between 1 and 200")
	})

	t.Run("journal error", func(t *testing.T) {
		s := newStatusWithMocks(t, true)
		s.claims.EXPECT().Snapshot().Return(pendingClaims).Once()
		s.journal.EXPECT().LastClaims(mock.Anything, DefaultLimit).Return(nil, errors.New("db locked")).Once()

		w := performRequest(t, s.service.router, http.MethodGet, "/claims")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, w.Body.String(), "db locked")
	})
}

func TestGetBridgeRequestsHandler(t *testing.T) {
	s := newStatusWithMocks(t, false)
	reqs := []dispatcher.BridgeRequestRecord{
		{BlockNumber: 1000, From: common.HexToAddress("0xAAAA"), Amount: big.NewInt(500), Timestamp: time.Unix(1, 0).UTC()},
	}
	s.dispatcher.EXPECT().BridgeRequests().Return(reqs).Once()

	w := performRequest(t, s.service.router, http.MethodGet, "/bridge-requests")
	require.Equal(t, http.StatusOK, w.Code)

	var res BridgeRequestsResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, 1, res.Count)
	require.Len(t, res.BridgeRequests, 1)
	got := res.BridgeRequests[0]
	require.Equal(t, uint64(1000), got.BlockNumber)
	require.Equal(t, reqs[0].From, got.From)
	require.Equal(t, big.NewInt(500), got.Amount)
	require.True(t, reqs[0].Timestamp.Equal(got.Timestamp))
}

func TestGetSubmissionsHandler(t *testing.T) {
	t.Run("journal disabled", func(t *testing.T) {
		s := newStatusWithMocks(t, false)
		w := performRequest(t, s.service.router, http.MethodGet, "/submissions")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Contains(t, w.Body.String(), ErrJournalDisabled.Error())
	})

	t.Run("latest submissions", func(t *testing.T) {
		s := newStatusWithMocks(t, true)
		subs := []*journal.SubmissionRecord{
			{ID: 2, Tag: "000002", Outcome: "submitted", Attempts: 1, Fee: big.NewInt(100)},
			{ID: 1, Tag: "000001", Outcome: "gas-exceeded", Attempts: 4, Fee: big.NewInt(140)},
		}
		s.journal.EXPECT().LastSubmissions(mock.Anything, 2).Return(subs, nil).Once()

		w := performRequest(t, s.service.router, http.MethodGet, "/submissions?limit=2")
		require.Equal(t, http.StatusOK, w.Code)

		var res SubmissionsResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Equal(t, 2, res.Count)
		require.Equal(t, "gas-exceeded", res.Submissions[1].Outcome)
	})

	t.Run("invalid limit", func(t *testing.T) {
		s := newStatusWithMocks(t, true)
		w := performRequest(t, s.service.router, http.MethodGet, "/submissions?limit=abc")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthRoute(t *testing.T) {
	s := newStatusWithMocks(t, false)
	w := performRequest(t, s.service.router, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"is_healthy":true}`, w.Body.String())
}

func TestStartAndShutdown(t *testing.T) {
	s := newStatusWithMocks(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	errC := make(chan error, 1)
	go func() {
		errC <- s.service.Start(ctx, "127.0.0.1:0")
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-errC:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("status service did not stop")
	}
}
