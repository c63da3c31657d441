// Package statusservice serves the state of the relayer over REST.
package statusservice

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/agglayer/cascadekit/log"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName  = "github.com/agglayer/cascadekit/statusservice"
	limitParam = "limit"

	defaultShutdownTimeout = 5 * time.Second
)

var (
	// ErrJournalDisabled is returned by the endpoints that need the journal when it is off
	ErrJournalDisabled = errors.New("the outcome journal is disabled")
)

// StatusService contains implementations for the status endpoints
type StatusService struct {
	logger       *log.Logger
	meter        metric.Meter
	readTimeout  time.Duration
	writeTimeout time.Duration
	version      string
	dispatcher   Dispatcherer
	claims       ClaimQueuer
	journal      JournalReader
	health       http.Handler

	router *gin.Engine
}

// New returns an instance of StatusService. journal may be nil
func New(
	logger *log.Logger,
	readTimeout, writeTimeout time.Duration,
	version string,
	dispatcher Dispatcherer,
	claims ClaimQueuer,
	journal JournalReader,
	health http.Handler,
) *StatusService {
	gin.SetMode(gin.ReleaseMode)
	s := &StatusService{
		logger:       logger,
		meter:        otel.Meter(meterName),
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
		version:      version,
		dispatcher:   dispatcher,
		claims:       claims,
		journal:      journal,
		health:       health,
		router:       gin.New(),
	}
	s.router.Use(gin.Recovery())
	s.registerRoutes()
	return s
}

func (s *StatusService) registerRoutes() {
	if s.health != nil {
		s.router.GET("/health", gin.WrapH(s.health))
	}
	s.router.GET("/status", s.GetStatusHandler)
	s.router.GET("/claims", s.GetClaimsHandler)
	s.router.GET("/bridge-requests", s.GetBridgeRequestsHandler)
	s.router.GET("/submissions", s.GetSubmissionsHandler)
}

// Start serves HTTP on address until ctx is done
func (s *StatusService) Start(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:         address,
		Handler:      s.router,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}

	errC := make(chan error, 1)
	go func() {
		s.logger.Infof("status service listening on %s", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		s.logger.Errorf("status service listen error: %v", err)
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down status service...")
	shutdownTimeout := s.readTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Errorf("status service shutdown error: %v", err)
		return err
	}
	s.logger.Info("status service exited gracefully")
	return nil
}

// GetStatusHandler returns the dispatcher progress, the signal lineage and the claim queue size
func (s *StatusService) GetStatusHandler(c *gin.Context) {
	s.count(c, "get_status")
	pending := s.claims.Snapshot()
	c.JSON(http.StatusOK, StatusResult{
		Version:        s.version,
		Dispatcher:     s.dispatcher.Status(),
		ClaimQueueSize: len(pending),
		JournalEnabled: s.journal != nil,
	})
}

// GetClaimsHandler returns the pending claims and, if the journal is on, the latest claim outcomes
func (s *StatusService) GetClaimsHandler(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := s.setupRequest(c, "get_claims")
	defer cancel()

	pending := s.claims.Snapshot()
	res := ClaimsResult{Pending: pending, Count: len(pending)}
	if s.journal != nil {
		res.History, err = s.journal.LastClaims(ctx, limit)
		if err != nil {
			s.logger.Errorf("failed to read claim history: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read claim history: " + err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, res)
}

// GetBridgeRequestsHandler returns the bridge requests seen in the cache retention window
func (s *StatusService) GetBridgeRequestsHandler(c *gin.Context) {
	s.count(c, "get_bridge_requests")
	reqs := s.dispatcher.BridgeRequests()
	c.JSON(http.StatusOK, BridgeRequestsResult{BridgeRequests: reqs, Count: len(reqs)})
}

// GetSubmissionsHandler returns the latest submission outcomes from the journal
func (s *StatusService) GetSubmissionsHandler(c *gin.Context) {
	if s.journal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrJournalDisabled.Error()})
		return
	}
	limit, err := parseLimit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := s.setupRequest(c, "get_submissions")
	defer cancel()

	subs, err := s.journal.LastSubmissions(ctx, limit)
	if err != nil {
		s.logger.Errorf("failed to read submissions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read submissions: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, SubmissionsResult{Submissions: subs, Count: len(subs)})
}

func (s *StatusService) setupRequest(c *gin.Context, counterName string) (context.Context, context.CancelFunc) {
	s.count(c, counterName)
	if s.readTimeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), s.readTimeout)
}

func (s *StatusService) count(c *gin.Context, counterName string) {
	counter, err := s.meter.Int64Counter(counterName)
	if err != nil {
		s.logger.Warnf("failed to create %s counter: %s", counterName, err)
		return
	}
	counter.Add(c.Request.Context(), 1)
}
