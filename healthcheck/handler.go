package healthcheck

import (
	"encoding/json"
	"net/http"

	"github.com/agglayer/cascadekit/log"
)

// Checker reports nil while the component it watches is healthy
type Checker func() error

// HealthCheckHandler encapsulates logic that serves the HTTP request for health checks
type HealthCheckHandler struct {
	logger   *log.Logger
	checkers map[string]Checker
}

type healthResponse struct {
	IsHealthy bool              `json:"is_healthy"`
	Failing   map[string]string `json:"failing,omitempty"`
}

var _ http.Handler = (*HealthCheckHandler)(nil)

// NewHealthCheckHandler creates a new healthcheck http handler
func NewHealthCheckHandler(logger *log.Logger) *HealthCheckHandler {
	return &HealthCheckHandler{logger: logger, checkers: map[string]Checker{}}
}

// AddChecker registers a named check evaluated on every request
func (h *HealthCheckHandler) AddChecker(name string, c Checker) *HealthCheckHandler {
	h.checkers[name] = c
	return h
}

// Check runs every registered check and returns the failing ones
func (h *HealthCheckHandler) Check() map[string]string {
	var failing map[string]string
	for name, c := range h.checkers {
		if err := c(); err != nil {
			if failing == nil {
				failing = map[string]string{}
			}
			failing[name] = err.Error()
		}
	}
	return failing
}

// ServeHTTP answers 200 while every check passes, 503 otherwise
func (h *HealthCheckHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	failing := h.Check()
	resp := healthResponse{IsHealthy: len(failing) == 0, Failing: failing}

	w.Header().Set("Content-Type", "application/json")
	if resp.IsHealthy {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Errorf("failed to write health indicator: %v", err)
	}
}
