package pprof

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/agglayer/cascadekit/log"
	"github.com/agglayer/cascadekit/prometheus"
)

const (
	serverTimeout   = 2 * time.Minute
	shutdownTimeout = 5 * time.Second
)

// StartProfilingHTTPServer serves the pprof endpoints on the configured host and port until
// ctx is cancelled.
func StartProfilingHTTPServer(ctx context.Context, c Config) {
	mux := http.NewServeMux()
	address := net.JoinHostPort(c.ProfilingHost, fmt.Sprintf("%d", c.ProfilingPort))
	lis, err := net.Listen("tcp", address)
	if err != nil {
		log.Errorf("failed to create tcp listener for profiling: %v", err)
		return
	}
	mux.HandleFunc(prometheus.ProfilingIndexEndpoint, pprof.Index)
	mux.HandleFunc(prometheus.ProfileEndpoint, pprof.Profile)
	mux.HandleFunc(prometheus.ProfilingCmdEndpoint, pprof.Cmdline)
	mux.HandleFunc(prometheus.ProfilingSymbolEndpoint, pprof.Symbol)
	mux.HandleFunc(prometheus.ProfilingTraceEndpoint, pprof.Trace)
	profilingServer := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: serverTimeout,
		ReadTimeout:       serverTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := profilingServer.Shutdown(shutdownCtx); err != nil {
			log.Errorf("error shutting down profiling server: %v", err)
		}
	}()

	log.Infof("profiling server listening on port %d", c.ProfilingPort)
	if err := profilingServer.Serve(lis); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Warnf("http server for profiling stopped")
			return
		}
		log.Errorf("closed http connection for profiling server: %v", err)
		return
	}
}
