package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	ossignal "os/signal"
	"runtime"
	"syscall"
	"time"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/agglayer/cascadekit"
	"github.com/agglayer/cascadekit/blocknotifier"
	"github.com/agglayer/cascadekit/claimreconciler"
	cascadecommon "github.com/agglayer/cascadekit/common"
	"github.com/agglayer/cascadekit/config"
	"github.com/agglayer/cascadekit/contracts/cascade"
	"github.com/agglayer/cascadekit/dispatcher"
	"github.com/agglayer/cascadekit/etherman"
	"github.com/agglayer/cascadekit/healthcheck"
	"github.com/agglayer/cascadekit/journal"
	"github.com/agglayer/cascadekit/log"
	"github.com/agglayer/cascadekit/metrics"
	"github.com/agglayer/cascadekit/pprof"
	"github.com/agglayer/cascadekit/prometheus"
	"github.com/agglayer/cascadekit/rpc"
	"github.com/agglayer/cascadekit/signal"
	"github.com/agglayer/cascadekit/signer"
	"github.com/agglayer/cascadekit/statusservice"
	"github.com/agglayer/cascadekit/submitter"
	"github.com/agglayer/cascadekit/txsender"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const (
	metricsServerTimeout  = 10 * time.Second
	serverShutdownTimeout = 5 * time.Second
)

// journals holds the journal behind the interfaces of its consumers, all nil when it is disabled
type journals struct {
	submissions submitter.SubmissionJournal
	claims      claimreconciler.ClaimJournal
	reader      statusservice.JournalReader
}

func start(cliCtx *cli.Context) error {
	cfg, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(cfg.Log)

	if cfg.Log.Environment == log.EnvironmentDevelopment {
		cascadekit.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if cfg.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	if cfg.Prometheus.Enabled {
		prometheus.Init()
		metrics.Register()
	}

	ctx, stop := ossignal.NotifyContext(cliCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	components := cliCtx.StringSlice(config.FlagComponents)

	client, err := etherman.NewClient(ctx, cfg.Etherman, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", cfg.Etherman.URL, err)
	}

	jrnl, err := runJournalIfNeeded(ctx, g, cfg.Journal)
	if err != nil {
		return err
	}

	registry, err := cascade.NewRegistry(cfg.Submitter.CascadeAddr, client.EthClient)
	if err != nil {
		return fmt.Errorf("failed to bind cascade contract %s: %w", cfg.Submitter.CascadeAddr.Hex(), err)
	}
	sender, err := createTxSender(ctx, cfg.Signer, client)
	if err != nil {
		return err
	}

	reconciler, err := claimreconciler.New(
		log.WithFields("module", cascadecommon.CLAIMRECONCILER),
		cfg.ClaimReconciler,
		registry,
		sender,
		jrnl.claims,
	)
	if err != nil {
		return err
	}
	if isNeeded([]string{cascadecommon.CLAIMRECONCILER}, components) {
		g.Go(func() error {
			reconciler.Start(ctx)
			return nil
		})
	} else if isNeeded([]string{cascadecommon.DISPATCHER}, components) {
		log.Warn("claim reconciler disabled: accepted signals are queued but never claimed")
	}

	engine, err := submitter.New(
		log.WithFields("module", cascadecommon.SUBMITTER),
		submitter.NewPolicy(cfg.Submitter),
		registry,
		sender,
		reconciler,
		jrnl.submissions,
	)
	if err != nil {
		return err
	}

	d, err := dispatcher.New(
		log.WithFields("module", cascadecommon.DISPATCHER),
		cfg.Dispatcher,
		client.ChainID,
		client.EthClient,
		engine,
		signal.NewBuilder(cfg.Signal.Path, nil),
		signal.NewLineage(),
	)
	if err != nil {
		return err
	}

	healthHandler := healthcheck.NewHealthCheckHandler(log.WithFields("module", "healthcheck"))
	if isNeeded([]string{cascadecommon.DISPATCHER}, components) {
		if err := runDispatcher(ctx, g, cfg.BlockNotifier, client, d); err != nil {
			return err
		}
		if cfg.Dispatcher.MaxBlockIdle.Duration > 0 {
			healthHandler.AddChecker(cascadecommon.DISPATCHER, d.LivenessCheck(cfg.Dispatcher.MaxBlockIdle.Duration))
		}
	}

	if isNeeded([]string{cascadecommon.STATUS}, components) {
		runStatusServices(ctx, g, cfg, d, reconciler, jrnl.reader, healthHandler)
	}

	if cfg.Prometheus.Enabled {
		g.Go(func() error {
			startPrometheusHTTPServer(ctx, cfg.Prometheus)
			return nil
		})
	} else {
		log.Info("Prometheus metrics server is disabled")
	}

	if cfg.Profiling.ProfilingEnabled {
		g.Go(func() error {
			pprof.StartProfilingHTTPServer(ctx, cfg.Profiling)
			return nil
		})
	}

	err = g.Wait()
	log.Info("terminating application gracefully...")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func createTxSender(ctx context.Context, cfg signer.SignerConfig,
	client *etherman.Client) (*txsender.Sender, error) {
	logger := log.WithFields("module", "txsender")
	s, err := signer.NewSigner(ctx, "cascade", logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create signer: %w", err)
	}
	log.Infof("sending transactions from %s", s.PublicAddress().Hex())
	return txsender.New(logger, client.EthClient, s, client.ChainID), nil
}

func runJournalIfNeeded(ctx context.Context, g *errgroup.Group, cfg journal.Config) (journals, error) {
	if !cfg.Enabled {
		log.Info("outcome journal is disabled")
		return journals{}, nil
	}
	j, err := journal.New(log.WithFields("module", "journal"), cfg.DBPath)
	if err != nil {
		return journals{}, fmt.Errorf("failed to open journal %s: %w", cfg.DBPath, err)
	}
	g.Go(func() error {
		j.Start(ctx, cfg.RetentionPeriod.Duration, cfg.PruneInterval.Duration)
		<-ctx.Done()
		return j.Close()
	})
	return journals{submissions: j, claims: j, reader: j}, nil
}

func runDispatcher(ctx context.Context, g *errgroup.Group, cfg blocknotifier.Config,
	client *etherman.Client, d *dispatcher.Dispatcher) error {
	logger := log.WithFields("module", cascadecommon.BLOCKNOTIFIER)
	notifier, err := blocknotifier.NewBlockNotifierPolling(client.EthClient, cfg, logger, nil)
	if err != nil {
		return err
	}
	// the block seen on the first poll is never published, which leaves the dispatcher time to subscribe
	g.Go(func() error {
		d.Start(ctx, notifier)
		return nil
	})
	g.Go(func() error {
		log.Infof("Starting blockNotifier: %s", notifier.String())
		notifier.Start(ctx)
		return nil
	})
	return nil
}

func runStatusServices(
	ctx context.Context,
	g *errgroup.Group,
	cfg *config.Config,
	d *dispatcher.Dispatcher,
	reconciler *claimreconciler.ClaimReconciler,
	reader statusservice.JournalReader,
	health *healthcheck.HealthCheckHandler,
) {
	version := cascadekit.GetVersion().Brief()
	if cfg.REST.Enabled {
		rest := statusservice.New(
			log.WithFields("module", "rest"),
			cfg.REST.ReadTimeout.Duration,
			cfg.REST.WriteTimeout.Duration,
			version,
			d,
			reconciler,
			reader,
			health,
		)
		address := net.JoinHostPort(cfg.REST.Host, fmt.Sprintf("%d", cfg.REST.Port))
		g.Go(func() error {
			return rest.Start(ctx, address)
		})
	}

	services := []jRPC.Service{
		{
			Name: rpc.CASCADE,
			Service: rpc.NewCascadeEndpoints(
				log.WithFields("module", rpc.CASCADE),
				cfg.RPC.ReadTimeout.Duration,
				version,
				d,
				reconciler,
				reader,
			),
		},
	}
	rpcServer := createRPC(cfg.RPC, services, health)
	g.Go(func() error {
		go func() {
			<-ctx.Done()
			if err := rpcServer.Stop(); err != nil {
				log.Errorf("error stopping rpc server: %v", err)
			}
		}()
		if err := rpcServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("rpc server: %w", err)
		}
		return nil
	})
}

func createRPC(cfg jRPC.Config, services []jRPC.Service, health http.Handler) *jRPC.Server {
	logger := log.WithFields("module", "RPC")
	return jRPC.NewServer(cfg, services,
		jRPC.WithLogger(logger.GetSugaredLogger()),
		jRPC.WithHealthHandler(health))
}

func logVersion() {
	log.Infow("Starting application",
		// version is already logged by default
		"gitRevision", cascadekit.GitRev,
		"gitBranch", cascadekit.GitBranch,
		"goVersion", runtime.Version(),
		"built", cascadekit.BuildDate,
		"os/arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	)
}

func isNeeded(casesWhereNeeded, actualCases []string) bool {
	for _, actualCase := range actualCases {
		for _, caseWhereNeeded := range casesWhereNeeded {
			if actualCase == caseWhereNeeded {
				return true
			}
		}
	}

	return false
}

func startPrometheusHTTPServer(ctx context.Context, c prometheus.Config) {
	mux := http.NewServeMux()
	address := net.JoinHostPort(c.Host, fmt.Sprintf("%d", c.Port))
	lis, err := net.Listen("tcp", address)
	if err != nil {
		log.Errorf("failed to create tcp listener for metrics: %v", err)
		return
	}
	mux.Handle(prometheus.Endpoint, prometheus.Handler())

	metricsServer := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: metricsServerTimeout,
		ReadTimeout:       metricsServerTimeout,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Errorf("error shutting down prometheus server: %v", err)
		}
	}()
	log.Infof("prometheus server listening on port %d", c.Port)
	if err := metricsServer.Serve(lis); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Warnf("prometheus http server stopped")
			return
		}
		log.Errorf("closed http connection for prometheus server: %v", err)
		return
	}
}
