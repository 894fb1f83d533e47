package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/army-rater/internal/engine/scoring"
	"github.com/KirkDiggler/army-rater/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/army-rater/internal/handlers/web"
	"github.com/KirkDiggler/army-rater/internal/orchestrators/roster"
	"github.com/KirkDiggler/army-rater/internal/redis"
	"github.com/KirkDiggler/army-rater/internal/repositories/armies"
	"github.com/KirkDiggler/army-rater/internal/services/interchange"
)

var (
	grpcPort          int
	httpPort          int
	redisAddr         string
	defaultGameSize   int
	applyHitModifier  bool
	effectiveSaveTier bool
	logLevel          string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and HTTP servers",
	Long:  `Start the army-rater gRPC service and the HTTP/websocket adapter.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 8080, "HTTP server port (0 disables it)")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address; armies are kept in memory when empty")
	serverCmd.Flags().IntVar(&defaultGameSize, "game-size", 2000, "Points limit for armies created without one")
	serverCmd.Flags().BoolVar(&applyHitModifier, "apply-hit-modifier", false, "Apply unit hit bonuses to weapon power")
	serverCmd.Flags().BoolVar(&effectiveSaveTier, "effective-save-tier", false, "Score the save after save bonuses")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runServer(_ *cobra.Command, _ []string) error {
	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repo, closeRepo, err := newRepository(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	eng, err := scoring.New(&scoring.Config{Options: scoring.Options{
		ApplyHitModifier:  applyHitModifier,
		EffectiveSaveTier: effectiveSaveTier,
	}})
	if err != nil {
		return fmt.Errorf("failed to create scoring engine: %w", err)
	}

	bus := events.NewBus()
	codec := interchange.New()

	rosterService, err := roster.NewOrchestrator(&roster.Config{
		Repository:      repo,
		Engine:          eng,
		Codec:           codec,
		EventBus:        bus,
		DefaultGameSize: defaultGameSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create roster orchestrator: %w", err)
	}

	armyHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{RosterService: rosterService})
	if err != nil {
		return fmt.Errorf("failed to create army handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterArmyServiceServer(srv, armyHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", grpcPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve gRPC: %w", err)
		}
	}()

	var httpServer *http.Server
	if httpPort > 0 {
		webHandler, err := web.NewHandler(&web.Config{
			RosterService: rosterService,
			Codec:         codec,
			EventBus:      bus,
		})
		if err != nil {
			return fmt.Errorf("failed to create web handler: %w", err)
		}

		httpServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", httpPort),
			Handler:           webHandler.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			slog.Info("HTTP server starting", "port", httpPort)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("failed to serve HTTP: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-errChan:
		srv.Stop()
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("HTTP shutdown failed", "error", err.Error())
		}
	}

	stopped := make(chan struct{})
	go func() {
		healthServer.Shutdown()
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}

	return nil
}

// newRepository picks redis when an address is configured
func newRepository(ctx context.Context) (armies.Repository, func(), error) {
	if redisAddr == "" {
		slog.Info("storing armies in memory")
		return armies.NewInMemory(), func() {}, nil
	}

	client, err := redis.NewClient(redisAddr, &redis.Options{
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err != nil {
		return nil, nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redis.Ping(pingCtx, client); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	repo, err := armies.NewRedis(&armies.RedisConfig{Client: client})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	slog.Info("storing armies in redis", "addr", redisAddr)
	return repo, func() { _ = client.Close() }, nil
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// logFunc bridges the gRPC logging interceptor onto slog. The middleware
// levels share slog's numeric values.
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
