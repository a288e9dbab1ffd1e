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
	"syscall"
	"time"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/vtm-builder/internal/catalog"
	"github.com/KirkDiggler/vtm-builder/internal/config"
	"github.com/KirkDiggler/vtm-builder/internal/events"
	"github.com/KirkDiggler/vtm-builder/internal/handlers/builder/v1alpha1"
	"github.com/KirkDiggler/vtm-builder/internal/metrics"
	characterorch "github.com/KirkDiggler/vtm-builder/internal/orchestrators/character"
	"github.com/KirkDiggler/vtm-builder/internal/orchestrators/predatortype"
	"github.com/KirkDiggler/vtm-builder/internal/pkg/clock"
	"github.com/KirkDiggler/vtm-builder/internal/pkg/idgen"
	"github.com/KirkDiggler/vtm-builder/internal/redis"
	characterrepo "github.com/KirkDiggler/vtm-builder/internal/repositories/character"
	choicesession "github.com/KirkDiggler/vtm-builder/internal/repositories/choice_session"
)

const (
	redisPingTimeout = 5 * time.Second
	shutdownTimeout  = 30 * time.Second
)

var (
	grpcPort    int
	metricsPort int
	redisAddr   string
	envFile     string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the builder gRPC server with health, reflection and a Prometheus metrics endpoint.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides VTM_GRPC_PORT)")
	serverCmd.Flags().IntVar(&metricsPort, "metrics-port", 0, "metrics port, 0 disables (overrides VTM_METRICS_PORT)")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "redis address (overrides VTM_REDIS_ADDR)")
	serverCmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(envFile); err != nil {
		slog.Debug("no env file loaded", "path", envFile)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("metrics-port") {
		cfg.MetricsPort = metricsPort
	}
	if cmd.Flags().Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // safe to ignore on shutdown
	}()
	if err := redis.Ping(ctx, redisClient, redisPingTimeout); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	srv, err := newGRPCServer(cfg, redisClient)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	var metricsServer *http.Server
	if cfg.MetricsPort != 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		metricsServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.MetricsPort),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	if metricsServer != nil {
		g.Go(func() error {
			slog.Info("metrics server starting", "port", cfg.MetricsPort)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("failed to serve metrics: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if metricsServer != nil {
			_ = metricsServer.Shutdown(shutdownCtx) // nolint:errcheck // best effort on shutdown
		}

		stopped := make(chan struct{})
		go func() {
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
	})

	return g.Wait()
}

// newGRPCServer wires storage, orchestrators and handlers into a server
func newGRPCServer(cfg *config.Config, redisClient redis.Client) (*grpc.Server, error) {
	cat, err := catalog.New(&catalog.Config{Path: cfg.CatalogPath})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}
	sessionRepo, err := choicesession.NewRedisRepository(&choicesession.Config{
		Client: redisClient,
		Clock:  clock.New(),
		TTL:    cfg.SessionTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	bus := rpgevents.NewBus()
	events.SubscribeLogging(bus)

	predatorTypeService, err := predatortype.NewOrchestrator(&predatortype.Config{
		CharacterRepo: characterRepo,
		SessionRepo:   sessionRepo,
		Catalog:       cat,
		Publisher:     events.NewBusPublisher(bus),
		IDGenerator:   idgen.NewUUID("session"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create predator type orchestrator: %w", err)
	}
	characterService, err := characterorch.New(&characterorch.Config{
		CharacterRepo: characterRepo,
		SessionRepo:   sessionRepo,
		IDGenerator:   idgen.NewUUID("char"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	predatorTypeHandler, err := v1alpha1.NewPredatorTypeHandler(&v1alpha1.PredatorTypeHandlerConfig{
		PredatorTypeService: predatorTypeService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create predator type handler: %w", err)
	}
	characterHandler, err := v1alpha1.NewCharacterHandler(&v1alpha1.CharacterHandlerConfig{
		CharacterService: characterService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create character handler: %w", err)
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

	v1alpha1.RegisterPredatorTypeServiceServer(srv, predatorTypeHandler)
	v1alpha1.RegisterCharacterServiceServer(srv, characterHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.PredatorTypeServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.CharacterServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, nil
}

// logFunc bridges the interceptor logger onto slog; the level values match
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
