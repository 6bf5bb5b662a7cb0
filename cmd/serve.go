package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"fincalc/config"
	httpLayer "fincalc/http"
	"fincalc/repository"
	"fincalc/service"
)

const startupTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Starts the calculator API.

Calculations are stored in PostgreSQL when DATABASE_URL is set and in
memory otherwise. Results are cached in Redis when REDIS_ADDR is set.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	calcRepo, closeRepo, err := newCalculationRepository(startCtx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	cache, closeCache, err := newCache(startCtx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	calculatorService := service.NewCalculatorService(calcRepo, cache)
	calculatorHandler := httpLayer.NewCalculatorHandler(calculatorService)
	catalogHandler := httpLayer.NewCatalogHandler()

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      httpLayer.NewRouter(calculatorHandler, catalogHandler, rateLimiter),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API running on http://localhost%s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("error starting server: %w", err)
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
	return nil
}

func newCalculationRepository(
	ctx context.Context,
	cfg config.Config,
) (repository.CalculationRepository, func(), error) {

	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, storing calculations in memory")
		return repository.NewCalculationRepositoryMemory(), func() {}, nil
	}

	pool, err := repository.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	repo := repository.NewCalculationRepositoryPostgres(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	log.Println("Storing calculations in PostgreSQL")
	return repo, pool.Close, nil
}

// newCache falls back to an in-process cache when Redis is not configured or
// not reachable.
func newCache(ctx context.Context, cfg config.Config) (repository.CacheRepository, func(), error) {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache(cfg.CacheTTL), func() {}, nil
	}

	cache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	if err := cache.Ping(ctx); err != nil {
		log.Printf("Warning: redis unavailable at %s, using memory cache: %v", cfg.RedisAddr, err)
		_ = cache.Close()
		return repository.NewMemoryCache(cfg.CacheTTL), func() {}, nil
	}

	log.Printf("Caching results in redis at %s", cfg.RedisAddr)
	return cache, func() {
		if err := cache.Close(); err != nil {
			log.Printf("Warning: failed to close redis client: %v", err)
		}
	}, nil
}
