package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airport-pps/config"
	"github.com/Domenick1991/airport-pps/internal/bootstrap"
	"github.com/Domenick1991/airport-pps/internal/cache"
	"github.com/Domenick1991/airport-pps/internal/logger"
	"github.com/Domenick1991/airport-pps/internal/notifier"
	"github.com/Domenick1991/airport-pps/internal/repository"
	"github.com/Domenick1991/airport-pps/internal/service/bags"
	"github.com/Domenick1991/airport-pps/internal/service/flights"
	"github.com/Domenick1991/airport-pps/internal/service/passengers"
	"github.com/Domenick1991/airport-pps/internal/telemetry"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath, err := config.ResolvePath("app", os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg, err := logger.New(cfg.App.LogMode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init(ctx, cfg.Telemetry, cfg.App.Env, logg)
	if err != nil {
		logg.Fatal("init telemetry", "error", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logg.Warn("telemetry shutdown", "error", err)
		}
	}()

	store, closeStore := openStore(ctx, cfg, logg)
	defer closeStore()

	var (
		flightCache flights.FlightCache
		bagOpts     []bags.BagServiceOption
	)
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logg.Warn("redis unreachable, continuing without cache", "addr", cfg.Redis.Addr, "error", err)
		} else {
			flightCache = redisCache
			bagOpts = append(bagOpts, bags.WithLocker(redisCache, cfg.Redis.BagLockTTL()))
		}
	}

	boardingNotifier, notifierCloser := notifier.FromConfig(cfg, logg)
	defer closeQuietly(notifierCloser, logg)
	checkChannel(ctx, notifierCloser, logg)

	flightService := flights.NewFlightService(store.Flights, store.Passengers, flightCache, logg)
	passengerService := passengers.NewPassengerService(
		store.Passengers,
		boardingNotifier,
		logg,
		passengers.WithPublishTimeout(cfg.Notifier.PublishTimeout()),
	)
	bagService := bags.NewBagService(store.Bags, store.Passengers, logg, bagOpts...)

	if cfg.Store.Seed {
		if err := bootstrap.Seed(ctx, flightService, passengerService, logg); err != nil {
			logg.Fatal("seed data", "error", err)
		}
	}

	services := bootstrap.Services{
		Flights:    flightService,
		Passengers: passengerService,
		Bags:       bagService,
	}
	if err := bootstrap.Run(ctx, cfg, services, logg); err != nil {
		logg.Fatal("server error", "error", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config, logg *logger.Logger) (repository.Store, func()) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logg.Info("using in-memory store")
		return repository.NewMemoryStore().Store(), func() {}
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logg.Fatal("connect postgres", "error", err)
	}
	if err := repository.Migrate(ctx, pool); err != nil {
		pool.Close()
		logg.Fatal("migrate postgres", "error", err)
	}
	return repository.NewPGStore(pool), pool.Close
}

// checkChannel probes the event broker once at startup. An unreachable broker
// is not fatal: boarding still works and publish failures are reported per call.
func checkChannel(ctx context.Context, channel io.Closer, logg *logger.Logger) {
	checker, ok := channel.(interface {
		CheckConnection(ctx context.Context) error
	})
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := checker.CheckConnection(ctx); err != nil {
		logg.Warn("boarding event broker unreachable at startup", "error", err)
	}
}

func closeQuietly(c io.Closer, logg *logger.Logger) {
	if err := c.Close(); err != nil {
		logg.Warn("close", "error", err)
	}
}
