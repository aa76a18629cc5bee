package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/seerahverse/account-dashboard/internal/api"
	"github.com/seerahverse/account-dashboard/internal/api/metrics"
	"github.com/seerahverse/account-dashboard/internal/core/domain"
	"github.com/seerahverse/account-dashboard/internal/core/ports"
	"github.com/seerahverse/account-dashboard/internal/core/service"
	"github.com/seerahverse/account-dashboard/internal/infrastructure/config"
	"github.com/seerahverse/account-dashboard/internal/infrastructure/credentials"
	memorysession "github.com/seerahverse/account-dashboard/internal/infrastructure/session/memory"
	redissession "github.com/seerahverse/account-dashboard/internal/infrastructure/session/redis"
	filestore "github.com/seerahverse/account-dashboard/internal/infrastructure/store/file"
	mongostore "github.com/seerahverse/account-dashboard/internal/infrastructure/store/mongo"
	"github.com/seerahverse/account-dashboard/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	creds, err := credentials.NewStaticStore([]credentials.Seed{
		{ID: "HBL", DisplayName: "Hamas Akram", Role: domain.RoleAdmin, Password: cfg.Accounts.HBLPassword},
		{ID: "Jazzcash", DisplayName: "Hamas Akram", Role: domain.RoleAccountant, Password: cfg.Accounts.JazzcashPassword},
		{ID: "EasyPaisa", DisplayName: "Hamas Akram", Role: domain.RoleViewer, Password: cfg.Accounts.EasyPaisaPassword},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to provision accounts")
	}

	var (
		ledgerRepo   ports.LedgerRepository
		reminderRepo ports.ReminderRepository
		budgetRepo   ports.BudgetRepository
		auditRepo    ports.AuditRepository
		mongoDB      *mongo.Database
	)
	switch cfg.StorageBackend {
	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		mongoDB = db
		ledgerRepo = mongostore.NewLedgerRepository(db)
		reminderRepo = mongostore.NewReminderRepository(db)
		budgetRepo = mongostore.NewBudgetRepository(db)
		auditRepo = mongostore.NewAuditRepository(db)
	case "file":
		store, err := filestore.NewStore(cfg.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open data directory")
		}
		ledgerRepo = filestore.NewLedgerRepository(store)
		reminderRepo = filestore.NewReminderRepository(store)
		budgetRepo = filestore.NewBudgetRepository(store)
		auditRepo = filestore.NewAuditRepository(store)
	default:
		log.Fatal().Str("backend", cfg.StorageBackend).Msg("unknown storage backend")
	}

	var (
		sessions    ports.SessionStore
		redisClient *redis.Client
	)
	switch cfg.SessionBackend {
	case "redis":
		redisClient, err = redissession.Connect(ctx, redissession.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer func() { _ = redisClient.Close() }()
		sessions = redissession.NewStore(redisClient)
	case "memory":
		sessions = memorysession.NewStore()
	default:
		log.Fatal().Str("backend", cfg.SessionBackend).Msg("unknown session backend")
	}

	audit := service.NewAuditService(auditRepo, log).
		WithAppendErrorHook(metrics.AuditAppendErrorsTotal.Inc)
	auth := service.NewAuthService(creds)
	guard := service.NewSessionGuard(auth, sessions, audit, cfg.JWTSecret, cfg.SessionIdleTimeout, log)
	ledger := service.NewLedgerService(ledgerRepo, audit, log)
	reminders := service.NewReminderService(reminderRepo, audit, log)
	budget := service.NewBudgetService(budgetRepo, audit, log)

	e := api.NewRouter(api.Deps{
		Guard:     guard,
		Ledger:    ledger,
		Reminders: reminders,
		Budget:    budget,
		Audit:     audit,
		Creds:     creds,
		JWTSecret: cfg.JWTSecret,
		Mongo:     mongoDB,
		Redis:     redisClient,
		Log:       log,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("port", cfg.Port).
			Str("storage", cfg.StorageBackend).
			Str("sessions", cfg.SessionBackend).
			Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}
