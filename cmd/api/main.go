package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ArowuTest/ticket-ledger/api/routes"
	"github.com/ArowuTest/ticket-ledger/internal/config"
	"github.com/ArowuTest/ticket-ledger/internal/handlers"
	"github.com/ArowuTest/ticket-ledger/internal/ledger"
	"github.com/ArowuTest/ticket-ledger/internal/logger"
	"github.com/ArowuTest/ticket-ledger/internal/middleware"
	"github.com/ArowuTest/ticket-ledger/internal/ocr"
	"github.com/ArowuTest/ticket-ledger/internal/repositories"
	"github.com/ArowuTest/ticket-ledger/internal/repositories/memory"
	mongorepo "github.com/ArowuTest/ticket-ledger/internal/repositories/mongodb"
	"github.com/ArowuTest/ticket-ledger/internal/services"
	"github.com/ArowuTest/ticket-ledger/pkg/jwt"
	"github.com/ArowuTest/ticket-ledger/pkg/mongodb"
)

// storage bundles the repositories of the configured driver
type storage struct {
	reports   repositories.ReportRepository
	results   repositories.ResultRepository
	rosters   repositories.RosterRepository
	regions   repositories.CropRegionRepository
	operators repositories.OperatorRepository
	ping      func(ctx context.Context) error
	close     func()
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		log.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &storage{
			reports:   store.Reports(),
			results:   store.Results(),
			rosters:   store.Rosters(),
			regions:   store.CropRegions(),
			operators: store.Operators(),
			close:     func() {},
		}, nil
	}

	client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.MongoDB.Database)
	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	log.WithField("database", cfg.MongoDB.Database).Info("Connected to MongoDB")

	return &storage{
		reports:   mongorepo.NewReportRepository(db),
		results:   mongorepo.NewResultRepository(db),
		rosters:   mongorepo.NewRosterRepository(db),
		regions:   mongorepo.NewCropRegionRepository(db),
		operators: mongorepo.NewOperatorRepository(db),
		ping:      client.Ping,
		close: func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.WithError(err).Error("Error disconnecting from MongoDB")
			}
		},
	}, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.Storage.Driver, err)
	}
	defer store.close()

	var recognizer ocr.Recognizer
	if cfg.OCR.TesseractPath != "" {
		recognizer = ocr.NewTesseractRecognizer(cfg.OCR.TesseractPath, cfg.OCR.Language)
	} else {
		log.Warn("OCR.TesseractPath is not set, image extraction is disabled")
	}

	engine := ledger.NewEngine(cfg.Ledger.MaxRangeSpan, cfg.Ledger.Locale).WithMaxMultiplier(cfg.Ledger.MaxMultiplier)
	tokens := jwt.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiresIn)*time.Second)
	sessionStore := services.NewSessionStore(cfg.Session.TTL)
	go sessionStore.Run(ctx, time.Minute)

	resultService := services.NewResultService(store.results)
	sessionService := services.NewSessionService(sessionStore, store.reports, store.rosters, resultService, engine)
	reportService := services.NewReportService(store.reports, store.rosters, resultService, engine)
	ocrService := services.NewOCRService(store.regions, resultService, recognizer)
	authService := services.NewAuthService(store.operators, tokens)

	if err := authService.EnsureOperator(ctx, cfg.Operator.Email, cfg.Operator.Password); err != nil {
		log.Fatalf("Failed to create operator account: %v", err)
	}

	loginLimiter := middleware.NewRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst)
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				loginLimiter.Cleanup()
			}
		}
	}()

	router := routes.SetupRouter(cfg, routes.HandlerDependencies{
		Tokens:         tokens,
		LoginLimiter:   loginLimiter,
		HealthHandler:  handlers.NewHealthHandler(cfg.Storage.Driver, store.ping),
		AuthHandler:    handlers.NewAuthHandler(authService),
		SessionHandler: handlers.NewSessionHandler(sessionService),
		ReportHandler:  handlers.NewReportHandler(reportService),
		ResultHandler:  handlers.NewResultHandler(resultService, ocrService),
		OCRHandler:     handlers.NewOCRHandler(ocrService),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Server.Port).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	log.Info("Server exiting")
}
