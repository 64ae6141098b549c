package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	"github.com/havendogs/api-server/server"

	boardingmemory "github.com/havendogs/api-server/internal/domains/boarding/adapters/memory"
	boardingpostgres "github.com/havendogs/api-server/internal/domains/boarding/adapters/persistence/postgres"
	boardingapp "github.com/havendogs/api-server/internal/domains/boarding/application"
	boardingports "github.com/havendogs/api-server/internal/domains/boarding/ports"

	interestdirectory "github.com/havendogs/api-server/internal/domains/interests/adapters/listings"
	interestmemory "github.com/havendogs/api-server/internal/domains/interests/adapters/memory"
	interestnotifications "github.com/havendogs/api-server/internal/domains/interests/adapters/notifications"
	interestobs "github.com/havendogs/api-server/internal/domains/interests/adapters/observability"
	interestpostgres "github.com/havendogs/api-server/internal/domains/interests/adapters/persistence/postgres"
	interestworkflows "github.com/havendogs/api-server/internal/domains/interests/adapters/workflows"
	interestsapp "github.com/havendogs/api-server/internal/domains/interests/application"
	interestports "github.com/havendogs/api-server/internal/domains/interests/ports"

	listingmemory "github.com/havendogs/api-server/internal/domains/listings/adapters/memory"
	listingobs "github.com/havendogs/api-server/internal/domains/listings/adapters/observability"
	listingpostgres "github.com/havendogs/api-server/internal/domains/listings/adapters/persistence/postgres"
	listingsapp "github.com/havendogs/api-server/internal/domains/listings/application"
	listingports "github.com/havendogs/api-server/internal/domains/listings/ports"

	usermemory "github.com/havendogs/api-server/internal/domains/users/adapters/memory"
	userpostgres "github.com/havendogs/api-server/internal/domains/users/adapters/persistence/postgres"
	usersapp "github.com/havendogs/api-server/internal/domains/users/application"
	userports "github.com/havendogs/api-server/internal/domains/users/ports"

	platformobservability "github.com/havendogs/api-server/internal/platform/observability"
	platformpostgres "github.com/havendogs/api-server/internal/platform/postgres"
	"github.com/havendogs/api-server/internal/platform/token"
)

// Run boots the HavenDogs HTTP API with observability, repositories, and
// notification dispatch wired.
func Run(ctx context.Context) error {
	const serviceName = "havendogs-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := connectPostgres(ctx, cfg, logger)
	defer cleanupDB()

	tokens, err := token.NewService(cfg.JWTSecret)
	if err != nil {
		return err
	}

	listingService := buildListingService(db, instruments)
	notifier := buildNotifier(cfg, logger)
	dispatcher := buildDispatcher(cfg, notifier, instruments, logger)
	interestService := buildInterestService(db, listingService, dispatcher, instruments, logger)
	boardingService := buildBoardingService(db)
	userService := buildUserService(db, tokens)

	handlers := server.ApiHandleFunctions{
		InterestAPI: server.NewInterestAPI(interestService),
		AdoptionAPI: server.NewAdoptionAPI(listingService),
		BoardingAPI: server.NewBoardingAPI(boardingService),
		AuthAPI:     server.NewAuthAPI(userService),
	}

	router := server.NewRouter(handlers, tokens)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("HavenDogs API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("HavenDogs API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func connectPostgres(ctx context.Context, cfg Config, logger *slog.Logger) (*gorm.DB, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return nil, func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return nil, func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return nil, func() {}
	}
	logger.Info("repositories configured with postgres")
	return db, func() { _ = sqlDB.Close() }
}

func buildListingService(db *gorm.DB, instruments *platformobservability.Instruments) listingports.Service {
	var repo listingports.Repository = listingmemory.NewRepository()
	if db != nil {
		repo = listingpostgres.NewRepository(db)
	}
	return listingobs.New(
		listingsapp.NewService(repo),
		listingobs.WithLogger(instruments.Logger),
		listingobs.WithTracer(instruments.Tracer("internal.listings.application")),
		listingobs.WithMeter(instruments.Meter("internal.listings.application")),
	)
}

func buildInterestService(
	db *gorm.DB,
	listings listingports.Service,
	dispatcher interestports.NotificationDispatcher,
	instruments *platformobservability.Instruments,
	logger *slog.Logger,
) interestports.Service {
	var repo interestports.Repository = interestmemory.NewRepository()
	if db != nil {
		repo = interestpostgres.NewRepository(db)
	}
	core := interestsapp.NewService(
		repo,
		interestdirectory.NewDirectory(listings),
		dispatcher,
		interestsapp.WithLogger(logger),
	)
	return interestobs.New(
		core,
		interestobs.WithLogger(logger),
		interestobs.WithTracer(instruments.Tracer("internal.interests.application")),
		interestobs.WithMeter(instruments.Meter("internal.interests.application")),
	)
}

func buildBoardingService(db *gorm.DB) boardingports.Service {
	var repo boardingports.Repository = boardingmemory.NewRepository()
	if db != nil {
		repo = boardingpostgres.NewRepository(db)
	}
	return boardingapp.NewService(repo)
}

func buildUserService(db *gorm.DB, tokens userports.TokenIssuer) userports.Service {
	var repo userports.Repository = usermemory.NewRepository()
	if db != nil {
		repo = userpostgres.NewRepository(db)
	}
	return usersapp.NewService(repo, tokens)
}

func buildNotifier(cfg Config, logger *slog.Logger) interestports.Notifier {
	if cfg.SendGridAPIKey == "" {
		logger.Warn("SENDGRID_API_KEY not set, recording notifications in memory")
		return interestnotifications.NewRecorder()
	}
	return interestnotifications.NewSendGridNotifier(cfg.SendGridAPIKey, cfg.SendGridFromEmail)
}

func buildDispatcher(
	cfg Config,
	notifier interestports.Notifier,
	instruments *platformobservability.Instruments,
	logger *slog.Logger,
) interestports.NotificationDispatcher {
	temporalClient, err := connectTemporalClient(cfg, instruments)
	if err != nil {
		logger.Warn("Temporal notifications unavailable, dispatching inline", slog.String("error", err.Error()))
		return interestworkflows.NewInlineDispatcher(notifier)
	}
	logger.Info("Temporal notifications enabled", slog.String("namespace", cfg.TemporalNamespace))
	return interestworkflows.NewTemporalDispatcher(temporalClient)
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
