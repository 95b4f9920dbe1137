package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/league-manager/brackets"
	"github.com/Dosada05/league-manager/catalog"
	"github.com/Dosada05/league-manager/config"
	"github.com/Dosada05/league-manager/db"
	"github.com/Dosada05/league-manager/events"
	"github.com/Dosada05/league-manager/handlers"
	"github.com/Dosada05/league-manager/repositories"
	api "github.com/Dosada05/league-manager/routes"
	"github.com/Dosada05/league-manager/services"
	"github.com/Dosada05/league-manager/standings"
	"github.com/Dosada05/league-manager/storage"
	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
)

// @title League Manager API
// @version 1.0
// @description Football league seasons: double round-robin fixtures, results and standings.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
		slog.String("season", cfg.SeasonLabel))

	teams, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		logger.Error("failed to load team catalog", slog.Any("error", err))
		os.Exit(1)
	}

	clock := clockwork.NewRealClock()

	store, closeStore, err := openStore(cfg, clock, logger)
	if err != nil {
		logger.Error("failed to open store", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeStore()

	var archive storage.ObjectStore
	r2Config := storage.CloudflareR2Config{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	}
	if r2Config.Enabled() {
		archive, err = storage.NewCloudflareR2Store(context.Background(), r2Config)
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 store", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 archive store initialized", slog.String("bucket", cfg.R2BucketName))
	} else {
		logger.Info("season archives disabled, R2 is not configured")
	}

	// Инициализация WebSocket Hub
	wsHub := brackets.NewHub(logger)
	go wsHub.Run()
	defer wsHub.Stop()
	logger.Info("WebSocket Hub started")

	publishers := events.MultiPublisher{events.NewHubPublisher(wsHub)}
	if cfg.NATSURL != "" {
		nc, err := events.ConnectNATS(cfg.NATSURL, logger)
		if err != nil {
			logger.Error("failed to connect to NATS", slog.Any("error", err))
			os.Exit(1)
		}
		defer nc.Drain()
		publishers = append(publishers, events.NewNATSPublisher(nc, cfg.NATSSubjectPrefix))
		logger.Info("NATS publisher initialized", slog.String("subject_prefix", cfg.NATSSubjectPrefix))
	}

	seed := cfg.SimulationSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	// Инициализация сервисов
	championshipService := services.NewChampionshipService(services.ChampionshipServiceDeps{
		Store:       store,
		Catalog:     teams,
		Generator:   brackets.NewRoundRobinGenerator(),
		Scores:      standings.NewUniformScoreSource(seed),
		Publisher:   publishers,
		Archive:     archive,
		Clock:       clock,
		Logger:      logger,
		SeasonLabel: cfg.SeasonLabel,
	})
	leagueService := services.NewLeagueService(teams)
	logger.Info("Services initialized")

	// Инициализация обработчиков HTTP
	leagueHandler := handlers.NewLeagueHandler(leagueService)
	championshipHandler := handlers.NewChampionshipHandler(championshipService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, championshipService)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		api.Options{
			JWTSecret:      []byte(cfg.JWTSecretKey),
			AllowedOrigins: cfg.CORSAllowedOrigins,
		},
		leagueHandler,
		championshipHandler,
		webSocketHandler,
	)
	logger.Info("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			closeStore()
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

// openStore returns the configured store and a close func that is safe to call twice.
func openStore(cfg *config.Config, clock clockwork.Clock, logger *slog.Logger) (repositories.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		mem := repositories.NewMemoryStore(repositories.WithClock(clock))
		if cfg.StateFile != "" {
			// состояние пишется в файл после каждой транзакции и ещё раз при остановке
			loaded, err := repositories.LoadMemoryStoreFile(cfg.StateFile,
				repositories.WithClock(clock),
				repositories.WithStateFile(cfg.StateFile, logger))
			if err != nil {
				return nil, nil, err
			}
			mem = loaded
		}
		logger.Info("memory store ready", slog.String("state_file", cfg.StateFile))

		closed := false
		return mem, func() {
			if closed || cfg.StateFile == "" {
				return
			}
			closed = true
			if err := mem.SaveFile(cfg.StateFile); err != nil {
				logger.Error("failed to save state file", slog.String("path", cfg.StateFile), slog.Any("error", err))
				return
			}
			logger.Info("state file saved", slog.String("path", cfg.StateFile))
		}, nil

	default:
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second, logger)
		if err != nil {
			return nil, nil, err
		}
		migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := db.Migrate(migrateCtx, dbConn); err != nil {
			_ = dbConn.Close()
			return nil, nil, err
		}
		logger.Info("database connection established")

		closed := false
		return repositories.NewPostgresStore(dbConn, logger), func() {
			if closed {
				return
			}
			closed = true
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			} else {
				logger.Info("database connection closed")
			}
		}, nil
	}
}
