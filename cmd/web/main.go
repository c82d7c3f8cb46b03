package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/designerprogramming-cyber/Designs4U/configs"
	apphttp "github.com/designerprogramming-cyber/Designs4U/internal/http"
	"github.com/designerprogramming-cyber/Designs4U/internal/http/middleware"
	"github.com/designerprogramming-cyber/Designs4U/internal/logging"
	"github.com/designerprogramming-cyber/Designs4U/internal/mailer"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/catalog"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/chat"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/flow"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/orders"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/users"
	"github.com/designerprogramming-cyber/Designs4U/internal/storage"
)

func main() {
	// .env is optional - prod uses real env vars
	_ = godotenv.Load()

	cfg, err := configs.Load("configs", os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.Init(cfg.App.Name, cfg.App.LogFile, logging.ParseLevel(cfg.App.LogLevel))

	if err := run(cfg, logger); err != nil {
		logger.Error("server_exit", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg configs.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// in-memory everything: the demo resets on restart on purpose
	uploads := storage.NewMemory("/api/v1/uploads", cfg.Uploads.MaxBytes)

	catalogSvc := catalog.NewService(catalog.NewRepo(catalog.SeedCategories(), catalog.SeedProducts()))
	orderSvc := orders.NewService(cfg.Orders.ApprovalDelay, uploads, logging.New("orders"))

	userSvc := users.NewService(users.NewStore(), &mailer.Mock{}, cfg.Auth.SubmitDelay, logging.New("users"))
	if err := userSvc.SeedDemoAccounts(ctx); err != nil {
		return err
	}

	var provider chat.Provider
	if cfg.Chat.Endpoint != "" && cfg.Chat.APIKey != "" {
		provider = chat.NewHTTPProvider(cfg.Chat.Endpoint, cfg.Chat.APIKey, cfg.Chat.Timeout)
	} else {
		logger.Warn("chat_provider_mocked", slog.String("reason", "endpoint or api key missing"))
		provider = &chat.MockProvider{}
	}
	chatSvc := chat.NewService(provider, logging.New("chat"))

	router := apphttp.NewRouter(apphttp.Deps{
		Catalog: catalogSvc,
		Orders:  orderSvc,
		Users:   userSvc,
		Chat:    chatSvc,
		Flows:   flow.NewStore(),
		Store:   uploads,
		JWT: middleware.SessionCfg{
			Secret:   []byte(cfg.Security.JWTSecret),
			Issuer:   cfg.Security.Issuer,
			Audience: cfg.Security.Audience,
			TTL:      cfg.Security.TTL,
		},
		Log: logger,
	})

	srv := &http.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_started", slog.String("addr", cfg.App.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server_stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
