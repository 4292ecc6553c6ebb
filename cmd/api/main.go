// @title           JAAAGO Civic Portal API
// @version         1.0
// @description     Citizen, authority and partner portal for civic issue reporting.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/pflag"

	_ "github.com/jaaago/civic-portal/docs"
	"github.com/jaaago/civic-portal/internal/api"
	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/service"
	"github.com/jaaago/civic-portal/internal/infrastructure/catalog"
	mongodb "github.com/jaaago/civic-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/jaaago/civic-portal/internal/infrastructure/db/redis"
	"github.com/jaaago/civic-portal/internal/infrastructure/geocode"
	"github.com/jaaago/civic-portal/internal/infrastructure/mail"
	"github.com/jaaago/civic-portal/internal/infrastructure/queue"
	"github.com/jaaago/civic-portal/internal/pkg/config"
	"github.com/jaaago/civic-portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "civic-portal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	flags := pflag.NewFlagSet("civic-portal", pflag.ContinueOnError)
	port := flags.String("port", cfg.Port, "HTTP listen port")
	pretty := flags.Bool("pretty", cfg.IsDevelopment(), "human readable console logs")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: *pretty,
		File: logger.FileOptions{
			Path:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		},
	})

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.Env,
		}); err != nil {
			log.Error().Err(err).Msg("sentry init failed")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Storage
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		Timeout:     cfg.Mongo.Timeout,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Timeout:  cfg.Redis.Timeout,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}()

	credentials := mongodb.NewCredentialRepository(db)
	if err := credentials.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("credential indexes: %w", err)
	}
	profiles := mongodb.NewProfileRepository(db)
	tokens := redisdb.NewTokenStore(rdb)
	mirror := redisdb.NewSessionMirror(rdb, cfg.TokenTTL)

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	// Identity and sessions
	issuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	gateway := service.NewIdentityGateway(
		credentials, profiles, tokens,
		mail.NewLogMailer(cfg.Auth.ResetURL, log),
		issuer, cfg.Auth.ResetTokenTTL, log,
	)
	sessions := service.NewSessionService(gateway, mirror, cfg.Auth.ResumeTimeout, log)
	defer sessions.Close()

	authService := service.NewAuthService(gateway, sessions, service.AuthOptions{
		AdminCode:          cfg.Auth.AdminCode,
		PartnerAutoApprove: cfg.Auth.PartnerAutoApprove,
	}, log)

	// Chat
	chat := service.NewChatService(service.NewChatbot(cfg.Chatbot.Seed, cfg.Chatbot.Delay), service.ChatOptions{
		MaxConversations: cfg.Chatbot.MaxConversations,
		IdleTimeout:      cfg.Chatbot.IdleTimeout,
	}, log)
	dispatcher := queue.NewDispatcher(cfg.Chatbot.Workers, chat, log)
	chat.SetQueue(dispatcher)
	dispatcher.Start(ctx)

	// Context
	location := service.NewLocationService(
		geocode.NewOpenCage(cfg.Geocoder.URL, cfg.Geocoder.APIKey, cfg.Geocoder.Timeout),
		domain.Place{City: cfg.Geocoder.DefaultCity, State: cfg.Geocoder.DefaultState},
		cfg.Geocoder.Timeout,
		log,
	)

	e := api.NewRouter(api.Deps{
		Auth:       authService,
		Verifier:   gateway,
		Sessions:   sessions,
		Dashboards: service.NewDashboardService(cat, log),
		Issues:     service.NewIssueService(cat, log),
		Community:  service.NewCommunityService(cat),
		Tasks:      service.NewTaskService(cat, log),
		Chat:       chat,
		Locale:     service.NewLocaleService(),
		Location:   location,
		HealthChecks: map[string]func(context.Context) error{
			"mongodb": mongodb.Ping(mongoClient),
			"redis":   redisdb.Ping(rdb),
		},
		Log: log,
	})

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", *port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + *port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	log.Info().Msg("server stopped")
	return nil
}
