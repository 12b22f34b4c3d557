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

	"github.com/Dosada05/tennis-cup/brackets"
	"github.com/Dosada05/tennis-cup/handlers"
	"github.com/Dosada05/tennis-cup/metrics"
	"github.com/Dosada05/tennis-cup/notifier"
	"github.com/Dosada05/tennis-cup/routes"
	"github.com/Dosada05/tennis-cup/services"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and websocket server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("store", string(cfg.StoreBackend)))

	repo, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.StoreBackend, err)
	}
	defer closeStore()
	logger.Info("store ready", slog.String("store", string(cfg.StoreBackend)))

	metricsSvc := metrics.NewService()
	wsHub := brackets.NewHub(logger)

	fanout := notifier.NewFanout(metricsSvc, logger,
		notifier.Sink{Name: "websocket", Publisher: notifier.NewHubPublisher(wsHub)},
	)
	if cfg.PubSub.Enabled() {
		ps, err := notifier.NewPubSubPublisher(ctx, cfg.PubSub.ProjectID, cfg.PubSub.Topic, logger)
		if err != nil {
			return err
		}
		defer ps.Close()
		fanout.Add(notifier.Sink{Name: "pubsub", Publisher: ps})
		logger.Info("pubsub publishing enabled", slog.String("topic", cfg.PubSub.Topic))
	}
	if cfg.Slack.Enabled() {
		fanout.Add(notifier.Sink{Name: "slack", Publisher: notifier.NewSlackAnnouncer(cfg.Slack.Token, cfg.Slack.ChannelID, logger)})
		logger.Info("slack announcements enabled", slog.String("channel", cfg.Slack.ChannelID))
	}

	tournamentService := services.NewTournamentService(repo, metricsSvc, logger,
		services.WithPublisher(fanout),
		services.WithDefaultMaxPlayers(cfg.DefaultMaxPlayers),
	)
	authService := services.NewAuthService(cfg.OrganizerPasswordHash, []byte(cfg.JWTSecretKey))

	router := chi.NewRouter()
	routes.SetupRoutes(router,
		routes.Options{
			JWTSecret:      []byte(cfg.JWTSecretKey),
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Metrics:        metrics.NewHandler(),
		},
		handlers.NewAuthHandler(authService),
		handlers.NewTournamentHandler(tournamentService),
		handlers.NewWebSocketHandler(wsHub, tournamentService, logger),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return wsHub.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("starting server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			return server.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application exited")
	return nil
}
