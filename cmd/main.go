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

	"github.com/gorilla/mux"
	"github.com/jessevdk/go-flags"

	discordclient "github.com/nabekou29/n8n-self-host/clients/discord"
	slackclient "github.com/nabekou29/n8n-self-host/clients/slack"
	webhookclient "github.com/nabekou29/n8n-self-host/clients/webhook"
	"github.com/nabekou29/n8n-self-host/config"
	"github.com/nabekou29/n8n-self-host/core/log"
	"github.com/nabekou29/n8n-self-host/handlers"
	"github.com/nabekou29/n8n-self-host/middleware"
	"github.com/nabekou29/n8n-self-host/usecases/relay"
)

const appName = "discord-n8n-relay"

type Options struct {
	EnvFile string `long:"env-file" default:".env" description:"Path of the dotenv file to load before reading the environment"`
	Debug   bool   `long:"debug" description:"Enable debug logging"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if opts.Debug {
		log.SetLevel(slog.LevelDebug)
	}

	if err := run(opts); err != nil {
		log.Error("❌ Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(opts Options) error {
	cfg, err := config.LoadConfig(opts.EnvFile)
	if err != nil {
		return err
	}

	// The Go default client has no timeout; the webhook call inherits that behavior
	httpClient := &http.Client{}

	alertClient := slackclient.NewSlackAlertClient(httpClient, cfg.SlackConfig.AlertWebhookURL)
	alertMiddleware := middleware.NewErrorAlertMiddleware(alertClient, middleware.AlertConfig{
		Environment: cfg.Environment,
		AppName:     appName,
		LogsURL:     cfg.ServerLogsURL,
	})

	session, err := discordclient.NewSession(cfg.DiscordConfig.BotToken)
	if err != nil {
		return err
	}

	discordClient := discordclient.NewDiscordClient(session)
	webhookClient := webhookclient.NewWebhookClient(httpClient, cfg.WebhookConfig.URL)
	relayUseCase := relay.NewRelayUseCase(discordClient, webhookClient, relay.Options{
		StripAllMentions: cfg.WebhookConfig.StripAllMentions,
	})
	discordHandler := handlers.NewDiscordEventsHandler(session, relayUseCase, alertMiddleware)

	if err := discordHandler.StartBot(); err != nil {
		return err
	}
	defer func() {
		if err := discordHandler.StopBot(); err != nil {
			log.Error("❌ Failed to stop Discord bot", "error", err)
		}
	}()

	var server *http.Server
	if cfg.HealthPort != "" {
		server = &http.Server{
			Addr:              ":" + cfg.HealthPort,
			Handler:           alertMiddleware.HTTPMiddleware(newRouter()),
			ReadHeaderTimeout: 30 * time.Second,
		}
	}

	return handleGracefulShutdown(server)
}

func newRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Error("❌ Failed to write health check response", "error", err)
		}
	}).Methods("GET")
	return router
}

// handleGracefulShutdown blocks until SIGINT/SIGTERM. server may be nil when the health endpoint is disabled.
func handleGracefulShutdown(server *http.Server) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	if server != nil {
		go func() {
			log.Info("✅ Health endpoint listening", "url", "http://localhost"+server.Addr+"/health")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("❌ Server error", "error", err)
			}
		}()
	}

	<-stop
	log.Info("🛑 Shutdown signal received, cleaning up...")

	if server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("❌ Server shutdown error", "error", err)
		return err
	}

	log.Info("✅ Server stopped gracefully")
	return nil
}
