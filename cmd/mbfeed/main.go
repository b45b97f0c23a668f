package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"mbfeed/internal/broadcast"
	"mbfeed/internal/config"
	"mbfeed/internal/console"
	"mbfeed/internal/ingest"
	"mbfeed/internal/logging"
	"mbfeed/internal/mercado"
	"mbfeed/internal/store"
)

func main() {
	var configPath, envFile string
	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to config.json (optional)")
	flag.StringVar(&envFile, "env", ".env", "path to a dotenv file (optional)")
	flag.Parse()

	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("Exiting", "err", err)
		closer.Close()
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx := context.Background()
	interval, err := cfg.Interval()
	if err != nil {
		return err
	}

	db, err := store.OpenDB(ctx, cfg.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := store.NewRepository(db, logging.Component(log, "store"))
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	client := mercado.NewClient(
		mercado.WithBaseURL(cfg.APIURL),
		mercado.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout()}),
		mercado.WithUserAgent(cfg.UserAgent),
	)

	loopOpts := []ingest.Option{
		ingest.WithInterval(interval),
		ingest.WithLogger(logging.Component(log, "ingest")),
	}
	if cfg.BroadcastAddr != "" {
		hub := broadcast.NewHub(logging.Component(log, "broadcast"))
		srv := serveFeed(cfg.BroadcastAddr, hub, log)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			hub.Close()
			_ = srv.Shutdown(shutdownCtx)
		}()
		loopOpts = append(loopOpts, ingest.WithSink(hub))
	}
	loop := ingest.New(client, repo, loopOpts...)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	log.Info("Ready", "api", client.BaseURL(), "interval", interval)
	menu := console.New(client, repo, loop,
		console.WithInterrupts(sig),
		console.WithLogger(logging.Component(log, "console")))
	err = menu.Run(ctx)

	loop.Cancel()
	loop.Wait()
	return err
}

func serveFeed(addr string, hub *broadcast.Hub, log *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info("Serving market data feed", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Feed server stopped", "err", err)
		}
	}()
	return srv
}
