package main

import (
	"bufio"
	"context"
	"fmt"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/luxe-storefront/internal/api"
	"github.com/nikolayk812/luxe-storefront/internal/app"
	"github.com/nikolayk812/luxe-storefront/internal/cart"
	"github.com/nikolayk812/luxe-storefront/internal/config"
	"github.com/nikolayk812/luxe-storefront/internal/logger"
	"github.com/nikolayk812/luxe-storefront/internal/notify"
	"github.com/nikolayk812/luxe-storefront/internal/port"
	"github.com/nikolayk812/luxe-storefront/internal/repository"
	"github.com/nikolayk812/luxe-storefront/internal/shutdown"
	"io"
	"log/slog"
	"net/http"
	"os"
)

func main() {
	// run closes stdin on shutdown so the line reader is released
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	storage, closeStorage, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer closeStorage()

	client, err := api.New(cfg.APIBaseURL, &http.Client{Timeout: cfg.HTTPTimeout})
	if err != nil {
		return fmt.Errorf("api.New: %w", err)
	}

	notifier := notify.Multi{notify.NewTerminal(out), notify.NewLog(log)}

	front := app.New(app.Deps{
		Cart:     cart.New(ctx, storage, notifier, log),
		Catalog:  client,
		Orders:   client,
		Notifier: notifier,
		Viewport: viewport{log: log},
		Log:      log,
	})

	location := "/"
	if len(os.Args) > 1 {
		location = os.Args[1]
	}
	front.Start(ctx, location)

	log.Info("storefront started", slog.String("api", cfg.APIBaseURL), slog.String("storage", cfg.Storage.Driver))

	sh := &shell{front: front, out: out}
	sh.render(ctx)

	lines := readLines(ctx, in)

	for {
		select {
		case <-ctx.Done():
			log.Info("shutdown requested")
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := sh.exec(ctx, line); quit {
				return nil
			}
		}
	}
}

// readLines delivers lines from in until EOF or until ctx is done. When in is
// an io.Closer it is closed on cancellation so a Scan blocked on input
// returns and the reader goroutine exits.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	done := make(chan struct{})

	go func() {
		defer close(lines)
		defer close(done)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	if c, ok := in.(io.Closer); ok {
		go func() {
			select {
			case <-ctx.Done():
				_ = c.Close()
			case <-done:
			}
		}()
	}

	return lines
}

func openStorage(ctx context.Context, cfg config.StorageConfig) (port.SnapshotStorage, func(), error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return repository.NewMemory(), func() {}, nil
	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		return repository.NewPostgres(pool), pool.Close, nil
	default:
		storage, err := repository.NewFile(cfg.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("repository.NewFile: %w", err)
		}
		return storage, func() {}, nil
	}
}

type viewport struct {
	log *slog.Logger
}

func (v viewport) ScrollToTop() {
	v.log.Debug("scroll to top")
}
