package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/ideawheel/internal/adapters/clock"
	"github.com/randomtoy/ideawheel/internal/adapters/feedback"
	httpadapter "github.com/randomtoy/ideawheel/internal/adapters/http"
	"github.com/randomtoy/ideawheel/internal/adapters/ideas"
	"github.com/randomtoy/ideawheel/internal/app"
	"github.com/randomtoy/ideawheel/internal/config"
	"github.com/randomtoy/ideawheel/internal/ports"
)

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int   { return rand.IntN(n) }
func (stdRNG) Float64() float64 { return rand.Float64() }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("failed to open idea store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	clk := clock.Real{}
	wheel := app.NewWheel(clk, stdRNG{}, feedback.NewLogger(logger), app.NewActiveIdeas(store), cfg.Wheel.EngineConfig(), logger)
	board := app.NewBoard(store, wheel, clk, cfg.FavoriteOnPick, logger)
	if err := wheel.Refresh(ctx); err != nil {
		logger.Error("failed to load ideas", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(board)
	handler.Register(e)

	go func() {
		logger.Info("starting server",
			"addr", cfg.HTTPAddr,
			"sections", len(wheel.Sections()),
			"database", cfg.DatabasePath,
		)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

// openStore picks SQLite when DATABASE_PATH is set and an in-memory board
// otherwise.
func openStore(ctx context.Context, cfg config.Config) (ports.IdeaStore, func(), error) {
	if cfg.DatabasePath != "" {
		s, err := ideas.OpenSQLite(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	}
	if cfg.SeedIdeas {
		return ideas.NewSeededStore(), func() {}, nil
	}
	return ideas.NewMemoryStore(), func() {}, nil
}
