package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alovak/cardflow-batch/payments"
	"golang.org/x/exp/slog"
)

func main() {
	cfg := payments.ConfigFromEnv()
	logger := slog.New(slog.HandlerOptions{Level: cfg.Level()}.NewTextHandler(os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.HTTPAddr != "" {
		if err := serve(ctx, logger, cfg); err != nil {
			logger.Error("running server", "err", err)
			os.Exit(1)
		}
		return
	}

	svc := payments.NewService(logger, cfg)
	totals, err := svc.ProcessFile(ctx, cfg.InputPath)
	if err != nil {
		logger.Error("processing batch", slog.String("input", cfg.InputPath), "err", err)
		os.Exit(1)
	}
	fmt.Print(payments.RenderReport(totals))
}

func serve(ctx context.Context, logger *slog.Logger, cfg *payments.Config) error {
	app := payments.NewApp(logger, cfg)
	if err := app.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	app.Shutdown()
	return nil
}
