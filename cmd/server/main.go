package main

import (
	"student-coin/internal/app"
	"student-coin/internal/config"
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg := config.MustLoad()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	log.Info("Starting http", "env", cfg.Server.Env)

	application := app.New(
		log,
		cfg.Server.Address,
		cfg.Database.PostgresConn,
		cfg.JWT.Secret,
		cfg.JWT.AccessExpirationMinutes,
		cfg.JWT.RefreshExpirationDays,
	)

	go application.HTTPServer.MustRun()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	sign := <-stop

	log.Info("Application stopped", slog.String("signal", sign.String()))

	err := application.HTTPServer.Stop(context.Background())
	if err != nil {
		return
	}
}
