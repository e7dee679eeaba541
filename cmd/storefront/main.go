package main

import (
	"log/slog"

	"github.com/solemarket/storefront/config"
	"github.com/solemarket/storefront/internal/app"
	"github.com/solemarket/storefront/pkg/sigctx"
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	a := app.New(sigCtx, cfg)
	defer a.Close()

	slog.Info("storefront is running")
	if err := a.Run(); err != nil {
		slog.Error("storefront stopped with error", "err", err)
		return
	}
	slog.Info("storefront is closed")
}
