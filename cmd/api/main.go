package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/nestegg/internal/account"
	accountStore "github.com/MrJamesThe3rd/nestegg/internal/account/store"
	"github.com/MrJamesThe3rd/nestegg/internal/config"
	"github.com/MrJamesThe3rd/nestegg/internal/contribution"
	contributionStore "github.com/MrJamesThe3rd/nestegg/internal/contribution/store"
	"github.com/MrJamesThe3rd/nestegg/internal/database"
	neHttp "github.com/MrJamesThe3rd/nestegg/internal/http"
	accountHandler "github.com/MrJamesThe3rd/nestegg/internal/http/account"
	contributionHandler "github.com/MrJamesThe3rd/nestegg/internal/http/contribution"
	summaryHandler "github.com/MrJamesThe3rd/nestegg/internal/http/summary"
	valueHandler "github.com/MrJamesThe3rd/nestegg/internal/http/value"
	"github.com/MrJamesThe3rd/nestegg/internal/settings"
	settingsStore "github.com/MrJamesThe3rd/nestegg/internal/settings/store"
	"github.com/MrJamesThe3rd/nestegg/internal/summary"
	summaryStore "github.com/MrJamesThe3rd/nestegg/internal/summary/store"
	"github.com/MrJamesThe3rd/nestegg/internal/value"
	valueStore "github.com/MrJamesThe3rd/nestegg/internal/value/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.DB.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		accountService      = account.NewService(accountStore.New(db))
		valueService        = value.NewService(valueStore.New(db))
		contributionService = contribution.NewService(contributionStore.New(db))
		settingsService     = settings.NewService(settingsStore.New(db))
		summaryService      = summary.NewService(summaryStore.New(db))
	)

	// Seed the settings singleton so a fresh database starts with a row.
	seedCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	if _, err := settingsService.Get(seedCtx); err != nil {
		cancel()
		slog.Error("failed to seed settings", "error", err)
		os.Exit(1)
	}

	cancel()

	var (
		accountH      = accountHandler.NewHandler(accountService)
		valueH        = valueHandler.NewHandler(valueService)
		contributionH = contributionHandler.NewHandler(contributionService)
		summaryH      = summaryHandler.NewHandler(summaryService, settingsService)
	)

	router := neHttp.New(accountH, valueH, contributionH, summaryH)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "addr", addr, "db", cfg.DB.Path)

	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
