package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/gisuarez/expenso/internal/auth"
	"github.com/gisuarez/expenso/internal/config"
	"github.com/gisuarez/expenso/internal/database"
	"github.com/gisuarez/expenso/internal/expense"
	expenseStore "github.com/gisuarez/expenso/internal/expense/store"
	"github.com/gisuarez/expenso/internal/export"
	expensoHttp "github.com/gisuarez/expenso/internal/http"
	authHandler "github.com/gisuarez/expenso/internal/http/auth"
	expenseHandler "github.com/gisuarez/expenso/internal/http/expense"
	exportHandler "github.com/gisuarez/expenso/internal/http/export"
	importHandler "github.com/gisuarez/expenso/internal/http/importcsv"
	summaryHandler "github.com/gisuarez/expenso/internal/http/summary"
	"github.com/gisuarez/expenso/internal/importer"
	"github.com/gisuarez/expenso/internal/importer/expensocsv"
	"github.com/gisuarez/expenso/internal/ledger"
	ledgerStore "github.com/gisuarez/expenso/internal/ledger/store"
	"github.com/gisuarez/expenso/internal/user"
	userStore "github.com/gisuarez/expenso/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		userService    = user.NewService(userStore.New(db))
		expenseService = expense.NewService(expenseStore.New(db))
		ledgerService  = ledger.NewService(expenseService, ledgerStore.New(db))
		exportService  = export.NewService(expenseService, ledgerService)
		importService  = importer.NewService(expensocsv.New())
		tokenManager   = auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	)

	var (
		authH    = authHandler.NewHandler(userService, tokenManager)
		expenseH = expenseHandler.NewHandler(expenseService)
		summaryH = summaryHandler.NewHandler(ledgerService)
		exportH  = exportHandler.NewHandler(exportService)
		importH  = importHandler.NewHandler(importService, expenseService)
	)

	router := expensoHttp.New(authH, expenseH, summaryH, exportH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
