// Package cli implements the genia CLI commands.
package cli

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/geniastudio/genia/internal/config"
	"github.com/geniastudio/genia/internal/license"
	"github.com/geniastudio/genia/internal/logging"
	"github.com/geniastudio/genia/internal/repositories/session"
	"github.com/geniastudio/genia/internal/services"
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "genia",
	Short: "AI ebook and slide generator",
	Long:  "Genia Studio generates multi-section ebooks and slide decks from a subject, paid for with consumable credits replenished through activation codes.",
}

func init() {
	RootCmd.PersistentFlags().StringP("config", "c", "", "Path to JSON config file")
	RootCmd.PersistentFlags().String("db", "", "Session database path (default: genia.db or $GENIA_DB)")
	RootCmd.PersistentFlags().StringP("out", "o", "", "Output directory for generated files")
	RootCmd.PersistentFlags().Bool("verbose", false, "Verbose logging")
}

// app bundles everything a command needs; commands build one with openApp
// and must Close it.
type app struct {
	cfg      *config.Config
	db       *sql.DB
	log      logging.Logger
	accounts services.AccountService
	ledger   *license.Ledger
}

func openApp(cmd *cobra.Command) (*app, error) {
	cfg := config.LoadConfig()
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DatabasePath = v
	}
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.OutputDir = v
	}

	level := slog.LevelWarn
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	db, err := session.InitDatabase(cmd.Context(), cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	repo := session.NewSQLiteRepository(db)

	return &app{
		cfg:      cfg,
		db:       db,
		log:      log,
		accounts: services.NewAccountService(repo, log),
		ledger:   license.NewLedger(),
	}, nil
}

func (a *app) Close() {
	_ = a.db.Close()
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
