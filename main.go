package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/year-review/catalog"
	"github.com/danielhkuo/year-review/cliparse"
	"github.com/danielhkuo/year-review/db"
	"github.com/danielhkuo/year-review/middleware"
	"github.com/danielhkuo/year-review/router"
)

func main() {
	var err error

	// Pick up a local .env before flags read the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Question catalog
	questions := catalog.Default()
	if cfg.CatalogPath != "" {
		questions, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			slog.Error("catalog load failed", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Catalog ready", "year", questions.Year, "questions", len(questions.Questions))

	// Connect to the database
	dbConn, err := db.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Create router
	mux := router.NewRouter(dbConn, questions, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "share_base", cfg.BaseURL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
