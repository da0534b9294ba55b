package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/class-ballot/cliparse"
	"github.com/danielhkuo/class-ballot/db"
	"github.com/danielhkuo/class-ballot/report"
	"github.com/danielhkuo/class-ballot/router"
	"github.com/danielhkuo/class-ballot/store"
)

func main() {
	var err error

	// Load .env before reading configuration
	if err := cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	// Connect to the database
	dbConn, err := db.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	st := store.New(dbConn)

	// Seed groups on first start
	seeded, err := st.SeedGroups(context.Background(), cfg.SeedGroups)
	if err != nil {
		slog.Error("group seeding failed", "error", err)
		os.Exit(1)
	}
	if seeded > 0 {
		slog.Info("Database initialized with groups", "count", seeded)
	}

	if cfg.Report {
		stats, err := st.Tally(context.Background())
		if err != nil {
			slog.Error("tally failed", "error", err)
			os.Exit(1)
		}
		report.NewTallyReport(stats).PrintTallyTable(os.Stdout)
		return
	}

	// Create router
	handler := router.NewRouter(st, cfg)

	// Create server
	server := http.Server{
		Handler: handler,
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
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
