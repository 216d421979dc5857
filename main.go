package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"

	"github.com/danielhkuo/fortune-wheel/cliparse"
	"github.com/danielhkuo/fortune-wheel/db"
	"github.com/danielhkuo/fortune-wheel/middleware"
	"github.com/danielhkuo/fortune-wheel/notify"
	"github.com/danielhkuo/fortune-wheel/prize"
	"github.com/danielhkuo/fortune-wheel/router"
	"github.com/danielhkuo/fortune-wheel/wheel"
)

func main() {
	var err error

	// Load .env before reading the environment
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

	// Connect to the database
	dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()
	if cfg.DatabaseType == cliparse.DatabaseSQLite {
		// SQLite allows one writer; keep the pool from contending with itself
		dbConn.SetMaxOpenConns(1)
	}

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Wheel
	selector, err := prize.NewSelector(prize.DefaultCatalog(), cfg.SpecialPrizeChance)
	if err != nil {
		slog.Error("invalid prize configuration", "error", err)
		os.Exit(1)
	}

	// Notifications
	var notifier notify.Notifier = notify.LogNotifier{}
	if cfg.EmailEnabled() {
		notifier = notify.NewMailer(notify.MailerConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPassword,
		})
	} else {
		slog.Warn("EMAIL_USER/EMAIL_PASSWORD not set, prize emails will only be logged")
	}
	dispatcher := notify.NewDispatcher(notifier, cfg.NotifyTimeout)

	store := db.NewSpinStore(dbConn, clockwork.NewRealClock())
	svc := wheel.NewService(store, selector, dispatcher, prize.GlobalSource())

	// Create router
	mux := router.NewRouter(svc, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.Origins())(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "origins", cfg.Origins())
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}

	// Let in-flight prize emails finish
	dispatcher.Wait()
}
