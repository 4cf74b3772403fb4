package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tahmid447/Tahmid-English-Club/internal/api"
	"github.com/Tahmid447/Tahmid-English-Club/internal/audio"
	"github.com/Tahmid447/Tahmid-English-Club/internal/auth"
	"github.com/Tahmid447/Tahmid-English-Club/internal/config"
	"github.com/Tahmid447/Tahmid-English-Club/internal/kv"
	"github.com/Tahmid447/Tahmid-English-Club/internal/logger"
	"github.com/Tahmid447/Tahmid-English-Club/internal/seed"
	"github.com/Tahmid447/Tahmid-English-Club/internal/store"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("English Club Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("namespace=%s", cfg.Namespace)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("teacher_email=%s", cfg.TeacherEmail)
	log.Debug("seed_demo_data=%t", cfg.SeedDemoData)

	kvStore, err := kv.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		kvStore.Close()
	}()

	opts := []store.Option{store.WithNamespace(cfg.Namespace)}
	if cfg.SeedDemoData {
		opts = append(opts, store.WithSeeds(seed.Records()))
	}
	db := store.New(kvStore, opts...)

	ctx := context.Background()
	if cfg.SeedDemoData {
		seed.Materialize(ctx, db)
	}

	authService := auth.NewService(db, auth.StaticVerifier{
		Email: cfg.TeacherEmail,
		Pass:  cfg.TeacherPass,
		Name:  cfg.TeacherName,
	})

	srv := &api.Server{
		Store:   db,
		Auth:    authService,
		Player:  audio.LogPlayer{},
		Speaker: audio.LogSpeaker{},
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	log.Info("received signal %s, shutting down", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed: %v", err)
	}
	log.Info("server stopped")
}
