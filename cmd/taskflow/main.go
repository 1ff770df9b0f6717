package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskflow/internal/auth"
	"taskflow/internal/config"
	"taskflow/internal/db"
	"taskflow/internal/engine"
	httpx "taskflow/internal/http"
	"taskflow/internal/jobs"
	"taskflow/internal/notify"
	"taskflow/internal/reminder"
	"taskflow/internal/seed"
	"taskflow/internal/settings"
	"taskflow/internal/task"
)

func main() {
	cfg, _ := config.Load()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		log.Fatal(err)
	}

	taskSvc := &task.Service{DB: gdb}
	reminderSvc := &reminder.Service{DB: gdb}
	jobsRepo := &jobs.Repo{DB: gdb}
	notifySvc := &notify.Service{DB: gdb}
	settingsSvc := &settings.Service{DB: gdb}

	eng := &engine.Engine{
		Tasks:     taskSvc,
		Reminders: reminderSvc,
		Jobs:      jobsRepo,
		Notify:    notifySvc,
		Prefs:     settingsSvc,
	}

	if cfg.SeedDemoData {
		if err := seed.Run(context.Background(), gdb, taskSvc, reminderSvc, eng); err != nil {
			log.Fatal(err)
		}
	}

	jwtSvc := auth.NewJWT(cfg.JWTSecret)
	r := httpx.NewRouter(cfg, gdb, jwtSvc, eng)

	// worker + sweeper
	worker := &jobs.Worker{
		ID:           "worker-1",
		Repo:         jobsRepo,
		Engine:       eng,
		PollInterval: cfg.WorkerPollInterval,
	}
	sweeper := &jobs.Sweeper{
		Engine:    eng,
		Interval:  cfg.SweepInterval,
		Lookahead: cfg.SweepLookahead,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go worker.Run(ctx)
	go sweeper.Run(ctx)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("listening on %s\n", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
