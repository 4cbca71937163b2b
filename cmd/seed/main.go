// Command seed loads a course catalog from a JSON file into the database.
// It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--file  path to the seed catalog JSON (default: ./seed/catalog.json)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/skillone/skillone-backend/internal/adapter/postgres"
	"github.com/skillone/skillone-backend/internal/adapter/postgres/course"
	"github.com/skillone/skillone-backend/internal/adapter/postgres/material"
	"github.com/skillone/skillone-backend/internal/app"
	"github.com/skillone/skillone-backend/internal/config"
	"github.com/skillone/skillone-backend/internal/seeder"
)

func main() {
	fileFlag := flag.String("file", "./seed/catalog.json", "path to seed catalog JSON file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	records, err := seeder.LoadFile(*fileFlag)
	if err != nil {
		logger.Error("load seed file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	s := seeder.New(logger, course.New(pool), material.New(pool), txm)
	result, err := s.Run(ctx, records)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed",
		slog.Int("courses", result.Courses),
		slog.Int("materials", result.Materials),
	)
}
