// Command server runs the SkillOne backend HTTP API.
//
// Configuration is read from config.yaml (override the path with
// CONFIG_PATH) and environment variables.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/skillone/skillone-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
