// cmd/seeder/main.go
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/unclebandit/influencer-campaign-backend/internal/config"
	"github.com/unclebandit/influencer-campaign-backend/internal/db"
	"github.com/unclebandit/influencer-campaign-backend/internal/logger"
)

// Order matters: the schema first, then demo rows that reference it.
var seedFiles = []string{
	"seed/schema.sql",
	"seed/creators.sql",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("failed to load config")
	}
	log := logger.New(cfg.AppEnv)

	ctx := context.Background()
	conn, err := db.Open(ctx, cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer conn.Close()

	for _, file := range seedFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("failed to read seed file")
		}
		if _, err := conn.ExecContext(ctx, string(content)); err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("failed to execute seed file")
		}
		log.Info().Str("file", file).Msg("seeded")
	}

	log.Info().Msg("database seeding completed")
}
