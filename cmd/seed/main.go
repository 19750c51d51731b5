package main

import (
	"context"

	"skillswap-backend/internal/config"
	"skillswap-backend/internal/repository"
	"skillswap-backend/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Seeds the skill catalog with the default batch. Clears any existing
// entries first, so it is safe to re-run.
func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()

	db, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	skillService := services.NewSkillService(repository.NewSkillRepository(db))

	if err := skillService.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed skill catalog")
	}

	skills, err := skillService.ListSkills(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list skills after seeding")
	}

	log.Info().Int("count", len(skills)).Msg("Skill catalog seeded")
}
