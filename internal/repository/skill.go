package repository

import (
	"context"
	"fmt"

	"skillswap-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SkillRepository handles database operations for the skill catalog
type SkillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{db: db}
}

// Create inserts a catalog entry
func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	query := `
		INSERT INTO skills (id, name, category, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, skill.ID, skill.Name, skill.Category, skill.Description, skill.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}

// List returns all catalog entries in insertion order
func (r *SkillRepository) List(ctx context.Context) ([]models.Skill, error) {
	query := `
		SELECT id, name, category, description, created_at
		FROM skills
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []models.Skill
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// DeleteAll clears the catalog. Used by the seed command before re-inserting
// the default batch.
func (r *SkillRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM skills`)
	if err != nil {
		return fmt.Errorf("failed to clear skills: %w", err)
	}
	return nil
}
