package repository

import (
	"context"
	"fmt"

	"skillswap-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, bio, skills_to_teach, skills_to_learn,
	credits, rating, reviews_count, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Bio,
		&u.SkillsToTeach, &u.SkillsToLearn,
		&u.Credits, &u.Rating, &u.ReviewsCount, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, bio, skills_to_teach, skills_to_learn, credits, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Bio,
		user.SkillsToTeach, user.SkillsToLearn, user.Credits, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// AdjustCredits changes a user's balance by delta. The credits CHECK
// constraint rejects an adjustment that would go negative.
func (r *UserRepository) AdjustCredits(ctx context.Context, userID string, delta int) error {
	query := `UPDATE users SET credits = credits + $1, updated_at = NOW() WHERE id = $2`
	result, err := r.db.Exec(ctx, query, delta, userID)
	if err != nil {
		return fmt.Errorf("failed to adjust credits: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

// SpendCredit atomically deducts one credit if the balance allows it.
// Returns false when the balance is below 1.
func (r *UserRepository) SpendCredit(ctx context.Context, userID string) (bool, error) {
	query := `
		UPDATE users SET credits = credits - 1, updated_at = NOW()
		WHERE id = $1 AND credits >= 1
	`
	result, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return false, fmt.Errorf("failed to spend credit: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// UpdateProfile updates the user's bio and skill lists
func (r *UserRepository) UpdateProfile(ctx context.Context, userID, bio string, teach, learn []string) error {
	query := `
		UPDATE users SET bio = $1, skills_to_teach = $2, skills_to_learn = $3, updated_at = NOW()
		WHERE id = $4
	`
	result, err := r.db.Exec(ctx, query, bio, teach, learn, userID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}
