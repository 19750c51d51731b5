package repository

import (
	"context"
	"fmt"

	"skillswap-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository handles database operations for sessions
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (id, teacher_id, learner_id, skill, scheduled_time, status, duration_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	`
	_, err := r.db.Exec(ctx, query,
		session.ID, session.TeacherID, session.LearnerID, session.Skill,
		session.ScheduledTime, session.Status, session.Duration, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	query := `
		SELECT id, teacher_id, learner_id, skill, scheduled_time, status, duration_minutes, created_at, updated_at
		FROM sessions
		WHERE id = $1
	`
	var s models.Session
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.TeacherID, &s.LearnerID, &s.Skill,
		&s.ScheduledTime, &s.Status, &s.Duration, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// TransitionStatus moves a pending session into the given status. Returns
// false when the session was not pending anymore, so a concurrent transition
// loses cleanly instead of re-running credit movement.
func (r *SessionRepository) TransitionStatus(ctx context.Context, id, status string) (bool, error) {
	query := `
		UPDATE sessions SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`
	result, err := r.db.Exec(ctx, query, status, id, models.SessionPending)
	if err != nil {
		return false, fmt.Errorf("failed to transition session: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// ListByUser returns all sessions where the user is teacher or learner, with
// both parties populated, ordered by scheduled time.
func (r *SessionRepository) ListByUser(ctx context.Context, userID string) ([]models.Session, error) {
	query := `
		SELECT s.id, s.teacher_id, s.learner_id, s.skill, s.scheduled_time, s.status, s.duration_minutes,
		       s.created_at, s.updated_at,
		       t.name, t.email, l.name, l.email
		FROM sessions s
		JOIN users t ON t.id = s.teacher_id
		JOIN users l ON l.id = s.learner_id
		WHERE s.teacher_id = $1 OR s.learner_id = $1
		ORDER BY s.scheduled_time
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		var teacher, learner models.Party
		if err := rows.Scan(
			&s.ID, &s.TeacherID, &s.LearnerID, &s.Skill, &s.ScheduledTime, &s.Status, &s.Duration,
			&s.CreatedAt, &s.UpdatedAt,
			&teacher.Name, &teacher.Email, &learner.Name, &learner.Email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		teacher.ID = s.TeacherID
		learner.ID = s.LearnerID
		s.Teacher = &teacher
		s.Learner = &learner
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
