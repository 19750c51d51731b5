package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillswap-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// SessionStore is the persistence surface the session ledger needs.
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	TransitionStatus(ctx context.Context, id, status string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]models.Session, error)
}

// CreditStore is the only mutation path the ledger uses for balances.
type CreditStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	AdjustCredits(ctx context.Context, userID string, delta int) error
	SpendCredit(ctx context.Context, userID string) (bool, error)
}

// SessionService governs the credit-bearing session lifecycle. One credit
// moves from the learner on booking, back to the learner on cancel, and to
// the teacher on completion; a session leaves pending exactly once.
type SessionService struct {
	sessions SessionStore
	credits  CreditStore
}

// NewSessionService creates a new session service
func NewSessionService(sessions SessionStore, credits CreditStore) *SessionService {
	return &SessionService{
		sessions: sessions,
		credits:  credits,
	}
}

// Book creates a pending session and deducts one credit from the learner.
// The deduction is a conditional update, so two concurrent bookings against
// a balance of 1 cannot both succeed.
func (s *SessionService) Book(ctx context.Context, learnerID, teacherID, skill, scheduledTime string) (*models.Session, error) {
	if teacherID == "" {
		return nil, ValidationError("teacherId is required")
	}
	if skill == "" {
		return nil, ValidationError("skill is required")
	}
	if teacherID == learnerID {
		return nil, ValidationError("cannot book a session with yourself")
	}
	when, err := time.Parse(time.RFC3339, scheduledTime)
	if err != nil {
		return nil, ValidationError("scheduledTime must be a valid RFC3339 timestamp")
	}

	if _, err := s.credits.GetByID(ctx, teacherID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get teacher: %w", err)
	}

	ok, err := s.credits.SpendCredit(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to spend credit: %w", err)
	}
	if !ok {
		return nil, ErrInsufficientCredits
	}

	session := &models.Session{
		ID:            uuid.New().String(),
		TeacherID:     teacherID,
		LearnerID:     learnerID,
		Skill:         skill,
		ScheduledTime: when,
		Status:        models.SessionPending,
		Duration:      models.DefaultSessionMinutes,
		CreatedAt:     time.Now(),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		// the credit was already taken; put it back
		if refundErr := s.credits.AdjustCredits(ctx, learnerID, 1); refundErr != nil {
			log.Error().Err(refundErr).Str("learner_id", learnerID).Msg("Failed to refund credit after booking failure")
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// Complete moves a pending session to completed and awards one credit to the
// teacher. Completed sessions report ErrSessionCompleted, any other
// non-pending state ErrSessionClosed; neither moves credits again.
func (s *SessionService) Complete(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Status {
	case models.SessionCompleted:
		return nil, ErrSessionCompleted
	case models.SessionCancelled:
		return nil, ErrSessionClosed
	}

	ok, err := s.sessions.TransitionStatus(ctx, sessionID, models.SessionCompleted)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSessionClosed
	}

	if err := s.credits.AdjustCredits(ctx, session.TeacherID, 1); err != nil {
		return nil, fmt.Errorf("failed to award credit: %w", err)
	}

	session.Status = models.SessionCompleted
	return session, nil
}

// Cancel moves a pending session to cancelled and refunds the learner's
// credit. Sessions already in a terminal state report ErrSessionClosed and
// move no credits.
func (s *SessionService) Cancel(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status == models.SessionCompleted || session.Status == models.SessionCancelled {
		return nil, ErrSessionClosed
	}

	ok, err := s.sessions.TransitionStatus(ctx, sessionID, models.SessionCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSessionClosed
	}

	if err := s.credits.AdjustCredits(ctx, session.LearnerID, 1); err != nil {
		return nil, fmt.Errorf("failed to refund credit: %w", err)
	}

	session.Status = models.SessionCancelled
	return session, nil
}

// List returns all sessions where the user is teacher or learner
func (s *SessionService) List(ctx context.Context, userID string) ([]models.Session, error) {
	return s.sessions.ListByUser(ctx, userID)
}

func (s *SessionService) getSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}
