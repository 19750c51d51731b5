package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillswap-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MessageStore is the persistence surface the messaging service needs.
type MessageStore interface {
	Create(ctx context.Context, msg *models.Message) error
	ListBetween(ctx context.Context, userA, userB string) ([]models.Message, error)
}

// UserLookup resolves user existence for message recipients.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// MessageService persists direct messages. The stored row is the
// authoritative record; live relay through the hub is advisory only.
type MessageService struct {
	messages MessageStore
	users    UserLookup
}

// NewMessageService creates a new message service
func NewMessageService(messages MessageStore, users UserLookup) *MessageService {
	return &MessageService{
		messages: messages,
		users:    users,
	}
}

// Send persists a message and returns the stored record
func (s *MessageService) Send(ctx context.Context, senderID, receiverID, content string) (*models.Message, error) {
	if receiverID == "" {
		return nil, ValidationError("receiverId is required")
	}
	if content == "" {
		return nil, ValidationError("content is required")
	}

	if _, err := s.users.GetByID(ctx, receiverID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get receiver: %w", err)
	}

	msg := &models.Message{
		ID:         uuid.New().String(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  time.Now(),
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return msg, nil
}

// ListBetween returns the conversation between two users, oldest first
func (s *MessageService) ListBetween(ctx context.Context, userA, userB string) ([]models.Message, error) {
	return s.messages.ListBetween(ctx, userA, userB)
}
