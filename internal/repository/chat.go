package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"devstudio/internal/models"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

type NewChatMessage struct {
	SessionID string
	Message   *string
	Response  *string
}

func (r *ChatRepository) Create(ctx context.Context, input NewChatMessage) (*models.ChatMessage, error) {
	msg := models.ChatMessage{
		SessionID: input.SessionID,
		Message:   input.Message,
		Response:  input.Response,
	}
	if err := r.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("create chat message: %w", err)
	}
	return &msg, nil
}

func (r *ChatRepository) GetByID(ctx context.Context, id uint) (*models.ChatMessage, error) {
	var msg models.ChatMessage
	err := r.db.WithContext(ctx).First(&msg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get chat message: %w", err)
	}
	return &msg, nil
}

// GetBySession returns a conversation oldest message first. The id tiebreak
// keeps messages created within the same timestamp tick in insertion order.
func (r *ChatRepository) GetBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	messages := make([]models.ChatMessage, 0)
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("list chat messages by session: %w", err)
	}
	return messages, nil
}
