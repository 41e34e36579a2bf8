package services

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const sessionTTL = 30 * time.Minute

// SessionService hands out chatbot session identifiers and keeps them alive
// in Redis while the conversation lasts. Chat messages only store the
// identifier; expiry is handled here.
type SessionService struct {
	redis *redis.Client
}

func NewSessionService(redis *redis.Client) *SessionService {
	return &SessionService{
		redis: redis,
	}
}

// Start issues a fresh session identifier.
func (s *SessionService) Start(ctx context.Context) (string, error) {
	sessionID := uuid.New().String()
	err := s.redis.Set(ctx, "chat:session:"+sessionID, time.Now().Unix(), sessionTTL).Err()
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

// Validate reports whether the session is still alive and refreshes its TTL.
func (s *SessionService) Validate(ctx context.Context, sessionID string) (bool, error) {
	refreshed, err := s.redis.Expire(ctx, "chat:session:"+sessionID, sessionTTL).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return refreshed, nil
}
