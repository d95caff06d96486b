package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chipchop/chipchop/internal/domain"
)

// AuthService issues and validates opaque session tokens. Sessions live in
// memory only and last until the process exits.
type AuthService struct {
	mu       sync.RWMutex
	sessions map[string]*domain.User
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(logger *zap.Logger) *AuthService {
	return &AuthService{
		sessions: make(map[string]*domain.User),
		logger:   logger,
	}
}

// Login mints a new session for the given credentials. Any non-empty
// username/password pair is accepted; each login yields an independent
// token, even for the same username.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password required", domain.ErrInvalidRequest)
	}

	user := &domain.User{
		ID:       uuid.New().String(),
		Username: username,
		Token:    uuid.New().String(),
	}

	s.mu.Lock()
	s.sessions[user.Token] = user
	s.mu.Unlock()

	s.logger.Debug("session created", zap.String("username", username))
	return user, nil
}

// WhoAmI resolves a token back to its session
func (s *AuthService) WhoAmI(ctx context.Context, token string) (*domain.User, error) {
	s.mu.RLock()
	user, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	return user, nil
}
