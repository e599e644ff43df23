package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"classboard/internal/gateway"
	"classboard/internal/model"
	"classboard/internal/session"
)

// AuthService exchanges credentials with the scheduling backend and manages
// the resulting server-side sessions.
type AuthService interface {
	Login(ctx context.Context, email, password string) (sess *model.Session, cookieToken string, err error)
	Register(ctx context.Context, name, email, password string, role model.Role) (*gateway.RegisterResult, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	backend gateway.API
	tokens  *session.TokenService
	store   session.StoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(backend gateway.API, tokens *session.TokenService, store session.StoreInterface) AuthService {
	return &authService{
		backend: backend,
		tokens:  tokens,
		store:   store,
	}
}

// Login exchanges credentials for a backend session, stores it, and returns
// the signed cookie token that binds the caller to it. Backend rejections
// pass through with their detail intact.
func (s *authService) Login(ctx context.Context, email, password string) (*model.Session, string, error) {
	res, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	sess := &model.Session{Token: res.Token, User: res.User}
	sessionID := uuid.New().String()

	if err := s.store.Save(ctx, sessionID, sess, s.tokens.TTL()); err != nil {
		return nil, "", fmt.Errorf("save session: %w", err)
	}

	cookieToken, err := s.tokens.Generate(sessionID)
	if err != nil {
		return nil, "", fmt.Errorf("generate cookie token: %w", err)
	}

	return sess, cookieToken, nil
}

// Register creates an account upstream. No session is created: a pending
// account cannot log in until the backend activates it, and an active one
// still goes through the normal login exchange.
func (s *authService) Register(ctx context.Context, name, email, password string, role model.Role) (*gateway.RegisterResult, error) {
	return s.backend.Register(ctx, name, email, password, role)
}

// Logout destroys the server-side session record.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
