package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"classboard/internal/cache"
	apperrors "classboard/internal/errors"
	"classboard/internal/model"
)

const sessionKeyPrefix = "session:"

// StoreInterface defines the interface for session storage operations.
type StoreInterface interface {
	Save(ctx context.Context, sessionID string, sess *model.Session, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*model.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// Store holds session records in redis for the lifetime of the login. There
// is no other persistence: an expired or deleted record means re-login.
type Store struct {
	cache *cache.Client
}

// Ensure Store implements StoreInterface
var _ StoreInterface = (*Store)(nil)

// NewStore creates a new session store.
func NewStore(cache *cache.Client) *Store {
	return &Store{cache: cache}
}

// Save stores a session record under the given ID with TTL.
func (s *Store) Save(ctx context.Context, sessionID string, sess *model.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+sessionID, payload, ttl)
}

// Get retrieves a session record. A missing or unreadable record is reported
// as ErrSessionNotFound so callers treat both as an expired login.
func (s *Store) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if data == nil {
		return nil, apperrors.ErrSessionNotFound
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

// Delete removes a session record.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+sessionID)
}
