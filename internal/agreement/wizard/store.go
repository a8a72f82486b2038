// internal/agreement/wizard/store.go
package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound covers both never-created and TTL-expired sessions; the
// two are indistinguishable once the key is gone.
var ErrSessionNotFound = errors.New("SESSION_NOT_FOUND")

const sessionKeyPrefix = "wizard:session:"

// Store keeps wizard sessions in Redis under a TTL. Closing the wizard is
// modelled as letting the key expire (or deleting it); no session outlives
// its TTL and nothing else is ever persisted by this subsystem.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Save writes the session and refreshes its TTL.
func (s *Store) Save(ctx context.Context, session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", session.ID, err)
	}
	if err := s.client.Set(ctx, sessionKey(session.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

// Get loads a session by id.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}

	var session Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &session, nil
}

// Delete tears the session down; missing keys are not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}
