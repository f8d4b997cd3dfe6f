package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resume-builder/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Draft slots the builder persists between visits.
const (
	DraftSavedResume  = "savedResume"
	DraftBuilderState = "builderState"
)

var ErrUnknownDraft = errors.New("unknown draft key")

func ValidDraftKey(k string) bool {
	return k == DraftSavedResume || k == DraftBuilderState
}

// RedisDraftStore keeps JSON snapshots under "<prefix>draft:<owner>:<key>".
type RedisDraftStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, prefix string, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, prefix: prefix + "draft:", ttl: ttl}
}

func (s *RedisDraftStore) key(owner, k string) string {
	return s.prefix + owner + ":" + k
}

func (s *RedisDraftStore) Set(ctx context.Context, owner, k string, value json.RawMessage) error {
	if !ValidDraftKey(k) {
		return fmt.Errorf("%w: %q", ErrUnknownDraft, k)
	}
	if !json.Valid(value) {
		return fmt.Errorf("draft %s: invalid json", k)
	}
	if err := s.client.Set(ctx, s.key(owner, k), []byte(value), s.ttl).Err(); err != nil {
		return &domain.PersistenceError{Op: "save draft", Cause: err}
	}
	return nil
}

func (s *RedisDraftStore) Get(ctx context.Context, owner, k string) (json.RawMessage, error) {
	if !ValidDraftKey(k) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDraft, k)
	}
	b, err := s.client.Get(ctx, s.key(owner, k)).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("draft %s: %w", k, domain.ErrNotFound)
	}
	if err != nil {
		return nil, &domain.PersistenceError{Op: "load draft", Cause: err}
	}
	return json.RawMessage(b), nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, owner, k string) error {
	if err := s.client.Del(ctx, s.key(owner, k)).Err(); err != nil {
		return &domain.PersistenceError{Op: "delete draft", Cause: err}
	}
	return nil
}
