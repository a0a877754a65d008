package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/linskybing/client-intake/internal/domain/questionnaire"
	"github.com/redis/go-redis/v9"
)

var ErrDraftNotFound = errors.New("draft not found")

type DraftRepo interface {
	GetDraft(ctx context.Context, id string) (questionnaire.Draft, error)
	SaveDraft(ctx context.Context, d questionnaire.Draft) error
	DeleteDraft(ctx context.Context, id string) error
}

// RedisDraftRepo keeps each draft as a JSON blob that expires after ttl of
// inactivity.
type RedisDraftRepo struct {
	client *redis.Client
	ttl    time.Duration
}

var _ DraftRepo = (*RedisDraftRepo)(nil)

func NewDraftRepo(client *redis.Client, ttl time.Duration) *RedisDraftRepo {
	return &RedisDraftRepo{client: client, ttl: ttl}
}

func (r *RedisDraftRepo) GetDraft(ctx context.Context, id string) (questionnaire.Draft, error) {
	v, err := r.client.Get(ctx, draftKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return questionnaire.Draft{}, ErrDraftNotFound
	}
	if err != nil {
		return questionnaire.Draft{}, err
	}

	var d questionnaire.Draft
	if err := json.Unmarshal([]byte(v), &d); err != nil {
		return questionnaire.Draft{}, fmt.Errorf("corrupt draft %s: %w", id, err)
	}
	return d, nil
}

func (r *RedisDraftRepo) SaveDraft(ctx context.Context, d questionnaire.Draft) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, draftKey(d.ID), b, r.ttl).Err()
}

func (r *RedisDraftRepo) DeleteDraft(ctx context.Context, id string) error {
	return r.client.Del(ctx, draftKey(id)).Err()
}

func draftKey(id string) string {
	return "draft:" + id
}
