package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fintools-ai/fintools-api/dto"
)

// HandoffKey is the fixed mailbox slot the quick calculator writes to and
// the invoice editor consumes from.
const HandoffKey = "quickcalc:handoff"

// handoffTTL bounds how long an unconsumed payload survives.
const handoffTTL = 30 * time.Minute

// HandoffStore is a one-shot mailbox backed by Redis: Store overwrites the
// slot, Consume reads and deletes it in a single round trip so the payload
// is delivered at most once.
type HandoffStore struct {
	client *redis.Client
}

func NewHandoffStore(addr, password string) *HandoffStore {
	return &HandoffStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		}),
	}
}

// Ping verifies the Redis connection.
func (s *HandoffStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

// Store writes the payload into the mailbox, replacing any unconsumed one.
func (s *HandoffStore) Store(ctx context.Context, payload *dto.HandoffPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal handoff payload: %w", err)
	}
	if err := s.client.Set(ctx, HandoffKey, data, handoffTTL).Err(); err != nil {
		return fmt.Errorf("failed to store handoff payload: %w", err)
	}
	return nil
}

// Consume reads and deletes the payload atomically. The second return is
// false when the mailbox is empty.
func (s *HandoffStore) Consume(ctx context.Context) (*dto.HandoffPayload, bool, error) {
	data, err := s.client.GetDel(ctx, HandoffKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to consume handoff payload: %w", err)
	}

	var payload dto.HandoffPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal handoff payload: %w", err)
	}
	return &payload, true, nil
}

// Close releases the Redis connection.
func (s *HandoffStore) Close() error {
	return s.client.Close()
}
