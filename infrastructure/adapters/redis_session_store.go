package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"github.com/redis/go-redis/v9"
	"math/rand/v2"
	"time"
)

const (
	redisUpdateMaxRetries = 5
	redisUpdateBackoff    = 2 * time.Millisecond
)

var ErrSessionUpdateConflict = errors.New("call session kept changing during update")

// RedisSessionStore shares sessions between replicas behind one webhook URL.
// Updates use WATCH/MULTI so concurrent events for the same call retry
// instead of overwriting each other.
type RedisSessionStore struct {
	client     *redis.Client
	prefix     string
	ttl        time.Duration
	maxRetries int
}

var _ outbound.CallSessionStorePort = (*RedisSessionStore)(nil)

func NewRedisClient(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return redis.NewClient(opt), nil
}

func NewRedisSessionStore(client *redis.Client, prefix string, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client:     client,
		prefix:     prefix,
		ttl:        ttl,
		maxRetries: redisUpdateMaxRetries,
	}
}

func (s *RedisSessionStore) Save(ctx context.Context, session domain.CallSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode call session: %w", err)
	}
	return s.client.Set(ctx, s.key(session.CallID), payload, s.ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, callID string) (domain.CallSession, bool, error) {
	payload, err := s.client.Get(ctx, s.key(callID)).Bytes()
	return decodeSession(payload, err)
}

func (s *RedisSessionStore) Update(ctx context.Context, callID string, fn outbound.UpdateSessionFunc) (domain.CallSession, error) {
	key := s.key(callID)

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepWithJitter(ctx, time.Duration(attempt)*redisUpdateBackoff); err != nil {
				return domain.CallSession{}, err
			}
		}

		var updated domain.CallSession

		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			payload, err := tx.Get(ctx, key).Bytes()
			session, found, err := decodeSession(payload, err)
			if err != nil {
				return err
			}

			if err := fn(&session, found); err != nil {
				return err
			}

			encoded, err := json.Marshal(session)
			if err != nil {
				return fmt.Errorf("failed to encode call session: %w", err)
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, encoded, s.ttl)
				return nil
			})
			updated = session
			return err
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return domain.CallSession{}, err
		}
		return updated, nil
	}

	return domain.CallSession{}, ErrSessionUpdateConflict
}

func (s *RedisSessionStore) Delete(ctx context.Context, callID string) error {
	return s.client.Del(ctx, s.key(callID)).Err()
}

func sleepWithJitter(ctx context.Context, base time.Duration) error {
	timer := time.NewTimer(base + rand.N(base))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *RedisSessionStore) key(callID string) string {
	return s.prefix + callID
}

func decodeSession(payload []byte, err error) (domain.CallSession, bool, error) {
	if errors.Is(err, redis.Nil) {
		return domain.CallSession{}, false, nil
	}
	if err != nil {
		return domain.CallSession{}, false, fmt.Errorf("failed to read call session: %w", err)
	}

	var session domain.CallSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return domain.CallSession{}, false, fmt.Errorf("failed to decode call session: %w", err)
	}
	return session, true, nil
}
