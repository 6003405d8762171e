package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ypd-labs/cvp-lite-backend/internal/users/domain"
)

const (
	profileKeyPrefix = "cvp:user:" // Profile data: cvp:user:{student_id}
	profileSetKey    = "cvp:users" // Set of known student IDs
	profileTTL       = 30 * 24 * time.Hour
)

// RedisStore keeps profiles in Redis as an ephemeral shared cache. Entries
// expire after profileTTL; this is not durable persistence.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed profile store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Upsert(ctx context.Context, p *domain.Profile) error {
	if p.StudentID == "" {
		return domain.ErrStudentIDRequired
	}

	now := time.Now().UTC()
	if existing, err := s.Get(ctx, p.StudentID); err == nil {
		p.CreatedAt = existing.CreatedAt
	} else if errors.Is(err, domain.ErrProfileNotFound) {
		p.CreatedAt = now
	} else {
		return err
	}
	p.UpdatedAt = now

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	// Pipeline so the value and the index stay together
	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.profileKey(p.StudentID), data, profileTTL)
	pipe.SAdd(ctx, profileSetKey, p.StudentID)
	pipe.Expire(ctx, profileSetKey, profileTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store profile: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, studentID string) (*domain.Profile, error) {
	data, err := s.client.Get(ctx, s.profileKey(studentID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var p domain.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &p, nil
}

func (s *RedisStore) List(ctx context.Context) ([]domain.Profile, error) {
	ids, err := s.client.SMembers(ctx, profileSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	out := make([]domain.Profile, 0, len(ids))
	for _, id := range ids {
		p, err := s.Get(ctx, id)
		if errors.Is(err, domain.ErrProfileNotFound) {
			// Value expired but the index entry survived; drop it
			s.client.SRem(ctx, profileSetKey, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out, nil
}

func (s *RedisStore) Delete(ctx context.Context, studentID string) error {
	deleted, err := s.client.Del(ctx, s.profileKey(studentID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	s.client.SRem(ctx, profileSetKey, studentID)

	if deleted == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (s *RedisStore) profileKey(studentID string) string {
	return profileKeyPrefix + studentID
}
