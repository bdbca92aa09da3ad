package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const checkLockKeyPrefix = "endpoint_check:"

// releaseCheckLockScript deletes the claim only while it still holds our
// token, an expired claim may already belong to another job.
const releaseCheckLockScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// refreshCheckLockScript extends the claim only while it still holds our token.
const refreshCheckLockScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`

// CheckLocker keeps an endpoint from being checked twice at the same time,
// either because a slow check spans several ticks or because several
// instances share one store. Every claim gets its own token; Refresh and
// Release only act on the claim holding that token.
type CheckLocker interface {
	Acquire(ctx context.Context, endpointID string) (token string, acquired bool, err error)
	Refresh(ctx context.Context, endpointID, token string) (bool, error)
	Release(ctx context.Context, endpointID, token string) error
}

type memoryCheckLocker struct {
	mu       sync.Mutex
	inFlight map[string]string
	newToken func() string
}

func (l *memoryCheckLocker) Acquire(_ context.Context, endpointID string) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.inFlight[endpointID]; ok {
		return "", false, nil
	}
	token := l.newToken()
	l.inFlight[endpointID] = token
	return token, true, nil
}

func (l *memoryCheckLocker) Refresh(_ context.Context, endpointID, token string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inFlight[endpointID] == token, nil
}

func (l *memoryCheckLocker) Release(_ context.Context, endpointID, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inFlight[endpointID] == token {
		delete(l.inFlight, endpointID)
	}
	return nil
}

func NewMemoryCheckLocker() CheckLocker {
	return &memoryCheckLocker{
		inFlight: make(map[string]string),
		newToken: uuid.NewString,
	}
}

type redisCheckLocker struct {
	redis      *redis.Client
	instanceID string
	ttl        time.Duration
	newToken   func() string
}

// Acquire claims the endpoint for ttl. The ttl bounds how long a crashed
// instance can keep an endpoint from being checked.
func (l *redisCheckLocker) Acquire(ctx context.Context, endpointID string) (string, bool, error) {
	token := l.instanceID + "/" + l.newToken()
	ok, err := l.redis.SetNX(ctx, checkLockKeyPrefix+endpointID, token, l.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("RedisCheckLocker.Acquire: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Refresh restarts the ttl right before the check runs, so time spent queued
// does not count against it. It reports false once the claim has expired.
func (l *redisCheckLocker) Refresh(ctx context.Context, endpointID, token string) (bool, error) {
	n, err := l.redis.Eval(ctx, refreshCheckLockScript, []string{checkLockKeyPrefix + endpointID}, token, l.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("RedisCheckLocker.Refresh: %w", err)
	}
	return n == 1, nil
}

func (l *redisCheckLocker) Release(ctx context.Context, endpointID, token string) error {
	err := l.redis.Eval(ctx, releaseCheckLockScript, []string{checkLockKeyPrefix + endpointID}, token).Err()
	if err != nil {
		return fmt.Errorf("RedisCheckLocker.Release: %w", err)
	}
	return nil
}

// NewRedisCheckLocker expects ttl to cover one check and its recording, see
// config.SchedulerConfig.ClaimTTL.
func NewRedisCheckLocker(client *redis.Client, instanceID string, ttl time.Duration) CheckLocker {
	return &redisCheckLocker{
		redis:      client,
		instanceID: instanceID,
		ttl:        ttl,
		newToken:   uuid.NewString,
	}
}
