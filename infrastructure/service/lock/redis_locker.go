package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/roamops/roamops/application/port/outbound"
	"github.com/roamops/roamops/infrastructure/service/logger"
)

const (
	lockTTL       = 10 * time.Second
	acquireWait   = 5 * time.Second
	retryInterval = 50 * time.Millisecond
)

// releaseScript deletes the lock only when it still holds our token,
// so an expired lock reacquired by another writer is never released by us.
var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`)

// RedisEmployeeLocker serializes writes per employee so that the
// conflict scan and the subsequent insert happen without interleaving.
type RedisEmployeeLocker struct {
	client *redis.Client
	logger logger.Logger
}

func NewRedisEmployeeLocker(client *redis.Client, log logger.Logger) outbound.EmployeeLocker {
	return &RedisEmployeeLocker{client: client, logger: log}
}

func (l *RedisEmployeeLocker) Acquire(ctx context.Context, employeeID string) (func(), error) {
	if employeeID == "" {
		return nil, fmt.Errorf("employee ID cannot be empty")
	}

	key := fmt.Sprintf("payroll:employee_lock:%s", employeeID)
	token := uuid.New().String()

	waitCtx, cancel := context.WithTimeout(ctx, acquireWait)
	defer cancel()

	for {
		ok, err := l.client.SetNX(waitCtx, key, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire employee lock: %w", err)
		}
		if ok {
			break
		}

		select {
		case <-waitCtx.Done():
			return nil, fmt.Errorf("timed out waiting for employee lock %s: %w", employeeID, waitCtx.Err())
		case <-time.After(retryInterval):
		}
	}

	release := func() {
		releaseCtx, releaseCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer releaseCancel()

		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			l.logger.Error(releaseCtx, "Failed to release employee lock", err, map[string]interface{}{
				"employee_id": employeeID,
			})
		}
	}
	return release, nil
}
