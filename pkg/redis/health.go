package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthCheck performs a connectivity check on the Redis connection
func (c *Client) HealthCheck(ctx context.Context) RedisHealthCheck {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	details := map[string]string{
		"host":     c.config.Host,
		"port":     strconv.Itoa(c.config.Port),
		"database": strconv.Itoa(c.config.Database),
	}

	if err := c.rdb.Ping(pingCtx).Err(); err != nil {
		details["error"] = fmt.Sprintf("ping failed: %v", err)
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}

	stats := c.rdb.PoolStats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)

	return RedisHealthCheck{Status: StatusUp, Details: details}
}
