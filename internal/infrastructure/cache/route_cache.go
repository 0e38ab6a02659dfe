package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"reefer-backoffice/internal/domain/trip"
	"reefer-backoffice/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const routeKeyPrefix = "route:rates:"

var _ trip.RouteSource = (*RouteCache)(nil)

// RouteCache is a read-through Redis cache in front of the route master data.
// Redis failures degrade to reading the source directly.
type RouteCache struct {
	rdb    redis.Cmdable
	source trip.RouteSource
	ttl    time.Duration
	log    logger.Logger
}

func NewRouteCache(rdb redis.Cmdable, source trip.RouteSource, ttl time.Duration, log logger.Logger) *RouteCache {
	if log == nil {
		log = logger.NewNop()
	}
	return &RouteCache{rdb: rdb, source: source, ttl: ttl, log: log}
}

func routeKey(id uint64) string { return routeKeyPrefix + strconv.FormatUint(id, 10) }

func (c *RouteCache) GetRoute(ctx context.Context, id uint64) (*trip.Route, error) {
	key := routeKey(id)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var rt trip.Route
		if err := json.Unmarshal(raw, &rt); err == nil {
			return &rt, nil
		}
		c.log.Warn("route cache: bad payload", "key", key)
	case !errors.Is(err, redis.Nil):
		c.log.Warn("route cache: read failed", "key", key, "error", err)
	}

	rt, err := c.source.GetRoute(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(rt); err == nil {
		if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Warn("route cache: write failed", "key", key, "error", err)
		}
	}
	return rt, nil
}
