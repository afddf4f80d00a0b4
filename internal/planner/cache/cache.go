// Package cache holds generated day plans keyed by (user, date).
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"campus-day-planner/internal/model"
	pkgLog "campus-day-planner/pkg/log"
)

const defaultSize = 4096

// PlanCache is an in-memory TTL cache of day plans. Concurrent writes for
// the same key are last-write-wins; a stale overwrite is corrected by the
// next invalidation or TTL expiry. Safe for concurrent use.
type PlanCache struct {
	lru *expirable.LRU[string, model.DayPlan]
	l   pkgLog.Logger
}

// New creates a PlanCache. ttl bounds how long an entry is served without
// regeneration; explicit invalidation can remove it sooner.
func New(l pkgLog.Logger, ttl time.Duration) *PlanCache {
	return &PlanCache{
		lru: expirable.NewLRU[string, model.DayPlan](defaultSize, nil, ttl),
		l:   l,
	}
}

func key(userID, date string) string {
	return userID + "|" + date
}

// Get returns the cached plan for (user, date) if present and unexpired.
func (c *PlanCache) Get(userID, date string) (model.DayPlan, bool) {
	return c.lru.Get(key(userID, date))
}

// Put stores a plan, replacing any existing entry for the same key.
func (c *PlanCache) Put(plan model.DayPlan) {
	c.lru.Add(key(plan.UserID, plan.Date), plan)
}

// Invalidate removes the entry for (user, date). Removing an absent entry is
// a no-op.
func (c *PlanCache) Invalidate(ctx context.Context, userID, date string) {
	if c.lru.Remove(key(userID, date)) {
		c.l.Debugf(ctx, "cache: invalidated plan for user %s on %s", userID, date)
	}
}

// InvalidateToday removes the user's entry for today in the given location.
// Mutation hooks that cannot know which date they affect use this.
func (c *PlanCache) InvalidateToday(ctx context.Context, userID string, loc *time.Location) {
	c.Invalidate(ctx, userID, time.Now().In(loc).Format("2006-01-02"))
}

// PurgeOlderThan removes entries generated more than retention ago,
// regardless of whether they were ever read. Called opportunistically from
// plan requests rather than on a schedule.
func (c *PlanCache) PurgeOlderThan(ctx context.Context, retention time.Duration) int {
	cutoff := time.Now().Add(-retention)
	purged := 0
	for _, k := range c.lru.Keys() {
		plan, ok := c.lru.Peek(k)
		if !ok {
			continue
		}
		if plan.GeneratedAt.Before(cutoff) {
			c.lru.Remove(k)
			purged++
		}
	}
	if purged > 0 {
		c.l.Infof(ctx, "cache: purged %d plan(s) older than %s", purged, retention)
	}
	return purged
}

// Len returns the number of live entries.
func (c *PlanCache) Len() int {
	return c.lru.Len()
}
