/*
Package reports computes read-only aggregates over committed sales,
movements and expenses.

Date ranges are calendar days in local time, inclusive at both ends.
Revenue is always quantity times the unit price stored on the sale.
When the store cannot be read, reports log the failure and come back
empty so dashboards keep rendering; only malformed input is an error.
*/
package reports

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"vican-pos/internal/cache"
	"vican-pos/internal/domain"
)

const (
	DateLayout      = "2006-01-02"
	DefaultCacheTTL = 5 * time.Minute
	MaxWindowDays   = 366
)

type Engine struct {
	db       *gorm.DB
	cache    *cache.Cache
	now      func() time.Time
	cacheTTL time.Duration
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(e *Engine) {
		if ttl > 0 {
			e.cacheTTL = ttl
		}
	}
}

func NewEngine(db *gorm.DB, c *cache.Cache, opts ...Option) *Engine {
	e := &Engine{db: db, cache: c, now: time.Now, cacheTTL: DefaultCacheTTL}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (e *Engine) today() time.Time {
	return startOfDay(e.now())
}

// parseRange turns inclusive calendar dates into a half-open [from, to)
// interval of instants.
func parseRange(start, end string) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation(DateLayout, start, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, domain.Invalid("start", "must be YYYY-MM-DD")
	}
	last, err := time.ParseInLocation(DateLayout, end, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, domain.Invalid("end", "must be YYYY-MM-DD")
	}
	if last.Before(from) {
		return time.Time{}, time.Time{}, domain.Invalid("end", "must not be before start")
	}
	return from, last.AddDate(0, 0, 1), nil
}

func validateWindow(days int) error {
	if days < 0 || days > MaxWindowDays {
		return domain.Invalid("days", "must be between 0 and 366")
	}
	return nil
}

func degrade(report string, err error) {
	log.Printf("[reports] %s: store read failed, returning empty result: %v", report, err)
}

func (e *Engine) cached(ctx context.Context, dst interface{}, parts ...interface{}) (string, bool) {
	key := e.cache.Key(ctx, cache.ReportsNamespace, parts...)
	return key, e.cache.GetJSON(ctx, key, dst)
}
