/*
Package cache wraps the redis client used for report caching and for
publishing POS events.

A nil *Cache, or one built around a nil client, is valid: every read misses
and every write is a no-op. Redis is an accelerator here, never a source
of truth, so failures are logged and swallowed.
*/
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// ReportsNamespace holds every cached report; mutations bump it.
const ReportsNamespace = "reports"

const (
	EventSaleCompleted = "sale.completed"
	EventSalePurged    = "sale.purged"
	EventStockMoved    = "stock.moved"

	eventsChannelPrefix = "pos:events:"
	eventsChannelAll    = "pos:events:all"
)

type Cache struct {
	rdb redis.UniversalClient
}

// New accepts a single-node or cluster client. Pass an untyped nil to
// disable caching.
func New(rdb redis.UniversalClient) *Cache {
	return &Cache{rdb: rdb}
}

func (c *Cache) enabled() bool {
	return c != nil && c.rdb != nil
}

// Version returns the current generation of a namespace. Keys built with it
// go stale as soon as Bump is called.
func (c *Cache) Version(ctx context.Context, namespace string) int64 {
	if !c.enabled() {
		return 0
	}
	v, err := c.rdb.Get(ctx, namespace+":version").Int64()
	if err != nil && err != redis.Nil {
		log.Printf("[cache] version %s: %v", namespace, err)
	}
	return v
}

// Bump invalidates every key of the namespace at once.
func (c *Cache) Bump(ctx context.Context, namespace string) {
	if !c.enabled() {
		return
	}
	if err := c.rdb.Incr(ctx, namespace+":version").Err(); err != nil {
		log.Printf("[cache] bump %s: %v", namespace, err)
	}
}

// Key builds a versioned key inside namespace.
func (c *Cache) Key(ctx context.Context, namespace string, parts ...interface{}) string {
	key := fmt.Sprintf("%s:v%d", namespace, c.Version(ctx, namespace))
	for _, p := range parts {
		key += fmt.Sprintf(":%v", p)
	}
	return key
}

func (c *Cache) GetJSON(ctx context.Context, key string, dst interface{}) bool {
	if !c.enabled() {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[cache] get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("[cache] decode %s: %v", key, err)
		return false
	}
	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	if !c.enabled() {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("[cache] encode %s: %v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("[cache] set %s: %v", key, err)
	}
}

type Event struct {
	Type      string      `json:"event_type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// Publish sends the event on its own channel and on the catch-all channel.
func (c *Cache) Publish(ctx context.Context, eventType string, data interface{}) error {
	if !c.enabled() {
		return nil
	}

	eventJSON, err := json.Marshal(Event{Type: eventType, Timestamp: time.Now(), Data: data})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := c.rdb.Publish(ctx, eventsChannelPrefix+eventType, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	if err := c.rdb.Publish(ctx, eventsChannelAll, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish to all channel: %w", err)
	}

	return nil
}
