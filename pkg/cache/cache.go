package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// defaultOperationTimeout is the timeout for individual Redis operations
	defaultOperationTimeout = 5 * time.Second

	renderedSectionTTL = 30 * time.Minute
	pageHTMLTTL        = 10 * time.Minute
)

type Cache struct {
	client  *redis.Client
	enabled bool
}

func NewCache(addr string, enable bool) (*Cache, error) {
	if !enable {
		return &Cache{enabled: false}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{
		client:  client,
		enabled: true,
	}, nil
}

// operationContext creates a context with timeout for Redis operations
func (c *Cache) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), defaultOperationTimeout)
}

func (c *Cache) Set(key string, value interface{}, expiration time.Duration) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, jsonData, expiration).Err()
}

func (c *Cache) Get(key string, dest interface{}) error {
	if !c.enabled {
		return fmt.Errorf("cache disabled")
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("key not found")
	} else if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Cache) Delete(key string) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	return c.client.Del(ctx, key).Err()
}

func (c *Cache) DeletePattern(pattern string) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *Cache) Exists(key string) (bool, error) {
	if !c.enabled {
		return false, nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	val, err := c.client.Exists(ctx, key).Result()
	return val > 0, err
}

func (c *Cache) FlushAll() error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	return c.client.FlushAll(ctx).Err()
}

func (c *Cache) Close() error {
	if !c.enabled {
		return nil
	}
	return c.client.Close()
}

// CacheRenderedSection stores the rendered HTML of a single section.
func (c *Cache) CacheRenderedSection(sectionID string, html string) error {
	return c.Set(fmt.Sprintf("section:html:%s", sectionID), html, renderedSectionTTL)
}

func (c *Cache) GetRenderedSection(sectionID string) (string, error) {
	var html string
	err := c.Get(fmt.Sprintf("section:html:%s", sectionID), &html)
	return html, err
}

func (c *Cache) InvalidateSection(sectionID string) error {
	return c.Delete(fmt.Sprintf("section:html:%s", sectionID))
}

// InvalidateRenderedSections drops all cached section HTML. Called whenever
// sections are saved, reordered, toggled or deleted.
func (c *Cache) InvalidateRenderedSections() error {
	if err := c.DeletePattern("section:html:*"); err != nil {
		return err
	}
	return c.InvalidatePageHTML()
}

// InvalidatePageHTML drops every cached page body. A section edit changes
// any page the section appears on, so page entries cannot survive a
// mutation.
func (c *Cache) InvalidatePageHTML() error {
	return c.DeletePattern("page:html:*")
}

// CachePageHTML stores an assembled page body keyed by tenant scope.
func (c *Cache) CachePageHTML(scope string, html string) error {
	return c.Set(fmt.Sprintf("page:html:%s", scope), html, pageHTMLTTL)
}

func (c *Cache) GetPageHTML(scope string) (string, error) {
	var html string
	err := c.Get(fmt.Sprintf("page:html:%s", scope), &html)
	return html, err
}
