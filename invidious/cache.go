package invidious

import (
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/ytbascii/ytbascii/filesystem"
)

// cacheData defines the structured format for persisting cached responses to disk.
type cacheData struct {
	Responses map[string]string `json:"responses"`
}

// responseCache keeps raw API bodies keyed by request URL.
// The whole cache expires at once, lifetime after it was first written.
type responseCache struct {
	internal *gache.Cache[*cacheData]
	mu       sync.Mutex
}

func newResponseCache(path string, lifetime time.Duration) *responseCache {
	return &responseCache{
		internal: gache.New[*cacheData](&gache.Options{
			Path:       path,
			Lifetime:   lifetime,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

// Get retrieves the body cached for url.
func (c *responseCache) Get(url string) mo.Option[string] {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[string]()
	}

	if body, ok := data.Responses[url]; ok {
		return mo.Some(body)
	}
	return mo.None[string]()
}

// Set stores body for url.
func (c *responseCache) Set(url, body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil {
		data = &cacheData{Responses: make(map[string]string)}
	}
	data.Responses[url] = body
	return c.internal.Set(data)
}
