package portal

import (
	"sync"
	"time"
)

// DefaultTimeout is the fixed duration applied to every request. It is not
// configurable per call.
const DefaultTimeout = 10 * time.Second

type (
	// Config holds the process-wide settings every request reads: the active
	// branch base URL and the request timeout. It is an explicit handle rather
	// than package-level state so tests can build isolated clients, and it is
	// guarded so a branch switch during an in-flight request is safe.
	Config struct {
		mu      sync.RWMutex
		baseURL string
		timeout time.Duration
	}
)

func NewConfig() *Config {
	return &Config{timeout: DefaultTimeout}
}

// BaseURL returns the active branch's base URL, or "" when no branch has been
// activated yet.
func (c *Config) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL switches the active base URL. Requests already issued keep the
// URL they captured; only subsequent requests see the new value.
func (c *Config) SetBaseURL(u string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = u
}

func (c *Config) Timeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timeout
}

func (c *Config) SetTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = d
}
