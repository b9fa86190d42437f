package aur

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// diskCache is a best-effort, TTL-bound cache of RPC replies keyed by the
// hashed request name set. Read or write failures degrade to cache misses;
// the cache never affects correctness, only round trips.
type diskCache struct {
	dir string
	ttl time.Duration
}

func newDiskCache(dir string, ttl time.Duration) *diskCache {
	return &diskCache{dir: dir, ttl: ttl}
}

type cacheEntry struct {
	FetchedAt time.Time `json:"fetched_at"`
	Results   []pkgInfo `json:"results"`
}

// cacheKey hashes a sorted request chunk into a stable file name.
func cacheKey(chunk []string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(strings.Join(chunk, "\x00")))
}

func (c *diskCache) get(key string) ([]pkgInfo, bool) {
	if c == nil {
		return nil, false
	}
	data, err := os.ReadFile(filepath.Join(c.dir, key+".json")) //nolint:gosec // key is a hex hash
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	if time.Since(entry.FetchedAt) > c.ttl {
		return nil, false
	}
	return entry.Results, true
}

func (c *diskCache) put(key string, results []pkgInfo) {
	if c == nil {
		return
	}
	data, err := json.Marshal(cacheEntry{FetchedAt: time.Now(), Results: results})
	if err != nil {
		return
	}
	if err := os.MkdirAll(c.dir, 0o750); err != nil {
		return
	}
	_ = os.WriteFile(filepath.Join(c.dir, key+".json"), data, 0o600)
}
