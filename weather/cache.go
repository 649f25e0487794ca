package weather

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/weathr/parameter"
)

var (
	// ErrCacheExpired is returned for an entry older than its TTL
	ErrCacheExpired = errors.New("cache entry expired")
	// ErrCacheMiss is returned when no usable entry exists
	ErrCacheMiss = errors.New("cache miss")
)

// Cache stores the last location and weather reading as JSON files
type Cache struct {
	dir string
	now func() time.Time
}

type locationEntry struct {
	Location Location `json:"location"`
	CachedAt int64    `json:"cached_at"`
}

type weatherEntry struct {
	Data        Data   `json:"data"`
	CachedAt    int64  `json:"cached_at"`
	LocationKey string `json:"location_key"`
}

// NewCache creates a cache rooted at dir. An empty dir uses the user cache directory.
func NewCache(dir string) (*Cache, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("locate cache dir: %w", err)
		}
		dir = filepath.Join(base, parameter.CacheDirName)
	}
	return &Cache{dir: dir, now: time.Now}, nil
}

// Dir returns the cache directory
func (c *Cache) Dir() string {
	return c.dir
}

// LoadLocation returns the cached location if younger than LocationCacheTTL
func (c *Cache) LoadLocation() (Location, error) {
	var e locationEntry
	if err := c.read(parameter.LocationCacheFile, &e); err != nil {
		return Location{}, err
	}
	if c.expired(e.CachedAt, parameter.LocationCacheTTL) {
		return Location{}, ErrCacheExpired
	}
	return e.Location, nil
}

// SaveLocation stores a location stamped with the current time
func (c *Cache) SaveLocation(loc Location) error {
	return c.write(parameter.LocationCacheFile, locationEntry{Location: loc, CachedAt: c.now().Unix()})
}

// LoadWeather returns the cached reading for loc if younger than WeatherCacheTTL
func (c *Cache) LoadWeather(loc Location) (Data, error) {
	d, _, err := c.LoadWeatherTTL(loc)
	return d, err
}

// LoadWeatherTTL is LoadWeather plus the time left before the entry expires
func (c *Cache) LoadWeatherTTL(loc Location) (Data, time.Duration, error) {
	var e weatherEntry
	if err := c.read(parameter.WeatherCacheFile, &e); err != nil {
		return Data{}, 0, err
	}
	if e.LocationKey != loc.Key() {
		return Data{}, 0, ErrCacheMiss
	}
	if c.expired(e.CachedAt, parameter.WeatherCacheTTL) {
		return Data{}, 0, ErrCacheExpired
	}
	left := parameter.WeatherCacheTTL - c.now().Sub(time.Unix(e.CachedAt, 0))
	return e.Data, max(left, 0), nil
}

// SaveWeather stores a reading for loc
func (c *Cache) SaveWeather(loc Location, d Data) error {
	return c.write(parameter.WeatherCacheFile, weatherEntry{Data: d, CachedAt: c.now().Unix(), LocationKey: loc.Key()})
}

func (c *Cache) expired(cachedAt int64, ttl time.Duration) bool {
	return c.now().Sub(time.Unix(cachedAt, 0)) > ttl
}

func (c *Cache) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(c.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("read cache %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse cache %s: %w", name, err)
	}
	return nil
}

// write goes through a temp file so readers never see a partial entry
func (c *Cache) write(name string, v any) error {
	if err := os.MkdirAll(c.dir, parameter.CacheDirPerm); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache %s: %w", name, err)
	}
	path := filepath.Join(c.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, parameter.CacheFilePerm); err != nil {
		return fmt.Errorf("write cache %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit cache %s: %w", name, err)
	}
	return nil
}
