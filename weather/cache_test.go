package weather

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestCache(t *testing.T) (*Cache, *time.Time) {
	t.Helper()
	c, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestCacheLocation(t *testing.T) {
	c, now := newTestCache(t)

	if _, err := c.LoadLocation(); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("empty cache: err = %v, want ErrCacheMiss", err)
	}

	loc := Location{Latitude: 40.71, Longitude: -74.01, City: "New York"}
	if err := c.SaveLocation(loc); err != nil {
		t.Fatalf("SaveLocation: %v", err)
	}
	got, err := c.LoadLocation()
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	if got != loc {
		t.Errorf("got %+v, want %+v", got, loc)
	}

	*now = now.Add(25 * time.Hour)
	if _, err := c.LoadLocation(); !errors.Is(err, ErrCacheExpired) {
		t.Errorf("after 25h: err = %v, want ErrCacheExpired", err)
	}
}

func TestCacheWeather(t *testing.T) {
	c, now := newTestCache(t)
	loc := Location{Latitude: 52.52, Longitude: 13.41}
	d := Data{Condition: Snow, Temperature: -2, IsDay: true}

	if err := c.SaveWeather(loc, d); err != nil {
		t.Fatalf("SaveWeather: %v", err)
	}

	got, err := c.LoadWeather(loc)
	if err != nil {
		t.Fatalf("LoadWeather: %v", err)
	}
	if got.Condition != Snow || got.Temperature != -2 || !got.IsDay {
		t.Errorf("got %+v", got)
	}

	// Same key at two-decimal precision
	if _, err := c.LoadWeather(Location{Latitude: 52.5201, Longitude: 13.4099}); err != nil {
		t.Errorf("nearby location should hit: %v", err)
	}
	if _, err := c.LoadWeather(Location{Latitude: 48.85, Longitude: 2.35}); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("other location: err = %v, want ErrCacheMiss", err)
	}

	*now = now.Add(301 * time.Second)
	if _, err := c.LoadWeather(loc); !errors.Is(err, ErrCacheExpired) {
		t.Errorf("after 301s: err = %v, want ErrCacheExpired", err)
	}
}

func TestCacheWeatherTTLLeft(t *testing.T) {
	c, now := newTestCache(t)
	loc := Location{Latitude: 52.52, Longitude: 13.41}
	if err := c.SaveWeather(loc, Data{Condition: Rain}); err != nil {
		t.Fatalf("SaveWeather: %v", err)
	}

	_, left, err := c.LoadWeatherTTL(loc)
	if err != nil {
		t.Fatalf("LoadWeatherTTL: %v", err)
	}
	if left != 300*time.Second {
		t.Errorf("fresh entry left = %v, want 5m", left)
	}

	*now = now.Add(280 * time.Second)
	if _, left, _ = c.LoadWeatherTTL(loc); left != 20*time.Second {
		t.Errorf("after 280s left = %v, want 20s", left)
	}
}

func TestCacheCorruptFile(t *testing.T) {
	c, _ := newTestCache(t)
	if err := os.WriteFile(filepath.Join(c.Dir(), "location.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := c.LoadLocation()
	if err == nil || errors.Is(err, ErrCacheMiss) {
		t.Errorf("corrupt file: err = %v, want parse error", err)
	}
}
