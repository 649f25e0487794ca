package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/weathr/parameter"
)

// ErrBadLocation is returned when the geolocation response cannot be parsed
var ErrBadLocation = errors.New("invalid location response")

// Geolocator resolves the current location from the public IP address
type Geolocator struct {
	url   string
	http  *http.Client
	cache *Cache
	sleep func(ctx context.Context, d time.Duration) error
}

// NewGeolocator creates a geolocator. cache may be nil; an empty url uses ipinfo.io.
func NewGeolocator(url string, cache *Cache) *Geolocator {
	if url == "" {
		url = parameter.GeolocationURL
	}
	return &Geolocator{
		url:   url,
		http:  newHTTPClient(parameter.GeolocationRequestTimeout, parameter.GeolocationConnectTimeout),
		cache: cache,
		sleep: sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type ipInfoResponse struct {
	Loc  string `json:"loc"`
	City string `json:"city"`
}

// retryableError marks failures worth another attempt
type retryableError struct{ err error }

func (e retryableError) Error() string { return e.err.Error() }
func (e retryableError) Unwrap() error { return e.err }

// Locate returns the cached location when fresh, otherwise queries the service
// with exponential backoff. Only transport errors and 5xx responses are retried.
func (g *Geolocator) Locate(ctx context.Context) (Location, error) {
	if g.cache != nil {
		if loc, err := g.cache.LoadLocation(); err == nil {
			return loc, nil
		}
	}

	backoff := parameter.GeolocationBackoff
	var lastErr error
	for attempt := 1; attempt <= parameter.GeolocationAttempts; attempt++ {
		if attempt > 1 {
			if err := g.sleep(ctx, backoff); err != nil {
				return Location{}, err
			}
			backoff *= 2
		}

		loc, err := g.fetch(ctx)
		if err == nil {
			if g.cache != nil {
				if err := g.cache.SaveLocation(loc); err != nil {
					log.Printf("geolocation: cache save failed: %v", err)
				}
			}
			return loc, nil
		}
		lastErr = err

		var re retryableError
		if !errors.As(err, &re) {
			break
		}
		log.Printf("geolocation: attempt %d failed: %v", attempt, err)
	}
	return Location{}, fmt.Errorf("geolocate: %w", lastErr)
}

func (g *Geolocator) fetch(ctx context.Context) (Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url, nil)
	if err != nil {
		return Location{}, err
	}
	resp, err := g.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Location{}, err
		}
		return Location{}, retryableError{err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return Location{}, retryableError{fmt.Errorf("status %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("status %d", resp.StatusCode)
	}

	var r ipInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrBadLocation, err)
	}
	return parseLoc(r)
}

// parseLoc splits "lat,lon"
func parseLoc(r ipInfoResponse) (Location, error) {
	lat, lon, ok := strings.Cut(r.Loc, ",")
	if !ok {
		return Location{}, fmt.Errorf("%w: loc %q", ErrBadLocation, r.Loc)
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: latitude %q", ErrBadLocation, lat)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: longitude %q", ErrBadLocation, lon)
	}
	return Location{Latitude: la, Longitude: lo, City: r.City}, nil
}
