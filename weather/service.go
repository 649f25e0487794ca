package weather

import (
	"context"
	"log"
	"time"
)

// Update is one result delivered to the frame loop
type Update struct {
	Data    Data
	Offline bool
	Err     error
}

// NewUpdates returns the single-slot channel a Service publishes into
func NewUpdates() chan Update {
	return make(chan Update, 1)
}

// Service fetches weather in the background: cache first, then the provider,
// then every interval. Failures are published as offline updates.
type Service struct {
	provider Provider
	cache    *Cache
	location Location
	interval time.Duration
}

// NewService creates a service. cache may be nil.
func NewService(p Provider, cache *Cache, loc Location, interval time.Duration) *Service {
	return &Service{
		provider: p,
		cache:    cache,
		location: loc,
		interval: interval,
	}
}

// Run publishes updates into out until ctx is done. A fresh cached reading
// is published first and the network is asked again when it expires.
func (s *Service) Run(ctx context.Context, out chan Update) {
	next := s.interval
	cached := false
	if s.cache != nil {
		if d, left, err := s.cache.LoadWeatherTTL(s.location); err == nil {
			log.Printf("weather: using cached reading from %s, refresh in %s", d.Timestamp.Format(time.RFC3339), left)
			publish(out, Update{Data: d})
			next = left
			cached = true
		}
	}
	if !cached {
		s.refresh(ctx, out)
	}

	timer := time.NewTimer(next)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			s.refresh(ctx, out)
			timer.Reset(s.interval)
		}
	}
}

func (s *Service) refresh(ctx context.Context, out chan Update) {
	d, err := s.provider.Current(ctx, s.location)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		log.Printf("weather: fetch failed: %v", err)
		publish(out, Update{Offline: true, Err: err})
		return
	}
	if s.cache != nil {
		if err := s.cache.SaveWeather(s.location, d); err != nil {
			log.Printf("weather: cache save failed: %v", err)
		}
	}
	publish(out, Update{Data: d})
}

// publish keeps only the newest update in the slot
func publish(out chan Update, u Update) {
	select {
	case out <- u:
		return
	default:
	}
	select {
	case <-out:
	default:
	}
	select {
	case out <- u:
	default:
	}
}

// Static is a Provider that always returns the same reading
type Static struct {
	Data Data
}

func (s Static) Current(context.Context, Location) (Data, error) {
	return s.Data, nil
}
