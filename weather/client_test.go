package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleResponse = `{
  "latitude": 52.52,
  "longitude": 13.41,
  "current": {
    "time": "2026-10-19T14:00",
    "temperature_2m": 12.3,
    "relative_humidity_2m": 81,
    "apparent_temperature": 10.9,
    "is_day": 1,
    "precipitation": 0.4,
    "weather_code": 61,
    "cloud_cover": 100,
    "surface_pressure": 1004.2,
    "wind_speed_10m": 4.5,
    "wind_direction_10m": 240,
    "visibility": 12000
  }
}`

func TestClientCurrent(t *testing.T) {
	var query map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{}
		for k, v := range r.URL.Query() {
			query[k] = v[0]
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	fixed := time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	d, err := c.Current(context.Background(), Location{Latitude: 52.52, Longitude: 13.41})
	if err != nil {
		t.Fatalf("Current: %v", err)
	}

	wantQuery := map[string]string{
		"latitude":           "52.52",
		"longitude":          "13.41",
		"temperature_unit":   "celsius",
		"wind_speed_unit":    "ms",
		"precipitation_unit": "mm",
		"timezone":           "auto",
	}
	for k, v := range wantQuery {
		if query[k] != v {
			t.Errorf("query %s = %q, want %q", k, query[k], v)
		}
	}
	if query["current"] != currentFields {
		t.Errorf("current fields = %q", query["current"])
	}

	if d.Condition != Rain {
		t.Errorf("Condition = %v, want Rain", d.Condition)
	}
	if d.Temperature != 12.3 || d.WindSpeed != 4.5 || d.WindDirection != 240 {
		t.Errorf("unexpected values: %+v", d)
	}
	if !d.IsDay {
		t.Error("is_day=1 should map to IsDay")
	}
	if d.Visibility == nil || *d.Visibility != 12000 {
		t.Error("visibility not decoded")
	}
	if !d.Timestamp.Equal(fixed) {
		t.Errorf("Timestamp = %v", d.Timestamp)
	}
}

func TestClientErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewClient(srv.URL).Current(context.Background(), Location{})
			if err == nil {
				t.Error("expected error")
			}
		})
	}
}
