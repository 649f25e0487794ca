package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lixenwraith/weathr/parameter"
)

// Provider returns the current reading for a location
type Provider interface {
	Current(ctx context.Context, loc Location) (Data, error)
}

// Client fetches current conditions from Open-Meteo
type Client struct {
	baseURL string
	http    *http.Client
	now     func() time.Time
}

// NewClient creates an Open-Meteo client. An empty baseURL uses the public endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = parameter.OpenMeteoURL
	}
	return &Client{
		baseURL: baseURL,
		http:    newHTTPClient(parameter.WeatherRequestTimeout, parameter.WeatherConnectTimeout),
		now:     time.Now,
	}
}

func newHTTPClient(timeout, connect time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: connect}).DialContext
	return &http.Client{Timeout: timeout, Transport: transport}
}

// openMeteoResponse mirrors the fields requested in the "current" block
type openMeteoResponse struct {
	Current struct {
		Time                string   `json:"time"`
		Temperature         float64  `json:"temperature_2m"`
		RelativeHumidity    float64  `json:"relative_humidity_2m"`
		ApparentTemperature float64  `json:"apparent_temperature"`
		IsDay               int      `json:"is_day"`
		Precipitation       float64  `json:"precipitation"`
		WeatherCode         int      `json:"weather_code"`
		CloudCover          float64  `json:"cloud_cover"`
		SurfacePressure     float64  `json:"surface_pressure"`
		WindSpeed           float64  `json:"wind_speed_10m"`
		WindDirection       float64  `json:"wind_direction_10m"`
		Visibility          *float64 `json:"visibility"`
	} `json:"current"`
}

const currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,is_day,precipitation," +
	"weather_code,cloud_cover,surface_pressure,wind_speed_10m,wind_direction_10m,visibility"

// requestURL asks for internal units directly so no conversion is needed on return
func (c *Client) requestURL(loc Location) string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	q.Set("current", currentFields)
	q.Set("temperature_unit", "celsius")
	q.Set("wind_speed_unit", "ms")
	q.Set("precipitation_unit", "mm")
	q.Set("timezone", "auto")
	return c.baseURL + "?" + q.Encode()
}

// Current fetches and normalizes the current conditions
func (c *Client) Current(ctx context.Context, loc Location) (Data, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(loc), nil)
	if err != nil {
		return Data{}, fmt.Errorf("build weather request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Data{}, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Data{}, fmt.Errorf("fetch weather: status %d: %s", resp.StatusCode, body)
	}

	var r openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return Data{}, fmt.Errorf("decode weather: %w", err)
	}

	now := c.now()
	cur := r.Current
	return Data{
		Condition:           FromWMO(cur.WeatherCode),
		Temperature:         cur.Temperature,
		ApparentTemperature: cur.ApparentTemperature,
		Humidity:            cur.RelativeHumidity,
		Precipitation:       cur.Precipitation,
		WindSpeed:           cur.WindSpeed,
		WindDirection:       cur.WindDirection,
		CloudCover:          cur.CloudCover,
		Pressure:            cur.SurfacePressure,
		Visibility:          cur.Visibility,
		IsDay:               cur.IsDay == 1,
		MoonPhase:           MoonPhase(now),
		Timestamp:           now,
	}, nil
}
