package parameter

import "time"

// Open-Meteo endpoint and timeouts
const (
	OpenMeteoURL = "https://api.open-meteo.com/v1/forecast"

	// WeatherRequestTimeout bounds the whole request
	WeatherRequestTimeout = 30 * time.Second

	// WeatherConnectTimeout bounds dialing
	WeatherConnectTimeout = 10 * time.Second
)

// IP geolocation
const (
	GeolocationURL = "https://ipinfo.io/json"

	GeolocationRequestTimeout = 10 * time.Second
	GeolocationConnectTimeout = 5 * time.Second

	// GeolocationAttempts is the total tries including the first
	GeolocationAttempts = 3

	// GeolocationBackoff is the delay before the second attempt, doubled each retry
	GeolocationBackoff = 500 * time.Millisecond
)

// Disk cache
const (
	CacheDirName      = "weathr"
	WeatherCacheFile  = "weather.json"
	LocationCacheFile = "location.json"
	WeatherCacheTTL   = 300 * time.Second
	LocationCacheTTL  = 86400 * time.Second
	CacheFilePerm     = 0o644
	CacheDirPerm      = 0o755
)

// Default location (Berlin)
const (
	DefaultLatitude  = 52.52
	DefaultLongitude = 13.41
)

// Offline fallback ranges
const (
	OfflineTempMin      = 10.0
	OfflineTempMax      = 25.0
	OfflinePrecipMin    = 1.0
	OfflinePrecipMax    = 5.0
	OfflineWindMin      = 5.0
	OfflineWindMax      = 15.0
	OfflineDayStartHour = 6
	OfflineDayEndHour   = 18
)

// Simulated weather
const (
	SimulatedTemperature      = 20.0
	SimulatedApparentTemp     = 19.0
	SimulatedHumidity         = 65.0
	SimulatedPrecipitation    = 2.5
	SimulatedWindSpeed        = 10.0
	SimulatedStormWindSpeed   = 45.0
	SimulatedWindDirection    = 225.0
	SimulatedSurfacePressure  = 1013.0
	SimulatedCloudCover       = 50.0
	DefaultMoonPhase          = 0.5
	SynodicMonthDays          = 29.530588853
	KnownNewMoonUnixSeconds   = 947182440 // 2000-01-06 18:14 UTC
	FireflyMinTemperatureC    = 15.0
)
