package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

const defaultUserAgent = "WeatherTerminal/1.0 (github.com/ngmaloney/weather-terminal)"

// OpenMeteoClient implements Provider using the Open-Meteo geocoding and
// forecast APIs
type OpenMeteoClient struct {
	geocodingURL string
	forecastURL  string
	forecastDays int
	language     string
	httpClient   *http.Client
	userAgent    string
	now          func() time.Time

	// secondary is consulted when the place-name search finds nothing
	secondary *NominatimGeocoder
}

// NewOpenMeteoClient creates a new Open-Meteo client
func NewOpenMeteoClient() *OpenMeteoClient {
	return &OpenMeteoClient{
		geocodingURL: "https://geocoding-api.open-meteo.com/v1/search",
		forecastURL:  "https://api.open-meteo.com/v1/forecast",
		forecastDays: 7,
		language:     "en",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: defaultUserAgent,
		now:       time.Now,
	}
}

// Name returns the provider name
func (c *OpenMeteoClient) Name() string {
	return "open-meteo"
}

// FetchWeather geocodes the location and fetches current conditions plus
// the daily forecast
func (c *OpenMeteoClient) FetchWeather(ctx context.Context, location string) (*models.WeatherReport, error) {
	place, err := c.geocode(ctx, location)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(place.Latitude, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(place.Longitude, 'f', 4, 64))
	params.Set("current", "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m")
	params.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max")
	params.Set("wind_speed_unit", "ms")
	params.Set("timezone", "auto")
	params.Set("forecast_days", strconv.Itoa(c.forecastDays))

	var forecastResp forecastResponse
	if err := c.getJSON(ctx, c.forecastURL+"?"+params.Encode(), &forecastResp); err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	return c.buildReport(place, &forecastResp), nil
}

// geocode resolves a free-text location to coordinates
func (c *OpenMeteoClient) geocode(ctx context.Context, location string) (*geocodeResult, error) {
	params := url.Values{}
	params.Set("name", location)
	params.Set("count", "1")
	params.Set("language", c.language)
	params.Set("format", "json")

	var geoResp geocodeResponse
	if err := c.getJSON(ctx, c.geocodingURL+"?"+params.Encode(), &geoResp); err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", location, err)
	}

	if len(geoResp.Results) > 0 {
		return &geoResp.Results[0], nil
	}

	if c.secondary != nil {
		slog.Debug("place name not found, trying address lookup", "location", location)
		return c.secondary.geocode(ctx, location)
	}

	return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, location)
}

func (c *OpenMeteoClient) getJSON(ctx context.Context, reqURL string, v any) error {
	return getJSON(ctx, c.httpClient, c.userAgent, reqURL, v)
}

// getJSON issues a GET and decodes a 200 JSON response into v
func getJSON(ctx context.Context, client *http.Client, userAgent, reqURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// buildReport converts the Open-Meteo response into our model
func (c *OpenMeteoClient) buildReport(place *geocodeResult, resp *forecastResponse) *models.WeatherReport {
	zone := time.FixedZone(resp.Timezone, resp.UTCOffsetSeconds)

	updatedAt, err := time.ParseInLocation("2006-01-02T15:04", resp.Current.Time, zone)
	if err != nil {
		updatedAt = c.now()
	}

	description, iconCode := describeWeatherCode(resp.Current.WeatherCode)

	report := &models.WeatherReport{
		Location:    place.displayName(),
		UpdatedAt:   updatedAt,
		Icon:        iconURL(iconCode),
		Description: description,
		Temperature: resp.Current.Temperature,
		FeelsLike:   resp.Current.ApparentTemperature,
		Humidity:    resp.Current.RelativeHumidity,
		WindSpeed:   resp.Current.WindSpeed,
	}

	daily := resp.Daily
	count := min(len(daily.Time), len(daily.WeatherCode), len(daily.TemperatureMax), len(daily.TemperatureMin))

	for i := 0; i < count; i++ {
		dayDesc, dayIcon := describeWeatherCode(daily.WeatherCode[i])
		day := models.ForecastDay{
			HighTemp:    formatTemp(daily.TemperatureMax[i]),
			LowTemp:     formatTemp(daily.TemperatureMin[i]),
			Description: dayDesc,
			Icon:        iconURL(dayIcon),
		}

		// Leave date fields empty rather than guessing when the date is malformed
		if date, err := time.ParseInLocation("2006-01-02", daily.Time[i], zone); err == nil {
			day.Date = date.Format("Jan 2")
			day.DayOfWeek = date.Format("Mon")
		}

		if i < len(daily.PrecipitationProbability) && daily.PrecipitationProbability[i] != nil {
			day.Precipitation = fmt.Sprintf("%d%%", *daily.PrecipitationProbability[i])
		}

		report.Forecast = append(report.Forecast, day)
	}

	return report
}

func formatTemp(v float64) string {
	return fmt.Sprintf("%d°C", models.RoundHalfUp(v))
}

// Internal types for Open-Meteo API responses

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
}

type geocodeResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1"`
	Timezone  string  `json:"timezone"`
}

func (g *geocodeResult) displayName() string {
	if g.Country == "" {
		return g.Name
	}
	return g.Name + ", " + g.Country
}

type forecastResponse struct {
	Timezone         string `json:"timezone"`
	UTCOffsetSeconds int    `json:"utc_offset_seconds"`
	Current          struct {
		Time                string  `json:"time"`
		Temperature         float64 `json:"temperature_2m"`
		RelativeHumidity    int     `json:"relative_humidity_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		WeatherCode         int     `json:"weather_code"`
		WindSpeed           float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Daily struct {
		Time                     []string  `json:"time"`
		WeatherCode              []int     `json:"weather_code"`
		TemperatureMax           []float64 `json:"temperature_2m_max"`
		TemperatureMin           []float64 `json:"temperature_2m_min"`
		PrecipitationProbability []*int    `json:"precipitation_probability_max"`
	} `json:"daily"`
}
