package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const nominatimURL = "https://nominatim.openstreetmap.org/search"

// NominatimGeocoder resolves free-form addresses and postal codes that the
// Open-Meteo place-name search does not understand
type NominatimGeocoder struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string // required by the Nominatim usage policy
	limiter    *rate.Limiter
}

// NewNominatimGeocoder creates a geocoder against baseURL, or the public
// Nominatim instance when baseURL is empty
func NewNominatimGeocoder(baseURL string) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = nominatimURL
	}
	return &NominatimGeocoder{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		userAgent: defaultUserAgent,
		// Nominatim allows at most one request per second
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

type nominatimResponse struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Address     struct {
		Country string `json:"country"`
	} `json:"address"`
}

// geocode resolves query to the best matching place
func (g *NominatimGeocoder) geocode(ctx context.Context, query string) (*geocodeResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")
	params.Set("limit", "1")

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var results []nominatimResponse
	if err := getJSON(ctx, g.httpClient, g.userAgent, g.baseURL+"?"+params.Encode(), &results); err != nil {
		return nil, fmt.Errorf("nominatim lookup for %q: %w", query, err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, query)
	}

	result := results[0]

	lat, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing longitude: %w", err)
	}

	name := result.Name
	if name == "" {
		name, _, _ = strings.Cut(result.DisplayName, ",")
	}

	return &geocodeResult{
		Name:      strings.TrimSpace(name),
		Latitude:  lat,
		Longitude: lon,
		Country:   result.Address.Country,
	}, nil
}
