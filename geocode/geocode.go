// Package geocode resolves geographic coordinates into short
// human-readable addresses. Resolution is best effort: every failure
// degrades to a coordinate-pair fallback instead of an error, so a
// broken geocoder can never block report submission.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/golang/geo/s2"
)

// addressSegments is how many leading comma-separated segments of the
// geocoder's display name make it into the resolved address.
const addressSegments = 3

const defaultTimeout = 10 * time.Second

// Result is a resolved location. When Fallback is true the Address is
// the raw "<lat>, <lon>" pair rather than a street address.
type Result struct {
	Address  string
	Fallback bool
}

// Resolver looks up addresses against a nominatim-compatible reverse
// geocoding endpoint.
type Resolver struct {
	baseURL string
	client  *http.Client
}

// New creates a Resolver for the given nominatim base URL.
func New(baseURL string) *Resolver {
	return &Resolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// Resolve reverse-geocodes the coordinate. It never returns an error:
// invalid coordinates, transport failures, and malformed responses all
// yield the coordinate-pair fallback.
func (r *Resolver) Resolve(ctx context.Context, lat, lon float64) Result {
	fallback := Result{Address: fmt.Sprintf("%v, %v", lat, lon), Fallback: true}

	if !s2.LatLngFromDegrees(lat, lon).IsValid() {
		log.Warnf("geocode: coordinates out of range: %v, %v", lat, lon)
		return fallback
	}

	endpoint := fmt.Sprintf("%s/reverse?lat=%s&lon=%s&format=json",
		r.baseURL,
		url.QueryEscape(fmt.Sprintf("%v", lat)),
		url.QueryEscape(fmt.Sprintf("%v", lon)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Warnf("geocode: build request: %v", err)
		return fallback
	}

	resp, err := r.client.Do(req)
	if err != nil {
		log.Warnf("geocode: reverse lookup failed: %v", err)
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnf("geocode: reverse lookup returned %s", resp.Status)
		return fallback
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Warnf("geocode: decode response: %v", err)
		return fallback
	}
	if body.DisplayName == "" {
		return fallback
	}

	return Result{Address: shorten(body.DisplayName)}
}

// shorten keeps the first few comma-separated segments of a full
// display name, trimmed and rejoined.
func shorten(displayName string) string {
	parts := strings.Split(displayName, ",")
	if len(parts) > addressSegments {
		parts = parts[:addressSegments]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
