package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/pkg/metrics"
)

const (
	DefaultBaseURL = "https://api.opencagedata.com/geocode/v1/json"
	unknownPlace   = "Unknown"
)

// ErrNoResults is returned when the geocoder knows nothing about a position.
var ErrNoResults = errors.New("geocode: no results")

// OpenCage reverse-geocodes through the OpenCage Data API.
type OpenCage struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewOpenCage(baseURL, apiKey string, timeout time.Duration) *OpenCage {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OpenCage{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type response struct {
	Results []struct {
		Components struct {
			City    string `json:"city"`
			Town    string `json:"town"`
			Village string `json:"village"`
			State   string `json:"state"`
		} `json:"components"`
	} `json:"results"`
}

// Reverse returns the city and state at a position. The city falls back to
// town, then village, then "Unknown".
func (g *OpenCage) Reverse(ctx context.Context, at domain.Coordinates) (domain.Place, error) {
	place, err := g.reverse(ctx, at)
	switch {
	case errors.Is(err, ErrNoResults):
		metrics.GeocodeRequestsTotal.WithLabelValues("empty").Inc()
	case err != nil:
		metrics.GeocodeRequestsTotal.WithLabelValues("error").Inc()
	default:
		metrics.GeocodeRequestsTotal.WithLabelValues("ok").Inc()
	}
	return place, err
}

func (g *OpenCage) reverse(ctx context.Context, at domain.Coordinates) (domain.Place, error) {
	q := url.Values{}
	q.Set("q", strconv.FormatFloat(at.Lat, 'f', -1, 64)+" "+strconv.FormatFloat(at.Lng, 'f', -1, 64))
	q.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return domain.Place{}, fmt.Errorf("build request: %w", withoutURL(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return domain.Place{}, fmt.Errorf("geocode call: %w", withoutURL(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Place{}, fmt.Errorf("geocode status %d: %s", resp.StatusCode, data)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Place{}, fmt.Errorf("decode response: %w", err)
	}
	if len(body.Results) == 0 {
		return domain.Place{}, ErrNoResults
	}

	c := body.Results[0].Components
	place := domain.Place{City: firstNonEmpty(c.City, c.Town, c.Village, unknownPlace), State: c.State}
	if place.State == "" {
		place.State = unknownPlace
	}
	return place, nil
}

// withoutURL strips the request URL, which carries the API key, from err.
func withoutURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
