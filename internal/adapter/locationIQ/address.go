package locationIQ

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dauletm/pickup-share/internal/domain/types"
	wrap "github.com/dauletm/pickup-share/pkg/logger/wrapper"
)

var (
	ErrLocationNotFound = fmt.Errorf("location not found")
)

const defaultDomain = "https://us1.locationiq.com"

type LocationIQClient struct {
	apiKey string
	domain string
	client *http.Client
}

// New creates a LocationIQ client. The timeout bounds every lookup so a slow
// upstream cannot stall passenger creation indefinitely.
func New(apiKey string, timeout time.Duration) *LocationIQClient {
	return &LocationIQClient{
		apiKey: apiKey,
		domain: defaultDomain,
		client: &http.Client{Timeout: timeout},
	}
}

// Resolve fetches the latitude and longitude for a free-text address using
// the LocationIQ search API. An empty result set maps to ErrLocationNotFound.
func (c *LocationIQClient) Resolve(ctx context.Context, address string) (float64, float64, error) {
	ctx = wrap.WithAction(ctx, "locationiq_resolve")

	reqURL := fmt.Sprintf("%s/v1/search?key=%s&q=%s&format=json", c.domain, c.apiKey, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, 0, wrap.Error(ctx, fmt.Errorf("failed to build LocationIQ request: %w", err))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return 0, 0, wrap.Error(ctx, fmt.Errorf("failed to make request to LocationIQ: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return 0, 0, wrap.Error(ctx, ErrLocationNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return 0, 0, wrap.Error(ctx, fmt.Errorf("unexpected response status %d", resp.StatusCode))
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, wrap.Error(ctx, fmt.Errorf("failed to decode data from LocationIQ response: %w", err))
	}

	if len(results) == 0 {
		return 0, 0, wrap.Error(ctx, ErrLocationNotFound)
	}

	lat, err := parseStringToFloat(results[0].Lat)
	if err != nil {
		return 0, 0, wrap.Error(ctx, fmt.Errorf("failed to parse latitude: %w", err))
	}
	lng, err := parseStringToFloat(results[0].Lon)
	if err != nil {
		return 0, 0, wrap.Error(ctx, fmt.Errorf("failed to parse longitude: %w", err))
	}

	return lat, lng, nil
}

func parseStringToFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
