// Package location is a small Nominatim client used as a fallback region
// source when the primary provider is unavailable or not configured.
package location

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultUserAgent = "cafe-directory/1.0"
)

// Client performs reverse lookups against a Nominatim instance.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	language   string
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		userAgent:  DefaultUserAgent,
		language:   "ko",
	}
}

// WithHTTPClient replaces the underlying http client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Reverse resolves a coordinate to its structured address.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*ReverseResponse, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")
	params.Set("zoom", "16")
	params.Set("accept-language", c.language)

	reqURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("location: unexpected status: %s", resp.Status)
	}

	var out ReverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("location: decode reverse response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("location: %s", out.Error)
	}
	return &out, nil
}
