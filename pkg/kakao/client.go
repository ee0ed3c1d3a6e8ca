// Package kakao is a thin client for the Kakao Local REST API: rectangle
// constrained category search and coordinate to region code lookups.
package kakao

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://dapi.kakao.com"

	categoryPath = "/v2/local/search/category.json"
	regionPath   = "/v2/local/geo/coord2regioncode.json"
)

// ErrStatus is returned when the API answers with a non-200 status.
var ErrStatus = errors.New("kakao: unexpected status")

type Client struct {
	httpClient *http.Client
	baseURL    string
	restKey    string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL points the client at another host, e.g. a local fake.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithRate caps outgoing requests per second. Zero or less disables the cap.
func WithRate(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a client authenticated with a REST API key. Five
// consecutive transport failures open the breaker for thirty seconds, during
// which calls fail immediately with gobreaker.ErrOpenState.
func NewClient(restKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    DefaultBaseURL,
		restKey:    restKey,
		limiter:    rate.NewLimiter(rate.Limit(10), 1),
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "kakao",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			// a 4xx/5xx answer proves the API is reachable
			return err == nil || errors.Is(err, ErrStatus)
		},
	})
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchCategory fetches one page of places of the given category inside a
// rectangle.
func (c *Client) SearchCategory(ctx context.Context, q CategoryQuery) (*CategoryResponse, error) {
	params := url.Values{}
	params.Set("category_group_code", q.Code)
	params.Set("rect", q.Rect)
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		params.Set("size", strconv.Itoa(q.Size))
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}

	var resp CategoryResponse
	if err := c.get(ctx, categoryPath, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegionCode resolves a coordinate to its candidate administrative regions.
func (c *Client) RegionCode(ctx context.Context, lon, lat float64) (*RegionResponse, error) {
	params := url.Values{}
	params.Set("x", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("y", strconv.FormatFloat(lat, 'f', -1, 64))

	var resp RegionResponse
	if err := c.get(ctx, regionPath, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "KakaoAK "+c.restKey)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
		}
		return io.ReadAll(resp.Body)
	})
	if err != nil {
		return fmt.Errorf("kakao: %s: %w", path, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("kakao: decode %s: %w", path, err)
	}
	return nil
}
