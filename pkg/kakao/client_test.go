package kakao

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rewriteRoundTripper struct{ base *url.URL }

func (r rewriteRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone the request to avoid mutating the original
	c := req.Clone(req.Context())
	c.URL.Scheme = r.base.Scheme
	c.URL.Host = r.base.Host
	c.Host = r.base.Host
	return http.DefaultTransport.RoundTrip(c)
}

func newTestClient(serverURL string) *Client {
	u, _ := url.Parse(serverURL)
	return NewClient("test-key",
		WithHTTPClient(&http.Client{Transport: rewriteRoundTripper{base: u}}),
		WithRate(0),
	)
}

func TestClient_SearchCategory(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(categoryPath, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "KakaoAK test-key", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "CE7", q.Get("category_group_code"))
		assert.Equal(t, "127.550000,37.750000,127.900000,38.030000", q.Get("rect"))
		assert.Equal(t, "15", q.Get("size"))
		assert.Equal(t, SortAccuracy, q.Get("sort"))

		resp := CategoryResponse{Meta: Meta{IsEnd: q.Get("page") == "2"}}
		resp.Documents = []Document{{ID: "p" + q.Get("page"), PlaceName: "카페", X: "127.73", Y: "37.88"}}
		_ = json.NewEncoder(w).Encode(resp)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv.URL)
	tests := []struct {
		name    string
		page    int
		wantID  string
		wantEnd bool
	}{
		{"first page has more", 1, "p1", false},
		{"second page is last", 2, "p2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.SearchCategory(context.Background(), CategoryQuery{
				Code: "CE7",
				Rect: "127.550000,37.750000,127.900000,38.030000",
				Page: tt.page,
				Size: 15,
				Sort: SortAccuracy,
			})
			require.NoError(t, err)
			require.Len(t, resp.Documents, 1)
			assert.Equal(t, tt.wantID, resp.Documents[0].ID)
			assert.Equal(t, tt.wantEnd, resp.Meta.IsEnd)
		})
	}
}

func TestClient_RegionCode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(regionPath, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "127.7354", r.URL.Query().Get("x"))
		assert.Equal(t, "37.8866", r.URL.Query().Get("y"))
		_, _ = w.Write([]byte(`{"meta":{"total_count":2},"documents":[
			{"region_type":"B","region_2depth_name":"춘천시","region_3depth_name":"옥천동"},
			{"region_type":"H","region_2depth_name":"춘천시","region_3depth_name":"소양동"}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := newTestClient(srv.URL).RegionCode(context.Background(), 127.7354, 37.8866)
	require.NoError(t, err)
	require.Len(t, resp.Documents, 2)
	assert.Equal(t, "H", resp.Documents[1].RegionType)
	assert.Equal(t, "소양동", resp.Documents[1].Region3DepthName)
}

func TestClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SearchCategory(context.Background(), CategoryQuery{Code: "CE7"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStatus), "got %v", err)
}

func TestClient_BreakerOpensOnTransportFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newTestClient(srv.URL)
	srv.Close() // every request now fails to connect

	var err error
	for i := 0; i < 6; i++ {
		_, err = client.RegionCode(context.Background(), 127.7, 37.8)
	}
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
}
