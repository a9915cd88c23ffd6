package kakaomap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func testClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestClient_ResolveRegion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/etc/areaAddressInfo.json", r.URL.Path)
		assert.Equal(t, "JSON", r.URL.Query().Get("output"))
		assert.Equal(t, "WCONGNAMUL", r.URL.Query().Get("inputCoordSystem"))
		assert.Equal(t, "WCONGNAMUL", r.URL.Query().Get("outputCoordSystem"))
		assert.Equal(t, "506190", r.URL.Query().Get("x"))
		assert.Equal(t, "1112080", r.URL.Query().Get("y"))

		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"old":{"name":"서울특별시 강남구 역삼동"},"region":"1168010100"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	region, err := c.ResolveRegion(context.Background(), 506190, 1112080)
	require.NoError(t, err)

	assert.Equal(t, "서울특별시 강남구 역삼동", region.Name)
	assert.Equal(t, "1168010100", region.Code)
	assert.Equal(t, "서울특별시", region.Sido)
	assert.Equal(t, "강남구", region.Sigungu)
}

func TestClient_ResolveRegion_NoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"old":null}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	region, err := c.ResolveRegion(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Empty(t, region.Name)
	assert.Empty(t, region.Sido)
}

func TestClient_ResolveRegion_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`rate limited`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.ResolveRegion(context.Background(), 506190, 1112080)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_ResolveRegion_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := &Client{
		httpClient: &http.Client{Timeout: 50 * time.Millisecond},
		baseURL:    srv.URL,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	_, err := c.ResolveRegion(context.Background(), 506190, 1112080)
	require.Error(t, err)
}
