// Package kakaomap resolves WCONGNAMUL positions to Korean administrative
// regions using the public Kakao Map area address endpoint.
package kakaomap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hanbit-labs/korea-sensor-etl/internal/domain"
)

// Client implements domain.RegionResolver against the Kakao Map web API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a Kakao Map region client.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://map.kakao.com",
		logger:  logger,
	}
}

// ResolveRegion looks up the administrative region containing the given
// WCONGNAMUL position. An empty RegionInfo with a nil error means the
// position resolved to no known region.
func (c *Client) ResolveRegion(ctx context.Context, x, y float64) (domain.RegionInfo, error) {
	params := url.Values{
		"output":            {"JSON"},
		"inputCoordSystem":  {"WCONGNAMUL"},
		"outputCoordSystem": {"WCONGNAMUL"},
		"x":                 {strconv.FormatFloat(x, 'f', -1, 64)},
		"y":                 {strconv.FormatFloat(y, 'f', -1, 64)},
	}
	fullURL := c.baseURL + "/etc/areaAddressInfo.json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.RegionInfo{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.RegionInfo{}, fmt.Errorf("area address request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.RegionInfo{}, fmt.Errorf("kakao map API error: status %d: %s", resp.StatusCode, body)
	}

	var kakaoResp areaAddressResponse
	if err := json.NewDecoder(resp.Body).Decode(&kakaoResp); err != nil {
		return domain.RegionInfo{}, fmt.Errorf("decode response: %w", err)
	}

	return toRegionInfo(kakaoResp), nil
}

// toRegionInfo flattens the area address response. The "old" block carries
// the land-lot address name like "서울특별시 강남구 역삼동"; the first two
// space-separated segments are the province and district levels.
func toRegionInfo(resp areaAddressResponse) domain.RegionInfo {
	if resp.Old == nil || resp.Old.Name == "" {
		return domain.RegionInfo{}
	}

	info := domain.RegionInfo{
		Code: resp.Region,
		Name: resp.Old.Name,
	}
	parts := strings.Fields(resp.Old.Name)
	if len(parts) > 0 {
		info.Sido = parts[0]
	}
	if len(parts) > 1 {
		info.Sigungu = parts[1]
	}
	return info
}

// Kakao Map API response types.

type areaAddressResponse struct {
	Old    *addressBlock `json:"old"`
	Region string        `json:"region"`
}

type addressBlock struct {
	Name string `json:"name"`
}
