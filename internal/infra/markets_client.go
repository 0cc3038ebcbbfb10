package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"coin_tracker/internal/domain"
)

const (
	// DefaultMarketsBaseURL is the public CoinGecko API root
	DefaultMarketsBaseURL = "https://api.coingecko.com/api/v3"

	marketsPath = "/coins/markets"

	// USD prices, market-cap descending, first page of 250, no sparkline.
	marketsQuery = "vs_currency=usd&order=market_cap_desc&per_page=250&page=1&sparkline=false"
)

// MarketsClient fetches the coin market snapshot from the CoinGecko markets endpoint
type MarketsClient struct {
	baseURL    string
	httpClient *http.Client
	metrics    *Metrics
}

// NewMarketsClient creates a new markets client
func NewMarketsClient(metrics *Metrics) *MarketsClient {
	if metrics == nil {
		metrics = GlobalMetrics
	}
	return &MarketsClient{
		baseURL: DefaultMarketsBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		metrics: metrics,
	}
}

// NewMarketsClientWithConfig creates a client with custom configuration
func NewMarketsClientWithConfig(metrics *Metrics, baseURL string, timeoutSec int) *MarketsClient {
	client := NewMarketsClient(metrics)
	if baseURL != "" {
		client.baseURL = strings.TrimRight(baseURL, "/")
	}
	if timeoutSec > 0 {
		client.httpClient.Timeout = time.Duration(timeoutSec) * time.Second
	}
	return client
}

// URL returns the full request URL
func (c *MarketsClient) URL() string {
	return c.baseURL + marketsPath + "?" + marketsQuery
}

// FetchMarkets issues a single GET for the markets list. There is no retry.
//
// A non-2xx status yields domain.ErrFetchFailed without reading the body.
// Transport failures are wrapped in *domain.NetworkError and undecodable
// bodies in *domain.PayloadError.
func (c *MarketsClient) FetchMarkets(ctx context.Context) (records []domain.MarketRecord, err error) {
	start := time.Now()
	defer func() {
		c.metrics.RecordFetch(time.Since(start), err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return nil, domain.NewNetworkError("fetch", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewNetworkError("fetch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("Markets endpoint returned non-2xx", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("status %d: %w", resp.StatusCode, domain.ErrFetchFailed)
	}

	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &domain.PayloadError{Err: err}
	}

	c.metrics.SetRecordsLoaded(len(records))
	return records, nil
}
