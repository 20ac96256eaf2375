package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/common"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Record is one raw entry from the telemetry channel. Field values arrive as
// strings or null no matter what the sensor measured; normalization happens
// downstream.
type Record struct {
	CreatedAt string  `json:"created_at"`
	EntryID   int     `json:"entry_id"`
	Field1    *string `json:"field1"`
	Field2    *string `json:"field2"`
}

var ErrBadStatus = errors.New("feed: unexpected status")

// Client fetches raw records from the channel endpoint. It performs no
// retries: a failed fetch surfaces to the caller and the next poll tries
// again. The breaker only short-circuits calls while the upstream keeps
// failing, and the limiter paces outbound requests to stay inside the
// channel provider's request quota.
type Client struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

func NewClient(httpClient *http.Client, url string, fetchRate rate.Limit, burst int) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "telemetry-feed",
		MaxRequests: 3,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		url:     url,
		client:  httpClient,
		limiter: rate.NewLimiter(fetchRate, burst),
		breaker: cb,
	}
}

// Fetch pulls the channel's currently available records, in upstream order.
func (c *Client) Fetch(ctx context.Context) ([]Record, error) {
	logger := common.GetLoggerWith(common.LoggerNameFeed)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	resp := result.(*http.Response)
	defer resp.Body.Close()

	var payload struct {
		Feeds []Record `json:"feeds"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	logger.Info("Fetched feed records", zap.Int("count", len(payload.Feeds)))
	return payload.Feeds, nil
}
