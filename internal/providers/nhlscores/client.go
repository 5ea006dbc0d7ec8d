package nhlscores

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/preston-bernstein/nhl-results-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-results-service/internal/providers"
)

// Config controls how the client reaches the NHL score API.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches scores from the NHL score API and maps them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchScores retrieves every game between startDate and endDate inclusive.
// It issues a single request; failures are returned as *providers.FetchError.
func (c *Client) FetchScores(ctx context.Context, startDate, endDate string) ([]games.Day, error) {
	req, err := c.buildRequest(ctx, startDate, endDate)
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, Err: crerr.Wrap(err, "build request")}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, Err: crerr.Wrap(err, "send request")}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, StatusCode: resp.StatusCode, Err: crerr.Wrap(err, "read response body")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &providers.FetchError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       abbreviateBody(raw),
		}
	}

	var payload []dayResponse
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, &providers.FetchError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Err:        crerr.Wrapf(err, "decode scores %s..%s", startDate, endDate),
		}
	}

	return mapDays(payload), nil
}

func (c *Client) buildRequest(ctx context.Context, startDate, endDate string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+scoresPath, nil)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}
