package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/campusworks/journals/internal/domain/model"
)

// Client exposes the catalog service operations this service consumes.
type Client interface {
	JournalBundles(ctx context.Context, site string, bundleUUID uuid.UUID) ([]model.Bundle, error)
	RootURL() string
}

// HTTPClient implements Client via the discovery HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// bundlesResponse mirrors the paginated envelope the discovery API returns.
type bundlesResponse struct {
	Results []model.Bundle `json:"results"`
}

// NewHTTPClient creates an HTTP discovery client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse discovery url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("discovery url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// JournalBundles looks up the journal bundles matching the UUID for a site.
// An empty result set is returned as an empty slice, not an error.
func (c *HTTPClient) JournalBundles(ctx context.Context, site string, bundleUUID uuid.UUID) ([]model.Bundle, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/v1/journal_bundles") + "/"
	query := endpoint.Query()
	query.Set("uuid", bundleUUID.String())
	query.Set("site", site)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("discovery request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("discovery error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var data bundlesResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}
	return data.Results, nil
}

// RootURL reports the discovery API base for page links.
func (c *HTTPClient) RootURL() string {
	return c.baseURL.String()
}
