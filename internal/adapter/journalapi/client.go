package journalapi

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

	"github.com/campusworks/journals/internal/domain/model"
)

// Client exposes the journals service operations this service consumes.
type Client interface {
	Access(ctx context.Context, site, username, blockID string) ([]model.JournalAccess, error)
	RootURL() string
}

// HTTPClient implements Client via the journals HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type accessResponse struct {
	Results []model.JournalAccess `json:"results"`
}

// NewHTTPClient creates an HTTP journals client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse journals url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("journals url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Access fetches the journal access records a user holds for a content block.
func (c *HTTPClient) Access(ctx context.Context, site, username, blockID string) ([]model.JournalAccess, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/v1/journalaccess") + "/"
	query := endpoint.Query()
	query.Set("user", username)
	query.Set("block_id", blockID)
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
		c.logger.Error("journal access request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("journal access error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var data accessResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}
	return data.Results, nil
}

// RootURL reports the journals site base for page links.
func (c *HTTPClient) RootURL() string {
	return c.baseURL.String()
}
