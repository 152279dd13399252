package courseware

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	domainErrors "github.com/campusworks/journals/internal/domain/errors"
)

// Renderer exposes the LMS xblock rendering this service delegates to.
type Renderer interface {
	RenderBlock(ctx context.Context, username, usageKey string, checkIfEnrolled bool) ([]byte, error)
}

// HTTPClient implements Renderer via the LMS xblock endpoint.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates an HTTP courseware client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse lms url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("lms url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// RenderBlock fetches the rendered xblock HTML for the user. The response
// body is returned unchanged so the caller can pass it through verbatim.
func (c *HTTPClient) RenderBlock(ctx context.Context, username, usageKey string, checkIfEnrolled bool) ([]byte, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/xblock/", usageKey)
	query := endpoint.Query()
	query.Set("check_if_enrolled", strconv.FormatBool(checkIfEnrolled))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Requesting-User", username)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return io.ReadAll(resp.Body)
	case http.StatusNotFound:
		return nil, domainErrors.ErrNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("xblock render failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("xblock render error: %s", resp.Status)
	}
}
