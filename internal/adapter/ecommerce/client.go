package ecommerce

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/campusworks/journals/internal/domain/model"
	pkgAuth "github.com/campusworks/journals/internal/pkg/auth"
)

// Client exposes the e-commerce operations the pricing flow consumes.
type Client interface {
	CalculateBasket(ctx context.Context, requester *model.User, skus []string, anonymous bool) (*model.BasketCalculation, error)
	CheckoutURL(skus ...string) string
}

// HTTPClient implements Client via the e-commerce HTTP API. Requests are
// authenticated as the requesting user with a token from the shared strategy.
type HTTPClient struct {
	apiURL     *url.URL
	publicURL  *url.URL
	tokens     pkgAuth.Strategy
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates an HTTP e-commerce client with default timeout.
func NewHTTPClient(apiURL, publicURL string, tokens pkgAuth.Strategy, logger *slog.Logger) (*HTTPClient, error) {
	api, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("parse ecommerce api url: %w", err)
	}
	public, err := url.Parse(publicURL)
	if err != nil {
		return nil, fmt.Errorf("parse ecommerce public url: %w", err)
	}
	if !api.IsAbs() || !public.IsAbs() {
		return nil, fmt.Errorf("ecommerce urls must be absolute")
	}
	return &HTTPClient{
		apiURL:    api,
		publicURL: public,
		tokens:    tokens,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CalculateBasket asks the e-commerce service to price a basket of SKUs.
// Totals are returned as the raw strings the API produced.
func (c *HTTPClient) CalculateBasket(ctx context.Context, requester *model.User, skus []string, anonymous bool) (*model.BasketCalculation, error) {
	endpoint := *c.apiURL
	endpoint.Path = path.Join(endpoint.Path, "/baskets/calculate") + "/"
	query := endpoint.Query()
	for _, sku := range skus {
		query.Add("sku", sku)
	}
	query.Set("is_anonymous", strconv.FormatBool(anonymous))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	token, err := c.tokens.IssueToken(requester.ID)
	if err != nil {
		return nil, fmt.Errorf("issue ecommerce token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("basket calculation failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("ecommerce error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var data model.BasketCalculation
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// CheckoutURL builds the public basket-add link for the given SKUs.
func (c *HTTPClient) CheckoutURL(skus ...string) string {
	endpoint := *c.publicURL
	endpoint.Path = path.Join(endpoint.Path, "/basket/add") + "/"
	query := endpoint.Query()
	for _, sku := range skus {
		query.Add("sku", sku)
	}
	endpoint.RawQuery = query.Encode()
	return endpoint.String()
}
