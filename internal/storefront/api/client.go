package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/storefront/pkg/logger"
)

// HTTPClient calls the storefront REST API
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a client for baseURL, e.g. http://localhost:3000
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// BaseURL returns the API root without a trailing slash
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	err := c.do(ctx, http.MethodGet, "/api/products", "", nil, &products)
	return products, err
}

func (c *HTTPClient) FeaturedProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	err := c.do(ctx, http.MethodGet, "/api/products/featured", "", nil, &products)
	return products, err
}

func (c *HTTPClient) Product(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, productPath(id), "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *HTTPClient) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	var products []Product
	err := c.do(ctx, http.MethodGet, "/api/products/search/"+url.PathEscape(query), "", nil, &products)
	return products, err
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/register", "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me verifies token and returns the user it belongs to
func (c *HTTPClient) Me(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, token string, req OrderRequest) (*OrderCreated, error) {
	var resp OrderCreated
	if err := c.do(ctx, http.MethodPost, "/api/orders", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Orders(ctx context.Context, token string) ([]OrderRow, error) {
	var rows []OrderRow
	err := c.do(ctx, http.MethodGet, "/api/orders", token, nil, &rows)
	return rows, err
}

func (c *HTTPClient) Reviews(ctx context.Context, productID uint) ([]Review, error) {
	var reviews []Review
	err := c.do(ctx, http.MethodGet, productPath(productID)+"/reviews", "", nil, &reviews)
	return reviews, err
}

func (c *HTTPClient) AddReview(ctx context.Context, token string, productID uint, rating int, comment string) (*ReviewCreated, error) {
	body := map[string]any{"rating": rating, "comment": comment}
	var resp ReviewCreated
	if err := c.do(ctx, http.MethodPost, productPath(productID)+"/reviews", token, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func productPath(id uint) string {
	return "/api/products/" + strconv.FormatUint(uint64(id), 10)
}

// do sends one request and decodes a 2xx JSON body into out.
// Non-2xx answers become *Error carrying the server's {"error": ...} text.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Message: err.Error(), Kind: ErrNetwork}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug(ctx).Err(err).Str("method", method).Str("path", path).Msg("Request failed")
		return &Error{Message: err.Error(), Kind: ErrNetwork}
	}
	defer resp.Body.Close()

	logger.Debug(ctx).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("API call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Status:  resp.StatusCode,
			Message: errorMessage(resp),
			Kind:    kindForStatus(resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Status: resp.StatusCode, Message: "malformed response: " + err.Error(), Kind: ErrNetwork}
	}
	return nil
}

func errorMessage(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		return body.Error
	}
	if text := strings.TrimSpace(string(raw)); text != "" && len(text) < 200 {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
