package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	mangoPayAPIVersion = "v2.01"
	mangoPayPageSize   = 100
	// mangoPayMaxPages bounds list calls; 100 pages of 100 is far past what a
	// single billable owns.
	mangoPayMaxPages = 100
)

var (
	ErrMissingMangoPayCredentials = errors.New("missing MANGOPAY_ID or MANGOPAY_KEY")
	ErrMangoPayNotConfigured      = errors.New("mangopay client not configured")
	ErrListTruncated              = errors.New("mangopay list exceeds page limit")
)

// APIError is a non-2xx MangoPay answer.
//
// MangoPay bodies look like:
//
//	{"Message":"One or several required parameters are missing or incorrect.",
//	 "Type":"param_error","Id":"...","errors":{"Email":"The Email field is required."}}
type APIError struct {
	StatusCode int               `json:"-"`
	ID         string            `json:"Id"`
	Type       string            `json:"Type"`
	Message    string            `json:"Message"`
	Errors     map[string]string `json:"errors"`
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mangopay: status=%d", e.StatusCode)
	if e.Type != "" {
		fmt.Fprintf(&b, " type=%s", e.Type)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, " message=%q", e.Message)
	}
	for field, msg := range e.Errors {
		fmt.Fprintf(&b, " %s=%q", field, msg)
	}
	return b.String()
}

// RequestObserver receives the duration of every MangoPay call.
type RequestObserver interface {
	ObserveProviderRequest(method, status string, start time.Time)
}

type MangoPayConfig struct {
	ClientID string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
}

// MangoPayClient talks to the MangoPay REST API (v2.01). Authentication is
// OAuth2 client credentials; the token is cached and refreshed by the
// oauth2 transport.

type MangoPayClient struct {
	http     *http.Client
	baseURL  string
	clientID string
	maxPages int
	observer RequestObserver
}

type MangoPayOption func(*MangoPayClient)

// WithRequestObserver reports request latencies, typically to Prometheus.
func WithRequestObserver(o RequestObserver) MangoPayOption {
	return func(c *MangoPayClient) {
		c.observer = o
	}
}

func NewMangoPayClient(cfg MangoPayConfig, opts ...MangoPayOption) (*MangoPayClient, error) {
	if cfg.ClientID == "" || cfg.APIKey == "" {
		log.Printf("[link][mangopay] missing MANGOPAY_ID/MANGOPAY_KEY")
		return nil, ErrMissingMangoPayCredentials
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	base := strings.TrimRight(cfg.BaseURL, "/")

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.APIKey,
		TokenURL:     base + "/" + mangoPayAPIVersion + "/oauth/token",
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	// Token requests use the same timeout as API calls.
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: cfg.Timeout})
	httpClient := cc.Client(ctx)
	httpClient.Timeout = cfg.Timeout

	c := &MangoPayClient{
		http:     httpClient,
		baseURL:  base,
		clientID: cfg.ClientID,
		maxPages: mangoPayMaxPages,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	log.Printf("[link][mangopay] client initialized base=%s client_id=%s", base, cfg.ClientID)
	return c, nil
}

// path builds an API path under the client id: path("users", id, "wallets").
func (c *MangoPayClient) path(segments ...string) string {
	escaped := make([]string, 0, len(segments)+2)
	escaped = append(escaped, mangoPayAPIVersion, url.PathEscape(c.clientID))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	return "/" + strings.Join(escaped, "/")
}

// do sends body as JSON and decodes a 2xx answer into out (when non-nil).
func (c *MangoPayClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c == nil || c.http == nil {
		return ErrMangoPayNotConfigured
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode mangopay request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(method, "error", start)
		log.Printf("[link][mangopay] request failed method=%s path=%s err=%v", method, path, err)
		return err
	}
	defer resp.Body.Close()
	c.observe(method, strconv.Itoa(resp.StatusCode), start)

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read mangopay response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if len(payload) > 0 && json.Unmarshal(payload, apiErr) != nil {
			apiErr.Message = strings.TrimSpace(string(payload))
		}
		log.Printf("[link][mangopay] api error method=%s path=%s status=%d type=%s", method, path, resp.StatusCode, apiErr.Type)
		return apiErr
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode mangopay response: %w", err)
	}
	return nil
}

func (c *MangoPayClient) observe(method, status string, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveProviderRequest(method, status, start)
	}
}

// list walks every page of a collection endpoint. A collection that still
// has a full page after maxPages fails with ErrListTruncated.
func list[T any](ctx context.Context, c *MangoPayClient, path string, filter url.Values) ([]T, error) {
	var all []T
	for page := 1; page <= c.maxPages; page++ {
		q := url.Values{}
		for k, v := range filter {
			q[k] = v
		}
		q.Set("page", strconv.Itoa(page))
		q.Set("per_page", strconv.Itoa(mangoPayPageSize))

		var batch []T
		if err := c.do(ctx, http.MethodGet, path, q, nil, &batch); err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < mangoPayPageSize {
			return all, nil
		}
	}
	log.Printf("[link][mangopay] list truncated path=%s pages=%d items=%d", path, c.maxPages, len(all))
	return nil, fmt.Errorf("%w: %s", ErrListTruncated, path)
}
