package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/ifpa-client/internal/constants"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// Client is the IFPA transport. Each Request performs one HTTP exchange
// (plus opt-in retries) and returns the JSON body or an *ifpa.APIError.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *retryablehttp.Client
	userAgent  string
	timeout    time.Duration
	logger     ifpa.Logger
	debug      bool
	validate   bool
	closeOnce  sync.Once
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger ifpa.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the client identifier header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds each exchange, retries included.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithValidation toggles local parameter validation before sending.
func WithValidation(validate bool) Option {
	return func(c *Client) {
		c.validate = validate
	}
}

// WithHTTPClient replaces the pooled *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// WithRetryConfig opts into retryablehttp backoff for 429, 5xx and
// connection errors.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// NewClient creates a transport for baseURL authenticated with apiKey.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = cleanhttp.DefaultPooledClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    ifpa.NormalizeBaseURL(baseURL),
		apiKey:     apiKey,
		httpClient: retryClient,
		userAgent:  ifpa.DefaultUserAgent,
		timeout:    ifpa.DefaultTimeout,
		logger:     ifpa.NopLogger{},
		validate:   true,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient.RetryMax > 0 {
		client.httpClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request implements ifpa.Requester.
func (c *Client) Request(ctx context.Context, req *ifpa.Request) (json.RawMessage, error) {
	path := req.NormalizedPath()
	requestURL := c.baseURL + path

	if c.validate && req.Schema != nil {
		err := req.Schema.Validate(req.Params)
		if err != nil {
			return nil, err
		}
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := c.newRequest(reqCtx, method, requestURL, req)
	if err != nil {
		return nil, &ifpa.APIError{
			Message:       fmt.Sprintf("building request: %v", err),
			RequestURL:    requestURL,
			RequestParams: requestParams(req.Params),
			Err:           err,
		}
	}

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": method,
			"url":    requestURL,
			"params": req.Params,
		})
	}

	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.exchangeError(ctx, err, requestURL, req.Params)
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.exchangeError(ctx, err, requestURL, req.Params)
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   resp.StatusCode,
			"url":      requestURL,
			"duration": time.Since(start).String(),
			"bytes":    len(body),
		})
	}

	return Classify(resp.StatusCode, body, requestURL, req.Params)
}

// RequestAsync runs Request on its own goroutine.
func (c *Client) RequestAsync(ctx context.Context, req *ifpa.Request) *ifpa.Future[json.RawMessage] {
	return ifpa.Go(ctx, func(ctx context.Context) (json.RawMessage, error) {
		return c.Request(ctx, req)
	})
}

// Close releases pooled connections. It may be called more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.httpClient.HTTPClient.CloseIdleConnections()
	})

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, requestURL string, req *ifpa.Request) (*retryablehttp.Request, error) {
	fullURL := requestURL
	if len(req.Params) > 0 {
		fullURL += "?" + req.Params.Values().Encode()
	}

	var body io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		body = bytes.NewReader(data)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set(constants.HeaderAPIKey, c.apiKey)
	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", constants.ContentTypeJSON)
	}

	return httpReq, nil
}

// exchangeError maps a failed exchange. Cancellation of the caller's context
// is returned as a context error rather than an APIError.
func (c *Client) exchangeError(ctx context.Context, err error, requestURL string, params ifpa.Params) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("request to %s: %w", requestURL, ctxErr)
	}

	var message string

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		message = fmt.Sprintf("request timed out after %s", c.timeout)
	} else {
		message = fmt.Sprintf("request failed: %v", err)
	}

	if c.debug {
		c.logger.Error("HTTP Request Failed", map[string]interface{}{
			"url":   requestURL,
			"error": err.Error(),
		})
	}

	return &ifpa.APIError{
		Message:       message,
		RequestURL:    requestURL,
		RequestParams: requestParams(params),
		Err:           err,
	}
}

// leveledLogger routes retryablehttp logging to an ifpa.Logger.
type leveledLogger struct {
	logger ifpa.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fields(keysAndValues))
}

func fields(keysAndValues []interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		out[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return out
}

var _ ifpa.Requester = (*Client)(nil)
