package httpreq

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/BielosX/wombat/pokedex/src/metrics"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const DefaultTimeout = 10 * time.Second

// Options are per-call request settings.
type Options struct {
	Headers map[string]string
	// Timeout overrides the client timeout for a single call when positive.
	Timeout time.Duration
}

type ClientOption func(*Client)

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.client.SetTimeout(timeout)
		}
	}
}

func WithTransport(transport http.RoundTripper) ClientOption {
	return func(c *Client) {
		if transport != nil {
			c.client.SetTransport(transport)
		}
	}
}

func WithMetrics(m *metrics.Metrics) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// Client is the shared transport. It holds only fixed configuration and is safe for concurrent use.
type Client struct {
	client  *resty.Client
	sugar   *zap.SugaredLogger
	metrics *metrics.Metrics
}

func NewClient(sugar *zap.SugaredLogger, opts ...ClientOption) *Client {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	c := &Client{
		// No cookie jar: a Set-Cookie from one response must not leak into later calls.
		client: resty.New().SetTimeout(DefaultTimeout).SetCookieJar(nil),
		sugar:  sugar,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Timeout() time.Duration {
	return c.client.GetClient().Timeout
}

// Get issues a GET and decodes the response body into T.
func Get[T any](ctx context.Context, c *Client, url string, opts *Options) (T, error) {
	var target T
	if err := c.do(ctx, http.MethodGet, url, nil, opts, &target); err != nil {
		var zero T
		return zero, err
	}
	return target, nil
}

// Post issues a POST with body encoded as JSON and decodes the response body into T.
func Post[T any](ctx context.Context, c *Client, url string, body any, opts *Options) (T, error) {
	var target T
	if err := c.do(ctx, http.MethodPost, url, body, opts, &target); err != nil {
		var zero T
		return zero, err
	}
	return target, nil
}

func (c *Client) do(ctx context.Context, method, url string, body any, opts *Options, target any) error {
	if opts != nil && opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req := c.client.R().SetContext(ctx)
	if opts != nil && len(opts.Headers) > 0 {
		req.SetHeaders(opts.Headers)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, url)
	if err != nil {
		c.fail(method, url, metrics.OutcomeTransport, start, err)
		return err
	}
	if !resp.IsSuccess() {
		statusErr := &StatusError{
			Method:     method,
			Url:        url,
			StatusCode: resp.StatusCode(),
			Body:       readBodySnippet(resp.Body()),
		}
		c.fail(method, url, metrics.OutcomeStatus, start, statusErr)
		return statusErr
	}
	if err := json.Unmarshal(resp.Body(), target); err != nil {
		decodeErr := &DecodeError{Url: url, Err: err}
		c.fail(method, url, metrics.OutcomeDecode, start, decodeErr)
		return decodeErr
	}
	c.metrics.ObserveRequest(method, metrics.OutcomeSuccess, time.Since(start))
	return nil
}

func (c *Client) fail(method, url, outcome string, start time.Time, err error) {
	c.metrics.ObserveRequest(method, outcome, time.Since(start))
	c.sugar.Errorw("HTTP "+method+" Error", "url", url, "error", err)
}
