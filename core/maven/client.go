package maven

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/rs/dnscache"
	"go.uber.org/zap"
)

const maxDocumentSize = 32 << 20

// Client fetches documents from upstream repositories.
type Client struct {
	http       *http.Client
	userAgent  string
	timeout    time.Duration
	maxRetries uint64
	baseDelay  time.Duration
	logger     *zap.Logger

	mu       sync.RWMutex
	breakers map[string]*circuit.Breaker
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithLogger sets the logger used for retries and degraded fetches.
func WithLogger(l *zap.Logger) Option {
	return func(cl *Client) {
		cl.logger = l
	}
}

// NewClient creates a Client from configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}

	c := &Client{
		userAgent:  cfg.UserAgent,
		timeout:    timeout,
		maxRetries: uint64(retries),
		baseDelay:  time.Duration(cfg.RetryDelayMillis) * time.Millisecond,
		logger:     zap.NewNop(),
		breakers:   make(map[string]*circuit.Breaker),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = newCachingHTTPClient()
	}
	if c.baseDelay <= 0 {
		c.baseDelay = 500 * time.Millisecond
	}
	return c
}

func newCachingHTTPClient() *http.Client {
	resolver := &dnscache.Resolver{}
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			resolver.Refresh(true)
		}
	}()

	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				host, port, err := net.SplitHostPort(addr)
				if err != nil {
					return nil, err
				}
				ips, err := resolver.LookupHost(ctx, host)
				if err != nil {
					return nil, err
				}
				for _, ip := range ips {
					conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
					if err == nil {
						return conn, nil
					}
				}
				return nil, fmt.Errorf("failed to dial any resolved address of %s", host)
			},
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

// Fetch downloads a document, retrying transient failures.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	host := hostOf(rawURL)
	breaker := c.breaker(host)

	var (
		body     []byte
		notFound bool
	)
	err := breaker.Call(func() error {
		var err error
		body, err = c.fetchWithRetry(ctx, rawURL)
		if errors.Is(err, ErrNotFound) {
			// a missing document says nothing about the host's health
			notFound = true
			return nil
		}
		return err
	}, 0)
	if notFound {
		return nil, &FetchError{URL: rawURL, Err: ErrNotFound}
	}
	if errors.Is(err, circuit.ErrBreakerOpen) {
		return nil, &FetchError{URL: rawURL, Err: fmt.Errorf("circuit breaker open for %s: %w", host, ErrUpstreamDown)}
	}
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	return body, nil
}

func (c *Client) fetchWithRetry(ctx context.Context, rawURL string) ([]byte, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.baseDelay
	exp.MaxInterval = 10 * c.baseDelay
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, c.maxRetries), ctx)

	var body []byte
	op := func() error {
		var err error
		body, err = c.doFetch(ctx, rawURL)
		if err == nil {
			return nil
		}
		if retryable(err) {
			return err
		}
		return backoff.Permanent(err)
	}
	notify := func(err error, wait time.Duration) {
		c.logger.Debug("Retrying upstream fetch",
			zap.String("url", rawURL),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}

	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) doFetch(ctx context.Context, rawURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamDown, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
		if err != nil {
			return nil, fmt.Errorf("%w: reading body: %v", ErrUpstreamDown, err)
		}
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamDown, resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
}

// GetJSON downloads and decodes a JSON document into v.
func (c *Client) GetJSON(ctx context.Context, rawURL string, v any) error {
	body, err := c.Fetch(ctx, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &FetchError{URL: rawURL, Err: fmt.Errorf("decoding json: %w", err)}
	}
	return nil
}

func (c *Client) breaker(host string) *circuit.Breaker {
	c.mu.RLock()
	b, ok := c.breakers[host]
	c.mu.RUnlock()
	if ok {
		return b
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if b, ok := c.breakers[host]; ok {
		return b
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 30 * time.Second
	exp.MaxInterval = 5 * time.Minute
	exp.Multiplier = 2.0
	exp.Reset()

	b = circuit.NewBreakerWithOptions(&circuit.Options{
		BackOff:    exp,
		ShouldTrip: circuit.ThresholdTripFunc(5),
	})
	c.breakers[host] = b
	return b
}

// BreakerStates reports the breaker state per upstream host.
func (c *Client) BreakerStates() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	states := make(map[string]string, len(c.breakers))
	for host, b := range c.breakers {
		if b.Tripped() {
			states[host] = "open"
		} else {
			states[host] = "closed"
		}
	}
	return states
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		if len(rawURL) > 50 {
			return rawURL[:50]
		}
		return rawURL
	}
	return u.Host
}
