package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	v1 "github.com/kaplat/book-server/api/v1"
	"github.com/kaplat/book-server/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultMaxTries = 3

// APIError is returned for any non 2xx answer. Message is the envelope error
// message, or the body text for plain text endpoints.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	maxTries   uint
	newBackOff func() backoff.BackOff
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithMaxTries bounds the attempts of one call, including the first one.
func WithMaxTries(n uint) Option {
	return func(c *Client) { c.maxTries = n }
}

func WithBackOff(fn func() backoff.BackOff) Option {
	return func(c *Client) { c.newBackOff = fn }
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse server url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("server url %q must have a scheme and a host", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		maxTries:   defaultMaxTries,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Health calls GET /books/health and returns the text answer.
func (c *Client) Health(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/books/health", nil, nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetLogLevel calls GET /logs/level.
func (c *Client) GetLogLevel(ctx context.Context, loggerName string) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/logs/level", url.Values{"logger-name": {loggerName}}, nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// SetLogLevel calls PUT /logs/level and returns the level now in effect.
func (c *Client) SetLogLevel(ctx context.Context, loggerName, level string) (string, error) {
	query := url.Values{"logger-name": {loggerName}, "logger-level": {level}}
	body, err := c.do(ctx, http.MethodPut, "/logs/level", query, nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) CreateBook(ctx context.Context, book v1.NewBook) (int, error) {
	body, err := c.do(ctx, http.MethodPost, "/book", nil, book)
	if err != nil {
		return 0, err
	}
	return decodeResult[int](body)
}

func (c *Client) GetBook(ctx context.Context, id int) (v1.Book, error) {
	body, err := c.do(ctx, http.MethodGet, "/book", url.Values{"id": {strconv.Itoa(id)}}, nil)
	if err != nil {
		return v1.Book{}, err
	}
	return decodeResult[v1.Book](body)
}

func (c *Client) CountBooks(ctx context.Context, f models.BookFilter) (int, error) {
	body, err := c.do(ctx, http.MethodGet, "/books/total", filterQuery(f), nil)
	if err != nil {
		return 0, err
	}
	return decodeResult[int](body)
}

func (c *Client) ListBooks(ctx context.Context, f models.BookFilter) ([]v1.Book, error) {
	body, err := c.do(ctx, http.MethodGet, "/books", filterQuery(f), nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[[]v1.Book](body)
}

// UpdatePrice returns the previous price.
func (c *Client) UpdatePrice(ctx context.Context, id, price int) (int, error) {
	query := url.Values{"id": {strconv.Itoa(id)}, "price": {strconv.Itoa(price)}}
	body, err := c.do(ctx, http.MethodPut, "/book", query, nil)
	if err != nil {
		return 0, err
	}
	return decodeResult[int](body)
}

// DeleteBook returns the number of books left.
func (c *Client) DeleteBook(ctx context.Context, id int) (int, error) {
	body, err := c.do(ctx, http.MethodDelete, "/book", url.Values{"id": {strconv.Itoa(id)}}, nil)
	if err != nil {
		return 0, err
	}
	return decodeResult[int](body)
}

func filterQuery(f models.BookFilter) url.Values {
	q := url.Values{}
	if f.Author != nil {
		q.Set("author", *f.Author)
	}
	setInt := func(key string, v *int) {
		if v != nil {
			q.Set(key, strconv.Itoa(*v))
		}
	}
	setInt("price-bigger-than", f.PriceBiggerThan)
	setInt("price-less-than", f.PriceLessThan)
	setInt("year-bigger-than", f.YearBiggerThan)
	setInt("year-less-than", f.YearLessThan)
	if f.Genres != nil {
		q.Set("genres", *f.Genres)
	}
	return q
}

// do sends the request. GET requests are retried on connection failures and
// 5xx answers. Other methods are retried only when the connection could not
// be established, since the server may already have applied them.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var data []byte
	if payload != nil {
		var err error
		if data, err = json.Marshal(payload); err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	retryable := method == http.MethodGet || method == http.MethodHead

	attempt := 0
	operation := func() ([]byte, error) {
		attempt++
		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(data))
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			zap.S().Named("client").Debugw("request failed", "method", method, "url", target, "attempt", attempt, "error", err)
			if !retryable && !isDialError(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		switch {
		case resp.StatusCode >= http.StatusInternalServerError:
			zap.S().Named("client").Debugw("server error", "method", method, "url", target, "attempt", attempt, "status", resp.StatusCode)
			if !retryable {
				return nil, backoff.Permanent(newAPIError(resp.StatusCode, body))
			}
			return nil, newAPIError(resp.StatusCode, body)
		case resp.StatusCode >= http.StatusBadRequest:
			return nil, backoff.Permanent(newAPIError(resp.StatusCode, body))
		}
		return body, nil
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(c.maxTries),
	)
}

// isDialError reports whether err happened before the request reached the server.
func isDialError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

func newAPIError(status int, body []byte) *APIError {
	var env v1.Envelope[any]
	if err := json.Unmarshal(body, &env); err == nil && env.ErrorMessage != "" {
		return &APIError{StatusCode: status, Message: env.ErrorMessage}
	}
	return &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}
}

func decodeResult[T any](body []byte) (T, error) {
	var zero T
	var env v1.Envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return zero, fmt.Errorf("failed to decode response: %w", err)
	}
	if env.ErrorMessage != "" {
		return zero, &APIError{StatusCode: http.StatusOK, Message: env.ErrorMessage}
	}
	if env.Result == nil {
		return zero, fmt.Errorf("response has no result")
	}
	return *env.Result, nil
}
