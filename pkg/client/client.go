package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"usercenter/pkg/code"
)

const DefaultTimeout = 10 * time.Second

type option struct {
	timeout      time.Duration
	roundTripper http.RoundTripper
	headers      http.Header
	resp         Response
}

type Option func(*option)

// WithTimeout bounds every call, the request is cancelled once it elapses
func WithTimeout(timeout time.Duration) Option {
	return func(o *option) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

func WithRoundTripper(rt http.RoundTripper) Option {
	return func(o *option) {
		o.roundTripper = rt
	}
}

// WithResponse replaces the default json response handler
func WithResponse(resp Response) Option {
	return func(o *option) {
		o.resp = resp
	}
}

// WithHeader is sent with every request
func WithHeader(key, value string) Option {
	return func(o *option) {
		o.headers.Add(key, value)
	}
}

// New REST client for the backend at endpoint. Calls are never retried.
func New(endpoint string, opts ...Option) *Client {
	o := &option{
		timeout:      DefaultTimeout,
		roundTripper: CurlRoundTripper(http.DefaultTransport),
		headers:      http.Header{},
		resp:         ResponseHandler{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		timeout:  o.timeout,
		headers:  o.headers,
		client:   &http.Client{Transport: o.roundTripper},
		req:      OriginalRequest{},
		resp:     o.resp,
	}
}

type Client struct {
	endpoint string
	timeout  time.Duration
	headers  http.Header
	client   *http.Client
	req      Requester
	resp     Response
}

// Send issues one request and decodes a 2xx json body into result, result may be nil
func (c *Client) Send(ctx context.Context, method, path string, params url.Values,
	body interface{}, result interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	uri := c.endpoint + path
	if len(params) > 0 {
		uri += "?" + params.Encode()
	}
	req, err := c.req.Build(ctx, method, uri, body, c.headers)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return errors.WithStack(code.ErrRequestTimeout.WithResult(
				fmt.Sprintf("%s %s exceeded %s", method, uri, c.timeout)))
		}
		return errors.WithStack(code.ErrUpstream.WithResult(err.Error()))
	}
	defer resp.Body.Close()
	return c.resp.Parse(resp, result)
}

func (c *Client) Get(ctx context.Context, path string, params url.Values, result interface{}) error {
	return c.Send(ctx, http.MethodGet, path, params, nil, result)
}

func (c *Client) Post(ctx context.Context, path string, params url.Values, body, result interface{}) error {
	return c.Send(ctx, http.MethodPost, path, params, body, result)
}

func (c *Client) Put(ctx context.Context, path string, params url.Values, body, result interface{}) error {
	return c.Send(ctx, http.MethodPut, path, params, body, result)
}

func (c *Client) Delete(ctx context.Context, path string, params url.Values, result interface{}) error {
	return c.Send(ctx, http.MethodDelete, path, params, nil, result)
}
