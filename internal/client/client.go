// Package client calls a running server's customer filter API.
package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/aanand-mishra/customer-search/internal/render"
	"github.com/aanand-mishra/customer-search/internal/types"
	"github.com/aanand-mishra/customer-search/internal/utils/response"
)

const customersPath = "/api/customers"

// ErrRequestFailed is returned for non-2xx responses.
var ErrRequestFailed = errors.New("customer search request failed")

// Client is a thin resty wrapper around the filter API of one server.
type Client struct {
	http *resty.Client
}

// New returns a client for the server at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Client{http: c}
}

// SearchCustomers sends the collected form values as query parameters.
// Empty values are dropped.
func (c *Client) SearchCustomers(ctx context.Context, values map[string]string) ([]types.Customer, error) {
	var (
		customers []types.Customer
		failure   response.ErrorResponse
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(render.Query(values)).
		SetResult(&customers).
		SetError(&failure).
		Get(customersPath)
	if err != nil {
		return nil, fmt.Errorf("client: GET %s: %w", customersPath, err)
	}

	if resp.IsError() {
		msg := failure.Error
		if msg == "" {
			msg = resp.Status()
		}
		return nil, fmt.Errorf("%w: %d %s", ErrRequestFailed, resp.StatusCode(), msg)
	}

	if customers == nil {
		customers = []types.Customer{}
	}
	return customers, nil
}
