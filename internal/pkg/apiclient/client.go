// Package apiclient is the HTTP client side of the listing API. It exposes
// the same data-access contract the web UI consumes, one ResourceClient per
// collection.
package apiclient

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"nearbysos/internal/core/domain"
	"nearbysos/internal/core/service/directory"

	"github.com/go-resty/resty/v2"
)

// APIError carries the server's enveloped failure back to the caller with
// the message intact, so the UI can surface it verbatim.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []directory.FieldError
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	http   *resty.Client
	prefix string
}

// New builds a client against baseURL, with API routes mounted under prefix
// (e.g. "/api/v1").
func New(baseURL, prefix string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:   httpClient,
		prefix: prefix,
	}
}

// Resource scopes the client to one collection, e.g. "ambulances".
func (c *Client) Resource(name string) *ResourceClient {
	return &ResourceClient{
		client: c,
		name:   name,
	}
}

type ResourceClient struct {
	client *Client
	name   string
}

// envelopes mirrored from the server side

type pagedEnvelope struct {
	Success bool                    `json:"success"`
	Data    directory.PagedListings `json:"data"`
}

type listingEnvelope struct {
	Success bool           `json:"success"`
	Data    domain.Listing `json:"data"`
}

type countEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Count int `json:"count"`
	} `json:"data"`
}

type errorEnvelope struct {
	Success    bool                   `json:"success"`
	Error      string                 `json:"error"`
	Message    string                 `json:"message"`
	StatusCode int                    `json:"statusCode"`
	Errors     []directory.FieldError `json:"errors,omitempty"`
}

func (rc *ResourceClient) path(suffix string) string {
	return rc.client.prefix + "/" + rc.name + suffix
}

func (rc *ResourceClient) List(ctx context.Context, page, limit int, search string) (directory.PagedListings, error) {
	var out pagedEnvelope

	req := rc.client.http.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&out).
		SetError(&errorEnvelope{})

	if search != "" {
		req.SetQueryParam("search", search)
	}

	resp, err := req.Get(rc.path(""))
	if err != nil {
		return directory.PagedListings{}, fmt.Errorf("list %s: %w", rc.name, err)
	}
	if resp.IsError() {
		return directory.PagedListings{}, asAPIError(resp)
	}

	return out.Data, nil
}

func (rc *ResourceClient) Count(ctx context.Context) (int, error) {
	var out countEnvelope

	resp, err := rc.client.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errorEnvelope{}).
		Get(rc.path("/count"))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", rc.name, err)
	}
	if resp.IsError() {
		return 0, asAPIError(resp)
	}

	return out.Data.Count, nil
}

func (rc *ResourceClient) Get(ctx context.Context, id string) (domain.Listing, error) {
	var out listingEnvelope

	resp, err := rc.client.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errorEnvelope{}).
		Get(rc.path("/" + id))
	if err != nil {
		return domain.Listing{}, fmt.Errorf("get %s/%s: %w", rc.name, id, err)
	}
	if resp.IsError() {
		return domain.Listing{}, asAPIError(resp)
	}

	return out.Data, nil
}

func (rc *ResourceClient) Create(ctx context.Context, input domain.NewListing) (domain.Listing, error) {
	var out listingEnvelope

	resp, err := rc.client.http.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&out).
		SetError(&errorEnvelope{}).
		Post(rc.path(""))
	if err != nil {
		return domain.Listing{}, fmt.Errorf("create %s: %w", rc.name, err)
	}
	if resp.IsError() {
		return domain.Listing{}, asAPIError(resp)
	}

	return out.Data, nil
}

func (rc *ResourceClient) Update(ctx context.Context, id string, patch domain.ListingPatch) (domain.Listing, error) {
	var out listingEnvelope

	resp, err := rc.client.http.R().
		SetContext(ctx).
		SetBody(patch).
		SetResult(&out).
		SetError(&errorEnvelope{}).
		Put(rc.path("/" + id))
	if err != nil {
		return domain.Listing{}, fmt.Errorf("update %s/%s: %w", rc.name, id, err)
	}
	if resp.IsError() {
		return domain.Listing{}, asAPIError(resp)
	}

	return out.Data, nil
}

func (rc *ResourceClient) Delete(ctx context.Context, id string) error {
	resp, err := rc.client.http.R().
		SetContext(ctx).
		SetError(&errorEnvelope{}).
		Delete(rc.path("/" + id))
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", rc.name, id, err)
	}
	if resp.IsError() {
		return asAPIError(resp)
	}

	// success is a bare 204, nothing to decode
	return nil
}

func asAPIError(resp *resty.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode()),
	}

	if env, ok := resp.Error().(*errorEnvelope); ok && env.Message != "" {
		apiErr.Message = env.Message
		apiErr.Fields = env.Errors
	}

	return apiErr
}
