package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mepost/mepost-go/internal/apierrors"
)

// IP group endpoints

// CreateIPGroup creates a named outbound IP group.
func (c *Client) CreateIPGroup(ctx context.Context, req CreateIPGroupRequest) (*Response[IPGroup], error) {
	return Call[IPGroup](ctx, c, http.MethodPost, "/outbound/ip-group/create", req)
}

// GetIPGroup returns an IP group by name.
func (c *Client) GetIPGroup(ctx context.Context, name string) (*Response[IPGroup], error) {
	path := fmt.Sprintf("/outbound/ip-group/info/%s", url.PathEscape(name))
	resp, err := Call[IPGroup](ctx, c, http.MethodGet, path, nil)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceIPGroup)
	}
	return resp, nil
}

// ListIPGroups returns every IP group.
func (c *Client) ListIPGroups(ctx context.Context) (*Response[[]IPGroup], error) {
	return Call[[]IPGroup](ctx, c, http.MethodGet, "/outbound/ip-group/list", nil)
}

// IP endpoints

// CancelWarmUp stops an in-progress warmup.
func (c *Client) CancelWarmUp(ctx context.Context, req CancelWarmUpRequest) (*Response[CancelWarmUpResponse], error) {
	resp, err := Call[CancelWarmUpResponse](ctx, c, http.MethodPost, "/outbound/ip/cancel-warmup", req)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceIP)
	}
	return resp, nil
}

// GetIPInfo returns one outbound IP.
func (c *Client) GetIPInfo(ctx context.Context, ip string) (*Response[IPAddress], error) {
	path := fmt.Sprintf("/outbound/ip/info/%s", url.PathEscape(ip))
	resp, err := Call[IPAddress](ctx, c, http.MethodGet, path, nil)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceIP)
	}
	return resp, nil
}

// ListIPs returns every outbound IP.
func (c *Client) ListIPs(ctx context.Context) (*Response[[]IPAddress], error) {
	return Call[[]IPAddress](ctx, c, http.MethodGet, "/outbound/ip/list", nil)
}

// SetIPGroup moves an IP into a group.
func (c *Client) SetIPGroup(ctx context.Context, req SetIPGroupRequest) (*Response[SetIPGroupResponse], error) {
	resp, err := Call[SetIPGroupResponse](ctx, c, http.MethodPost, "/outbound/ip/set-ip-group", req)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceIP)
	}
	return resp, nil
}

// StartWarmUp begins the warmup schedule for a new IP.
func (c *Client) StartWarmUp(ctx context.Context, req StartWarmUpRequest) (*Response[StartWarmUpResponse], error) {
	resp, err := Call[StartWarmUpResponse](ctx, c, http.MethodPost, "/outbound/ip/start-warmup", req)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceIP)
	}
	return resp, nil
}
