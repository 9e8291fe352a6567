package mepost

import "context"

// CreateIPGroup creates a named outbound IP group.
func (c *Client) CreateIPGroup(ctx context.Context, req CreateIPGroupRequest) (*Response[IPGroup], error) {
	return c.apiClient.CreateIPGroup(ctx, req)
}

// GetIPGroup returns an IP group and its addresses by name.
func (c *Client) GetIPGroup(ctx context.Context, name string) (*Response[IPGroup], error) {
	return c.apiClient.GetIPGroup(ctx, name)
}

// ListIPGroups returns every IP group.
func (c *Client) ListIPGroups(ctx context.Context) (*Response[[]IPGroup], error) {
	return c.apiClient.ListIPGroups(ctx)
}

// CancelWarmUp stops an in-progress IP warmup.
func (c *Client) CancelWarmUp(ctx context.Context, req CancelWarmUpRequest) (*Response[CancelWarmUpResponse], error) {
	return c.apiClient.CancelWarmUp(ctx, req)
}

// GetIPInfo returns one outbound IP.
func (c *Client) GetIPInfo(ctx context.Context, ip string) (*Response[IPAddress], error) {
	return c.apiClient.GetIPInfo(ctx, ip)
}

// ListIPs returns every outbound IP.
func (c *Client) ListIPs(ctx context.Context) (*Response[[]IPAddress], error) {
	return c.apiClient.ListIPs(ctx)
}

// SetIPGroup moves an IP into a group.
func (c *Client) SetIPGroup(ctx context.Context, req SetIPGroupRequest) (*Response[SetIPGroupResponse], error) {
	return c.apiClient.SetIPGroup(ctx, req)
}

// StartWarmUp begins gradually raising send volume on a new IP. The warmup
// itself runs on Mepost's side.
func (c *Client) StartWarmUp(ctx context.Context, req StartWarmUpRequest) (*Response[StartWarmUpResponse], error) {
	return c.apiClient.StartWarmUp(ctx, req)
}
