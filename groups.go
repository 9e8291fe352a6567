package mepost

import (
	"context"
	"encoding/json"
)

// ListGroups returns one page of email groups.
// Default paging is limit=10, page=1.
func (c *Client) ListGroups(ctx context.Context, opts ...ListOption) (*Response[BaseResult[EmailGroupWithCounts]], error) {
	return c.apiClient.ListGroups(ctx, listParams(opts))
}

// CreateGroup creates an email group with initial recipients.
func (c *Client) CreateGroup(ctx context.Context, req CreateGroupRequest) (*Response[EmailGroup], error) {
	return c.apiClient.CreateGroup(ctx, req)
}

// DeleteGroup deletes an email group.
func (c *Client) DeleteGroup(ctx context.Context, groupID string) (*Response[json.RawMessage], error) {
	return c.apiClient.DeleteGroup(ctx, groupID)
}

// GetGroup returns an email group with its subscriber counters.
func (c *Client) GetGroup(ctx context.Context, groupID string) (*Response[EmailGroupWithCounts], error) {
	return c.apiClient.GetGroup(ctx, groupID)
}

// RenameGroup changes an email group's name.
func (c *Client) RenameGroup(ctx context.Context, groupID string, req RenameGroupRequest) (*Response[EmailGroup], error) {
	return c.apiClient.RenameGroup(ctx, groupID, req)
}

// ListSubscribers returns one page of a group's subscribers.
// Default paging is limit=10, page=1.
func (c *Client) ListSubscribers(ctx context.Context, groupID string, opts ...ListOption) (*Response[BaseResult[Subscriber]], error) {
	return c.apiClient.ListSubscribers(ctx, groupID, listParams(opts))
}

// AddSubscriber adds recipients to a group.
func (c *Client) AddSubscriber(ctx context.Context, groupID string, req AddSubscriberRequest) (*Response[[]Subscriber], error) {
	return c.apiClient.AddSubscriber(ctx, groupID, req)
}

// DeleteSubscriber removes addresses from a group.
func (c *Client) DeleteSubscriber(ctx context.Context, groupID string, req DeleteSubscriberRequest) (*Response[json.RawMessage], error) {
	return c.apiClient.DeleteSubscriber(ctx, groupID, req)
}

// GetSubscriber returns a group's subscriber by email address.
func (c *Client) GetSubscriber(ctx context.Context, groupID, email string) (*Response[Subscriber], error) {
	return c.apiClient.GetSubscriber(ctx, groupID, email)
}
