package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mepost/mepost-go/internal/apierrors"
)

// ListGroups returns one page of email groups.
func (c *Client) ListGroups(ctx context.Context, params ListParams) (*Response[BaseResult[EmailGroupWithCounts]], error) {
	return Call[BaseResult[EmailGroupWithCounts]](ctx, c, http.MethodGet, "/groups"+params.query(), nil)
}

// CreateGroup creates an email group with initial recipients.
func (c *Client) CreateGroup(ctx context.Context, req CreateGroupRequest) (*Response[EmailGroup], error) {
	return Call[EmailGroup](ctx, c, http.MethodPost, "/groups", req)
}

// DeleteGroup deletes an email group. The payload shape is not documented
// by the API, so it is returned undecoded.
func (c *Client) DeleteGroup(ctx context.Context, groupID string) (*Response[json.RawMessage], error) {
	path := fmt.Sprintf("/groups/%s", url.PathEscape(groupID))
	resp, err := Call[json.RawMessage](ctx, c, http.MethodDelete, path, nil)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceGroup)
	}
	return resp, nil
}

// GetGroup returns a single email group.
func (c *Client) GetGroup(ctx context.Context, groupID string) (*Response[EmailGroupWithCounts], error) {
	path := fmt.Sprintf("/groups/%s", url.PathEscape(groupID))
	resp, err := Call[EmailGroupWithCounts](ctx, c, http.MethodGet, path, nil)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceGroup)
	}
	return resp, nil
}

// RenameGroup changes an email group's name.
func (c *Client) RenameGroup(ctx context.Context, groupID string, req RenameGroupRequest) (*Response[EmailGroup], error) {
	path := fmt.Sprintf("/groups/%s", url.PathEscape(groupID))
	resp, err := Call[EmailGroup](ctx, c, http.MethodPut, path, req)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceGroup)
	}
	return resp, nil
}

// ListSubscribers returns one page of a group's subscribers.
func (c *Client) ListSubscribers(ctx context.Context, groupID string, params ListParams) (*Response[BaseResult[Subscriber]], error) {
	path := fmt.Sprintf("/groups/%s/subscribers%s", url.PathEscape(groupID), params.query())
	resp, err := Call[BaseResult[Subscriber]](ctx, c, http.MethodGet, path, nil)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceGroup)
	}
	return resp, nil
}

// AddSubscriber adds recipients to a group.
func (c *Client) AddSubscriber(ctx context.Context, groupID string, req AddSubscriberRequest) (*Response[[]Subscriber], error) {
	path := fmt.Sprintf("/groups/%s/subscribers", url.PathEscape(groupID))
	resp, err := Call[[]Subscriber](ctx, c, http.MethodPost, path, req)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceGroup)
	}
	return resp, nil
}

// DeleteSubscriber removes addresses from a group. The payload is returned
// undecoded.
func (c *Client) DeleteSubscriber(ctx context.Context, groupID string, req DeleteSubscriberRequest) (*Response[json.RawMessage], error) {
	path := fmt.Sprintf("/groups/%s/subscribers", url.PathEscape(groupID))
	resp, err := Call[json.RawMessage](ctx, c, http.MethodDelete, path, req)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceSubscriber)
	}
	return resp, nil
}

// GetSubscriber returns one subscriber of a group by address.
func (c *Client) GetSubscriber(ctx context.Context, groupID, email string) (*Response[Subscriber], error) {
	path := fmt.Sprintf("/groups/%s/subscribers/%s", url.PathEscape(groupID), url.PathEscape(email))
	resp, err := Call[Subscriber](ctx, c, http.MethodGet, path, nil)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceSubscriber)
	}
	return resp, nil
}
