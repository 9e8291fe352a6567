package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mepost/mepost-go/internal/apierrors"
)

// GetMessageInfo returns the delivery state of a scheduled message for one
// recipient.
func (c *Client) GetMessageInfo(ctx context.Context, scheduleID, email string) (*Response[GetMessageInfoResponse], error) {
	path := fmt.Sprintf("/messages/%s/%s", url.PathEscape(scheduleID), url.PathEscape(email))
	resp, err := Call[GetMessageInfoResponse](ctx, c, http.MethodGet, path, nil)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceMessage)
	}
	return resp, nil
}

// CancelScheduledMessage cancels a message that has not been sent yet.
func (c *Client) CancelScheduledMessage(ctx context.Context, req CancelScheduledMessageRequest) (*Response[Schedule], error) {
	resp, err := Call[Schedule](ctx, c, http.MethodPost, "/messages/cancel-scheduled", req)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceMessage)
	}
	return resp, nil
}

// SendMarketing sends a marketing message.
func (c *Client) SendMarketing(ctx context.Context, req SendMarketingRequest) (*Response[Schedule], error) {
	return Call[Schedule](ctx, c, http.MethodPost, "/messages/marketing", req)
}

// SendMarketingByTemplate sends a marketing message rendered from a template.
func (c *Client) SendMarketingByTemplate(ctx context.Context, req SendByTemplateRequest) (*Response[Schedule], error) {
	return Call[Schedule](ctx, c, http.MethodPost, "/messages/marketing-by-template", req)
}

// GetScheduleInfo returns aggregate delivery statistics for a schedule.
func (c *Client) GetScheduleInfo(ctx context.Context, scheduleID string) (*Response[GetScheduleInfoResponse], error) {
	path := fmt.Sprintf("/messages/schedule/%s", url.PathEscape(scheduleID))
	resp, err := Call[GetScheduleInfoResponse](ctx, c, http.MethodGet, path, nil)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceMessage)
	}
	return resp, nil
}

// SendTransactional sends a transactional message.
func (c *Client) SendTransactional(ctx context.Context, req SendTransactionalRequest) (*Response[Schedule], error) {
	return Call[Schedule](ctx, c, http.MethodPost, "/messages/transactional", req)
}

// SendTransactionalByTemplate sends a transactional message rendered from a template.
func (c *Client) SendTransactionalByTemplate(ctx context.Context, req SendByTemplateRequest) (*Response[Schedule], error) {
	return Call[Schedule](ctx, c, http.MethodPost, "/messages/transactional-by-template", req)
}
