package mepost

import "context"

// GetMessageInfo returns opens, clicks and state of a scheduled message for
// one recipient.
func (c *Client) GetMessageInfo(ctx context.Context, scheduleID, email string) (*Response[GetMessageInfoResponse], error) {
	return c.apiClient.GetMessageInfo(ctx, scheduleID, email)
}

// CancelScheduledMessage cancels a message that has not been sent yet.
// Nothing stops a caller from cancelling an already delivered message; the
// API decides.
func (c *Client) CancelScheduledMessage(ctx context.Context, req CancelScheduledMessageRequest) (*Response[Schedule], error) {
	return c.apiClient.CancelScheduledMessage(ctx, req)
}

// SendMarketing sends a marketing message to plain addresses.
func (c *Client) SendMarketing(ctx context.Context, req SendMarketingRequest) (*Response[Schedule], error) {
	return c.apiClient.SendMarketing(ctx, req)
}

// SendMarketingByTemplate sends a marketing message rendered from a stored template.
func (c *Client) SendMarketingByTemplate(ctx context.Context, req SendByTemplateRequest) (*Response[Schedule], error) {
	return c.apiClient.SendMarketingByTemplate(ctx, req)
}

// GetScheduleInfo returns delivery statistics and tracked events for a schedule.
func (c *Client) GetScheduleInfo(ctx context.Context, scheduleID string) (*Response[GetScheduleInfoResponse], error) {
	return c.apiClient.GetScheduleInfo(ctx, scheduleID)
}

// SendTransactional sends a transactional message.
func (c *Client) SendTransactional(ctx context.Context, req SendTransactionalRequest) (*Response[Schedule], error) {
	return c.apiClient.SendTransactional(ctx, req)
}

// SendTransactionalByTemplate sends a transactional message rendered from a
// stored template.
func (c *Client) SendTransactionalByTemplate(ctx context.Context, req SendByTemplateRequest) (*Response[Schedule], error) {
	return c.apiClient.SendTransactionalByTemplate(ctx, req)
}
