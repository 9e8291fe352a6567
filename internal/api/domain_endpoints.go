package api

import (
	"context"
	"net/http"

	"github.com/mepost/mepost-go/internal/apierrors"
)

// AddDomain registers a sending domain.
func (c *Client) AddDomain(ctx context.Context, req AddDomainRequest) (*Response[AddDomainResponse], error) {
	resp, err := Call[AddDomainResponse](ctx, c, http.MethodPost, "/company/domain/add", req)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceDomain)
	}
	return resp, nil
}

// ListDomains returns the company's sending domains.
func (c *Client) ListDomains(ctx context.Context) (*Response[BaseResult[CompanyDomain]], error) {
	return Call[BaseResult[CompanyDomain]](ctx, c, http.MethodGet, "/company/domain/list", nil)
}

// RemoveDomain removes a sending domain.
func (c *Client) RemoveDomain(ctx context.Context, req RemoveDomainRequest) (*Response[RemoveDomainResponse], error) {
	resp, err := Call[RemoveDomainResponse](ctx, c, http.MethodDelete, "/company/domain/remove", req)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceDomain)
	}
	return resp, nil
}
