package mepost

import "context"

// AddDomain registers a sending domain and returns the DKIM, DMARC and SPF
// records to publish.
func (c *Client) AddDomain(ctx context.Context, req AddDomainRequest) (*Response[AddDomainResponse], error) {
	return c.apiClient.AddDomain(ctx, req)
}

// ListDomains returns the company's sending domains.
func (c *Client) ListDomains(ctx context.Context) (*Response[BaseResult[CompanyDomain]], error) {
	return c.apiClient.ListDomains(ctx)
}

// RemoveDomain removes a sending domain.
func (c *Client) RemoveDomain(ctx context.Context, req RemoveDomainRequest) (*Response[RemoveDomainResponse], error) {
	return c.apiClient.RemoveDomain(ctx, req)
}
