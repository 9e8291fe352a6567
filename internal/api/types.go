package api

import "fmt"

// Response is the envelope wrapping every Mepost API payload.
type Response[T any] struct {
	Data  T      `json:"data"`
	Error string `json:"error,omitempty"`
}

// BaseResult is the payload of list endpoints.
type BaseResult[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// Default paging for list endpoints.
const (
	DefaultLimit = 10
	DefaultPage  = 1
)

// ListParams holds the paging query of list endpoints.
type ListParams struct {
	Limit int
	Page  int
}

// DefaultListParams returns limit=10, page=1.
func DefaultListParams() ListParams {
	return ListParams{Limit: DefaultLimit, Page: DefaultPage}
}

func (p ListParams) query() string {
	limit, page := p.Limit, p.Page
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page <= 0 {
		page = DefaultPage
	}
	return fmt.Sprintf("?limit=%d&page=%d", limit, page)
}

// Recipient is a message or group recipient.
type Recipient struct {
	Customization map[string]string `json:"customization,omitempty"`
	Email         string            `json:"email"`
	Name          string            `json:"name"`
	Type          string            `json:"type,omitempty"`
}

// CustomField is a name/value pair stored on a subscriber.
type CustomField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
