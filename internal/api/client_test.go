package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mepost/mepost-go/internal/apierrors"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New("")
	if !errors.Is(err, apierrors.ErrMissingAPIKey) {
		t.Errorf("New(\"\") error = %v, want ErrMissingAPIKey", err)
	}
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New("test-key", WithBaseURL(""))
	if err == nil {
		t.Error("expected error for empty base URL")
	}
}

func TestNew_DefaultValues(t *testing.T) {
	client, err := New("test-key")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", client.BaseURL(), DefaultBaseURL)
	}
	if client.httpClient == nil {
		t.Fatal("httpClient is nil")
	}
	if client.httpClient.Timeout != 0 {
		t.Errorf("timeout = %v, want none", client.httpClient.Timeout)
	}
	if client.userAgent != "" {
		t.Errorf("userAgent = %q, want empty", client.userAgent)
	}
}

func TestNew_WithOptions(t *testing.T) {
	hc := &http.Client{Timeout: 5 * time.Second}
	client, err := New("test-key",
		WithBaseURL("https://example.com/v1/"),
		WithHTTPClient(hc),
		WithUserAgent("mepost-test/1.0"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if client.BaseURL() != "https://example.com/v1" {
		t.Errorf("BaseURL() = %q, want trailing slash trimmed", client.BaseURL())
	}
	if client.httpClient != hc {
		t.Error("httpClient not set correctly")
	}
	if client.userAgent != "mepost-test/1.0" {
		t.Errorf("userAgent = %q", client.userAgent)
	}
}

func TestWithHTTPClient_NilIgnored(t *testing.T) {
	client, err := New("test-key", WithHTTPClient(nil))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.httpClient == nil {
		t.Error("nil http client replaced the default")
	}
}

func TestDo_SetsHeaders(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "secret-key" {
			t.Errorf("Authorization = %q, want raw key", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}
		if got := r.Header.Get("User-Agent"); got != "mepost-test" {
			t.Errorf("User-Agent = %q, want mepost-test", got)
		}
		w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client, _ := New("secret-key", WithBaseURL(server.URL), WithUserAgent("mepost-test"))
	if err := client.Do(context.Background(), http.MethodPost, "/groups", map[string]string{"name": "x"}, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestDo_NoBodyOmitsContentType(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "" {
			t.Errorf("Content-Type = %q, want empty", got)
		}
		body, _ := io.ReadAll(r.Body)
		if len(body) != 0 {
			t.Errorf("body = %q, want empty", body)
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client, _ := New("test-key", WithBaseURL(server.URL))
	if err := client.Do(context.Background(), http.MethodGet, "/outbound/ip/list", nil, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestDo_SendsExactlyOneRequest(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, _ := New("test-key", WithBaseURL(server.URL))
	err := client.Do(context.Background(), http.MethodGet, "/company/domain/list", nil, nil)
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("server saw %d requests, want 1", n)
	}
}

func TestDo_ErrorResponses(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantErr     error
	}{
		{"error field", http.StatusBadRequest, `{"error":"domain is required"}`, "domain is required", apierrors.ErrBadRequest},
		{"message field", http.StatusUnauthorized, `{"message":"invalid api key"}`, "invalid api key", apierrors.ErrUnauthorized},
		{"plain text", http.StatusForbidden, "forbidden\n", "forbidden", apierrors.ErrForbidden},
		{"not found", http.StatusNotFound, `{"error":"not found"}`, "not found", apierrors.ErrNotFound},
		{"rate limited", http.StatusTooManyRequests, `{"error":"slow down"}`, "slow down", apierrors.ErrRateLimited},
		{"server", http.StatusBadGateway, "", "", apierrors.ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, _ := New("test-key", WithBaseURL(server.URL))
			err := client.Do(context.Background(), http.MethodGet, "/groups", nil, nil)

			var apiErr *apierrors.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %T, want *APIError", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
			if string(apiErr.Body) != tt.body {
				t.Errorf("Body = %q, want %q", apiErr.Body, tt.body)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("errors.Is(%v) = false", tt.wantErr)
			}
		})
	}
}

func TestDo_NetworkError(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, _ := New("test-key", WithBaseURL(url))
	err := client.Do(context.Background(), http.MethodGet, "/groups", nil, nil)

	var netErr *apierrors.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %T (%v), want *NetworkError", err, err)
	}
	if netErr.Method != http.MethodGet {
		t.Errorf("Method = %q, want GET", netErr.Method)
	}
	if netErr.URL != url+"/groups" {
		t.Errorf("URL = %q, want %q", netErr.URL, url+"/groups")
	}
}

func TestDo_ContextCanceled(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client, _ := New("test-key", WithBaseURL(server.URL))
	err := client.Do(ctx, http.MethodGet, "/groups", nil, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestDo_DecodeError(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":`))
	}))
	defer server.Close()

	client, _ := New("test-key", WithBaseURL(server.URL))
	var out Response[EmailGroup]
	err := client.Do(context.Background(), http.MethodGet, "/groups/g1", nil, &out)

	var decErr *apierrors.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("error = %T, want *DecodeError", err)
	}
	if decErr.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", decErr.StatusCode)
	}
}

func TestDo_MarshalError(t *testing.T) {
	t.Parallel()
	client, _ := New("test-key", WithBaseURL("http://127.0.0.1:0"))
	err := client.Do(context.Background(), http.MethodPost, "/groups", map[string]any{"bad": make(chan int)}, nil)
	if err == nil || !strings.Contains(err.Error(), "marshal request body") {
		t.Errorf("error = %v, want marshal failure", err)
	}
}

func TestDo_EmptySuccessBody(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, _ := New("test-key", WithBaseURL(server.URL))
	var out Response[json.RawMessage]
	if err := client.Do(context.Background(), http.MethodDelete, "/groups/g1", nil, &out); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if out.Data != nil {
		t.Errorf("Data = %s, want nil", out.Data)
	}
}

func TestCall_DecodesEnvelope(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"name":"newsletter","totalSubscriber":3},"error":"partial"}`))
	}))
	defer server.Close()

	client, _ := New("test-key", WithBaseURL(server.URL))
	resp, err := Call[EmailGroup](context.Background(), client, http.MethodGet, "/groups/g1", nil)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if resp.Data.Name != "newsletter" || resp.Data.TotalSubscriber != 3 {
		t.Errorf("Data = %+v", resp.Data)
	}
	if resp.Error != "partial" {
		t.Errorf("Error = %q, want envelope error passed through", resp.Error)
	}
}

func TestListParams_Query(t *testing.T) {
	tests := []struct {
		params ListParams
		want   string
	}{
		{DefaultListParams(), "?limit=10&page=1"},
		{ListParams{}, "?limit=10&page=1"},
		{ListParams{Limit: 50, Page: 3}, "?limit=50&page=3"},
		{ListParams{Limit: -1, Page: 2}, "?limit=10&page=2"},
	}

	for _, tt := range tests {
		if got := tt.params.query(); got != tt.want {
			t.Errorf("%+v.query() = %q, want %q", tt.params, got, tt.want)
		}
	}
}

func TestNewAttachment(t *testing.T) {
	a := NewAttachment("hello.txt", []byte("hello"))
	if a.FileName != "hello.txt" {
		t.Errorf("FileName = %q", a.FileName)
	}
	if a.Base64Content != "aGVsbG8=" {
		t.Errorf("Base64Content = %q, want aGVsbG8=", a.Base64Content)
	}
}
