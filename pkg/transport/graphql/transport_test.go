package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/zvuklib/zvuk-go/pkg/auth"
	"github.com/zvuklib/zvuk-go/pkg/errors"
)

func TestDoSendsGraphQLRequest(t *testing.T) {
	var captured struct {
		method  string
		headers http.Header
		body    map[string]interface{}
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.headers = r.Header.Clone()
		if err := json.NewDecoder(r.Body).Decode(&captured.body); err != nil {
			t.Errorf("Failed to parse request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	tr := New(
		WithEndpoint(server.URL),
		WithAuthHandler(auth.NewTokenAuth("test-token")),
		WithUserAgent("test-agent"),
	)

	status, body, err := tr.Do(context.Background(), "query getTracks { get_tracks { id } }", "getTracks",
		map[string]interface{}{"ids": []string{"1", "2"}})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if status != 200 {
		t.Errorf("Expected status 200, got %d", status)
	}
	if string(body) != `{"data":{}}` {
		t.Errorf("Unexpected body: %s", body)
	}

	if captured.method != http.MethodPost {
		t.Errorf("Expected POST, got %s", captured.method)
	}
	if got := captured.headers.Get("X-Auth-Token"); got != "test-token" {
		t.Errorf("Expected auth header 'test-token', got '%s'", got)
	}
	if got := captured.headers.Get("User-Agent"); got != "test-agent" {
		t.Errorf("Expected User-Agent 'test-agent', got '%s'", got)
	}
	if got := captured.headers.Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected JSON content type, got '%s'", got)
	}

	if captured.body["query"] != "query getTracks { get_tracks { id } }" {
		t.Errorf("Unexpected query: %v", captured.body["query"])
	}
	if captured.body["operationName"] != "getTracks" {
		t.Errorf("Unexpected operationName: %v", captured.body["operationName"])
	}
	vars, ok := captured.body["variables"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected variables map, got %T", captured.body["variables"])
	}
	ids, ok := vars["ids"].([]interface{})
	if !ok || len(ids) != 2 || ids[0] != "1" || ids[1] != "2" {
		t.Errorf("Unexpected ids variable: %v", vars["ids"])
	}
}

func TestDoReturnsNonSuccessStatusWithoutError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		w.Write([]byte(`{"errors":[{"message":"boom"}]}`))
	}))
	defer server.Close()

	// Classification is the classifier's job; the transport reports the
	// status as data.
	status, body, err := New(WithEndpoint(server.URL)).Do(context.Background(), "query q { f }", "q", nil)
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if status != 500 {
		t.Errorf("Expected status 500, got %d", status)
	}
	if len(body) == 0 {
		t.Error("Expected body to be returned alongside the status")
	}
}

func TestDoTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	tr := New(
		WithEndpoint(server.URL),
		WithHTTPDoer(&http.Client{Timeout: 20 * time.Millisecond}),
	)

	_, _, err := tr.Do(context.Background(), "query q { f }", "q", nil)
	if !errors.Is(err, errors.ErrTimedOut) {
		t.Errorf("Expected ErrTimedOut, got %v", err)
	}
}

func TestDoContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := New(WithEndpoint(server.URL)).Do(ctx, "query q { f }", "q", nil)
	if !errors.Is(err, errors.ErrTimedOut) {
		t.Errorf("Expected ErrTimedOut, got %v", err)
	}
}

func TestDoConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens any more

	_, _, err := New(WithEndpoint(server.URL)).Do(context.Background(), "query q { f }", "q", nil)
	if !errors.Is(err, errors.ErrNetwork) {
		t.Errorf("Expected ErrNetwork, got %v", err)
	}
}

func TestNewHTTPClient(t *testing.T) {
	t.Run("RejectsBadProxyURL", func(t *testing.T) {
		_, err := NewHTTPClient(time.Second, "://not-a-url")
		if !errors.Is(err, errors.ErrValidation) {
			t.Errorf("Expected ErrValidation, got %v", err)
		}
	})

	t.Run("AppliesProxy", func(t *testing.T) {
		client, err := NewHTTPClient(time.Second, "http://127.0.0.1:3128")
		if err != nil {
			t.Fatalf("NewHTTPClient failed: %v", err)
		}
		if client.Transport == nil {
			t.Error("Expected a transport carrying the proxy configuration")
		}
	})

	t.Run("DefaultTimeout", func(t *testing.T) {
		client, err := NewHTTPClient(0, "")
		if err != nil {
			t.Fatalf("NewHTTPClient failed: %v", err)
		}
		if client.Timeout != DefaultTimeout {
			t.Errorf("Expected default timeout %v, got %v", DefaultTimeout, client.Timeout)
		}
	})
}
