package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zvuklib/zvuk-go/pkg/errors"
)

func TestGetUnwrapsResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/profile" {
			t.Errorf("Expected path /profile, got %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Auth-Token"); got != "tiny-token" {
			t.Errorf("Expected X-Auth-Token 'tiny-token', got '%s'", got)
		}
		w.Write([]byte(`{"result":{"id":7,"is_anonymous":true,"token":"anon-token"}}`))
	}))
	defer server.Close()

	client := NewClient(http.DefaultClient, server.URL, map[string]string{"X-Auth-Token": "tiny-token"}, nil)

	raw, err := client.Get(context.Background(), "/profile")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(raw) != `{"id":7,"is_anonymous":true,"token":"anon-token"}` {
		t.Errorf("Unexpected result payload: %s", raw)
	}
}

func TestGetStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"Unauthorized401", 401, errors.ErrUnauthorized},
		{"Unauthorized403", 403, errors.ErrUnauthorized},
		{"NotFound", 404, errors.ErrNotFound},
		{"ServerError", 502, errors.ErrNetwork},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			_, err := NewClient(http.DefaultClient, server.URL, nil, nil).Get(context.Background(), "/profile")
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestGetBadBodies(t *testing.T) {
	t.Run("NotJSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>surprise</html>`))
		}))
		defer server.Close()

		_, err := NewClient(http.DefaultClient, server.URL, nil, nil).Get(context.Background(), "/profile")
		if !errors.Is(err, errors.ErrResponseShape) {
			t.Errorf("Expected ErrResponseShape, got %v", err)
		}
	})

	t.Run("MissingResult", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"ok"}`))
		}))
		defer server.Close()

		_, err := NewClient(http.DefaultClient, server.URL, nil, nil).Get(context.Background(), "/profile")
		if !errors.Is(err, errors.ErrResponseShape) {
			t.Errorf("Expected ErrResponseShape, got %v", err)
		}
	})
}
