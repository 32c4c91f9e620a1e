package zvuk

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/zvuklib/zvuk-go/pkg/errors"
	"github.com/zvuklib/zvuk-go/pkg/models"
)

func TestDownload(t *testing.T) {
	media := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/stream") {
			w.WriteHeader(404)
			return
		}
		w.Write([]byte("fake audio bytes"))
	}))
	defer media.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"data":{"media_contents":[{"stream":{"mid":"%s/stream/1"}}]}}`, media.URL)
	}))
	defer api.Close()

	client, err := NewClient(WithEndpoint(api.URL), WithToken("t"))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	var buf bytes.Buffer
	n, err := client.Download(context.Background(), &buf, "1", models.QualityMid)
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if n != int64(len("fake audio bytes")) {
		t.Errorf("Expected %d bytes, got %d", len("fake audio bytes"), n)
	}
	if buf.String() != "fake audio bytes" {
		t.Errorf("Unexpected media payload: %q", buf.String())
	}
}

func TestDownloadURLNonSuccess(t *testing.T) {
	media := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(410) // stream URLs expire
	}))
	defer media.Close()

	client, err := NewClient(WithToken("t"))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	var buf bytes.Buffer
	_, err = client.DownloadURL(context.Background(), &buf, media.URL+"/stream/1")
	if !errors.Is(err, errors.ErrNetwork) {
		t.Errorf("Expected ErrNetwork, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no bytes written, got %d", buf.Len())
	}
}
