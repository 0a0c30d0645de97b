package httpjson_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "hindidrill/internal/platform/errors"
	"hindidrill/internal/platform/httpjson"
)

func TestGetDecodesBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Animals"}`))
	}))
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
	}
	if err := httpjson.Get(context.Background(), srv.Client(), srv.URL, &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Name != "Animals" {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestGetReportsStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	var out any
	err := httpjson.Get(context.Background(), srv.Client(), srv.URL, &out)
	var statusErr *apperrors.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected status error, got %v", err)
	}
	if statusErr.Status != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", statusErr.Status)
	}
}
