package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestGetRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "guide-test" {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{Timeout: time.Second, Retries: 2, RetryWait: time.Millisecond})
	body, status, err := c.Get(context.Background(), srv.URL, map[string]string{"User-Agent": "guide-test"})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if status != http.StatusOK || string(body) != "ok" {
		t.Errorf("Get() = %q, %d; want ok, 200", body, status)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestGetReturnsLastServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{Timeout: time.Second, Retries: 1, RetryWait: time.Millisecond})
	_, status, err := c.Get(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if status != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", status)
	}
}

func TestGetNoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{Timeout: time.Second, Retries: 3, RetryWait: time.Millisecond})
	if _, status, _ := c.Get(context.Background(), srv.URL, nil); status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestGetCanceledDuringWait(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c := NewClient(ClientConfig{Timeout: time.Second, Retries: 5, RetryWait: time.Second})
	if _, _, err := c.Get(ctx, srv.URL, nil); err == nil {
		t.Fatal("Get() error = nil, want context error")
	}
}
