package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/devpulse-team/devpulse/errors"
	"github.com/devpulse-team/devpulse/pkg/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.LLMConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "test-model",
		Timeout: 5 * time.Second,
	})
}

func TestComplete_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if len(req.Messages) != 1 || req.Messages[0].Content != "hello" {
			t.Fatalf("unexpected messages: %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "world"}},
			},
		})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	text, err := client.Complete(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if text != "world" {
		t.Fatalf("got %q, want %q", text, "world")
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	_, err := client.Complete(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
	if code := apperrors.CodeOf(err); code != apperrors.ErrorCode_LLM_REQUEST_FAILED {
		t.Fatalf("unexpected error code %s", code)
	}
}

func TestComplete_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	_, err := client.Complete(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error")
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected 1 call for a 4xx response, got %d", n)
	}
}

type fixedStore struct {
	data map[string]string
	sets int
}

func (s *fixedStore) Get(_ context.Context, key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

func (s *fixedStore) Set(_ context.Context, key, value string, _ time.Duration) {
	s.data[key] = value
	s.sets++
}

func TestCached_SecondCallHitsStore(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "cached answer"}},
			},
		})
	}))
	defer ts.Close()

	store := &fixedStore{data: map[string]string{}}
	cached := NewCached(newTestClient(ts.URL), store, time.Minute)

	for i := 0; i < 2; i++ {
		text, err := cached.Complete(context.Background(), "same prompt")
		if err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		if text != "cached answer" {
			t.Fatalf("got %q", text)
		}
	}

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected 1 upstream call, got %d", n)
	}
	if store.sets != 1 {
		t.Fatalf("expected 1 store write, got %d", store.sets)
	}
}
