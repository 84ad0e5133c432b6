package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeIdempotencyStore struct {
	mu        sync.Mutex
	responses map[string][]byte
}

func newFakeIdempotencyStore() *fakeIdempotencyStore {
	return &fakeIdempotencyStore{responses: make(map[string][]byte)}
}

func (s *fakeIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.responses[key]; ok {
		return true, existing, nil
	}

	if response != nil {
		s.responses[key] = response
	} else {
		s.responses[key] = []byte("processing")
	}

	return false, nil, nil
}

func (s *fakeIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responses[key] = response

	return nil
}

func TestIdempotencyMiddleware_ReplaysStoredResponse(t *testing.T) {
	store := newFakeIdempotencyStore()
	calls := 0

	handler := NewIdempotencyMiddleware(store).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"balance":95}`))
	}))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/wallets", strings.NewReader(`{}`))
		req.Header.Set(IdempotencyKeyHeader, "debit-42")
		handler.ServeHTTP(rec, req)

		if rec.Body.String() != `{"balance":95}` {
			t.Fatalf("unexpected body on request %d: %s", i, rec.Body.String())
		}
	}

	if calls != 1 {
		t.Fatalf("expected handler to run once, ran %d times", calls)
	}
}

func TestIdempotencyMiddleware_IgnoresRequestsWithoutKey(t *testing.T) {
	store := newFakeIdempotencyStore()
	calls := 0

	handler := NewIdempotencyMiddleware(store).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/wallets", strings.NewReader(`{}`))
		handler.ServeHTTP(rec, req)
	}

	if calls != 2 {
		t.Fatalf("expected handler to run twice, ran %d times", calls)
	}
}

func TestIdempotencyMiddleware_SkipsReadRequests(t *testing.T) {
	store := newFakeIdempotencyStore()
	calls := 0

	handler := NewIdempotencyMiddleware(store).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/wallets/abc", nil)
		req.Header.Set(IdempotencyKeyHeader, "get-1")
		handler.ServeHTTP(rec, req)
	}

	if calls != 2 {
		t.Fatalf("expected handler to run twice, ran %d times", calls)
	}
}

func TestIdempotencyMiddleware_DoesNotCacheFailures(t *testing.T) {
	store := newFakeIdempotencyStore()

	handler := NewIdempotencyMiddleware(store).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"insufficient balance"}`))
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/wallets", strings.NewReader(`{}`))
	req.Header.Set(IdempotencyKeyHeader, "debit-7")
	handler.ServeHTTP(rec, req)

	if string(store.responses["debit-7"]) != "processing" {
		t.Fatalf("expected failure to stay unreplayable, got %s", store.responses["debit-7"])
	}
}
