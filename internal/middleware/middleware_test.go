package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type ping struct{}

func TestMetricsInterceptor(t *testing.T) {
	okCall := MetricsInterceptor()(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return connect.NewResponse(&ping{}), nil
	})
	failCall := MetricsInterceptor()(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("bill not found"))
	})

	// Requests built outside a handler have an empty procedure.
	okBefore := testutil.ToFloat64(rpcRequests.WithLabelValues("", "ok"))
	failBefore := testutil.ToFloat64(rpcRequests.WithLabelValues("", "not_found"))

	if _, err := okCall(context.Background(), connect.NewRequest(&ping{})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := failCall(context.Background(), connect.NewRequest(&ping{})); connect.CodeOf(err) != connect.CodeNotFound {
		t.Fatalf("expected CodeNotFound to pass through, got %v", err)
	}

	if got := testutil.ToFloat64(rpcRequests.WithLabelValues("", "ok")) - okBefore; got != 1 {
		t.Errorf("ok count grew by %v, want 1", got)
	}
	if got := testutil.ToFloat64(rpcRequests.WithLabelValues("", "not_found")) - failBefore; got != 1 {
		t.Errorf("not_found count grew by %v, want 1", got)
	}
}

func TestHTTPMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(HTTPMetrics)
	r.Get("/api/bills/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("/api/bills/{id}", "GET", "404"))
	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bills/"+id, nil))
	}

	if got := testutil.ToFloat64(httpRequests.WithLabelValues("/api/bills/{id}", "GET", "404")) - before; got != 3 {
		t.Errorf("route count grew by %v, want 3", got)
	}
}

func TestCORS(t *testing.T) {
	called := false
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	t.Run("preflight short-circuits", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/bills", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if called {
			t.Error("preflight should not reach the handler")
		}
		if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("missing Access-Control-Allow-Origin")
		}
	})

	t.Run("regular request passes through", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bills", nil))
		if !called {
			t.Error("expected handler to be called")
		}
	})
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/roommates", nil))
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "ok")
	}
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingInterceptor(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantMsg   string
		wantCode  string
	}{
		{"success", nil, "INFO", "RPC ok", ""},
		{"unknown bill", connect.NewError(connect.CodeNotFound, errors.New("bill not found")), "WARN", "RPC rejected", "not_found"},
		{"bad amount", connect.NewError(connect.CodeInvalidArgument, errors.New("amount must be positive")), "WARN", "RPC rejected", "invalid_argument"},
		{"storage failure", errors.New("database is closed"), "ERROR", "RPC failed", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			call := LoggingInterceptor()(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return connect.NewResponse(&ping{}), nil
			})

			_, err := call(context.Background(), connect.NewRequest(&ping{}))
			if !errors.Is(err, tt.err) {
				t.Fatalf("error = %v, want %v", err, tt.err)
			}

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("expected one JSON log line, got %q: %v", buf.String(), err)
			}
			if entry["level"] != tt.wantLevel || entry["msg"] != tt.wantMsg {
				t.Errorf("logged %v %q, want %s %q", entry["level"], entry["msg"], tt.wantLevel, tt.wantMsg)
			}
			for _, key := range []string{"procedure", "protocol", "peer", "duration_ms"} {
				if _, ok := entry[key]; !ok {
					t.Errorf("log entry missing %q: %v", key, entry)
				}
			}
			if tt.wantCode != "" && entry["code"] != tt.wantCode {
				t.Errorf("code = %v, want %s", entry["code"], tt.wantCode)
			}
		})
	}
}
