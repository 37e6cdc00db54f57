package httpreq

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/BielosX/wombat/pokedex/src/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

type payload struct {
	Name string `json:"name"`
	Id   int    `json:"id"`
}

func newObservedClient(opts ...ClientOption) (*Client, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewClient(zap.New(core).Sugar(), opts...), logs
}

func TestNewClientDefaultsTimeout(t *testing.T) {
	c := NewClient(nil)
	if c.Timeout() != DefaultTimeout {
		t.Fatalf("expected timeout %s, got %s", DefaultTimeout, c.Timeout())
	}
	if DefaultTimeout != 10*time.Second {
		t.Fatalf("expected 10s default, got %s", DefaultTimeout)
	}
}

func TestWithTimeoutOverridesDefault(t *testing.T) {
	c := NewClient(nil, WithTimeout(2*time.Second))
	if c.Timeout() != 2*time.Second {
		t.Fatalf("expected 2s, got %s", c.Timeout())
	}
}

func TestGetDecodesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("X-Test"); got != "1" {
			t.Fatalf("expected header X-Test=1, got %q", got)
		}
		_, _ = io.WriteString(w, `{"name":"pikachu","id":25}`)
	}))
	defer srv.Close()

	c, logs := newObservedClient()
	got, err := Get[payload](context.Background(), c, srv.URL, &Options{Headers: map[string]string{"X-Test": "1"}})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "pikachu" || got.Id != 25 {
		t.Fatalf("unexpected payload %+v", got)
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no log entries on success, got %d", logs.Len())
	}
}

func TestClientDoesNotReplayCookies(t *testing.T) {
	var cookies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookies = append(cookies, r.Header.Get("Cookie"))
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
		_, _ = io.WriteString(w, `{"name":"pikachu","id":25}`)
	}))
	defer srv.Close()

	c := NewClient(nil)
	for i := 0; i < 2; i++ {
		if _, err := Get[payload](context.Background(), c, srv.URL, nil); err != nil {
			t.Fatalf("Get: %v", err)
		}
	}
	if len(cookies) != 2 || cookies[0] != "" || cookies[1] != "" {
		t.Fatalf("expected no Cookie header on any call, got %q", cookies)
	}
}

func TestPostSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Fatalf("expected json content type, got %s", ct)
		}
		var in payload
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		in.Id++
		_ = json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	c := NewClient(nil)
	got, err := Post[payload](context.Background(), c, srv.URL, payload{Name: "eevee", Id: 132}, nil)
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if got.Name != "eevee" || got.Id != 133 {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestGetReturnsStatusErrorAndLogsOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer srv.Close()

	c, logs := newObservedClient()
	_, err := Get[payload](context.Background(), c, srv.URL+"/pokemon/missingno", nil)

	statusErr, ok := AsStatusError(err)
	if !ok {
		t.Fatalf("expected StatusError, got %T (%v)", err, err)
	}
	if statusErr.StatusCode != http.StatusNotFound || statusErr.Body != "Not Found" {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected exactly one log entry, got %d", logs.Len())
	}
	if msg := logs.All()[0].Message; msg != "HTTP GET Error" {
		t.Fatalf("unexpected log message %q", msg)
	}
}

func TestGetPropagatesTransportErrorUnchanged(t *testing.T) {
	boom := errors.New("connection refused")
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, boom
	})

	c, logs := newObservedClient(WithTransport(rt))
	_, err := Get[payload](context.Background(), c, "http://example.com/pokemon/1", nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected transport error to be propagated, got %v", err)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected exactly one log entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Level != zapcore.ErrorLevel {
		t.Fatalf("expected error level, got %s", entry.Level)
	}
	if entry.ContextMap()["url"] != "http://example.com/pokemon/1" {
		t.Fatalf("expected url field, got %v", entry.ContextMap())
	}
}

func TestPerCallTimeoutOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	c, logs := newObservedClient()
	_, err := Get[payload](context.Background(), c, srv.URL, &Options{Timeout: 20 * time.Millisecond})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected exactly one log entry, got %d", logs.Len())
	}
}

func TestGetReturnsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"name": 42}`)
	}))
	defer srv.Close()

	c, logs := newObservedClient()
	_, err := Get[payload](context.Background(), c, srv.URL, nil)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %T (%v)", err, err)
	}
	if decodeErr.Url != srv.URL {
		t.Fatalf("expected url %s, got %s", srv.URL, decodeErr.Url)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected exactly one log entry, got %d", logs.Len())
	}
}

func TestRequestsAreCountedByOutcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `{"name":"ditto","id":132}`)
	}))
	defer srv.Close()

	m := metrics.NewMetrics()
	c := NewClient(nil, WithMetrics(m))
	if _, err := Get[payload](context.Background(), c, srv.URL+"/ok", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := Get[payload](context.Background(), c, srv.URL+"/bad", nil); err == nil {
		t.Fatalf("expected error for 502")
	}

	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, metrics.OutcomeSuccess)); got != 1 {
		t.Fatalf("expected one success, got %v", got)
	}
	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, metrics.OutcomeStatus)); got != 1 {
		t.Fatalf("expected one status error, got %v", got)
	}
}

func TestReadBodySnippetTruncates(t *testing.T) {
	long := strings.Repeat("a", 600)
	if got := readBodySnippet([]byte(long)); len(got) != 512 {
		t.Fatalf("expected 512 bytes, got %d", len(got))
	}
	if got := readBodySnippet(nil); got != "" {
		t.Fatalf("expected empty snippet, got %q", got)
	}
}
