package dev

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/eltkit/elt/internal/build"
	"github.com/eltkit/elt/internal/config"
)

func newProject(t *testing.T, hotReload bool) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Name = "demo"
	cfg.Dev.Host = "127.0.0.1"
	cfg.Dev.Port = 0
	cfg.Dev.HotReload = hotReload
	if err := cfg.SaveTo(filepath.Join(t.TempDir(), config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	return cfg
}

// fakeGo writes a shell script standing in for the go command. Builds
// write a four byte main.wasm, or fail when $FAKE_GO_FAIL is set.
func fakeGo(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake go command needs a POSIX shell")
	}
	script := `#!/bin/sh
if [ -n "$FAKE_GO_FAIL" ]; then
  echo "./main.go:3:1: syntax error" >&2
  exit 1
fi
printf 'wasm' > "$3"
`
	path := filepath.Join(t.TempDir(), "go")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func fakeGOROOT(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "lib", "wasm")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, build.WasmExecFile), []byte("// go"), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

// ============================================================================
// HTTP
// ============================================================================

func TestServeIndex(t *testing.T) {
	tests := []struct {
		name      string
		hotReload bool
	}{
		{"hot reload", true},
		{"no hot reload", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewServer(Options{Config: newProject(t, tt.hotReload)})
			rec := get(t, s.Handler(), "/")

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Content-Type = %q", ct)
			}
			body := rec.Body.String()
			for _, want := range []string{"<title>demo</title>", `<div id="app"></div>`, `<script src="wasm_exec.js"></script>`} {
				if !strings.Contains(body, want) {
					t.Errorf("index missing %q", want)
				}
			}
			if got := strings.Contains(body, ReloadPath); got != tt.hotReload {
				t.Errorf("reload client present = %v, want %v", got, tt.hotReload)
			}
		})
	}
}

func TestServeFiles(t *testing.T) {
	cfg := newProject(t, true)
	if err := os.MkdirAll(cfg.OutputPath(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.OutputPath(), build.WasmFile), []byte("wasm"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := NewServer(Options{Config: cfg}).Handler()

	rec := get(t, h, "/"+build.WasmFile)
	if rec.Code != http.StatusOK || rec.Body.String() != "wasm" {
		t.Fatalf("GET main.wasm = %d %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/wasm" {
		t.Errorf("Content-Type = %q, want application/wasm", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); !strings.Contains(cc, "no-cache") {
		t.Errorf("Cache-Control = %q, want no-cache", cc)
	}

	if rec := get(t, h, "/missing.js"); rec.Code != http.StatusNotFound {
		t.Errorf("GET missing.js = %d, want 404", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := NewServer(Options{Config: newProject(t, false), Registry: reg}).Handler()

	get(t, h, "/")
	rec := get(t, h, MetricsPath)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`elt_http_requests_total{method="GET",route="/",status="200"} 1`,
		`elt_elements_built_total{tag="div"} 1`,
		`elt_elements_built_total{tag="noscript"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q:\n%s", want, body)
		}
	}
}

// ============================================================================
// Reload
// ============================================================================

func dialReload(t *testing.T, s *Server) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + ReloadPath
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for s.reload.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) ReloadMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg ReloadMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func TestReload_Broadcast(t *testing.T) {
	s := NewServer(Options{Config: newProject(t, true)})
	conn := dialReload(t, s)

	s.reload.NotifyCSS("app.css")
	if msg := readMessage(t, conn); msg.Type != ReloadTypeCSS || msg.File != "app.css" {
		t.Errorf("got %+v, want css app.css", msg)
	}

	s.reload.NotifyReload()
	if msg := readMessage(t, conn); msg.Type != ReloadTypeFull {
		t.Errorf("got %+v, want reload", msg)
	}
}

func TestReload_ReplaysError(t *testing.T) {
	s := NewServer(Options{Config: newProject(t, true)})
	s.reload.NotifyError("boom")

	conn := dialReload(t, s)
	if msg := readMessage(t, conn); msg.Type != ReloadTypeError || msg.Error != "boom" {
		t.Errorf("got %+v, want error boom", msg)
	}

	s.reload.ClearError()
	if msg := readMessage(t, conn); msg.Type != ReloadTypeClear {
		t.Errorf("got %+v, want clear", msg)
	}
}

func TestReload_ClientLeaves(t *testing.T) {
	s := NewServer(Options{Config: newProject(t, true)})
	conn := dialReload(t, s)
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for s.reload.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("client not removed after close")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHandleChanges(t *testing.T) {
	goBin := fakeGo(t)

	var reloads []int
	s := NewServer(Options{
		Config:   newProject(t, true),
		Build:    build.Options{GoBinary: goBin},
		OnReload: func(n int) { reloads = append(reloads, n) },
	})
	conn := dialReload(t, s)
	ctx := context.Background()

	s.handleChanges(ctx, []Change{{Path: "logo.png", Type: ChangeAsset}, {Path: "a.css", Type: ChangeCSS}})
	if msg := readMessage(t, conn); msg.Type != ReloadTypeCSS || msg.File != "a.css" {
		t.Errorf("css change: got %+v", msg)
	}

	s.handleChanges(ctx, []Change{{Path: "logo.png", Type: ChangeAsset}})
	if msg := readMessage(t, conn); msg.Type != ReloadTypeFull {
		t.Errorf("asset change: got %+v", msg)
	}

	t.Setenv("FAKE_GO_FAIL", "1")
	s.handleChanges(ctx, []Change{{Path: "main.go", Type: ChangeGo}, {Path: "a.css", Type: ChangeCSS}})
	msg := readMessage(t, conn)
	if msg.Type != ReloadTypeError || !strings.Contains(msg.Error, "syntax error") {
		t.Errorf("failed build: got %+v", msg)
	}

	os.Unsetenv("FAKE_GO_FAIL")
	if res := s.Rebuild(ctx); !res.Success {
		t.Fatalf("rebuild failed: %v", res.Error)
	}
	if msg := readMessage(t, conn); msg.Type != ReloadTypeClear {
		t.Errorf("fixed build: got %+v, want clear", msg)
	}
	if msg := readMessage(t, conn); msg.Type != ReloadTypeFull {
		t.Errorf("fixed build: got %+v, want reload", msg)
	}

	if len(reloads) != 2 || reloads[0] != 1 {
		t.Errorf("OnReload calls = %v, want two with one client", reloads)
	}
}

// ============================================================================
// Tracing
// ============================================================================

type recordingProvider struct {
	noop.TracerProvider
	mu    sync.Mutex
	spans []*recordingSpan
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return recordingTracer{p: p}
}

type recordingTracer struct {
	noop.Tracer
	p *recordingProvider
}

func (t recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	span := &recordingSpan{name: name, kind: cfg.SpanKind(), attrs: cfg.Attributes()}
	t.p.mu.Lock()
	t.p.spans = append(t.p.spans, span)
	t.p.mu.Unlock()
	return trace.ContextWithSpan(ctx, span), span
}

type recordingSpan struct {
	noop.Span
	name   string
	kind   trace.SpanKind
	attrs  []attribute.KeyValue
	status codes.Code
	ended  bool
}

func (s *recordingSpan) SetName(name string)                    { s.name = name }
func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) { s.attrs = append(s.attrs, kv...) }
func (s *recordingSpan) SetStatus(code codes.Code, _ string)    { s.status = code }
func (s *recordingSpan) End(...trace.SpanEndOption)             { s.ended = true }

func (s *recordingSpan) attr(key string) (attribute.Value, bool) {
	for _, kv := range s.attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracing(t *testing.T) {
	tp := &recordingProvider{}
	r := chi.NewRouter()
	r.Use(Tracing(WithTracerProvider(tp), WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/healthz"
	})))
	r.Get("/files/{name}", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := trace.SpanFromContext(r.Context()).(*recordingSpan); !ok {
			t.Error("handler context does not carry the request span")
		}
		w.Write([]byte("ok"))
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {})

	get(t, r, "/files/a.js")
	get(t, r, "/boom")
	get(t, r, "/healthz")

	if len(tp.spans) != 2 {
		t.Fatalf("recorded %d spans, want 2", len(tp.spans))
	}

	ok := tp.spans[0]
	if ok.name != "HTTP GET /files/{name}" || ok.kind != trace.SpanKindServer || !ok.ended {
		t.Errorf("span = %+v", ok)
	}
	if v, _ := ok.attr("http.status_code"); v.AsInt64() != 200 {
		t.Errorf("status attribute = %v", v.Emit())
	}
	if v, _ := ok.attr("http.target"); v.AsString() != "/files/a.js" {
		t.Errorf("target attribute = %v", v.Emit())
	}
	if ok.status == codes.Error {
		t.Error("successful request marked as error")
	}

	if failed := tp.spans[1]; failed.status != codes.Error {
		t.Errorf("5xx span status = %v, want Error", failed.status)
	}
}

// ============================================================================
// Lifecycle
// ============================================================================

func TestServerStartStop(t *testing.T) {
	cfg := newProject(t, true)
	s := NewServer(Options{
		Config: cfg,
		Build:  build.Options{GoBinary: fakeGo(t), GOROOT: fakeGOROOT(t)},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	deadline := time.Now().Add(5 * time.Second)
	for s.Addr() == nil {
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("server did not start")
		}
		time.Sleep(10 * time.Millisecond)
	}

	resp, err := http.Get("http://" + s.Addr().String() + "/" + build.WasmFile)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET main.wasm = %d, want 200 after the initial build", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}
