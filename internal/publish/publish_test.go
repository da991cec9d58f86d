package publish

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/go-cmp/cmp"

	"github.com/eltkit/elt/internal/config"
	"github.com/eltkit/elt/internal/errors"
)

type put struct {
	Bucket       string
	Key          string
	Body         string
	ContentType  string
	CacheControl string
}

type fakeClient struct {
	mu   sync.Mutex
	puts []put
	fail string
}

func (c *fakeClient) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(in.Key)
	if key == c.fail {
		return nil, stderrors.New("access denied")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts = append(c.puts, put{
		Bucket:       aws.ToString(in.Bucket),
		Key:          key,
		Body:         string(body),
		ContentType:  aws.ToString(in.ContentType),
		CacheControl: aws.ToString(in.CacheControl),
	})
	return &s3.PutObjectOutput{}, nil
}

func (c *fakeClient) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, len(c.puts))
	for i, p := range c.puts {
		keys[i] = p.Key
	}
	return keys
}

// newBundle writes a project with a built bundle and returns its config.
func newBundle(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.New()
	cfg.Publish.Bucket = "site"
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	files := map[string]string{
		"index.html":        "<html></html>",
		"main.wasm":         "wasm",
		"wasm_exec.js":      "// go",
		"manifest.json":     "{}",
		"assets/logo.svg":   "<svg/>",
		"assets/styles.css": "body{}",
	}
	for name, body := range files {
		p := filepath.Join(cfg.OutputPath(), filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return cfg
}

func TestNew_RequiresBucket(t *testing.T) {
	cfg := config.New()
	if _, err := New(cfg, Options{}); !stderrors.Is(err, errors.New("E161")) {
		t.Errorf("error = %v, want E161", err)
	}
	if _, err := New(cfg, Options{Bucket: "flag-bucket"}); err != nil {
		t.Errorf("bucket option should satisfy the check: %v", err)
	}
}

func TestPlan(t *testing.T) {
	cfg := newBundle(t)
	p, err := New(cfg, Options{Prefix: "/apps/counter/"})
	if err != nil {
		t.Fatal(err)
	}
	objects, err := p.Plan()
	if err != nil {
		t.Fatal(err)
	}

	type planned struct{ Key, ContentType, CacheControl string }
	var got []planned
	for _, o := range objects {
		got = append(got, planned{o.Key, o.ContentType, o.CacheControl})
	}
	want := []planned{
		{"apps/counter/assets/logo.svg", "image/svg+xml", "max-age=300"},
		{"apps/counter/assets/styles.css", "text/css; charset=utf-8", "max-age=300"},
		{"apps/counter/main.wasm", "application/wasm", "max-age=300"},
		{"apps/counter/wasm_exec.js", "text/javascript; charset=utf-8", "max-age=300"},
		{"apps/counter/index.html", "text/html; charset=utf-8", "no-cache"},
		{"apps/counter/manifest.json", "application/json", "no-cache"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestPlan_MissingOutput(t *testing.T) {
	cfg := config.New()
	cfg.Publish.Bucket = "site"
	if err := cfg.SaveTo(filepath.Join(t.TempDir(), config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	p, err := New(cfg, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Plan(); !stderrors.Is(err, errors.New("E160")) {
		t.Errorf("error = %v, want E160", err)
	}
}

func TestPublish(t *testing.T) {
	client := &fakeClient{}
	var uploaded int
	p, err := New(newBundle(t), Options{
		Client:   client,
		OnUpload: func(Object) { uploaded++ },
	})
	if err != nil {
		t.Fatal(err)
	}

	res, err := p.Publish(context.Background())
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(res.Objects) != 6 || uploaded != 6 {
		t.Errorf("objects = %d, uploaded = %d, want 6", len(res.Objects), uploaded)
	}
	if want := int64(len("<html></html>wasm// go{}<svg/>body{}")); res.Bytes != want {
		t.Errorf("Bytes = %d, want %d", res.Bytes, want)
	}

	keys := client.keys()
	if len(keys) != 6 {
		t.Fatalf("puts = %v", keys)
	}
	if diff := cmp.Diff([]string{"index.html", "manifest.json"}, keys[4:]); diff != "" {
		t.Errorf("entry files must be uploaded last (-want +got):\n%s", diff)
	}
	for _, p := range client.puts {
		if p.Bucket != "site" {
			t.Errorf("%s uploaded to bucket %q", p.Key, p.Bucket)
		}
		if p.Key == "main.wasm" && p.Body != "wasm" {
			t.Errorf("main.wasm body = %q", p.Body)
		}
	}
}

func TestPublish_DryRun(t *testing.T) {
	client := &fakeClient{}
	p, err := New(newBundle(t), Options{Client: client, DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	res, err := p.Publish(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !res.DryRun || len(res.Objects) != 6 {
		t.Errorf("result = %+v", res)
	}
	if len(client.keys()) != 0 {
		t.Errorf("dry run uploaded %v", client.keys())
	}
}

func TestPublish_FailureStopsBeforeEntries(t *testing.T) {
	client := &fakeClient{fail: "main.wasm"}
	p, err := New(newBundle(t), Options{Client: client, Concurrency: 1})
	if err != nil {
		t.Fatal(err)
	}

	_, err = p.Publish(context.Background())
	if !stderrors.Is(err, errors.New("E160")) {
		t.Fatalf("error = %v, want E160", err)
	}
	for _, k := range client.keys() {
		if k == "index.html" || k == "manifest.json" {
			t.Errorf("%s uploaded after a failed asset", k)
		}
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"main.wasm":    "application/wasm",
		"wasm_exec.js": "text/javascript; charset=utf-8",
		"INDEX.HTML":   "text/html; charset=utf-8",
		"logo.png":     "image/png",
		"blob":         "application/octet-stream",
	}
	for name, want := range tests {
		if got := ContentType(name); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", name, got, want)
		}
	}
}
