package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	elterrors "github.com/eltkit/elt/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Dev.Port != DefaultPort {
		t.Errorf("Dev.Port = %d, want %d", cfg.Dev.Port, DefaultPort)
	}
	if cfg.Dev.Host != DefaultHost {
		t.Errorf("Dev.Host = %q, want %q", cfg.Dev.Host, DefaultHost)
	}
	if !cfg.Dev.HotReload {
		t.Error("Dev.HotReload should default to true")
	}
	if cfg.Build.Output != DefaultOutput {
		t.Errorf("Build.Output = %q, want %q", cfg.Build.Output, DefaultOutput)
	}
	if cfg.Publish.CacheControl != DefaultCacheControl {
		t.Errorf("Publish.CacheControl = %q, want %q", cfg.Publish.CacheControl, DefaultCacheControl)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if !errors.Is(err, elterrors.New("E102")) {
		t.Errorf("err = %v, want E102", err)
	}

	configJSON := `{
  "name": "counter",
  "dev": {
    "port": 9000,
    "host": "0.0.0.0",
    "hotReload": false,
    "ignore": ["*.tmp"]
  },
  "build": {
    "package": "cmd/counter",
    "tags": ["prod"],
    "ldflags": "-s -w"
  },
  "publish": {
    "bucket": "site",
    "prefix": "/apps/counter/"
  }
}
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := &Config{
		Name: "counter",
		Dev: DevConfig{
			Host:      "0.0.0.0",
			Port:      9000,
			HotReload: false,
			Watch:     []string{"."},
			Ignore:    []string{"*.tmp"},
		},
		Build: BuildConfig{
			Package: "cmd/counter",
			Output:  DefaultOutput,
			Tags:    []string{"prod"},
			LDFlags: "-s -w",
			Title:   "counter",
		},
		Publish: PublishConfig{
			Bucket:       "site",
			Prefix:       "apps/counter",
			CacheControl: DefaultCacheControl,
		},
		configPath: filepath.Join(tmpDir, ConfigFileName),
	}
	if diff := cmp.Diff(want, cfg, cmp.AllowUnexported(Config{})); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Path() != filepath.Join(tmpDir, ConfigFileName) {
		t.Errorf("Path = %q", cfg.Path())
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir = %q, want %q", cfg.Dir(), tmpDir)
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	var e *elterrors.Error
	if !errors.As(err, &e) || e.Code != "E100" {
		t.Errorf("err = %v, want E100", err)
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := New()
	if err := cfg.Save(); err == nil {
		t.Error("Save without a path should fail")
	}

	cfg.Name = "saved"
	cfg.Publish.Bucket = "b"
	path := filepath.Join(tmpDir, ConfigFileName)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path = %q, want %q", cfg.Path(), path)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Name != "saved" || loaded.Publish.Bucket != "b" {
		t.Errorf("loaded = %+v", loaded)
	}

	loaded.Dev.Port = 1234
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if again.Dev.Port != 1234 {
		t.Errorf("Dev.Port = %d, want 1234", again.Dev.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		code   string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative port", func(c *Config) { c.Dev.Port = -1 }, "E101"},
		{"large port", func(c *Config) { c.Dev.Port = 70000 }, "E101"},
		{"empty output", func(c *Config) { c.Build.Output = "" }, "E100"},
		{"output is project", func(c *Config) { c.Build.Output = "." }, "E100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v", err)
				}
				return
			}
			var e *elterrors.Error
			if !errors.As(err, &e) || e.Code != tt.code {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestDevAddress(t *testing.T) {
	cfg := New()
	cfg.Dev.Host = "127.0.0.1"
	cfg.Dev.Port = 4000
	if got := cfg.DevAddress(); got != "127.0.0.1:4000" {
		t.Errorf("DevAddress = %q", got)
	}
	if got := cfg.DevURL(); got != "http://127.0.0.1:4000" {
		t.Errorf("DevURL = %q", got)
	}

	cfg.Dev.Host = "::1"
	if got := cfg.DevAddress(); got != "[::1]:4000" {
		t.Errorf("DevAddress = %q", got)
	}
}

func TestPaths(t *testing.T) {
	cfg := New()
	cfg.configPath = filepath.Join("/project", ConfigFileName)
	cfg.Dev.Watch = []string{".", "assets", "/abs/dir"}

	if got := cfg.OutputPath(); got != filepath.Join("/project", "dist") {
		t.Errorf("OutputPath = %q", got)
	}
	want := []string{"/project", filepath.Join("/project", "assets"), "/abs/dir"}
	if diff := cmp.Diff(want, cfg.WatchPaths()); diff != "" {
		t.Errorf("WatchPaths mismatch (-want +got):\n%s", diff)
	}
}

func TestPackagePath(t *testing.T) {
	tests := []struct {
		pkg  string
		want string
	}{
		{"", "."},
		{".", "."},
		{"./cmd/app", "./cmd/app"},
		{"../shared/app", "../shared/app"},
		{"cmd/app", "./cmd/app"},
		{"example.com/site/cmd/app", "example.com/site/cmd/app"},
	}
	for _, tt := range tests {
		cfg := New()
		cfg.Build.Package = tt.pkg
		if got := cfg.PackagePath(); got != tt.want {
			t.Errorf("PackagePath(%q) = %q, want %q", tt.pkg, got, tt.want)
		}
	}
}

func TestTitle(t *testing.T) {
	cfg := New()
	if got := cfg.Title(); got != "elt" {
		t.Errorf("Title = %q, want elt", got)
	}
	cfg.Name = "counter"
	if got := cfg.Title(); got != "counter" {
		t.Errorf("Title = %q, want counter", got)
	}
	cfg.Build.Title = "Counter Demo"
	if got := cfg.Title(); got != "Counter Demo" {
		t.Errorf("Title = %q, want Counter Demo", got)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := FindProjectRoot(nested); err == nil {
		t.Error("expected error without elt.json")
	}

	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !Exists(root) {
		t.Error("Exists(root) = false")
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("FindProjectRoot = %q, want %q", got, want)
	}
}
