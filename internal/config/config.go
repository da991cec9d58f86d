package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/eltkit/elt/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "elt.json"

	// DefaultPort is the default development server port.
	DefaultPort = 8080

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"

	// DefaultPackage is the default package compiled to wasm.
	DefaultPackage = "."

	// DefaultCacheControl is sent with published objects.
	DefaultCacheControl = "max-age=300"
)

// Config represents elt.json.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	Dev     DevConfig     `json:"dev,omitempty"`
	Build   BuildConfig   `json:"build,omitempty"`
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DevConfig contains development server settings.
type DevConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`

	// HotReload reloads the browser after each successful rebuild.
	HotReload bool `json:"hotReload"`

	// Watch contains paths, relative to the project, to watch for changes.
	Watch []string `json:"watch,omitempty"`

	// Ignore contains .gitignore style patterns, in addition to the
	// watcher defaults and the project's .gitignore.
	Ignore []string `json:"ignore,omitempty"`
}

// BuildConfig contains wasm build settings.
type BuildConfig struct {
	// Package is the main package compiled to main.wasm.
	Package string `json:"package,omitempty"`

	// Output is the directory receiving main.wasm, wasm_exec.js and
	// index.html.
	Output string `json:"output,omitempty"`

	Tags    []string `json:"tags,omitempty"`
	LDFlags string   `json:"ldflags,omitempty"`

	// Title is the generated index.html title. Defaults to Name.
	Title string `json:"title,omitempty"`
}

// PublishConfig contains S3 upload settings.
type PublishConfig struct {
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region overrides the region from the AWS shared configuration.
	Region string `json:"region,omitempty"`

	// Endpoint points uploads at an S3 compatible service instead of AWS.
	Endpoint string `json:"endpoint,omitempty"`

	CacheControl string `json:"cacheControl,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Dev: DevConfig{
			Host:      DefaultHost,
			Port:      DefaultPort,
			HotReload: true,
			Watch:     []string{"."},
		},
		Build: BuildConfig{
			Package: DefaultPackage,
			Output:  DefaultOutput,
		},
		Publish: PublishConfig{
			CacheControl: DefaultCacheControl,
		},
	}
}

// Load reads elt.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E102").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " with at least {\"name\": \"...\"}")
		}
		return nil, errors.New("E100").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E100").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E100").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("E100").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file, or "." for a
// config that was not loaded from disk.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if len(c.Dev.Watch) == 0 {
		c.Dev.Watch = []string{"."}
	}
	if c.Build.Package == "" {
		c.Build.Package = DefaultPackage
	}
	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}
	if c.Build.Title == "" {
		c.Build.Title = c.Name
	}
	if c.Publish.CacheControl == "" {
		c.Publish.CacheControl = DefaultCacheControl
	}
	c.Publish.Prefix = strings.Trim(c.Publish.Prefix, "/")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return errors.New("E101").
			WithDetailf("dev.port is %d", c.Dev.Port)
	}
	if c.Build.Output == "" {
		return errors.New("E100").WithDetail("build.output must not be empty")
	}
	if filepath.Clean(c.OutputPath()) == filepath.Clean(c.Dir()) {
		return errors.New("E100").
			WithDetail("build.output must not be the project directory").
			WithSuggestion("Use a subdirectory such as \"" + DefaultOutput + "\"")
	}
	return nil
}

// DevAddress returns the listen address of the dev server.
func (c *Config) DevAddress() string {
	return net.JoinHostPort(c.Dev.Host, strconv.Itoa(c.Dev.Port))
}

// DevURL returns the URL of the dev server.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// OutputPath returns the build output directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Build.Output)
}

// PackagePath returns the build package as a path go build accepts from
// the project directory.
func (c *Config) PackagePath() string {
	p := c.Build.Package
	if p == "" {
		p = DefaultPackage
	}
	if filepath.IsAbs(p) || p == "." || strings.HasPrefix(p, "./") || strings.HasPrefix(p, "../") {
		return p
	}
	// Import paths such as example.com/app are passed through.
	if first := strings.SplitN(p, "/", 2)[0]; strings.Contains(first, ".") {
		return p
	}
	return "./" + p
}

// WatchPaths returns the directories the dev server watches.
func (c *Config) WatchPaths() []string {
	paths := make([]string, 0, len(c.Dev.Watch))
	for _, w := range c.Dev.Watch {
		paths = append(paths, c.resolve(w))
	}
	return paths
}

// Title returns the page title for generated HTML.
func (c *Config) Title() string {
	switch {
	case c.Build.Title != "":
		return c.Build.Title
	case c.Name != "":
		return c.Name
	default:
		return "elt"
	}
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up from startDir to the directory containing
// elt.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E102").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads the configuration of the project containing the
// working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
