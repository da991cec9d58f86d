package build

import (
	"bytes"
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/eltkit/elt/internal/errors"
)

// CompilerConfig configures the wasm compiler.
type CompilerConfig struct {
	// ProjectPath is the directory go build runs in.
	ProjectPath string

	// Package is the package to compile, relative to ProjectPath.
	Package string

	// OutputPath is where to write the wasm binary.
	OutputPath string

	// CachePath is the Go build cache. Empty uses the user's cache.
	CachePath string

	// Tags are build tags to pass to go build.
	Tags []string

	// LDFlags are linker flags to pass to go build.
	LDFlags string

	// Env are additional environment variables.
	Env []string

	// GoBinary is the go command to run (default: "go").
	GoBinary string
}

// BuildResult contains the result of a build.
type BuildResult struct {
	// Success indicates if the build succeeded.
	Success bool

	// Duration is how long the build took.
	Duration time.Duration

	// Output is the compiler output.
	Output string

	// Error is the build error, if any.
	Error error
}

// Compiler runs go build for the js/wasm target.
type Compiler struct {
	config CompilerConfig
}

// NewCompiler creates a new wasm compiler.
func NewCompiler(config CompilerConfig) *Compiler {
	if config.GoBinary == "" {
		config.GoBinary = "go"
	}
	if config.Package == "" {
		config.Package = "."
	}
	return &Compiler{config: config}
}

// Args returns the go command arguments.
func (c *Compiler) Args() []string {
	args := []string{"build", "-o", c.config.OutputPath, "-trimpath"}
	if len(c.config.Tags) > 0 {
		args = append(args, "-tags", strings.Join(c.config.Tags, ","))
	}
	if c.config.LDFlags != "" {
		args = append(args, "-ldflags", c.config.LDFlags)
	}
	return append(args, c.config.Package)
}

// Environ returns the environment go build runs with.
func (c *Compiler) Environ() []string {
	env := append(os.Environ(), "GOOS=js", "GOARCH=wasm", "CGO_ENABLED=0")
	if c.config.CachePath != "" {
		env = append(env, "GOCACHE="+c.config.CachePath)
	}
	return append(env, c.config.Env...)
}

// Build compiles the configured package.
func (c *Compiler) Build(ctx context.Context) BuildResult {
	start := time.Now()

	if err := os.MkdirAll(filepath.Dir(c.config.OutputPath), 0o755); err != nil {
		return BuildResult{Duration: time.Since(start), Error: errors.New("E120").Wrap(err)}
	}
	if c.config.CachePath != "" {
		if err := os.MkdirAll(c.config.CachePath, 0o755); err != nil {
			return BuildResult{Duration: time.Since(start), Error: errors.New("E120").Wrap(err)}
		}
	}

	cmd := exec.CommandContext(ctx, c.config.GoBinary, c.Args()...)
	cmd.Dir = c.config.ProjectPath
	cmd.Env = c.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	duration := time.Since(start)

	output := stderr.String()
	if output == "" {
		output = stdout.String()
	}

	if err != nil {
		return BuildResult{
			Duration: duration,
			Output:   output,
			Error:    compileError(err, output),
		}
	}

	return BuildResult{
		Success:  true,
		Duration: duration,
		Output:   output,
	}
}

// GOROOT asks the go command for its GOROOT.
func (c *Compiler) GOROOT(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, c.config.GoBinary, "env", "GOROOT")
	out, err := cmd.Output()
	if err != nil {
		return "", compileError(err, "")
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", errors.New("E122").WithDetail("go env GOROOT printed nothing")
	}
	return root, nil
}

// OutputPath returns the path of the wasm binary.
func (c *Compiler) OutputPath() string {
	return c.config.OutputPath
}

func compileError(err error, output string) *errors.Error {
	var execErr *exec.Error
	if stderrors.As(err, &execErr) || stderrors.Is(err, fs.ErrNotExist) {
		return errors.New("E121").Wrap(err)
	}
	e := errors.New("E120").Wrap(err)
	if output != "" {
		e = e.WithDetail(strings.TrimSpace(output))
	}
	return e
}
