package build

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/eltkit/elt/internal/config"
	"github.com/eltkit/elt/internal/errors"
)

// ManifestFile is the name of the manifest written next to the bundle.
const ManifestFile = "manifest.json"

// Result contains the build output.
type Result struct {
	// Duration is how long the build took.
	Duration time.Duration

	// Output is the bundle directory.
	Output string

	// Wasm is the path to the compiled application.
	Wasm string

	// WasmSize is the size of the compiled application in bytes.
	WasmSize int64

	// Manifest lists the bundle files.
	Manifest Manifest
}

// Manifest maps bundle file names to their hash and size.
type Manifest map[string]ManifestEntry

// ManifestEntry describes one bundle file.
type ManifestEntry struct {
	SHA256 string `json:"sha256"`
	Size   int64  `json:"size"`
}

// Files returns the manifest file names in sorted order.
func (m Manifest) Files() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options configures the builder.
type Options struct {
	// Tags are build tags. Overrides build.tags when set.
	Tags []string

	// LDFlags are linker flags. Overrides build.ldflags when set.
	LDFlags string

	// GoBinary is the go command to run (default: "go").
	GoBinary string

	// GOROOT locates wasm_exec.js. Empty asks the go command.
	GOROOT string

	// OnProgress is called with progress updates.
	OnProgress func(step string)
}

// Builder produces the browser bundle.
type Builder struct {
	config   *config.Config
	options  Options
	compiler *Compiler
}

// New creates a new builder.
func New(cfg *config.Config, options Options) *Builder {
	if options.LDFlags == "" {
		options.LDFlags = cfg.Build.LDFlags
	}
	if len(options.Tags) == 0 {
		options.Tags = cfg.Build.Tags
	}

	return &Builder{
		config:  cfg,
		options: options,
		compiler: NewCompiler(CompilerConfig{
			ProjectPath: cfg.Dir(),
			Package:     cfg.PackagePath(),
			OutputPath:  filepath.Join(cfg.OutputPath(), WasmFile),
			Tags:        options.Tags,
			LDFlags:     options.LDFlags,
			GoBinary:    options.GoBinary,
		}),
	}
}

// Compiler returns the compiler used for main.wasm.
func (b *Builder) Compiler() *Compiler {
	return b.compiler
}

// Build compiles the application and writes the bundle.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()

	if err := b.config.Validate(); err != nil {
		return nil, err
	}
	outputDir := b.config.OutputPath()
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.New("E120").Wrap(err)
	}

	b.progress("Compiling " + WasmFile + "...")
	compiled := b.compiler.Build(ctx)
	if !compiled.Success {
		return nil, compiled.Error
	}

	if err := b.Assemble(ctx); err != nil {
		return nil, err
	}

	b.progress("Writing manifest...")
	manifest, err := WriteManifest(outputDir)
	if err != nil {
		return nil, errors.New("E120").Wrap(err)
	}

	return &Result{
		Duration: time.Since(start),
		Output:   outputDir,
		Wasm:     b.compiler.OutputPath(),
		WasmSize: manifest[WasmFile].Size,
		Manifest: manifest,
	}, nil
}

// Assemble copies wasm_exec.js and writes index.html into the output
// directory. It does not compile.
func (b *Builder) Assemble(ctx context.Context) error {
	outputDir := b.config.OutputPath()

	b.progress("Copying " + WasmExecFile + "...")
	goroot := b.options.GOROOT
	if goroot == "" {
		var err error
		if goroot, err = b.compiler.GOROOT(ctx); err != nil {
			return err
		}
	}
	src, err := FindWasmExec(goroot)
	if err != nil {
		return err
	}
	if _, err := copyFile(src, filepath.Join(outputDir, WasmExecFile)); err != nil {
		return errors.New("E120").Wrap(err)
	}

	b.progress("Writing " + IndexFile + "...")
	page, err := IndexPage(nil, b.config.Title())
	if err != nil {
		return err
	}
	if err := WriteIndex(filepath.Join(outputDir, IndexFile), page); err != nil {
		return errors.New("E120").Wrap(err)
	}
	return nil
}

// Clean removes the build output directory.
func (b *Builder) Clean() error {
	if err := b.config.Validate(); err != nil {
		return err
	}
	return os.RemoveAll(b.config.OutputPath())
}

func (b *Builder) progress(step string) {
	if b.options.OnProgress != nil {
		b.options.OnProgress(step)
	}
}

// WriteManifest hashes the regular files in dir and writes manifest.json.
func WriteManifest(dir string) (Manifest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	manifest := make(Manifest)
	for _, e := range entries {
		if !e.Type().IsRegular() || e.Name() == ManifestFile {
			continue
		}
		entry, err := hashFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		manifest[e.Name()] = entry
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, err
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), data, 0o644); err != nil {
		return nil, err
	}
	return manifest, nil
}

func hashFile(path string) (ManifestEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return ManifestEntry{}, err
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return ManifestEntry{}, err
	}
	return ManifestEntry{SHA256: hex.EncodeToString(h.Sum(nil)), Size: n}, nil
}
