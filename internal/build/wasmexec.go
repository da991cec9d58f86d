package build

import (
	"io"
	"os"
	"path/filepath"

	"github.com/eltkit/elt/internal/errors"
)

// WasmExecFile is the name of Go's JavaScript support file.
const WasmExecFile = "wasm_exec.js"

// wasmExecDirs are the GOROOT locations of wasm_exec.js, newest first.
var wasmExecDirs = []string{
	filepath.Join("lib", "wasm"),
	filepath.Join("misc", "wasm"),
}

// FindWasmExec returns the path of wasm_exec.js under goroot.
func FindWasmExec(goroot string) (string, error) {
	for _, dir := range wasmExecDirs {
		p := filepath.Join(goroot, dir, WasmExecFile)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", errors.New("E122").
		WithDetailf("searched %s", goroot).
		WithSuggestion("Check that GOROOT points to a complete Go installation")
}

// copyFile copies src to dst and returns the number of bytes written.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return n, err
}
