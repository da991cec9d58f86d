// Package build produces the browser bundle of an elt application.
//
// The bundle is written to the configured output directory:
//
//	dist/
//	├── main.wasm       # GOOS=js GOARCH=wasm build of build.package
//	├── wasm_exec.js    # Go's JavaScript support file, copied from GOROOT
//	├── index.html      # host page that boots main.wasm
//	└── manifest.json   # file hashes and sizes
//
// # Usage
//
//	b := build.New(cfg, build.Options{})
//	result, err := b.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Built in %s\n", result.Duration)
//	fmt.Printf("Wasm: %s (%d bytes)\n", result.Wasm, result.WasmSize)
//
// The development server reuses the Compiler for incremental rebuilds and
// IndexPage for the page it serves.
package build
