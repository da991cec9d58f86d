package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/eltkit/elt/internal/build"
)

func (c *cli) buildCmd() *cobra.Command {
	var (
		clean   bool
		tags    []string
		ldflags string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile the application to WebAssembly",
		Long: `Compile the application to main.wasm and write the browser bundle:
wasm_exec.js, index.html and manifest.json.

Examples:
  elt build
  elt build --clean --tags prod --ldflags "-s -w"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			b := build.New(cfg, build.Options{
				Tags:    tags,
				LDFlags: ldflags,
				OnProgress: func(step string) {
					c.info("%s", step)
				},
			})
			if clean {
				if err := b.Clean(); err != nil {
					return err
				}
				c.logger.Debug("cleaned output", "dir", cfg.OutputPath())
			}

			res, err := b.Build(cmd.Context())
			if err != nil {
				return err
			}
			if res.Output != "" {
				c.logger.Debug("compiler output", "output", res.Output)
			}
			for _, name := range res.Manifest.Files() {
				entry := res.Manifest[name]
				c.info("%-16s %8s  %s", name, formatBytes(entry.Size), entry.SHA256[:12])
			}
			c.success("Built %s in %s", cfg.OutputPath(), res.Duration.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clean, "clean", false, "Remove the output directory first")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Build tags (overrides build.tags)")
	cmd.Flags().StringVar(&ldflags, "ldflags", "", "Linker flags (overrides build.ldflags)")
	return cmd
}
