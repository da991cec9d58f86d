package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eltkit/elt/internal/config"
	"github.com/eltkit/elt/internal/errors"
)

func (c *cli) initCmd() *cobra.Command {
	var (
		dir   string
		pkg   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Create elt.json",
		Long: `Create elt.json with default settings.

Examples:
  elt init counter
  elt init counter --package ./cmd/counter --dir web`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.Exists(dir) && !force {
				return errors.New("E180").
					WithDetailf("%s already exists in %s", config.ConfigFileName, dir).
					WithSuggestion("Pass --force to overwrite it")
			}

			cfg := config.New()
			if len(args) == 1 {
				cfg.Name = args[0]
			} else if abs, err := filepath.Abs(dir); err == nil {
				cfg.Name = filepath.Base(abs)
			}
			if pkg != "" {
				cfg.Build.Package = pkg
			}

			path := filepath.Join(dir, config.ConfigFileName)
			if err := cfg.SaveTo(path); err != nil {
				return err
			}
			c.success("Created %s", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Project directory")
	cmd.Flags().StringVarP(&pkg, "package", "p", "", "Package compiled to main.wasm")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing elt.json")
	return cmd
}
