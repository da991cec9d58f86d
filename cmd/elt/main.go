// Command elt renders element trees and builds, serves and publishes elt
// applications.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/eltkit/elt/internal/config"
	"github.com/eltkit/elt/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	c := &cli{out: stdout, errOut: stderr}
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		// Flag and argument errors from cobra are not coded.
		e := errors.FromError(err, "E180")
		if c.json {
			fmt.Fprintln(stderr, e.FormatJSON())
		} else {
			errors.Fprint(stderr, e)
		}
		return 1
	}
	return 0
}

// cli holds the state shared by all commands.
type cli struct {
	out    io.Writer
	errOut io.Writer

	verbose    bool
	noColor    bool
	json       bool
	configPath string

	logger *slog.Logger
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "elt",
		Short: "Build DOM element trees in Go",
		Long: `elt builds DOM elements from a tag, ordered properties and children.

The elt command renders element tree files to HTML and builds, serves
and publishes applications compiled to WebAssembly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.noColor {
				errors.DisableColors()
			}
			level := slog.LevelInfo
			if c.verbose {
				level = slog.LevelDebug
			}
			opts := &slog.HandlerOptions{Level: level}
			if c.json {
				c.logger = slog.New(slog.NewJSONHandler(c.errOut, opts))
			} else {
				c.logger = slog.New(slog.NewTextHandler(c.errOut, opts))
			}
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().BoolVar(&c.json, "json", false, "Write logs and errors as JSON")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to elt.json (default: search from the working directory)")

	root.AddCommand(
		c.initCmd(),
		c.renderCmd(),
		c.buildCmd(),
		c.devCmd(),
		c.publishCmd(),
		c.versionCmd(),
	)
	return root
}

// loadConfig reads --config, or elt.json found from the working directory.
func (c *cli) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFile(c.configPath)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	styleSuccess = color.New(color.FgGreen)
	styleWarn    = color.New(color.FgYellow)
)

// success prints a success message.
func (c *cli) success(format string, args ...any) {
	fmt.Fprintf(c.out, "%s %s\n", styleSuccess.Sprint("✓"), fmt.Sprintf(format, args...))
}

// info prints an indented message.
func (c *cli) info(format string, args ...any) {
	fmt.Fprintf(c.out, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func (c *cli) warn(format string, args ...any) {
	fmt.Fprintf(c.out, "%s %s\n", styleWarn.Sprint("!"), fmt.Sprintf(format, args...))
}

// formatBytes formats a size in bytes for display.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGT"[exp])
}
