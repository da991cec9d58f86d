package main

import (
	"context"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/eltkit/elt"
	"github.com/eltkit/elt/dom"
	"github.com/eltkit/elt/dom/memdom"
	"github.com/eltkit/elt/internal/errors"
	"github.com/eltkit/elt/internal/metrics"
	"github.com/eltkit/elt/pkg/render"
	"github.com/eltkit/elt/pkg/tree"
)

type renderOptions struct {
	output   string
	pretty   bool
	page     bool
	title    string
	sanitize string
	stats    bool
}

func (c *cli) renderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render an element tree file to HTML",
		Long: `Render a YAML or JSON element tree to HTML.

Event props such as onclick are bound to no-op actions, so listeners are
registered but never appear in the output.

Examples:
  elt render counter.yaml
  elt render counter.yaml --pretty --page --title Counter -o counter.html
  elt render comment.yaml --sanitize ugc --stats`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write HTML to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent block elements")
	cmd.Flags().BoolVar(&opts.page, "page", false, "Wrap the tree in a complete HTML document")
	cmd.Flags().StringVar(&opts.title, "title", "", "Document title for --page")
	cmd.Flags().StringVar(&opts.sanitize, "sanitize", "", `Sanitize the output with a bluemonday policy ("ugc" or "strict")`)
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print builder metrics to stderr")
	return cmd
}

func (c *cli) runRender(ctx context.Context, file string, opts renderOptions) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	_, span := otel.Tracer("github.com/eltkit/elt/cmd/elt").Start(ctx, "render")
	span.SetAttributes(attribute.String("elt.file", file))
	defer span.End()

	root, err := tree.Load(file)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	b := elt.New(
		elt.WithDocument(memdom.NewDocument()),
		elt.WithObserver(metrics.NewObserver(metrics.WithRegistry(reg))),
		elt.WithLogger(c.logger),
	)

	actions := make(tree.Actions)
	for _, name := range root.ActionNames() {
		actions[name] = func(dom.Event) {
			c.logger.Debug("action fired", "action", name)
		}
	}
	node, err := root.Build(b, actions)
	if err != nil {
		return err
	}

	var w io.Writer = c.out
	if opts.output != "" {
		f, ferr := os.Create(opts.output)
		if ferr != nil {
			return errors.New("E180").Wrap(ferr)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	r := render.NewRenderer(render.Config{Pretty: opts.pretty, Sanitize: opts.sanitize})
	if opts.page {
		title := opts.title
		if title == "" {
			title = root.Tag
		}
		err = r.RenderPage(w, render.Page{Title: title, Body: []dom.Node{node}})
	} else {
		err = r.RenderToWriter(w, node)
		if err == nil && !opts.pretty {
			_, err = io.WriteString(w, "\n")
		}
	}
	if err != nil {
		return errors.New("E180").WithDetail("render").Wrap(err)
	}

	if opts.output != "" {
		c.logger.Info("rendered", "file", file, "output", opts.output)
	}
	if opts.stats {
		return writeStats(c.errOut, reg)
	}
	return nil
}

// writeStats writes the gathered metrics in the Prometheus text format.
func writeStats(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
