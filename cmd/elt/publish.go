package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/eltkit/elt/internal/publish"
)

func (c *cli) publishCmd() *cobra.Command {
	var opts publish.Options

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the build output to S3",
		Long: `Upload the build output directory to an S3 bucket.

Assets are uploaded first and in parallel. index.html and manifest.json
follow with Cache-Control: no-cache, so visitors never load an entry
page that points at missing files.

Credentials and the default region come from the AWS shared
configuration and environment.

Examples:
  elt publish --bucket my-site
  elt publish --bucket my-site --prefix apps/counter --dry-run
  elt publish --endpoint http://localhost:9000 --bucket local`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			opts.OnUpload = func(o publish.Object) {
				c.logger.Debug("uploaded", "key", o.Key, "bytes", o.Size)
			}
			p, err := publish.New(cfg, opts)
			if err != nil {
				return err
			}

			res, err := p.Publish(cmd.Context())
			if err != nil {
				return err
			}
			for _, o := range res.Objects {
				c.info("%-40s %8s  %s", o.Key, formatBytes(o.Size), o.ContentType)
			}
			if res.DryRun {
				c.warn("Dry run: %d objects (%s) not uploaded to %s", len(res.Objects), formatBytes(res.Bytes), res.Bucket)
				return nil
			}
			c.success("Published %d objects (%s) to %s in %s",
				len(res.Objects), formatBytes(res.Bytes), res.Bucket, res.Duration.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Bucket, "bucket", "", "Bucket name (overrides publish.bucket)")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "Key prefix (overrides publish.prefix)")
	cmd.Flags().StringVar(&opts.Region, "region", "", "AWS region (overrides publish.region)")
	cmd.Flags().StringVar(&opts.Endpoint, "endpoint", "", "S3 compatible endpoint URL")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "List the objects without uploading")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", publish.DefaultConcurrency, "Parallel uploads")
	return cmd
}
