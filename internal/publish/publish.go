package publish

import (
	"context"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/eltkit/elt/internal/build"
	"github.com/eltkit/elt/internal/config"
	"github.com/eltkit/elt/internal/errors"
)

const tracerName = "github.com/eltkit/elt/internal/publish"

// noCache is the Cache-Control of entry files.
const noCache = "no-cache"

// DefaultConcurrency is the number of parallel uploads.
const DefaultConcurrency = 4

// Client is the part of the S3 API the publisher uses. *s3.Client
// implements it.
type Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Options configures a publish run. Empty fields fall back to the
// publish section of the config.
type Options struct {
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string

	// DryRun plans the upload without contacting S3.
	DryRun bool

	// Concurrency bounds parallel uploads (default: DefaultConcurrency).
	Concurrency int

	// Client overrides the S3 client built from the AWS configuration.
	Client Client

	// OnUpload is called after each object is stored.
	OnUpload func(Object)
}

// Object is one file to upload.
type Object struct {
	Key          string
	Path         string
	Size         int64
	ContentType  string
	CacheControl string
}

// Result summarises a publish run.
type Result struct {
	Bucket   string
	Objects  []Object
	Bytes    int64
	Duration time.Duration
	DryRun   bool
}

// Publisher uploads the build output directory.
type Publisher struct {
	dir          string
	cacheControl string
	options      Options
}

// New creates a publisher. It fails with E161 when no bucket is set.
func New(cfg *config.Config, options Options) (*Publisher, error) {
	if options.Bucket == "" {
		options.Bucket = cfg.Publish.Bucket
	}
	if options.Prefix == "" {
		options.Prefix = cfg.Publish.Prefix
	}
	if options.Region == "" {
		options.Region = cfg.Publish.Region
	}
	if options.Endpoint == "" {
		options.Endpoint = cfg.Publish.Endpoint
	}
	if options.Concurrency <= 0 {
		options.Concurrency = DefaultConcurrency
	}
	options.Prefix = strings.Trim(options.Prefix, "/")

	if options.Bucket == "" {
		return nil, errors.New("E161")
	}
	return &Publisher{
		dir:          cfg.OutputPath(),
		cacheControl: cfg.Publish.CacheControl,
		options:      options,
	}, nil
}

// Plan lists the objects to upload. Entry files come last.
func (p *Publisher) Plan() ([]Object, error) {
	if info, err := os.Stat(p.dir); err != nil || !info.IsDir() {
		return nil, errors.New("E160").
			WithDetailf("no build output in %s", p.dir).
			WithSuggestion("Run elt build first")
	}

	var objects []Object
	err := filepath.WalkDir(p.dir, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(p.dir, file)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		cacheControl := p.cacheControl
		if isEntry(rel) {
			cacheControl = noCache
		}
		objects = append(objects, Object{
			Key:          p.key(rel),
			Path:         file,
			Size:         info.Size(),
			ContentType:  ContentType(rel),
			CacheControl: cacheControl,
		})
		return nil
	})
	if err != nil {
		return nil, errors.New("E160").Wrap(err)
	}

	sort.SliceStable(objects, func(i, j int) bool {
		ei, ej := isEntry(objects[i].Key), isEntry(objects[j].Key)
		if ei != ej {
			return ej
		}
		return objects[i].Key < objects[j].Key
	})
	return objects, nil
}

// Publish uploads the planned objects. Assets are uploaded in parallel
// before the entry files.
func (p *Publisher) Publish(ctx context.Context) (*Result, error) {
	start := time.Now()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "publish")
	defer span.End()
	span.SetAttributes(
		attribute.String("s3.bucket", p.options.Bucket),
		attribute.Bool("publish.dry_run", p.options.DryRun),
	)

	objects, err := p.Plan()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	result := &Result{
		Bucket:  p.options.Bucket,
		Objects: objects,
		DryRun:  p.options.DryRun,
	}
	for _, o := range objects {
		result.Bytes += o.Size
	}
	span.SetAttributes(attribute.Int("publish.objects", len(objects)))

	if !p.options.DryRun {
		client := p.options.Client
		if client == nil {
			if client, err = NewClient(ctx, p.options.Region, p.options.Endpoint); err != nil {
				span.SetStatus(codes.Error, err.Error())
				return nil, err
			}
		}
		if err := p.upload(ctx, client, objects); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

func (p *Publisher) upload(ctx context.Context, client Client, objects []Object) error {
	split := len(objects)
	for i, o := range objects {
		if isEntry(o.Key) {
			split = i
			break
		}
	}

	var mu sync.Mutex
	put := func(ctx context.Context, o Object) error {
		if err := putObject(ctx, client, p.options.Bucket, o); err != nil {
			return err
		}
		if p.options.OnUpload != nil {
			mu.Lock()
			p.options.OnUpload(o)
			mu.Unlock()
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.options.Concurrency)
	for _, o := range objects[:split] {
		g.Go(func() error { return put(gctx, o) })
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, o := range objects[split:] {
		if err := put(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

func putObject(ctx context.Context, client Client, bucket string, o Object) error {
	f, err := os.Open(o.Path)
	if err != nil {
		return errors.New("E160").Wrap(err)
	}
	defer f.Close()

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(o.Key),
		Body:          f,
		ContentLength: aws.Int64(o.Size),
		ContentType:   aws.String(o.ContentType),
		CacheControl:  aws.String(o.CacheControl),
	})
	if err != nil {
		return errors.New("E160").WithDetailf("put s3://%s/%s", bucket, o.Key).Wrap(err)
	}
	return nil
}

// NewClient creates an S3 client from the AWS shared configuration. A
// non-empty endpoint selects an S3 compatible service with path-style
// addressing.
func NewClient(ctx context.Context, region, endpoint string) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.New("E160").WithDetail("load AWS configuration").Wrap(err)
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func (p *Publisher) key(rel string) string {
	if p.options.Prefix == "" {
		return rel
	}
	return path.Join(p.options.Prefix, rel)
}

// isEntry reports whether key names a file browsers fetch first.
func isEntry(key string) bool {
	switch path.Base(key) {
	case build.IndexFile, build.ManifestFile:
		return true
	}
	return false
}

// ContentType returns the MIME type for name.
func ContentType(name string) string {
	ext := strings.ToLower(path.Ext(name))
	switch ext {
	case ".wasm":
		return "application/wasm"
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".json":
		return "application/json"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
