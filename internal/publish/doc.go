// Package publish uploads a built bundle to an S3 bucket.
//
//	p, err := publish.New(cfg, publish.Options{})
//	if err != nil {
//	    return err
//	}
//	result, err := p.Publish(ctx)
//
// Objects are keyed by publish.prefix plus their path below build.output.
// index.html and manifest.json are uploaded last and are never cached, so
// a browser loading the new page finds the new main.wasm. Credentials
// come from the AWS shared configuration and environment.
package publish
