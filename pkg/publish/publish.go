// Package publish uploads rendered documents to object storage.
//
// The publisher renders a dom.Document to markup and writes it to S3 with
// the right content type, for static-site style deployment:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	pub := publish.NewS3Publisher(s3.NewFromConfig(cfg), "my-bucket", "site/")
//	key, err := pub.Publish(ctx, "index.html", doc)
package publish

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/render"
)

// PutObjectAPI is the slice of the S3 client the publisher needs.
// *s3.Client satisfies it.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher writes rendered documents to an S3 bucket.
type S3Publisher struct {
	client   PutObjectAPI
	bucket   string
	prefix   string
	renderer *render.Renderer
}

// NewS3Publisher creates a publisher for the given bucket. The prefix is
// prepended to every object key (e.g. "site/").
func NewS3Publisher(client PutObjectAPI, bucket, prefix string) *S3Publisher {
	return &S3Publisher{
		client:   client,
		bucket:   bucket,
		prefix:   prefix,
		renderer: render.NewRenderer(render.RendererConfig{}),
	}
}

// WithRenderer overrides the renderer, e.g. for pretty output.
func (p *S3Publisher) WithRenderer(r *render.Renderer) *S3Publisher {
	p.renderer = r
	return p
}

// Publish renders the document and uploads it under prefix+key. It returns
// the full object key written.
func (p *S3Publisher) Publish(ctx context.Context, key string, doc *dom.Document) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("publish: empty object key")
	}

	var buf bytes.Buffer
	if err := p.renderer.RenderDocument(&buf, doc); err != nil {
		return "", fmt.Errorf("publish: rendering document: %w", err)
	}

	fullKey := p.prefix + key
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(fullKey),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("text/html; charset=utf-8"),
		Metadata: map[string]string{
			"generator":    "domkit",
			"publish-time": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("publish: s3 upload failed: %w", err)
	}

	return fullKey, nil
}

// PublishElement renders a bare element tree (no doctype) under prefix+key.
// Useful for fragments included by other pages.
func (p *S3Publisher) PublishElement(ctx context.Context, key string, e *dom.Element) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("publish: empty object key")
	}

	var buf bytes.Buffer
	if err := p.renderer.RenderToWriter(&buf, e); err != nil {
		return "", fmt.Errorf("publish: rendering element: %w", err)
	}

	fullKey := p.prefix + key
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(fullKey),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("text/html; charset=utf-8"),
		Metadata: map[string]string{
			"generator":    "domkit",
			"publish-time": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("publish: s3 upload failed: %w", err)
	}

	return fullKey, nil
}
