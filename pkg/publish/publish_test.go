package publish

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/render"
)

// fakeS3 captures PutObject calls.
type fakeS3 struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = params
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = string(data)
	return &s3.PutObjectOutput{}, nil
}

func testDoc(t *testing.T) *dom.Document {
	t.Helper()
	doc := dom.NewDocument()
	if err := doc.SetTitle("Published"); err != nil {
		t.Fatalf("SetTitle error: %v", err)
	}
	return doc
}

func TestPublish(t *testing.T) {
	fake := &fakeS3{}
	pub := NewS3Publisher(fake, "site-bucket", "site/")

	key, err := pub.Publish(context.Background(), "index.html", testDoc(t))
	if err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if key != "site/index.html" {
		t.Errorf("key = %q, want site/index.html", key)
	}
	if got := *fake.input.Bucket; got != "site-bucket" {
		t.Errorf("bucket = %q", got)
	}
	if got := *fake.input.Key; got != "site/index.html" {
		t.Errorf("object key = %q", got)
	}
	if got := *fake.input.ContentType; got != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", got)
	}
	if !strings.HasPrefix(fake.body, "<!DOCTYPE\thtml>") {
		t.Errorf("uploaded body = %q", fake.body)
	}
	if !strings.Contains(fake.body, "<title>Published</title>") {
		t.Errorf("uploaded body missing title: %q", fake.body)
	}
	if fake.input.Metadata["generator"] != "domkit" {
		t.Error("generator metadata not set")
	}
}

func TestPublishElement(t *testing.T) {
	fake := &fakeS3{}
	pub := NewS3Publisher(fake, "site-bucket", "")

	div, err := dom.NewElement("div")
	if err != nil {
		t.Fatalf("NewElement error: %v", err)
	}
	if err := div.Append("fragment"); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	key, err := pub.PublishElement(context.Background(), "fragment.html", div)
	if err != nil {
		t.Fatalf("PublishElement error: %v", err)
	}
	if key != "fragment.html" {
		t.Errorf("key = %q", key)
	}
	if fake.body != "<div>fragment</div>" {
		t.Errorf("uploaded body = %q", fake.body)
	}
}

func TestPublishWithRenderer(t *testing.T) {
	fake := &fakeS3{}
	pub := NewS3Publisher(fake, "b", "").
		WithRenderer(render.NewRenderer(render.RendererConfig{Pretty: true}))

	if _, err := pub.Publish(context.Background(), "index.html", testDoc(t)); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if !strings.Contains(fake.body, "\n") {
		t.Error("pretty renderer not used")
	}
}

func TestPublishErrors(t *testing.T) {
	pub := NewS3Publisher(&fakeS3{}, "b", "")
	if _, err := pub.Publish(context.Background(), "  ", testDoc(t)); err == nil {
		t.Error("Publish with blank key = nil error")
	}

	failing := NewS3Publisher(&fakeS3{err: errors.New("denied")}, "b", "")
	if _, err := failing.Publish(context.Background(), "index.html", testDoc(t)); err == nil {
		t.Error("Publish with failing client = nil error")
	}
}
