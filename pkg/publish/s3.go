package publish

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3API is the slice of the S3 client the target uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Target publishes files to an S3 bucket.
//
// Example:
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil {
//	    return err
//	}
//	target := publish.NewS3Target(s3.NewFromConfig(cfg), "my-site",
//	    publish.WithPrefix("docs/"),
//	)
type S3Target struct {
	api    s3API
	bucket string
	prefix string
	acl    types.ObjectCannedACL
}

// S3Option configures an S3Target.
type S3Option func(*S3Target)

// WithPrefix prepends a key prefix to every published path.
func WithPrefix(prefix string) S3Option {
	return func(t *S3Target) {
		t.prefix = prefix
	}
}

// WithACL sets the canned ACL applied to published objects.
func WithACL(acl types.ObjectCannedACL) S3Option {
	return func(t *S3Target) {
		t.acl = acl
	}
}

// NewS3Target creates a target publishing to bucket with the given client.
func NewS3Target(client *s3.Client, bucket string, opts ...S3Option) *S3Target {
	return newS3Target(client, bucket, opts...)
}

func newS3Target(api s3API, bucket string, opts ...S3Option) *S3Target {
	t := &S3Target{api: api, bucket: bucket}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Put uploads data under the prefixed key.
func (t *S3Target) Put(ctx context.Context, path string, data []byte, contentType string) error {
	key := t.prefix + path

	input := &s3.PutObjectInput{
		Bucket:      aws.String(t.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}
	if t.acl != "" {
		input.ACL = t.acl
	}

	if _, err := t.api.PutObject(ctx, input); err != nil {
		return fmt.Errorf("s3 put %s: %w", key, err)
	}
	return nil
}
