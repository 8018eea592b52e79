// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage publishes an exported site to S3-compatible object
// storage. It wraps the AWS SDK v2 and uses path-style access whenever a
// custom endpoint is configured (CEPH, Hetzner, R2, MinIO).
package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// maxDeleteBatch is the S3 limit on keys per DeleteObjects call.
const maxDeleteBatch = 1000

// objectAPI is the part of the S3 client the publisher uses.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObjects(ctx context.Context, in *s3.DeleteObjectsInput, opts ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, opts ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Client uploads site files into one bucket under a key prefix.
type Client struct {
	s3     objectAPI
	bucket string
	prefix string
}

// New creates an S3 client with static credentials. Returns (nil, nil) if
// the bucket or credentials are empty, so exports work without storage.
func New(endpoint, region, accessKey, secretKey, bucket, prefix string) (*Client, error) {
	if bucket == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	opts := s3.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	}
	if endpoint != "" {
		opts.BaseEndpoint = aws.String(strings.TrimRight(endpoint, "/"))
		opts.UsePathStyle = true
	}

	return newClient(s3.New(opts), bucket, prefix), nil
}

func newClient(api objectAPI, bucket, prefix string) *Client {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &Client{s3: api, bucket: bucket, prefix: prefix}
}

// Bucket returns the target bucket name.
func (c *Client) Bucket() string {
	return c.bucket
}

// Upload stores one object with the given content type and cache policy.
func (c *Client) Upload(ctx context.Context, key, contentType, cacheControl string, body io.Reader, size int64) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String(cacheControl),
	})
	if err != nil {
		return fmt.Errorf("s3 upload %s/%s: %w", c.bucket, key, err)
	}
	return nil
}

// PublishResult counts the objects touched by Publish.
type PublishResult struct {
	Uploaded int
	Deleted  int
}

// Publish uploads files, given relative to dir in slash form, then deletes
// objects under the prefix that are not among them. Other files in dir are
// not published. progress, if not nil, is called with the key of each
// uploaded object.
func (c *Client) Publish(ctx context.Context, dir string, files []string, progress func(key string)) (PublishResult, error) {
	var res PublishResult
	keep := make(map[string]bool, len(files))

	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		key := c.Key(rel)
		if err := c.uploadFile(ctx, filepath.Join(dir, filepath.FromSlash(rel)), key); err != nil {
			return res, err
		}
		keep[key] = true
		res.Uploaded++
		if progress != nil {
			progress(key)
		}
	}

	stale, err := c.staleKeys(ctx, keep)
	if err != nil {
		return res, err
	}
	for len(stale) > 0 {
		n := min(len(stale), maxDeleteBatch)
		if err := c.deleteBatch(ctx, stale[:n]); err != nil {
			return res, err
		}
		res.Deleted += n
		stale = stale[n:]
	}
	return res, nil
}

// Key returns the object key for a path relative to the export root.
func (c *Client) Key(rel string) string {
	return c.prefix + strings.TrimPrefix(rel, "/")
}

func (c *Client) uploadFile(ctx context.Context, p, key string) error {
	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}
	return c.Upload(ctx, key, ContentType(key), CacheControl(key), f, info.Size())
}

func (c *Client) staleKeys(ctx context.Context, keep map[string]bool) ([]string, error) {
	var stale []string
	pages := s3.NewListObjectsV2Paginator(c.s3, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(c.prefix),
	})
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 list %s/%s: %w", c.bucket, c.prefix, err)
		}
		for _, obj := range page.Contents {
			if key := aws.ToString(obj.Key); !keep[key] {
				stale = append(stale, key)
			}
		}
	}
	return stale, nil
}

func (c *Client) deleteBatch(ctx context.Context, keys []string) error {
	ids := make([]s3types.ObjectIdentifier, len(keys))
	for i, k := range keys {
		ids[i] = s3types.ObjectIdentifier{Key: aws.String(k)}
	}
	_, err := c.s3.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(c.bucket),
		Delete: &s3types.Delete{Objects: ids, Quiet: aws.Bool(true)},
	})
	if err != nil {
		return fmt.Errorf("s3 delete %d objects from %s: %w", len(keys), c.bucket, err)
	}
	return nil
}

// ContentType guesses the MIME type of an exported file from its name.
func ContentType(name string) string {
	switch path.Ext(name) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".xml":
		return "application/xml; charset=utf-8"
	case ".txt":
		return "text/plain; charset=utf-8"
	}
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}

// CacheControl picks the cache policy for an exported file. Pages change
// with every export; assets may be cached for longer.
func CacheControl(name string) string {
	if strings.HasPrefix(name, "static/") || strings.Contains(name, "/static/") {
		return "public, max-age=86400"
	}
	return "public, max-age=300"
}
