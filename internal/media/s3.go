// Package media issues presigned S3 URLs for tile image upload and viewing.
// The bucket never serves objects publicly; every read goes through a
// short-lived signed URL minted at request time.
package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

const (
	maxUploadBytes = 5 * 1024 * 1024
	uploadTTL      = 60 * time.Second
	viewTTL        = time.Hour
)

// extensionByMIME doubles as the allowed-content-type whitelist.
var extensionByMIME = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
}

// UploadRequest describes the file an admin wants to upload.
type UploadRequest struct {
	Filename      string
	ContentType   string
	ContentLength int64
}

// UploadGrant carries everything the browser needs to PUT the file and
// preview it.
type UploadGrant struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	ViewURL   string `json:"viewUrl"`
	Key       string `json:"key"`
}

// presignAPI is the slice of s3.PresignClient this package uses; tests
// substitute a fake.
type presignAPI interface {
	PresignPutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type Client struct {
	presigner presignAPI
	bucket    string
	region    string
}

func New(ctx context.Context, region, bucket string) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("media.New: load aws config: %w", err)
	}

	log.Info().Str("bucket", bucket).Str("region", region).Msg("media: S3 client initialized")

	return &Client{
		presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		bucket:    bucket,
		region:    region,
	}, nil
}

// CreateUploadURL validates the upload and returns a presigned PUT grant
// plus a view URL for immediate preview.
func (c *Client) CreateUploadURL(ctx context.Context, req UploadRequest) (*UploadGrant, error) {
	ext, ok := extensionByMIME[req.ContentType]
	if !ok {
		return nil, fmt.Errorf("media.CreateUploadURL: content type %q not allowed: %w", req.ContentType, domain.ErrValidation)
	}
	if req.ContentLength <= 0 || req.ContentLength > maxUploadBytes {
		return nil, fmt.Errorf("media.CreateUploadURL: file size %d exceeds %dMB limit: %w",
			req.ContentLength, maxUploadBytes/1024/1024, domain.ErrValidation)
	}

	key := uuid.NewString() + "." + ext

	put, err := c.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		ContentType:   aws.String(req.ContentType),
		ContentLength: aws.Int64(req.ContentLength),
	}, s3.WithPresignExpires(uploadTTL))
	if err != nil {
		return nil, fmt.Errorf("media.CreateUploadURL: presign put: %w", err)
	}

	viewURL, err := c.MintViewURL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("media.CreateUploadURL: %w", err)
	}

	return &UploadGrant{
		UploadURL: put.URL,
		PublicURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key),
		ViewURL:   viewURL,
		Key:       key,
	}, nil
}

// MintViewURL presigns a GET for a stored reference. The reference may be a
// bare object key or a full bucket URL left over from older records; either
// way only the key is signed.
func (c *Client) MintViewURL(ctx context.Context, keyOrURL string) (string, error) {
	key := extractKey(keyOrURL)

	get, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(viewTTL))
	if err != nil {
		return "", fmt.Errorf("media.MintViewURL: %w", err)
	}

	return get.URL, nil
}

// extractKey reduces a stored reference to the bare object key: bucket-URL
// prefixes and query-string signatures are both stripped.
func extractKey(keyOrURL string) string {
	key := keyOrURL
	if strings.HasPrefix(key, "http") {
		if _, after, found := strings.Cut(key, ".amazonaws.com/"); found {
			key = after
		}
	}
	key, _, _ = strings.Cut(key, "?")
	return key
}
