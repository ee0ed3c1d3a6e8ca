package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

// S3Options holds the connection settings of an S3-compatible endpoint.
type S3Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// S3Service is a client for S3-compatible storage.
type S3Service struct {
	client *minio.Client
}

// NewS3Service connects to the MinIO server described by opts.
func NewS3Service(opts S3Options) (*S3Service, error) {
	if opts.Endpoint == "" || opts.AccessKey == "" || opts.SecretKey == "" {
		return nil, fmt.Errorf("storage: missing one or more required settings: MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY")
	}

	minioClient, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to create MinIO client: %w", err)
	}

	log.Info().Str("endpoint", opts.Endpoint).Msg("connected to MinIO endpoint")
	return &S3Service{client: minioClient}, nil
}

func (s *S3Service) CreateBucket(ctx context.Context, bucketName string, location string) (bool, error) {
	exists, err := s.client.BucketExists(ctx, bucketName)
	if err != nil {
		return false, fmt.Errorf("error checking bucket existence: %w", err)
	}
	if !exists {
		err = s.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			return false, err
		}
	}
	return true, nil
}

// KV exposes bucketName as a namespace store, one object per namespace.
func (s *S3Service) KV(bucketName string) *S3KV {
	return &S3KV{svc: s, bucket: bucketName}
}

// S3KV is the KV view of a single bucket.
type S3KV struct {
	svc    *S3Service
	bucket string
}

func (k *S3KV) Get(ctx context.Context, namespace string) ([]byte, error) {
	object, err := k.svc.client.GetObject(ctx, k.bucket, objectKey(namespace), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to get object from S3: %w", err)
	}
	defer object.Close()

	blob, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: read object %q: %w", namespace, err)
	}
	return blob, nil
}

func (k *S3KV) Set(ctx context.Context, namespace string, blob []byte) error {
	_, err := k.svc.client.PutObject(
		ctx,
		k.bucket,
		objectKey(namespace),
		bytes.NewReader(blob),
		int64(len(blob)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("storage: failed to store object in S3: %w", err)
	}
	log.Debug().Str("bucket", k.bucket).Str("namespace", namespace).Int("bytes", len(blob)).Msg("stored namespace")
	return nil
}

func (k *S3KV) Close() error { return nil }

// objectKey maps a namespace to its object path.
func objectKey(namespace string) string {
	namespace = strings.ReplaceAll(namespace, " ", "-")
	return "kv/" + strings.ToLower(namespace) + ".json"
}
