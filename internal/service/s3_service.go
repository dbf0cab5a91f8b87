package service

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"multipoles-backend/config"
	"multipoles-backend/internal/model"
	"multipoles-backend/internal/util"
)

const presignTTL = 15 * time.Minute

// S3Service hands out pre-signed upload and download URLs so the
// dashboard talks to object storage directly. The server never proxies
// file bodies.
type S3Service struct {
	client    *s3.Client
	psClient  *s3.PresignClient
	bucket    string
	publicURL string
}

func NewS3Service(ctx context.Context, cfg *config.S3Config) (*S3Service, error) {
	var client *s3.Client

	if cfg.Local {
		// Local development runs against minio with path-style
		// addressing and static credentials.
		client = s3.New(s3.Options{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
			BaseEndpoint: aws.String(cfg.Endpoint),
			UsePathStyle: true,
		})

		if err := createBucketIfNotExists(ctx, client, cfg.Bucket); err != nil {
			return nil, util.LogError("[S3Service] failed to prepare bucket", err)
		}
	} else {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, util.LogError("[S3Service] failed to load AWS config", err)
		}
		client = s3.NewFromConfig(awsCfg)
	}

	return &S3Service{
		client:    client,
		psClient:  s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

func createBucketIfNotExists(ctx context.Context, client *s3.Client, bucket string) error {
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err == nil {
		return nil
	}

	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return util.LogError("[S3Service] failed to create bucket", err)
	}

	log.Printf("[S3Service] bucket %s created", bucket)
	return nil
}

// PresignUpload issues a pre-signed PUT URL for a new object under the
// given folder. The object key is randomized to keep uploads from
// clobbering each other.
func (s *S3Service) PresignUpload(ctx context.Context, folder, filename string) (*model.UploadTarget, error) {
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), path.Ext(filename))

	req, err := s.psClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = presignTTL
	})
	if err != nil {
		return nil, util.LogError("[S3Service] failed to presign PUT URL", err)
	}

	return &model.UploadTarget{
		UploadURL: req.URL,
		FileURL:   fmt.Sprintf("%s/%s", s.publicURL, key),
		Key:       key,
	}, nil
}

// PresignDownload issues a pre-signed GET URL for an existing object.
func (s *S3Service) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := s.psClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = presignTTL
	})
	if err != nil {
		return "", util.LogError("[S3Service] failed to presign GET URL", err)
	}
	return req.URL, nil
}

// DeleteByURL removes the object a public file URL points at. URLs
// outside our bucket's public prefix are ignored.
func (s *S3Service) DeleteByURL(ctx context.Context, fileURL string) error {
	if s.publicURL == "" || !strings.HasPrefix(fileURL, s.publicURL+"/") {
		return nil
	}
	key := strings.TrimPrefix(fileURL, s.publicURL+"/")

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return util.LogError("[S3Service] failed to delete object", err)
	}
	return nil
}
