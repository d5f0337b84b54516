package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openpitch/field-booking/internal/config"
)

const pictureFolder = "fields"

// PictureStore uploads normalized field pictures to S3 and hands back
// the object key stored on the field record.
type PictureStore struct {
	uploader *manager.Uploader
	bucket   string
	log      *zap.Logger
}

// NewPictureStore returns nil when S3 is not configured; the picture
// upload endpoint then reports storage as disabled.
func NewPictureStore(ctx context.Context, cfg *config.Config, log *zap.Logger) *PictureStore {
	if cfg.AWSRegion == "" || cfg.PicturesBucket == "" {
		return nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Warn("s3 disabled", zap.Error(err))
		return nil
	}

	client := s3.NewFromConfig(awsCfg)
	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = 5 * 1024 * 1024
	})

	return &PictureStore{
		uploader: uploader,
		bucket:   cfg.PicturesBucket,
		log:      log,
	}
}

// UploadPicture stores an already-normalized webp payload under a fresh
// object key and returns the key.
func (s *PictureStore) UploadPicture(ctx context.Context, fieldID uint, payload []byte) (string, error) {
	key := fmt.Sprintf("%s/%d/%s.webp", pictureFolder, fieldID, uuid.NewString())

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("upload picture: %w", err)
	}

	return key, nil
}
