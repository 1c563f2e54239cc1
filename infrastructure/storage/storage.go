package storage

//go:generate mockgen -source=storage.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/config"
	"github.com/vfg2006/adcreative-api/pkg/utils"
)

type UploadedImage struct {
	Path      string `json:"path"`
	PublicURL string `json:"public_url"`
}

type ImageStorage interface {
	UploadImage(ctx context.Context, fileName, contentType string, body io.Reader) (*UploadedImage, error)
	DeleteImage(ctx context.Context, path string) error
}

type Storage struct {
	client *s3.Client
	cfg    config.Storage
	now    func() time.Time
}

func New(ctx context.Context, cfg config.Storage) (*Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar configuração do storage")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	return NewWithClient(client, cfg), nil
}

func NewWithClient(client *s3.Client, cfg config.Storage) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
		now:    time.Now,
	}
}

// UploadImage grava a imagem com um nome único e devolve a URL pública
func (s *Storage) UploadImage(ctx context.Context, fileName, contentType string, body io.Reader) (*UploadedImage, error) {
	key, err := s.objectKey(fileName)
	if err != nil {
		return nil, err
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		logrus.WithError(err).WithField("key", key).Error("erro ao enviar imagem para o storage")
		return nil, errors.Wrap(err, "erro ao enviar imagem")
	}

	return &UploadedImage{
		Path:      key,
		PublicURL: s.PublicURL(key),
	}, nil
}

func (s *Storage) DeleteImage(ctx context.Context, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return errors.Wrap(err, "erro ao remover imagem")
	}

	return nil
}

func (s *Storage) PublicURL(key string) string {
	switch {
	case s.cfg.PublicBaseURL != "":
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.cfg.PublicBaseURL, "/"), s.cfg.Bucket, key)
	case s.cfg.Endpoint != "":
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.cfg.Endpoint, "/"), s.cfg.Bucket, key)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
	}
}

func (s *Storage) objectKey(fileName string) (string, error) {
	random, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	if ext == "" {
		ext = "png"
	}

	return fmt.Sprintf("%d-%s.%s", s.now().UnixMilli(), random, ext), nil
}
