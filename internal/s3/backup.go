// Package s3 хранит резервную копию файла плейлиста в S3-совместимом хранилище
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/sirupsen/logrus"
)

// defaultFileMode - права нового файла плейлиста
const defaultFileMode os.FileMode = 0644

// ErrNoBucket возвращается, если бакет не настроен
var ErrNoBucket = errors.New("не указан бакет S3 (aws_bucket_name)")

// Config содержит настройки для S3
type Config struct {
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	BucketName string
	Prefix     string // Префикс ключа, под которым хранятся плейлисты
}

// uploaderAPI - часть s3manager.Uploader, которая нужна для выгрузки
type uploaderAPI interface {
	UploadWithContext(ctx aws.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

// downloaderAPI - часть s3manager.Downloader, которая нужна для загрузки
type downloaderAPI interface {
	DownloadWithContext(ctx aws.Context, w io.WriterAt, input *s3.GetObjectInput, opts ...func(*s3manager.Downloader)) (int64, error)
}

// Backup выгружает файл плейлиста в S3 и загружает его обратно
type Backup struct {
	uploader   uploaderAPI
	downloader downloaderAPI
	config     *Config
	logger     *logrus.Logger
}

// NewBackup создает клиент резервного копирования
func NewBackup(config *Config, logger *logrus.Logger) (*Backup, error) {
	if config.BucketName == "" {
		return nil, ErrNoBucket
	}

	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
	}

	// Если указан endpoint, добавляем его
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания AWS сессии: %w", err)
	}

	return newBackup(config, s3manager.NewUploader(sess), s3manager.NewDownloader(sess), logger), nil
}

func newBackup(config *Config, uploader uploaderAPI, downloader downloaderAPI, logger *logrus.Logger) *Backup {
	return &Backup{
		uploader:   uploader,
		downloader: downloader,
		config:     config,
		logger:     logger,
	}
}

// Key возвращает ключ объекта для локального файла
func (b *Backup) Key(localPath string) string {
	return path.Join(b.config.Prefix, filepath.Base(localPath))
}

// Push выгружает локальный файл и возвращает адрес объекта
func (b *Backup) Push(ctx context.Context, localPath string) (string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	key := b.Key(localPath)
	output, err := b.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(b.config.BucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки: %w", err)
	}

	b.logger.WithFields(logrus.Fields{
		"bucket": b.config.BucketName,
		"key":    key,
	}).Info("Плейлист выгружен в S3")

	if output != nil && output.Location != "" {
		return output.Location, nil
	}
	return fmt.Sprintf("%s/%s/%s", b.config.Endpoint, b.config.BucketName, key), nil
}

// Pull загружает файл из S3 и атомарно заменяет им локальный файл
func (b *Backup) Pull(ctx context.Context, localPath string) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(localPath), ".playlist-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("ошибка создания временного файла: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	key := b.Key(localPath)
	n, err := b.downloader.DownloadWithContext(ctx, tmp, &s3.GetObjectInput{
		Bucket: aws.String(b.config.BucketName),
		Key:    aws.String(key),
	})
	if err == nil {
		err = tmp.Chmod(fileMode(localPath))
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, fmt.Errorf("ошибка скачивания из S3: %w", err)
	}

	if err := os.Rename(tmpName, localPath); err != nil {
		return 0, fmt.Errorf("ошибка замены файла плейлиста: %w", err)
	}

	b.logger.WithFields(logrus.Fields{
		"bucket": b.config.BucketName,
		"key":    key,
		"bytes":  n,
	}).Info("Плейлист загружен из S3")
	return n, nil
}

// fileMode возвращает права существующего файла или defaultFileMode для нового
func fileMode(localPath string) os.FileMode {
	info, err := os.Stat(localPath)
	if err != nil {
		return defaultFileMode
	}
	return info.Mode().Perm()
}
