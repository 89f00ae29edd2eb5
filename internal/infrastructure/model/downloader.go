// Package model отвечает за доставку файла модели: локальный путь или
// скачивание из Object Storage с кэшированием на диске.
package model

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/DRSN-tech/nose-embedder/internal/cfg"
	"github.com/DRSN-tech/nose-embedder/pkg/e"
	"github.com/DRSN-tech/nose-embedder/pkg/jitter"
	"github.com/DRSN-tech/nose-embedder/pkg/logger"
	"github.com/minio/minio-go/v7"
)

// Downloader скачивает модель из MinIO в локальный кэш.
// Повторная загрузка пропускается, если файл уже лежит в кэше.
type Downloader struct {
	client *minio.Client
	bucket string
	cfg    *cfg.ModelCfg
	logger logger.Logger
}

func NewDownloader(client *minio.Client, bucket string, cfg *cfg.ModelCfg, logger logger.Logger) *Downloader {
	return &Downloader{
		client: client,
		bucket: bucket,
		cfg:    cfg,
		logger: logger,
	}
}

// Fetch возвращает локальный путь к файлу модели. Без заданного ключа в
// Object Storage используется путь из конфигурации как есть.
func (d *Downloader) Fetch(ctx context.Context) (string, error) {
	const op = "Downloader.Fetch"

	if d.cfg.ObjectKey == "" {
		return d.cfg.ModelPath, nil
	}

	dest := filepath.Join(d.cfg.CacheDir, filepath.Base(d.cfg.ObjectKey))
	if _, err := os.Stat(dest); err == nil {
		d.logger.Infof("model found in cache, skipping download: %s", dest)
		return dest, nil
	}

	if err := os.MkdirAll(d.cfg.CacheDir, 0o755); err != nil {
		return "", e.Wrap(op, err)
	}

	if err := d.download(ctx, dest); err != nil {
		return "", e.Wrap(op, err)
	}

	return dest, nil
}

// download скачивает модель с retry-логикой и экспоненциальной задержкой.
func (d *Downloader) download(ctx context.Context, dest string) error {
	const (
		op         = "Downloader.download"
		baseJitter = 1 * time.Second
		maxJitter  = 30 * time.Second
	)

	var lastErr error
	for attempt := 0; attempt < d.cfg.DownloadRetries; attempt++ {
		lastErr = d.client.FGetObject(ctx, d.bucket, d.cfg.ObjectKey, dest, minio.GetObjectOptions{})
		if lastErr == nil {
			d.logger.Infof("model downloaded, key: %s, dest: %s", d.cfg.ObjectKey, dest)
			return nil
		}

		if attempt == d.cfg.DownloadRetries-1 {
			break
		}

		sleepTime := jitter.ExponentialBackoff(
			baseJitter,
			maxJitter,
			attempt,
			jitter.DefaultJitter,
		)

		d.logger.Warnf("model download failed, retrying in %v (attempt %d): %v", sleepTime, attempt+1, lastErr)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return e.Wrap(op, ctx.Err())
		}
	}

	return e.Wrap(op, fmt.Errorf("all %d attempts failed: %w", d.cfg.DownloadRetries, lastErr))
}

// Exists проверяет наличие модели в Object Storage.
func (d *Downloader) Exists(ctx context.Context) (bool, error) {
	const op = "Downloader.Exists"

	if d.cfg.ObjectKey == "" {
		return false, nil
	}

	_, err := d.client.StatObject(ctx, d.bucket, d.cfg.ObjectKey, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}

		return false, e.Wrap(op, err)
	}

	return true, nil
}
