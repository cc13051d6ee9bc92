// Package backup сохраняет каталог в удалённое хранилище и восстанавливает его оттуда
package backup

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/hazadus/go-movielist/internal/codec"
	"github.com/hazadus/go-movielist/internal/store"
)

// Storage удалённое хранилище файлов
type Storage interface {
	UploadFile(ctx context.Context, reader io.Reader, key string) (string, error)
	DownloadFile(ctx context.Context, key string) ([]byte, error)
	DeleteFile(ctx context.Context, key string) error
}

// Service управляет резервными копиями каталога
type Service struct {
	storage Storage
	store   *store.Store
	format  codec.Format
	logger  *zap.Logger
}

// NewService создает новый сервис резервного копирования
func NewService(storage Storage, s *store.Store, format codec.Format, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage: storage,
		store:   s,
		format:  format,
		logger:  logger,
	}
}

// BackupResult содержит результат выгрузки
type BackupResult struct {
	URL    string
	Size   int64
	Movies int
}

// RestoreResult содержит результат восстановления
type RestoreResult struct {
	Movies  int
	Skipped int
	Errors  []*codec.LineError
}

// Backup выгружает текущее содержимое каталога под ключом key
func (s *Service) Backup(ctx context.Context, key string, progressCallback func(int64)) (*BackupResult, error) {
	movies := s.store.All()

	var buf bytes.Buffer
	if err := codec.Encode(&buf, movies, s.format); err != nil {
		return nil, fmt.Errorf("ошибка сериализации каталога: %w", err)
	}
	size := int64(buf.Len())

	// Создаем reader с отслеживанием прогресса
	var reader io.Reader = &buf
	if progressCallback != nil {
		reader = &ProgressReader{
			Reader:     &buf,
			Size:       size,
			OnProgress: progressCallback,
		}
	}

	url, err := s.storage.UploadFile(ctx, reader, key)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки в S3: %w", err)
	}
	s.logger.Info("Резервная копия выгружена", zap.String("key", key), zap.Int("movies", len(movies)))

	return &BackupResult{URL: url, Size: size, Movies: len(movies)}, nil
}

// Restore скачивает копию по ключу key и заменяет ею каталог.
// Если каталог заменён, но не сохранён локально, возвращается и результат, и ошибка.
func (s *Service) Restore(ctx context.Context, key string) (*RestoreResult, error) {
	raw, err := s.storage.DownloadFile(ctx, key)
	if err != nil {
		return nil, err
	}

	res, err := codec.Decode(bytes.NewReader(raw), s.format)
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора резервной копии: %w", err)
	}

	result := &RestoreResult{
		Movies:  len(res.Movies),
		Skipped: res.Skipped,
		Errors:  res.Errors,
	}
	if err := s.store.Replace(res.Movies); err != nil {
		return result, fmt.Errorf("каталог восстановлен, но не сохранён: %w", err)
	}
	s.logger.Info("Каталог восстановлен", zap.String("key", key), zap.Int("movies", len(res.Movies)))

	return result, nil
}

// Forget удаляет резервную копию с ключом key. Локальный каталог не меняется.
func (s *Service) Forget(ctx context.Context, key string) error {
	if err := s.storage.DeleteFile(ctx, key); err != nil {
		return err
	}
	s.logger.Info("Резервная копия удалена", zap.String("key", key))
	return nil
}

// ProgressReader структура для отслеживания прогресса чтения
type ProgressReader struct {
	io.Reader
	Size       int64
	OnProgress func(int64)
	bytesRead  int64
}

func (pr *ProgressReader) Read(p []byte) (n int, err error) {
	n, err = pr.Reader.Read(p)
	pr.bytesRead += int64(n)
	if pr.OnProgress != nil {
		pr.OnProgress(pr.bytesRead)
	}
	return n, err
}

// FormatFileSize форматирует размер файла в читаемом виде
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
