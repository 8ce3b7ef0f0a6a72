package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"portfolio_backend/internal/config"
)

var (
	// ErrNotFound - файла нет в хранилище
	ErrNotFound = errors.New("file not found")
	// ErrInvalidPath - путь выходит за пределы хранилища или пустой
	ErrInvalidPath = errors.New("invalid file path")
)

// File - открытый на чтение файл. Seek нужен для http.ServeContent (Range-запросы).
type File interface {
	io.ReadSeekCloser
}

// FileInfo - метаданные файла
type FileInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Storage - хранилище загружаемых файлов (резюме, иконки, логотипы, картинки проектов).
// Пути всегда относительные, через "/".
type Storage interface {
	// Save сохраняет файл, заменяя существующий
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Open открывает файл на чтение
	Open(ctx context.Context, path string) (File, FileInfo, error)

	Delete(ctx context.Context, path string) error

	Exists(ctx context.Context, path string) (bool, error)

	// GetURL возвращает публичный URL файла
	GetURL(ctx context.Context, path string) (string, error)
}

// NewStorage создает хранилище по конфигурации
func NewStorage(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
