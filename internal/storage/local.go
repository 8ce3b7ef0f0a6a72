package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"portfolio_backend/internal/config"
)

// LocalStorage хранит файлы в каталоге на диске
type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(cfg config.StorageConfig) (*LocalStorage, error) {
	if cfg.BasePath == "" {
		cfg.BasePath = "./media"
	}

	if err := os.MkdirAll(cfg.BasePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: cfg.BasePath,
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

// resolve переводит относительный путь в путь на диске.
// Абсолютные пути и выход за basePath через ".." запрещены.
func (s *LocalStorage) resolve(p string) (string, error) {
	clean := path.Clean("/" + strings.TrimSpace(p))
	rel := strings.TrimPrefix(clean, "/")
	if rel == "" || rel == "." || !filepath.IsLocal(filepath.FromSlash(rel)) {
		return "", ErrInvalidPath
	}
	return filepath.Join(s.basePath, filepath.FromSlash(rel)), nil
}

// Save пишет во временный файл и переименовывает, чтобы читатели не видели частичную запись
func (s *LocalStorage) Save(ctx context.Context, p string, reader io.Reader, contentType string) error {
	fullPath, err := s.resolve(p)
	if err != nil {
		return err
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return fmt.Errorf("failed to store file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Open(ctx context.Context, p string) (File, FileInfo, error) {
	fullPath, err := s.resolve(p)
	if err != nil {
		return nil, FileInfo{}, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, FileInfo{}, ErrNotFound
		}
		return nil, FileInfo{}, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, FileInfo{}, fmt.Errorf("failed to get file info: %w", err)
	}
	if info.IsDir() {
		file.Close()
		return nil, FileInfo{}, ErrNotFound
	}

	return file, FileInfo{Path: p, Size: info.Size(), ModTime: info.ModTime()}, nil
}

// Delete удаляет файл; отсутствие файла не ошибка
func (s *LocalStorage) Delete(ctx context.Context, p string) error {
	fullPath, err := s.resolve(p)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Exists(ctx context.Context, p string) (bool, error) {
	fullPath, err := s.resolve(p)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (s *LocalStorage) GetURL(ctx context.Context, p string) (string, error) {
	if _, err := s.resolve(p); err != nil {
		return "", err
	}
	rel := strings.TrimPrefix(path.Clean("/"+p), "/")
	if s.baseURL == "" {
		return "/media/" + rel, nil
	}
	return s.baseURL + "/" + rel, nil
}
