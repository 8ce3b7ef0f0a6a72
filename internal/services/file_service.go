package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"portfolio_backend/internal/imageprocessor"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/storage"
	"portfolio_backend/pkg/apperrors"

	"github.com/google/uuid"
)

var imageTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// Каталоги для картинок сущностей и предельный размер картинки в каждом
var mediaFolders = map[string]imageprocessor.Size{
	"icons":    imageprocessor.SizeIcon,
	"logos":    imageprocessor.SizeLogo,
	"projects": imageprocessor.SizeProject,
	"services": imageprocessor.SizeService,
}

// FileService - резюме и медиафайлы в хранилище
type FileService interface {
	UploadResume(ctx context.Context, file *multipart.FileHeader) (*dto.FileResponse, error)
	OpenResume(ctx context.Context) (storage.File, storage.FileInfo, error)

	// UploadMedia сохраняет картинку в каталог folder и возвращает путь для поля модели
	UploadMedia(ctx context.Context, folder string, file *multipart.FileHeader) (*dto.FileResponse, error)
	OpenMedia(ctx context.Context, p string) (storage.File, storage.FileInfo, error)
}

type fileService struct {
	storage    storage.Storage
	resumePath string
	maxSize    int64
	images     *imageprocessor.Processor
}

func NewFileService(st storage.Storage, resumePath string, maxSize int64, images *imageprocessor.Processor) FileService {
	if images == nil {
		images = imageprocessor.NewProcessor(0)
	}
	return &fileService{
		storage:    st,
		resumePath: resumePath,
		maxSize:    maxSize,
		images:     images,
	}
}

func (s *fileService) UploadResume(ctx context.Context, fh *multipart.FileHeader) (*dto.FileResponse, error) {
	data, contentType, err := s.readUpload(fh)
	if err != nil {
		return nil, err
	}
	if contentType != "application/pdf" {
		return nil, apperrors.ErrInvalidFileType.WithDetails(map[string]string{"file": "Resume must be a PDF"})
	}

	return s.save(ctx, s.resumePath, data, contentType)
}

func (s *fileService) OpenResume(ctx context.Context) (storage.File, storage.FileInfo, error) {
	f, info, err := s.storage.Open(ctx, s.resumePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.FileInfo{}, apperrors.ErrResumeNotFound.WithError(err)
		}
		return nil, storage.FileInfo{}, apperrors.InternalError(err)
	}
	return f, info, nil
}

func (s *fileService) UploadMedia(ctx context.Context, folder string, fh *multipart.FileHeader) (*dto.FileResponse, error) {
	limit, ok := mediaFolders[folder]
	if !ok {
		return nil, apperrors.NewBadRequestError("Unknown media folder: " + folder)
	}

	data, contentType, err := s.readUpload(fh)
	if err != nil {
		return nil, err
	}
	// SVG определяется как text/xml или text/plain, поэтому доверяем расширению
	if strings.EqualFold(path.Ext(fh.Filename), ".svg") && strings.HasPrefix(contentType, "text/") {
		contentType = "image/svg+xml"
	}
	ext, ok := imageTypes[contentType]
	if !ok {
		return nil, apperrors.ErrInvalidFileType.WithDetails(map[string]string{"file": "Only JPEG, PNG, GIF, WebP or SVG images are allowed"})
	}

	if contentType != "image/svg+xml" {
		fitted, resized, err := s.images.Fit(data, limit)
		if err != nil {
			if errors.Is(err, imageprocessor.ErrUnreadable) {
				return nil, apperrors.ErrInvalidFileType.WithDetails(map[string]string{"file": "The image is corrupted"})
			}
			return nil, apperrors.InternalError(err)
		}
		if resized {
			logger.CtxInfo(ctx, "Image downscaled", "folder", folder, "from_bytes", len(data), "to_bytes", len(fitted))
		}
		data = fitted
	}

	p := path.Join(folder, uuid.NewString()+ext)
	return s.save(ctx, p, data, contentType)
}

func (s *fileService) OpenMedia(ctx context.Context, p string) (storage.File, storage.FileInfo, error) {
	f, info, err := s.storage.Open(ctx, p)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidPath) {
			return nil, storage.FileInfo{}, apperrors.ErrMediaNotFound.WithError(err)
		}
		return nil, storage.FileInfo{}, apperrors.InternalError(err)
	}
	return f, info, nil
}

// readUpload читает файл целиком с проверкой размера и определяет тип по содержимому
func (s *fileService) readUpload(fh *multipart.FileHeader) ([]byte, string, error) {
	if fh == nil {
		return nil, "", apperrors.ValidationError(map[string]string{"file": "This field is required"})
	}
	if s.maxSize > 0 && fh.Size > s.maxSize {
		return nil, "", apperrors.ErrFileTooLarge.WithDetails(map[string]int64{"max_size": s.maxSize})
	}

	src, err := fh.Open()
	if err != nil {
		return nil, "", apperrors.InternalError(fmt.Errorf("open upload: %w", err))
	}
	defer src.Close()

	limit := s.maxSize
	if limit <= 0 {
		limit = 1 << 30
	}
	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, "", apperrors.InternalError(fmt.Errorf("read upload: %w", err))
	}
	if int64(len(data)) > limit {
		return nil, "", apperrors.ErrFileTooLarge.WithDetails(map[string]int64{"max_size": s.maxSize})
	}

	contentType := http.DetectContentType(data)
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return data, contentType, nil
}

func (s *fileService) save(ctx context.Context, p string, data []byte, contentType string) (*dto.FileResponse, error) {
	if err := s.storage.Save(ctx, p, bytes.NewReader(data), contentType); err != nil {
		logger.CtxWithError(ctx, "Failed to store file", err, "path", p)
		return nil, apperrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, p)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	f, info, err := s.storage.Open(ctx, p)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	f.Close()

	logger.CtxInfo(ctx, "File stored", "path", p, "size", len(data), "content_type", contentType)
	return &dto.FileResponse{
		Path:      p,
		URL:       url,
		Size:      info.Size,
		UpdatedAt: info.ModTime,
	}, nil
}
