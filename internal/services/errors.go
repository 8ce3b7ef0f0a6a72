package services

import (
	"errors"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/pkg/apperrors"
)

// handleStoreError переводит ошибки репозиториев в AppError.
// Все, что не "не найдено", считается недоступностью хранилища (500).
func handleStoreError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, repositories.ErrExperienceNotFound):
		return apperrors.ErrExperienceNotFound.WithError(err)
	case errors.Is(err, repositories.ErrEducationNotFound):
		return apperrors.ErrEducationNotFound.WithError(err)
	case errors.Is(err, repositories.ErrProjectNotFound):
		return apperrors.ErrProjectNotFound.WithError(err)
	case errors.Is(err, repositories.ErrServiceNotFound):
		return apperrors.ErrServiceNotFound.WithError(err)
	case errors.Is(err, repositories.ErrContactNotFound):
		return apperrors.ErrContactNotFound.WithError(err)
	}
	return apperrors.DatabaseError(err)
}

// modelValidationError - FieldErrors модели в ValidationError (400)
func modelValidationError(err error) error {
	var fe models.FieldErrors
	if errors.As(err, &fe) {
		return apperrors.ValidationError(map[string]string(fe))
	}
	return err
}
