package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные ошибки контента портфолио.
Репозитории возвращают свои sentinel-ошибки, сервисы переводят их сюда.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Content ---

var ErrExperienceNotFound = New(CodeNotFound, "experience", "Experience entry not found", http.StatusNotFound)

var ErrEducationNotFound = New(CodeNotFound, "education", "Education entry not found", http.StatusNotFound)

var ErrProjectNotFound = New(CodeNotFound, "project", "Project not found", http.StatusNotFound)

var ErrServiceNotFound = New(CodeNotFound, "service", "Service not found", http.StatusNotFound)

var ErrContactNotFound = New(CodeNotFound, "contact", "Contact message not found", http.StatusNotFound)

// ErrInvalidExperienceKind - запись не удовлетворяет обязательным полям своего вида (job/skill)
var ErrInvalidExperienceKind = New(
	CodeValidationFailed,
	"experience",
	"Experience entry does not match its kind",
	http.StatusBadRequest,
)

// ErrEmptyBulkSelection - массовое действие без id
var ErrEmptyBulkSelection = New(
	CodeValidationFailed,
	"bulk",
	"At least one id is required",
	http.StatusBadRequest,
)

// --- Files ---

var ErrResumeNotFound = New(CodeNotFound, "resume", "Resume file is not available", http.StatusNotFound)

var ErrMediaNotFound = New(CodeNotFound, "media", "File not found", http.StatusNotFound)

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// --- Admin ---

var ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)

var ErrInvalidToken = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
