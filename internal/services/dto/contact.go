package dto

import (
	"time"

	"portfolio_backend/internal/models"
)

// ContactForm - поля формы обратной связи (form-теги для HTML, json для API)
type ContactForm struct {
	Name    string `form:"name" json:"name" validate:"required,max=200"`
	Email   string `form:"email" json:"email" validate:"required,email,max=254"`
	Phone   string `form:"phone" json:"phone" validate:"max=20"`
	Message string `form:"message" json:"message" validate:"required"`
}

type ContactListQuery struct {
	IsRead  *bool  `form:"is_read"`
	Replied *bool  `form:"replied"`
	Search  string `form:"q"`
	Page    int    `form:"page"`
}

type ContactResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Message      string    `json:"message"`
	ShortMessage string    `json:"short_message"`
	IsRead       bool      `json:"is_read"`
	Replied      bool      `json:"replied"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewContactResponse(c *models.ContactMessage) *ContactResponse {
	return &ContactResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.PhoneOrDefault(),
		Message:      c.Message,
		ShortMessage: c.ShortMessage(),
		IsRead:       c.IsRead,
		Replied:      c.Replied,
		CreatedAt:    c.CreatedAt,
	}
}

type ContactListResponse struct {
	Items      []*ContactResponse `json:"items"`
	Unread     int64              `json:"unread"`
	Pagination PageMeta           `json:"pagination"`
}
