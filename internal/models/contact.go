package models

import (
	"fmt"
	"unicode/utf8"
)

const shortMessageLen = 50

// ContactMessage - заявка из формы обратной связи.
// Не попадает в публичную выдачу, поэтому без Listed.
type ContactMessage struct {
	BaseModel

	Name    string  `gorm:"size:200;not null" json:"name"`
	Email   string  `gorm:"size:254;not null;index" json:"email"`
	Phone   *string `gorm:"size:20" json:"phone"`
	Message string  `gorm:"type:text;not null" json:"message"`
	IsRead  bool    `gorm:"not null;index" json:"is_read"`
	Replied bool    `gorm:"not null;index" json:"replied"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

func (c *ContactMessage) String() string {
	return fmt.Sprintf("%s - %s", c.Name, c.Email)
}

// ShortMessage - первые 50 символов сообщения и "..." если оно длиннее
func (c *ContactMessage) ShortMessage() string {
	if utf8.RuneCountInString(c.Message) <= shortMessageLen {
		return c.Message
	}
	return string([]rune(c.Message)[:shortMessageLen]) + "..."
}

// PhoneOrDefault - телефон или "Not provided"
func (c *ContactMessage) PhoneOrDefault() string {
	if c.Phone == nil || *c.Phone == "" {
		return "Not provided"
	}
	return *c.Phone
}
