package models

import "strings"

// ServiceEntry - услуга из раздела "Services" (название отличает ее от слоя services)
type ServiceEntry struct {
	BaseModel
	Listed

	Title            string `gorm:"size:160;not null" json:"title"`
	ShortDescription string `gorm:"size:255" json:"short_description"`
	Description      string `gorm:"type:text" json:"description"`
	Details          string `gorm:"type:text" json:"details"`
	Icon             string `gorm:"size:80" json:"icon"`
	Image            string `gorm:"size:255" json:"image"`
	Link             string `gorm:"size:500" json:"link"`
	Category         string `gorm:"size:80;index" json:"category"`
	Duration         string `gorm:"size:80" json:"duration"`
}

func (ServiceEntry) TableName() string {
	return "services"
}

// DetailLines - непустые строки из details (по одной на пункт)
func (s *ServiceEntry) DetailLines() []string {
	lines := []string{}
	for _, line := range strings.Split(strings.ReplaceAll(s.Details, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
