package models

import "strings"

type Project struct {
	BaseModel
	Listed

	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	ImagePath   string         `gorm:"column:path;size:500" json:"image_path"`
	DemoURL     *string        `gorm:"column:demo;size:500" json:"demo_url"`
	RepoURL     *string        `gorm:"column:github;size:500" json:"repo_url"`
	Status      *ProjectStatus `gorm:"size:50;index" json:"status"`
	TechStack   string         `gorm:"size:500" json:"tech_stack"`
	IsFeatured  bool           `gorm:"not null;index" json:"is_featured"`
}

// Tech разбивает tech_stack по запятым с обрезкой пробелов, порядок сохраняется.
// Пустая строка дает пустой срез.
func (p *Project) Tech() []string {
	if p.TechStack == "" {
		return []string{}
	}
	parts := strings.Split(p.TechStack, ",")
	tech := make([]string, 0, len(parts))
	for _, part := range parts {
		tech = append(tech, strings.TrimSpace(part))
	}
	return tech
}

func (p *Project) String() string {
	return p.Title
}
