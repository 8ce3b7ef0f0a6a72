package models

import (
	"fmt"
	"time"
)

type Education struct {
	BaseModel
	Listed

	Title       string      `gorm:"size:200;not null" json:"title"`
	Institution string      `gorm:"size:200;not null;index" json:"institution"`
	Location    string      `gorm:"size:140" json:"location"`
	DegreeLevel DegreeLevel `gorm:"size:12;not null;default:other;index" json:"degree_level"`
	StartDate   *time.Time  `gorm:"index" json:"start_date"`
	EndDate     *time.Time  `json:"end_date"`
	Ongoing     bool        `gorm:"not null" json:"ongoing"`
	Grade       string      `gorm:"column:grade_or_gpa;size:80" json:"grade"`
	Summary     string      `gorm:"type:text" json:"summary"`
	Logo        string      `gorm:"size:255" json:"logo"`
}

func (Education) TableName() string {
	return "educations"
}

func (e *Education) String() string {
	return fmt.Sprintf("%s - %s", e.Title, e.Institution)
}

// Period - "2018 - 2022", "2022 - Present"
func (e *Education) Period() string {
	if e.StartDate == nil {
		return ""
	}
	end := ""
	switch {
	case e.Ongoing:
		end = "Present"
	case e.EndDate != nil:
		end = e.EndDate.Format("2006")
	}
	if end == "" {
		return e.StartDate.Format("2006")
	}
	return fmt.Sprintf("%s - %s", e.StartDate.Format("2006"), end)
}
