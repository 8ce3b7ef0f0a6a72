package models

import (
	"fmt"
	"strings"
	"time"
)

// Experience - одна таблица для двух видов записей: работа (job) и навык (skill).
// Хранилище не проверяет соответствие полей виду, это делают конструкторы
// NewJobExperience/NewSkillExperience и Validate на уровне сервиса.
type Experience struct {
	BaseModel
	Listed

	Kind        ExperienceKind `gorm:"column:experience_type;type:varchar(20);not null;index" json:"kind"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Icon        string         `gorm:"size:255" json:"icon"`

	// job
	Company   string     `gorm:"size:200" json:"company"`
	Location  string     `gorm:"size:200" json:"location"`
	StartDate *time.Time `gorm:"index" json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Ongoing   bool       `gorm:"not null" json:"ongoing"`

	// skill
	Proficiency Proficiency `gorm:"size:50" json:"proficiency"`
	Category    string      `gorm:"size:100;index" json:"category"`
}

// Job - вариант записи "опыт работы"
type Job struct {
	Title       string
	Company     string
	Location    string
	StartDate   time.Time
	EndDate     *time.Time
	Ongoing     bool
	Description string
	Icon        string
}

// Skill - вариант записи "навык"
type Skill struct {
	Title       string
	Proficiency Proficiency
	Category    string
	Description string
	Icon        string
}

// NewJobExperience собирает запись вида job. Для текущей работы дата окончания обнуляется.
func NewJobExperience(j Job) (*Experience, error) {
	e := &Experience{
		Listed:      Listed{Visible: true},
		Kind:        ExperienceKindJob,
		Title:       strings.TrimSpace(j.Title),
		Company:     strings.TrimSpace(j.Company),
		Location:    strings.TrimSpace(j.Location),
		Ongoing:     j.Ongoing,
		Description: j.Description,
		Icon:        j.Icon,
	}
	if !j.StartDate.IsZero() {
		start := j.StartDate
		e.StartDate = &start
	}
	if !j.Ongoing && j.EndDate != nil {
		end := *j.EndDate
		e.EndDate = &end
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewSkillExperience собирает запись вида skill
func NewSkillExperience(s Skill) (*Experience, error) {
	e := &Experience{
		Listed:      Listed{Visible: true},
		Kind:        ExperienceKindSkill,
		Title:       strings.TrimSpace(s.Title),
		Proficiency: s.Proficiency,
		Category:    strings.TrimSpace(s.Category),
		Description: s.Description,
		Icon:        s.Icon,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate проверяет, что заполнены обязательные поля своего вида.
// Поля другого вида игнорируются.
func (e *Experience) Validate() error {
	errs := FieldErrors{}

	if strings.TrimSpace(e.Title) == "" {
		errs["title"] = "This field is required"
	}

	switch e.Kind {
	case ExperienceKindJob:
		if strings.TrimSpace(e.Company) == "" {
			errs["company"] = "This field is required for a job"
		}
		if e.StartDate == nil || e.StartDate.IsZero() {
			errs["start_date"] = "This field is required for a job"
		}
		if e.Ongoing && e.EndDate != nil {
			errs["end_date"] = "Must be empty while the job is ongoing"
		}
		if !e.Ongoing && e.EndDate != nil && e.StartDate != nil && e.EndDate.Before(*e.StartDate) {
			errs["end_date"] = "Must not be before start date"
		}
	case ExperienceKindSkill:
		if e.Proficiency == "" {
			errs["proficiency"] = "This field is required for a skill"
		} else if !e.Proficiency.Valid() {
			errs["proficiency"] = "Must be one of: Beginner, Intermediate, Advanced, Expert"
		}
	default:
		errs["kind"] = "Must be one of: job, skill"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Job возвращает вариант job, если запись этого вида
func (e *Experience) Job() (Job, bool) {
	if !e.IsJob() {
		return Job{}, false
	}
	j := Job{
		Title:       e.Title,
		Company:     e.Company,
		Location:    e.Location,
		EndDate:     e.EndDate,
		Ongoing:     e.Ongoing,
		Description: e.Description,
		Icon:        e.Icon,
	}
	if e.StartDate != nil {
		j.StartDate = *e.StartDate
	}
	return j, true
}

// Skill возвращает вариант skill, если запись этого вида
func (e *Experience) Skill() (Skill, bool) {
	if !e.IsSkill() {
		return Skill{}, false
	}
	return Skill{
		Title:       e.Title,
		Proficiency: e.Proficiency,
		Category:    e.Category,
		Description: e.Description,
		Icon:        e.Icon,
	}, true
}

func (e *Experience) IsJob() bool {
	return e.Kind == ExperienceKindJob
}

func (e *Experience) IsSkill() bool {
	return e.Kind == ExperienceKindSkill
}

func (e *Experience) String() string {
	if e.IsSkill() {
		return fmt.Sprintf("[SKILL] %s (%s)", e.Title, e.Proficiency)
	}
	return fmt.Sprintf("[JOB] %s at %s", e.Title, e.Company)
}

// CompanyOrCategory - компания для работы, категория для навыка, "-" если пусто
func (e *Experience) CompanyOrCategory() string {
	v := e.Category
	if e.IsJob() {
		v = e.Company
	}
	if v == "" {
		return "-"
	}
	return v
}

// ProficiencyOrDates - уровень для навыка или годы для работы ("2020 - Present")
func (e *Experience) ProficiencyOrDates() string {
	if e.IsSkill() {
		return string(e.Proficiency)
	}
	if e.StartDate == nil {
		return "-"
	}
	end := "-"
	switch {
	case e.Ongoing:
		end = "Present"
	case e.EndDate != nil:
		end = e.EndDate.Format("2006")
	}
	return fmt.Sprintf("%s - %s", e.StartDate.Format("2006"), end)
}
