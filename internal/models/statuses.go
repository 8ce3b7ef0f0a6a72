package models

type ExperienceKind string
type Proficiency string
type DegreeLevel string
type ProjectStatus string

const (
	ExperienceKindJob   ExperienceKind = "job"
	ExperienceKindSkill ExperienceKind = "skill"

	ProficiencyBeginner     Proficiency = "Beginner"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyAdvanced     Proficiency = "Advanced"
	ProficiencyExpert       Proficiency = "Expert"

	// Primary & Secondary и Higher Secondary хранятся под одним кодом "hs".
	// Различить их после сохранения нельзя.
	DegreeLevelHighSchool    DegreeLevel = "hs"
	DegreeLevelUndergraduate DegreeLevel = "ug"
	DegreeLevelPostgraduate  DegreeLevel = "pg"
	DegreeLevelCertification DegreeLevel = "cert"
	DegreeLevelOther         DegreeLevel = "other"

	ProjectStatusCompleted  ProjectStatus = "Completed"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusUpcoming   ProjectStatus = "Upcoming"
)

// DegreeLevelChoice - пара код/подпись для форм админки
type DegreeLevelChoice struct {
	Code  DegreeLevel `json:"code"`
	Label string      `json:"label"`
}

// DegreeLevelChoices - все варианты уровня образования в порядке отображения
var DegreeLevelChoices = []DegreeLevelChoice{
	{DegreeLevelHighSchool, "Primary & Secondary"},
	{DegreeLevelHighSchool, "Higher Secondary"},
	{DegreeLevelUndergraduate, "Undergraduate"},
	{DegreeLevelPostgraduate, "Postgraduate"},
	{DegreeLevelCertification, "Certification"},
	{DegreeLevelOther, "Other"},
}

func (k ExperienceKind) Valid() bool {
	return k == ExperienceKindJob || k == ExperienceKindSkill
}

func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}
	return false
}

func (d DegreeLevel) Valid() bool {
	switch d {
	case DegreeLevelHighSchool, DegreeLevelUndergraduate, DegreeLevelPostgraduate,
		DegreeLevelCertification, DegreeLevelOther:
		return true
	}
	return false
}

// Label возвращает первую подпись для кода (для "hs" это всегда Primary & Secondary)
func (d DegreeLevel) Label() string {
	for _, c := range DegreeLevelChoices {
		if c.Code == d {
			return c.Label
		}
	}
	return string(d)
}

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusCompleted, ProjectStatusInProgress, ProjectStatusUpcoming:
		return true
	}
	return false
}
