package services

// ServiceContainer содержит все сервисы приложения
type ServiceContainer struct {
	ContentService      ContentService
	ContactService      ContactService
	ExperienceService   ExperienceService
	EducationService    EducationService
	ProjectService      ProjectService
	ServiceEntryService ServiceEntryService
	AuthService         AuthService
	FileService         FileService
}
