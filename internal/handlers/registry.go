package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	PageHandler       *PageHandler
	HealthHandler     *HealthHandler
	AuthHandler       *AuthHandler
	ExperienceHandler *ExperienceHandler
	EducationHandler  *EducationHandler
	ProjectHandler    *ProjectHandler
	ServiceHandler    *ServiceHandler
	ContactHandler    *ContactHandler
	FileHandler       *FileHandler
}
