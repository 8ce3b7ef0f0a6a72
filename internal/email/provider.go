package email

// Provider отправляет письма. Реализации: GomailProvider (SMTP) и LogProvider.
type Provider interface {
	// Send отправляет одно письмо
	Send(email *Email) error

	// Validate проверяет конфигурацию провайдера
	Validate() error

	Close() error
}

// TemplateRenderer рендерит именованные шаблоны писем
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
