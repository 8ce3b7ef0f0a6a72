package email

import (
	"fmt"

	"portfolio_backend/internal/models"
)

const (
	TemplateContactOperator = "contact_operator"
	TemplateContactAck      = "contact_ack"
)

const contactOperatorBody = `Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}

Message:
{{.Message}}`

const contactAckBody = `Hi {{.Name}},

Thank you for reaching out! I'll get back to you soon.

Best regards,
{{.Owner}}`

// ContactMessages собирает два письма по заявке с сайта:
// уведомление владельцу и подтверждение отправителю.
type ContactMessages struct {
	renderer      TemplateRenderer
	ownerName     string
	operatorEmail string
}

func NewContactMessages(ownerName, operatorEmail string) (*ContactMessages, error) {
	tm := NewTemplateManager()
	if err := tm.AddTemplate(TemplateContactOperator, contactOperatorBody); err != nil {
		return nil, err
	}
	if err := tm.AddTemplate(TemplateContactAck, contactAckBody); err != nil {
		return nil, err
	}
	return &ContactMessages{
		renderer:      tm,
		ownerName:     ownerName,
		operatorEmail: operatorEmail,
	}, nil
}

// HasOperator - задан ли ящик владельца для уведомлений
func (m *ContactMessages) HasOperator() bool {
	return m.operatorEmail != ""
}

// OperatorNotification - письмо владельцу сайта. Reply-To указывает на отправителя.
func (m *ContactMessages) OperatorNotification(c *models.ContactMessage) (*Email, error) {
	body, err := m.renderer.Render(TemplateContactOperator, TemplateData{
		"Name":    c.Name,
		"Email":   c.Email,
		"Phone":   c.PhoneOrDefault(),
		"Message": c.Message,
	})
	if err != nil {
		return nil, err
	}
	return &Email{
		To:      []string{m.operatorEmail},
		ReplyTo: c.Email,
		Subject: fmt.Sprintf("New Contact from %s", c.Name),
		Body:    body,
	}, nil
}

// Acknowledgement - подтверждение получения для отправителя
func (m *ContactMessages) Acknowledgement(c *models.ContactMessage) (*Email, error) {
	body, err := m.renderer.Render(TemplateContactAck, TemplateData{
		"Name":  c.Name,
		"Owner": m.ownerName,
	})
	if err != nil {
		return nil, err
	}
	return &Email{
		To:      []string{c.Email},
		Subject: fmt.Sprintf("Thanks for contacting %s!", m.ownerName),
		Body:    body,
	}, nil
}
