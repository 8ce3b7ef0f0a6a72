package services

import (
	"context"
	"strings"

	"portfolio_backend/internal/email"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/validator"
	"portfolio_backend/internal/workers"

	"gorm.io/gorm"
)

const contactPageSize = 25

// MailQueue - неблокирующая очередь писем (workers.MailDispatcher)
type MailQueue interface {
	Enqueue(job workers.MailJob) bool
}

type ContactService interface {
	// Submit проверяет и сохраняет заявку, затем ставит в очередь два письма.
	// Результат зависит только от записи в БД: ошибки почты логируются и не возвращаются.
	Submit(ctx context.Context, db *gorm.DB, form *dto.ContactForm) (*models.ContactMessage, error)

	List(db *gorm.DB, query *dto.ContactListQuery) (*dto.ContactListResponse, error)
	Get(db *gorm.DB, id string) (*dto.ContactResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
	Bulk(ctx context.Context, db *gorm.DB, req *dto.BulkActionRequest) (*dto.BulkActionResponse, error)
}

type contactService struct {
	repo      repositories.ContactRepository
	validator *validator.Validator
	messages  *email.ContactMessages
	queue     MailQueue
	actions   map[string]bulkAction
}

func NewContactService(
	repo repositories.ContactRepository,
	v *validator.Validator,
	messages *email.ContactMessages,
	queue MailQueue,
) ContactService {
	return &contactService{
		repo:      repo,
		validator: v,
		messages:  messages,
		queue:     queue,
		actions: map[string]bulkAction{
			"mark_read": {
				apply: func(db *gorm.DB, ids []string) (int64, error) {
					return repo.BulkSetRead(db, ids, true)
				},
				message: "%d message(s) marked as read.",
			},
			"mark_unread": {
				apply: func(db *gorm.DB, ids []string) (int64, error) {
					return repo.BulkSetRead(db, ids, false)
				},
				message: "%d message(s) marked as unread.",
			},
			"mark_replied": {
				apply: func(db *gorm.DB, ids []string) (int64, error) {
					return repo.BulkSetReplied(db, ids, true)
				},
				message: "%d message(s) marked as replied.",
			},
		},
	}
}

func (s *contactService) Submit(ctx context.Context, db *gorm.DB, form *dto.ContactForm) (*models.ContactMessage, error) {
	normalizeContactForm(form)

	// *validator.ValidationError возвращается как есть: страница перерисует форму
	if err := s.validator.Validate(form); err != nil {
		logger.CtxWarn(ctx, "Contact form rejected", "error", err.Error())
		return nil, err
	}

	msg := &models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	}
	if form.Phone != "" {
		phone := form.Phone
		msg.Phone = &phone
	}

	if err := s.repo.Create(db, msg); err != nil {
		logger.CtxWithError(ctx, "Failed to save contact message", err)
		return nil, handleStoreError(err)
	}

	logger.CtxInfo(ctx, "Contact message saved", "id", msg.ID, "email", msg.Email)
	s.notify(ctx, msg)

	return msg, nil
}

// notify ставит в очередь уведомление владельцу и подтверждение отправителю.
// Письма независимы: ошибка одного не отменяет другое.
func (s *contactService) notify(ctx context.Context, msg *models.ContactMessage) {
	if s.queue == nil || s.messages == nil {
		return
	}

	build := []struct {
		kind string
		fn   func(*models.ContactMessage) (*email.Email, error)
	}{
		{"contact_operator_notification", s.messages.OperatorNotification},
		{"contact_acknowledgement", s.messages.Acknowledgement},
	}

	if !s.messages.HasOperator() {
		build = build[1:]
	}

	for _, b := range build {
		mail, err := b.fn(msg)
		if err != nil {
			logger.CtxWithError(ctx, "Failed to build notification", err, "kind", b.kind, "contact_id", msg.ID)
			continue
		}
		if !s.queue.Enqueue(workers.MailJob{Kind: b.kind, Email: mail}) {
			logger.CtxWarn(ctx, "Notification not queued", "kind", b.kind, "contact_id", msg.ID)
		}
	}
}

func (s *contactService) List(db *gorm.DB, q *dto.ContactListQuery) (*dto.ContactListResponse, error) {
	filter := repositories.ContactFilter{
		IsRead:  q.IsRead,
		Replied: q.Replied,
		Search:  q.Search,
	}
	items, page, err := s.repo.Filtered(filter).Page(db, contactPageSize, q.Page)
	if err != nil {
		return nil, handleStoreError(err)
	}

	unread, err := s.repo.CountUnread(db)
	if err != nil {
		return nil, handleStoreError(err)
	}

	resp := &dto.ContactListResponse{
		Items:      make([]*dto.ContactResponse, 0, len(items)),
		Unread:     unread,
		Pagination: dto.NewPageMeta(page),
	}
	for i := range items {
		resp.Items = append(resp.Items, dto.NewContactResponse(&items[i]))
	}
	return resp, nil
}

// Get не меняет is_read: статусы меняются только явными действиями
func (s *contactService) Get(db *gorm.DB, id string) (*dto.ContactResponse, error) {
	msg, err := s.repo.FindByID(db, id)
	if err != nil {
		return nil, handleStoreError(err)
	}
	return dto.NewContactResponse(msg), nil
}

func (s *contactService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.repo.Delete(db, id); err != nil {
		return handleStoreError(err)
	}
	logger.CtxInfo(ctx, "Contact message deleted", "id", id)
	return nil
}

func (s *contactService) Bulk(ctx context.Context, db *gorm.DB, req *dto.BulkActionRequest) (*dto.BulkActionResponse, error) {
	resp, err := runBulk(db, s.actions, req)
	if err != nil {
		return nil, err
	}
	logger.CtxInfo(ctx, "Contact bulk action", "action", req.Action, "updated", resp.Updated)
	return resp, nil
}

func normalizeContactForm(f *dto.ContactForm) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Message = strings.TrimSpace(f.Message)
}
