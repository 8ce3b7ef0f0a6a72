package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"testing"
	"time"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/email"
	"portfolio_backend/internal/imageprocessor"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/storage"
	"portfolio_backend/internal/testutil"
	"portfolio_backend/internal/validator"
	"portfolio_backend/internal/workers"
	"portfolio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueue struct {
	mu     sync.Mutex
	jobs   []workers.MailJob
	reject bool
}

func (q *fakeQueue) Enqueue(job workers.MailJob) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.reject {
		return false
	}
	q.jobs = append(q.jobs, job)
	return true
}

type failingProvider struct{}

func (failingProvider) Send(*email.Email) error { return errors.New("smtp down") }
func (failingProvider) Validate() error         { return nil }
func (failingProvider) Close() error            { return nil }

func newContactService(t *testing.T, queue MailQueue) ContactService {
	t.Helper()
	msgs, err := email.NewContactMessages("Jane Doe", "owner@example.com")
	require.NoError(t, err)
	return NewContactService(repositories.NewContactRepository(), validator.New(), msgs, queue)
}

func TestContactSubmit_PersistsAndQueuesTwoMails(t *testing.T) {
	db := testutil.OpenTestDB(t)
	queue := &fakeQueue{}
	svc := newContactService(t, queue)

	msg, err := svc.Submit(context.Background(), db, &dto.ContactForm{
		Name: "  Ann ", Email: "ann@example.com", Message: "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ann", msg.Name)
	assert.Nil(t, msg.Phone)
	assert.False(t, msg.IsRead)
	assert.False(t, msg.Replied)
	assert.False(t, msg.CreatedAt.IsZero())

	require.Len(t, queue.jobs, 2)
	assert.Equal(t, []string{"owner@example.com"}, queue.jobs[0].Email.To)
	assert.Equal(t, "New Contact from Ann", queue.jobs[0].Email.Subject)
	assert.Equal(t, []string{"ann@example.com"}, queue.jobs[1].Email.To)
	assert.Equal(t, "Thanks for contacting Jane Doe!", queue.jobs[1].Email.Subject)

	var n int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestContactSubmit_NoOperatorInboxSendsOnlyAcknowledgement(t *testing.T) {
	db := testutil.OpenTestDB(t)
	queue := &fakeQueue{}
	msgs, err := email.NewContactMessages("Jane Doe", "")
	require.NoError(t, err)
	svc := NewContactService(repositories.NewContactRepository(), validator.New(), msgs, queue)

	_, err = svc.Submit(context.Background(), db, &dto.ContactForm{
		Name: "Ann", Email: "ann@example.com", Message: "Hello",
	})
	require.NoError(t, err)

	require.Len(t, queue.jobs, 1)
	assert.Equal(t, "contact_acknowledgement", queue.jobs[0].Kind)
}

func TestContactSubmit_InvalidPersistsNothing(t *testing.T) {
	db := testutil.OpenTestDB(t)
	queue := &fakeQueue{}
	svc := newContactService(t, queue)

	_, err := svc.Submit(context.Background(), db, &dto.ContactForm{
		Name: "Ann", Email: "not-an-email", Message: "Hello",
	})
	require.Error(t, err)

	var vErr *validator.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Errors, "email")
	assert.Len(t, vErr.Errors, 1)

	var n int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&n).Error)
	assert.Zero(t, n)
	assert.Empty(t, queue.jobs)
}

func TestContactSubmit_WhitespaceOnlyIsEmpty(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := newContactService(t, &fakeQueue{})

	_, err := svc.Submit(context.Background(), db, &dto.ContactForm{
		Name: "   ", Email: "a@b.co", Message: "\n\t",
	})
	var vErr *validator.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Errors, "name")
	assert.Contains(t, vErr.Errors, "message")
}

func TestContactSubmit_MailFailuresAreSwallowed(t *testing.T) {
	db := testutil.OpenTestDB(t)

	// очередь переполнена
	rejecting := newContactService(t, &fakeQueue{reject: true})
	_, err := rejecting.Submit(context.Background(), db, &dto.ContactForm{
		Name: "Ann", Email: "ann@example.com", Phone: "+1 555", Message: "Hi",
	})
	require.NoError(t, err)

	// провайдер падает на каждом письме
	dispatcher := workers.NewMailDispatcher(failingProvider{}, 4)
	dispatcher.Start(context.Background())
	failing := newContactService(t, dispatcher)
	msg, err := failing.Submit(context.Background(), db, &dto.ContactForm{
		Name: "Bob", Email: "bob@example.com", Message: "Hi",
	})
	dispatcher.Stop()
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)

	var n int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&n).Error)
	assert.Equal(t, int64(2), n)
}

func TestContactSubmit_StoreUnavailable(t *testing.T) {
	db := testutil.OpenTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	queue := &fakeQueue{}
	_, err = newContactService(t, queue).Submit(context.Background(), db, &dto.ContactForm{
		Name: "Ann", Email: "ann@example.com", Message: "Hi",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusCode(err))
	assert.Empty(t, queue.jobs)
}

func TestContactAdmin_ListBulkGet(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := newContactService(t, nil)
	base := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	a := testutil.CreateContact(t, db, "Ann", base)
	testutil.CreateContact(t, db, "Bob", base.Add(time.Hour))

	resp, err := svc.Bulk(context.Background(), db, &dto.BulkActionRequest{Action: "mark_read", IDs: []string{a.ID}})
	require.NoError(t, err)
	assert.Equal(t, "1 message(s) marked as read.", resp.Message)

	list, err := svc.List(db, &dto.ContactListQuery{})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Bob", list.Items[0].Name)
	assert.Equal(t, int64(1), list.Unread)

	got, err := svc.Get(db, a.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)
	assert.Equal(t, "Not provided", got.Phone)

	_, err = svc.Get(db, "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func newContentService() ContentService {
	return NewContentService(
		repositories.NewExperienceRepository(),
		repositories.NewEducationRepository(),
		repositories.NewProjectRepository(),
		repositories.NewServiceRepository(),
		9, 3,
	)
}

func TestTopProjects_IgnoresFeaturedFlag(t *testing.T) {
	db := testutil.OpenTestDB(t)
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	for i, title := range []string{"a", "b", "c", "d"} {
		testutil.CreateProject(t, db, title, 0, base.Add(time.Duration(i)*time.Hour))
	}
	featured := testutil.CreateProject(t, db, "featured-old", 0, base.Add(-time.Hour))
	require.NoError(t, db.Model(featured).Update("is_featured", true).Error)

	top, more, err := newContentService().TopProjects(db, 3)
	require.NoError(t, err)
	assert.True(t, more)

	titles := []string{}
	for _, p := range top {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"d", "c", "b"}, titles)
}

func TestHome_SeeMoreFlag(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := newContentService()
	testutil.CreateProjects(t, db, 3)
	testutil.CreateJob(t, db, "Engineer", 0, testutil.Date(2020, time.January, 1))
	testutil.CreateSkill(t, db, "Go", 0)
	testutil.CreateService(t, db, "Consulting", 0)
	testutil.CreateEducation(t, db, "BSc", 0, testutil.Date(2012, time.September, 1))

	home, err := svc.Home(db)
	require.NoError(t, err)
	assert.Len(t, home.Projects, 3)
	assert.False(t, home.HasMoreProjects)
	assert.Len(t, home.Jobs, 1)
	assert.Len(t, home.Skills, 1)
	assert.Len(t, home.Services, 1)
	assert.Len(t, home.Education, 1)

	testutil.CreateProject(t, db, "fourth", 0, time.Now())
	home, err = svc.Home(db)
	require.NoError(t, err)
	assert.True(t, home.HasMoreProjects)
}

func TestProjectsPage_Clamps(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := newContentService()
	testutil.CreateProjects(t, db, 20)

	cases := map[string]int{"": 1, "abc": 1, "2": 2, "99": 3, "-4": 1, "0": 1}
	for raw, want := range cases {
		items, page, err := svc.ProjectsPage(db, raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, page.Number, raw)
		assert.NotEmpty(t, items, raw)
	}

	_, err := svc.Project(db, "missing")
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, apperrors.StatusCode(err))
}

func TestExperienceService_CreateValidatesKind(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := NewExperienceService(repositories.NewExperienceRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, db, &dto.ExperienceRequest{Kind: "job", Title: "Engineer"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Contains(t, appErr.Details, "company")
	assert.Contains(t, appErr.Details, "start_date")

	end := &dto.Date{Time: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}
	job, err := svc.Create(ctx, db, &dto.ExperienceRequest{
		Kind: "job", Title: "Engineer", Company: "Acme",
		StartDate: &dto.Date{Time: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		EndDate:   end, Ongoing: true,
	})
	require.NoError(t, err)
	assert.Nil(t, job.EndDate, "ongoing clears end date")
	assert.True(t, job.Visible)
	assert.Equal(t, "[JOB] Engineer at Acme", job.Label)
	assert.Equal(t, "Acme / 2020 - Present", job.Summary)

	skill, err := svc.Create(ctx, db, &dto.ExperienceRequest{Kind: "skill", Title: "Go", Proficiency: "Expert"})
	require.NoError(t, err)
	assert.Equal(t, "[SKILL] Go (Expert)", skill.Label)
}

func TestExperienceService_UpdateAndOrder(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := NewExperienceService(repositories.NewExperienceRepository())
	ctx := context.Background()
	skill := testutil.CreateSkill(t, db, "Go", 0)
	require.NoError(t, db.Model(skill).Update("visible", false).Error)

	updated, err := svc.Update(ctx, db, skill.ID, &dto.ExperienceRequest{Kind: "skill", Title: "Golang", Proficiency: "Advanced", Order: 3})
	require.NoError(t, err)
	assert.Equal(t, "Golang", updated.Title)
	assert.False(t, updated.Visible, "visibility kept when not sent")
	assert.Equal(t, 3, updated.Order)

	require.NoError(t, svc.SetOrder(db, skill.ID, 8))
	got, err := svc.Get(db, skill.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Order)

	_, err = svc.Update(ctx, db, "missing", &dto.ExperienceRequest{Kind: "skill", Title: "x", Proficiency: "Expert"})
	assert.True(t, apperrors.Is(err, apperrors.ErrExperienceNotFound))
	assert.True(t, apperrors.IsNotFound(svc.SetOrder(db, "missing", 1)))
}

func TestExperienceService_Bulk(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := NewExperienceService(repositories.NewExperienceRepository())
	ctx := context.Background()

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		ids = append(ids, testutil.CreateSkill(t, db, title, 0).ID)
	}

	resp, err := svc.Bulk(ctx, db, &dto.BulkActionRequest{Action: "make_hidden", IDs: ids[:2]})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Updated)
	assert.Equal(t, "2 item(s) hidden from website.", resp.Message)

	resp, err = svc.Bulk(ctx, db, &dto.BulkActionRequest{Action: "convert_to_job", IDs: ids})
	require.NoError(t, err)
	assert.Equal(t, "3 item(s) converted to Job Experience.", resp.Message)

	_, err = svc.Bulk(ctx, db, &dto.BulkActionRequest{Action: "explode", IDs: ids})
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusCode(err))

	_, err = svc.Bulk(ctx, db, &dto.BulkActionRequest{Action: "make_visible"})
	assert.True(t, apperrors.Is(err, apperrors.ErrEmptyBulkSelection))
}

func TestProjectService_CRUD(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := NewProjectService(repositories.NewProjectRepository())
	ctx := context.Background()

	status := "In Progress"
	demo := "  "
	p, err := svc.Create(ctx, db, &dto.ProjectRequest{Title: "Site", Status: &status, DemoURL: &demo, TechStack: "Go, Gin"})
	require.NoError(t, err)
	assert.Nil(t, p.DemoURL)
	require.NotNil(t, p.Status)
	assert.Equal(t, models.ProjectStatusInProgress, *p.Status)

	resp, err := svc.Bulk(ctx, db, &dto.BulkActionRequest{Action: "feature", IDs: []string{p.ID}})
	require.NoError(t, err)
	assert.Equal(t, "1 project(s) marked as featured.", resp.Message)

	list, err := svc.List(db, &dto.ProjectListQuery{Search: "gin"})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.True(t, list.Items[0].IsFeatured)
	assert.Equal(t, 20, list.Pagination.PageSize)

	require.NoError(t, svc.Delete(ctx, db, p.ID))
	assert.True(t, apperrors.IsNotFound(svc.Delete(ctx, db, p.ID)))
}

func TestEducationService_Create(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := NewEducationService(repositories.NewEducationRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, db, &dto.EducationRequest{
		Title: "BSc", Institution: "MIT",
		StartDate: &dto.Date{Time: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		EndDate:   &dto.Date{Time: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)},
	})
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusCode(err))

	edu, err := svc.Create(ctx, db, &dto.EducationRequest{Title: "BSc", Institution: "MIT"})
	require.NoError(t, err)
	assert.Equal(t, models.DegreeLevelOther, edu.DegreeLevel)
}

func TestServiceEntryService_Bulk(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := NewServiceEntryService(repositories.NewServiceRepository())
	s := testutil.CreateService(t, db, "Consulting", 0)

	resp, err := svc.Bulk(context.Background(), db, &dto.BulkActionRequest{Action: "make_hidden", IDs: []string{s.ID, "missing"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Updated)
}

func TestAuthService_Login(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	svc, err := NewAuthService(config.AdminConfig{Email: "Admin@Example.com", Password: "password123"}, tokens)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "wrong-pass"})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: " admin@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)

	_, err = svc.ValidateToken("nope")
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusCode(err))
}

func TestAuthService_DisabledWithoutCredentials(t *testing.T) {
	svc, err := NewAuthService(config.AdminConfig{}, auth.NewTokenManager("secret", time.Hour))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "", Password: ""})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestAuthService_RejectsShortPlainPassword(t *testing.T) {
	_, err := NewAuthService(config.AdminConfig{Email: "admin@example.com", Password: "short"}, auth.NewTokenManager("secret", time.Hour))
	assert.Error(t, err)
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func newFileService(t *testing.T, maxSize int64) FileService {
	t.Helper()
	st, err := storage.NewLocalStorage(config.StorageConfig{BasePath: t.TempDir(), BaseURL: "/media"})
	require.NoError(t, err)
	return NewFileService(st, "resume/resume.pdf", maxSize, imageprocessor.NewProcessor(0))
}

func TestFileService_Resume(t *testing.T) {
	ctx := context.Background()
	svc := newFileService(t, 1024)

	_, _, err := svc.OpenResume(ctx)
	assert.True(t, apperrors.Is(err, apperrors.ErrResumeNotFound))

	_, err = svc.UploadResume(ctx, fileHeader(t, "cv.pdf", []byte("plain text, not a pdf")))
	assert.Equal(t, http.StatusUnsupportedMediaType, apperrors.StatusCode(err))

	_, err = svc.UploadResume(ctx, fileHeader(t, "cv.pdf", append([]byte("%PDF-1.4\n"), make([]byte, 2048)...)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, apperrors.StatusCode(err))

	resp, err := svc.UploadResume(ctx, fileHeader(t, "cv.pdf", []byte("%PDF-1.4\n%%EOF")))
	require.NoError(t, err)
	assert.Equal(t, "/media/resume/resume.pdf", resp.URL)

	f, info, err := svc.OpenResume(ctx)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, resp.Size, info.Size)
}

func TestFileService_Media(t *testing.T) {
	ctx := context.Background()
	svc := newFileService(t, 1<<20)
	small := encodePNG(t, 64, 64)

	_, err := svc.UploadMedia(ctx, "secrets", fileHeader(t, "a.png", small))
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusCode(err))

	_, err = svc.UploadMedia(ctx, "icons", fileHeader(t, "a.png", []byte("\x89PNG\r\n\x1a\n0000")))
	assert.Equal(t, http.StatusUnsupportedMediaType, apperrors.StatusCode(err))

	resp, err := svc.UploadMedia(ctx, "icons", fileHeader(t, "a.png", small))
	require.NoError(t, err)
	assert.Regexp(t, `^icons/[0-9a-f-]+\.png$`, resp.Path)
	assert.Equal(t, int64(len(small)), resp.Size)

	big, err := svc.UploadMedia(ctx, "icons", fileHeader(t, "big.png", encodePNG(t, 1024, 512)))
	require.NoError(t, err)
	bf, _, err := svc.OpenMedia(ctx, big.Path)
	require.NoError(t, err)
	data, err := io.ReadAll(bf)
	bf.Close()
	require.NoError(t, err)
	w, h, err := imageprocessor.Dimensions(data)
	require.NoError(t, err)
	assert.Equal(t, 256, w)
	assert.Equal(t, 128, h)

	f, _, err := svc.OpenMedia(ctx, resp.Path)
	require.NoError(t, err)
	f.Close()

	_, _, err = svc.OpenMedia(ctx, "icons/missing.png")
	assert.True(t, apperrors.IsNotFound(err))
}
