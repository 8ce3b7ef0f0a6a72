package handlers

import (
	"errors"
	"mime"
	"net/http"
	"path"
	"time"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/pagination"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/validator"
	"portfolio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// pageData - данные для всех HTML-шаблонов. Шаблоны обращаются только к нужным полям.
type pageData struct {
	Site  config.SiteConfig
	Title string
	Year  int

	Content   *dto.HomeContent
	Jobs      []models.Experience
	Skills    []models.Experience
	Education []models.Education
	Services  []models.ServiceEntry
	Projects  []models.Project
	Page      pagination.Page
	Project   *models.Project

	Form       dto.ContactForm
	Errors     map[string]string
	FormAction string
	Sent       bool

	Message string
}

// PageHandler - публичные HTML-страницы сайта
type PageHandler struct {
	*BaseHandler
	contentService services.ContentService
	contactService services.ContactService
	fileService    services.FileService
	site           config.SiteConfig
}

func NewPageHandler(
	base *BaseHandler,
	contentService services.ContentService,
	contactService services.ContactService,
	fileService services.FileService,
	site config.SiteConfig,
) *PageHandler {
	return &PageHandler{
		BaseHandler:    base,
		contentService: contentService,
		contactService: contactService,
		fileService:    fileService,
		site:           site,
	}
}

func (h *PageHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Home)
	r.POST("/", h.SubmitHomeContact)
	r.GET("/experiences/", h.Experiences)
	r.GET("/skills/", h.Skills)
	r.GET("/about/", h.About)
	r.GET("/services/", h.Services)
	r.GET("/projects/", h.Projects)
	r.GET("/project/:id/", h.ProjectDetail)
	r.GET("/contact/", h.Contact)
	r.POST("/contact/", h.SubmitContact)
	r.GET("/resume/", h.Resume)
	r.GET("/media/*path", h.Media)
}

func (h *PageHandler) newPage(title string) *pageData {
	return &pageData{
		Site:  h.site,
		Title: title,
		Year:  time.Now().Year(),
	}
}

func (h *PageHandler) Home(c *gin.Context) {
	h.renderHome(c, http.StatusOK, dto.ContactForm{}, nil)
}

func (h *PageHandler) renderHome(c *gin.Context, status int, form dto.ContactForm, errs map[string]string) {
	content, err := h.contentService.Home(h.GetDB(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	data := h.newPage("")
	data.Content = content
	data.Form = form
	data.Errors = errs
	data.FormAction = "/"
	c.HTML(status, "home", data)
}

// SubmitHomeContact - форма на главной: успех -> /#contact, ошибки -> главная с 400
func (h *PageHandler) SubmitHomeContact(c *gin.Context) {
	form, errs, err := h.submitContact(c)
	switch {
	case err != nil:
		h.renderError(c, err)
	case errs != nil:
		h.renderHome(c, http.StatusBadRequest, form, errs)
	default:
		c.Redirect(http.StatusFound, "/#contact")
	}
}

func (h *PageHandler) Contact(c *gin.Context) {
	h.renderContact(c, http.StatusOK, dto.ContactForm{}, nil, c.Query("sent") == "1")
}

func (h *PageHandler) SubmitContact(c *gin.Context) {
	form, errs, err := h.submitContact(c)
	switch {
	case err != nil:
		h.renderError(c, err)
	case errs != nil:
		h.renderContact(c, http.StatusBadRequest, form, errs, false)
	default:
		c.Redirect(http.StatusFound, "/contact/?sent=1")
	}
}

func (h *PageHandler) renderContact(c *gin.Context, status int, form dto.ContactForm, errs map[string]string, sent bool) {
	data := h.newPage("Contact")
	data.Form = form
	data.Errors = errs
	data.FormAction = "/contact/"
	data.Sent = sent
	c.HTML(status, "contact", data)
}

// submitContact возвращает ошибки полей отдельно от ошибок хранилища
func (h *PageHandler) submitContact(c *gin.Context) (dto.ContactForm, map[string]string, error) {
	var form dto.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind contact form", err)
	}

	_, err := h.contactService.Submit(c.Request.Context(), h.GetDB(c), &form)
	if err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			return form, vErr.Errors, nil
		}
		return form, nil, err
	}
	return form, nil, nil
}

func (h *PageHandler) Experiences(c *gin.Context) {
	jobs, err := h.contentService.Jobs(h.GetDB(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	data := h.newPage("Experience")
	data.Jobs = jobs
	c.HTML(http.StatusOK, "experiences", data)
}

func (h *PageHandler) Skills(c *gin.Context) {
	skills, err := h.contentService.Skills(h.GetDB(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	data := h.newPage("Skills")
	data.Skills = skills
	c.HTML(http.StatusOK, "skills", data)
}

func (h *PageHandler) About(c *gin.Context) {
	education, err := h.contentService.Education(h.GetDB(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	data := h.newPage("About")
	data.Education = education
	c.HTML(http.StatusOK, "about", data)
}

func (h *PageHandler) Services(c *gin.Context) {
	entries, err := h.contentService.Services(h.GetDB(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	data := h.newPage("Services")
	data.Services = entries
	c.HTML(http.StatusOK, "services", data)
}

func (h *PageHandler) Projects(c *gin.Context) {
	projects, page, err := h.contentService.ProjectsPage(h.GetDB(c), c.Query("page"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	data := h.newPage("Projects")
	data.Projects = projects
	data.Page = page
	c.HTML(http.StatusOK, "projects", data)
}

func (h *PageHandler) ProjectDetail(c *gin.Context) {
	project, err := h.contentService.Project(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	data := h.newPage(project.Title)
	data.Project = project
	c.HTML(http.StatusOK, "project", data)
}

// Resume отдает PDF как вложение с именем из конфига
func (h *PageHandler) Resume(c *gin.Context) {
	f, info, err := h.fileService.OpenResume(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	defer f.Close()

	name := h.site.ResumeDownloadName
	if name == "" {
		name = path.Base(info.Path)
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	http.ServeContent(c.Writer, c.Request, name, info.ModTime, f)
}

func (h *PageHandler) Media(c *gin.Context) {
	f, info, err := h.fileService.OpenMedia(c.Request.Context(), c.Param("path"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	defer f.Close()

	http.ServeContent(c.Writer, c.Request, path.Base(info.Path), info.ModTime, f)
}

// renderError: NotFound -> страница 404, остальное -> 500 с записью в лог
func (h *PageHandler) renderError(c *gin.Context, err error) {
	if apperrors.IsNotFound(err) {
		appErr, _ := apperrors.AsAppError(err)
		logger.CtxWarn(c.Request.Context(), "Page not found", "path", c.Request.URL.Path, "error", appErr.Message)

		data := h.newPage("Not found")
		data.Message = appErr.Message
		c.HTML(http.StatusNotFound, "not_found", data)
		return
	}

	logger.CtxWithError(c.Request.Context(), "Page rendering failed", err, "path", c.Request.URL.Path)
	_ = c.Error(err)
	c.HTML(http.StatusInternalServerError, "error", h.newPage("Error"))
}
