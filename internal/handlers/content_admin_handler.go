package handlers

import (
	"context"
	"net/http"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContentAdminService - общий набор операций админки для редактируемого раздела.
// Q - фильтры списка, Req - тело create/update, R - одна запись, L - элемент списка.
type ContentAdminService[Q, Req, R, L any] interface {
	List(db *gorm.DB, query *Q) (*dto.ListResponse[L], error)
	Get(db *gorm.DB, id string) (R, error)
	Create(ctx context.Context, db *gorm.DB, req *Req) (R, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *Req) (R, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
	SetOrder(db *gorm.DB, id string, order int) error
	Bulk(ctx context.Context, db *gorm.DB, req *dto.BulkActionRequest) (*dto.BulkActionResponse, error)
}

// ContentAdminHandler - CRUD, массовые действия и порядок для одного раздела
type ContentAdminHandler[Q, Req, R, L any] struct {
	*BaseHandler
	resource string
	service  ContentAdminService[Q, Req, R, L]
}

type (
	ExperienceHandler = ContentAdminHandler[dto.ExperienceListQuery, dto.ExperienceRequest, *dto.ExperienceResponse, *dto.ExperienceResponse]
	EducationHandler  = ContentAdminHandler[dto.EducationListQuery, dto.EducationRequest, *models.Education, models.Education]
	ProjectHandler    = ContentAdminHandler[dto.ProjectListQuery, dto.ProjectRequest, *models.Project, models.Project]
	ServiceHandler    = ContentAdminHandler[dto.ServiceListQuery, dto.ServiceRequest, *models.ServiceEntry, models.ServiceEntry]
)

func NewExperienceHandler(base *BaseHandler, service services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{BaseHandler: base, resource: "experiences", service: service}
}

func NewEducationHandler(base *BaseHandler, service services.EducationService) *EducationHandler {
	return &EducationHandler{BaseHandler: base, resource: "education", service: service}
}

func NewProjectHandler(base *BaseHandler, service services.ProjectService) *ProjectHandler {
	return &ProjectHandler{BaseHandler: base, resource: "projects", service: service}
}

func NewServiceHandler(base *BaseHandler, service services.ServiceEntryService) *ServiceHandler {
	return &ServiceHandler{BaseHandler: base, resource: "services", service: service}
}

// RegisterRoutes регистрирует /{resource} в группе админки (группа уже под AdminAuthMiddleware)
func (h *ContentAdminHandler[Q, Req, R, L]) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/" + h.resource)
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.POST("/bulk", h.Bulk)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
		g.PATCH("/:id/order", h.SetOrder)
	}
}

func (h *ContentAdminHandler[Q, Req, R, L]) List(c *gin.Context) {
	var query Q
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.service.List(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContentAdminHandler[Q, Req, R, L]) Get(c *gin.Context) {
	item, err := h.service.Get(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContentAdminHandler[Q, Req, R, L]) Create(c *gin.Context) {
	var req Req
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.service.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentAdminHandler[Q, Req, R, L]) Update(c *gin.Context) {
	var req Req
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.service.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContentAdminHandler[Q, Req, R, L]) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentAdminHandler[Q, Req, R, L]) SetOrder(c *gin.Context) {
	var req dto.OrderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	id := c.Param("id")
	if err := h.service.SetOrder(h.GetDB(c), id, *req.Order); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "order": *req.Order})
}

func (h *ContentAdminHandler[Q, Req, R, L]) Bulk(c *gin.Context) {
	var req dto.BulkActionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.service.Bulk(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
