package handlers

import (
	"net/http"

	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ContactHandler - входящие заявки в админке. Сами заявки создаются формой на страницах.
type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	contacts := r.Group("/contacts")
	{
		contacts.GET("", h.ListContacts)
		contacts.POST("/bulk", h.BulkContacts)
		contacts.GET("/:id", h.GetContact)
		contacts.DELETE("/:id", h.DeleteContact)
	}
}

// ListContacts godoc
// @Summary      Список заявок
// @Tags         admin-contacts
// @Produce      json
// @Param        is_read  query  bool    false  "Фильтр по прочтению"
// @Param        replied  query  bool    false  "Фильтр по ответу"
// @Param        q        query  string  false  "Поиск"
// @Param        page     query  int     false  "Страница"
// @Success      200  {object}  dto.ContactListResponse
// @Security     BearerAuth
// @Router       /api/v1/admin/contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	var query dto.ContactListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.contactService.List(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetContact godoc
// @Summary      Заявка по ID
// @Tags         admin-contacts
// @Produce      json
// @Param        id   path  string  true  "ID заявки"
// @Success      200  {object}  dto.ContactResponse
// @Failure      404  {object}  apperrors.ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/admin/contacts/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	resp, err := h.contactService.Get(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteContact godoc
// @Summary      Удалить заявку
// @Tags         admin-contacts
// @Param        id   path  string  true  "ID заявки"
// @Success      204
// @Failure      404  {object}  apperrors.ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/admin/contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	if err := h.contactService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkContacts godoc
// @Summary      Массовые действия: mark_read, mark_unread, mark_replied
// @Tags         admin-contacts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkActionRequest  true  "Действие и ID"
// @Success      200  {object}  dto.BulkActionResponse
// @Security     BearerAuth
// @Router       /api/v1/admin/contacts/bulk [post]
func (h *ContactHandler) BulkContacts(c *gin.Context) {
	var req dto.BulkActionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.contactService.Bulk(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
