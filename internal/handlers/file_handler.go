package handlers

import (
	"net/http"

	"portfolio_backend/internal/services"
	"portfolio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler - загрузка резюме и картинок из админки
type FileHandler struct {
	*BaseHandler
	fileService services.FileService
}

func NewFileHandler(base *BaseHandler, fileService services.FileService) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		fileService: fileService,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.PUT("/resume", h.UploadResume)
	r.POST("/media/:folder", h.UploadMedia)
}

// UploadResume godoc
// @Summary      Заменить файл резюме (PDF)
// @Tags         admin-files
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF"
// @Success      200  {object}  dto.FileResponse
// @Failure      413  {object}  apperrors.ErrorResponse
// @Failure      415  {object}  apperrors.ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/admin/resume [put]
func (h *FileHandler) UploadResume(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.ValidationError(map[string]string{"file": "This field is required"}))
		return
	}

	resp, err := h.fileService.UploadResume(c.Request.Context(), fh)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UploadMedia godoc
// @Summary      Загрузить картинку (icons, logos, projects, services)
// @Tags         admin-files
// @Accept       multipart/form-data
// @Produce      json
// @Param        folder  path      string  true  "Каталог"
// @Param        file    formData  file    true  "Картинка"
// @Success      201  {object}  dto.FileResponse
// @Security     BearerAuth
// @Router       /api/v1/admin/media/{folder} [post]
func (h *FileHandler) UploadMedia(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.ValidationError(map[string]string{"file": "This field is required"}))
		return
	}

	resp, err := h.fileService.UploadMedia(c.Request.Context(), c.Param("folder"), fh)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
