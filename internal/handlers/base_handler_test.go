package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/validator"
	"portfolio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(h gin.HandlerFunc, method, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Handle(method, "/", h)
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleServiceError(t *testing.T) {
	h := NewBaseHandler(validator.New())

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"field errors", &validator.ValidationError{Errors: map[string]string{"email": "Enter a valid email address"}}, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"wrapped not found", fmt.Errorf("load: %w", apperrors.ErrProjectNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"database", apperrors.DatabaseError(errors.New("disk I/O error")), http.StatusInternalServerError, "DATABASE_ERROR"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(func(c *gin.Context) { h.HandleServiceError(c, tc.err) }, http.MethodGet, "")
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.code)
		})
	}
}

func TestBindAndValidate_JSON(t *testing.T) {
	h := NewBaseHandler(validator.New())
	handler := func(c *gin.Context) {
		var req dto.BulkActionRequest
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}
		c.String(http.StatusOK, req.Action)
	}

	w := serve(handler, http.MethodPost, `{"action":"make_visible","ids":["a"]}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "make_visible", w.Body.String())

	w = serve(handler, http.MethodPost, `{"action":"make_visible","ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"ids"`)

	w = serve(handler, http.MethodPost, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestGetDB_PanicsWithoutMiddleware(t *testing.T) {
	h := NewBaseHandler(validator.New())
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Panics(t, func() { h.GetDB(c) })
}
