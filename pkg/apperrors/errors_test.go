package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError_DoesNotMutatePredefined(t *testing.T) {
	cause := errors.New("record not found")
	err := ErrProjectNotFound.WithError(cause)

	assert.Nil(t, ErrProjectNotFound.Err)
	assert.True(t, errors.Is(err, ErrProjectNotFound))
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsNotFound(err))
	assert.False(t, errors.Is(err, ErrServiceNotFound))
}

func TestMarshalJSON_HidesCause(t *testing.T) {
	err := DatabaseError(errors.New("dial tcp: refused"))

	raw, mErr := json.Marshal(err)
	require.NoError(t, mErr)

	assert.NotContains(t, string(raw), "refused")
	assert.Contains(t, string(raw), string(CodeDatabaseError))
}

func TestHandleError_WritesStatusAndBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   ErrorCode
	}{
		{"validation", ValidationError(map[string]string{"email": "This field is required"}), http.StatusBadRequest, CodeValidationFailed},
		{"not found", ErrContactNotFound, http.StatusNotFound, CodeNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)

			var body struct {
				Error struct {
					Code ErrorCode `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(ErrResumeNotFound))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("x")))
}
