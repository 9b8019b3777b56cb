package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cursoscarioca/webciclo/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"account disabled", apperrors.ErrAccountDisabled, http.StatusForbidden},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"token invalid", apperrors.ErrTokenInvalid, http.StatusUnauthorized},
		{"username exists", apperrors.ErrUsernameExists, http.StatusConflict},
		{"bad request", apperrors.NewBadRequestError("formulário inválido"), http.StatusBadRequest},
		{"invalid upload", apperrors.NewCustomError(apperrors.ErrInvalidUpload, "Tipo de arquivo não permitido"), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := handleError(t, tc.err)
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestHandleAPIErrorValidationDetails(t *testing.T) {
	err := apperrors.NewValidationError(
		[]string{"Título é obrigatório", "Modalidade é obrigatória"},
		[]string{"Data de início das inscrições muito distante no futuro"},
	)

	w := handleError(t, err)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Details struct {
				Errors   []string `json:"errors"`
				Warnings []string `json:"warnings"`
			} `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	if body.Success {
		t.Error("success = true, want false")
	}
	if body.Error.Code != "VAL_001" {
		t.Errorf("error code = %q, want VAL_001", body.Error.Code)
	}
	if len(body.Error.Details.Errors) != 2 {
		t.Errorf("details errors = %v, want 2 entries", body.Error.Details.Errors)
	}
	if len(body.Error.Details.Warnings) != 1 {
		t.Errorf("details warnings = %v, want 1 entry", body.Error.Details.Warnings)
	}
}
