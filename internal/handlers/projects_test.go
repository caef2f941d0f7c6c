package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lockin90/lockin-backend/internal/middleware"
	"github.com/lockin90/lockin-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestParseListParams(t *testing.T) {
	assert.Equal(t, 50, parsePositiveInt("", 50))
	assert.Equal(t, 25, parsePositiveInt("25", 50))
	assert.Equal(t, 50, parsePositiveInt("0", 50))
	assert.Equal(t, 50, parsePositiveInt("-3", 50))
	assert.Equal(t, 50, parsePositiveInt("abc", 50))

	assert.Equal(t, 0, parseNonNegativeInt("", 0))
	assert.Equal(t, 0, parseNonNegativeInt("0", 5))
	assert.Equal(t, 10, parseNonNegativeInt("10", 0))
	assert.Equal(t, 0, parseNonNegativeInt("-1", 0))
}

func TestUpdateProjectRejectsUnknownStatus(t *testing.T) {
	user := &models.User{ID: "user-1"}
	r := httptest.NewRequest(http.MethodPut, "/api/projects/p1", strings.NewReader(`{"status":"done"}`))
	r = r.WithContext(middleware.WithUser(r.Context(), user))

	w := httptest.NewRecorder()
	UpdateProject(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), CodeValidation)
}
