package middleware

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorHandlerKeepsIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.New("error").Parse(`{{.status}} role={{.role}} authenticated={{.authenticated}}`)))
	// the identity is set after ErrorHandler, like Authenticate in the site group
	router.Use(ErrorHandler(), func(c *gin.Context) {
		c.Set(UserRoleKey, c.Query("role"))
	})
	router.GET("/pizze/:id", func(c *gin.Context) {
		_ = c.Error(services.ErrPizzaNotFound)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pizze/9?role=ADMIN", nil))
	assert.Equal(t, "404 role=ADMIN authenticated=true", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pizze/9", nil))
	assert.Equal(t, "404 role= authenticated=false", w.Body.String())
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.New("error").Parse(`status={{.status}} message={{.message}}`)))
	router.Use(ErrorHandler())

	router.GET("/missing", func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("%w: id 7", services.ErrPizzaNotFound))
	})
	router.GET("/bad", func(c *gin.Context) {
		_ = c.Error(errors.New("invalid id")).SetType(gin.ErrorTypeBind)
	})
	router.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("connection refused"))
	})
	router.GET("/api/v1/missing", func(c *gin.Context) {
		_ = c.Error(services.ErrOfferNotFound)
	})
	router.GET("/admin/api/v1/clients", func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("create client: %w", gorm.ErrDuplicatedKey))
	})
	router.GET("/answered", func(c *gin.Context) {
		_ = c.Error(services.ErrPizzaNotFound)
		c.Redirect(http.StatusFound, "/pizze")
	})

	testCases := []struct {
		path     string
		status   int
		contains string
	}{
		{"/missing", http.StatusNotFound, "pizza not found: id 7"},
		{"/bad", http.StatusBadRequest, "invalid id"},
		{"/boom", http.StatusInternalServerError, "Internal Server Error"},
		{"/api/v1/missing", http.StatusNotFound, `"code":"OFFER_NOT_FOUND"`},
		{"/admin/api/v1/clients", http.StatusConflict, `"code":"CONFLICT"`},
		{"/answered", http.StatusFound, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.contains)
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}
