package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Logged-out requests to member pages must bounce to the login form
// before any handler runs.
func TestMemberPagesRequireLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)

	paths := []string{
		"/",
		"/about",
		"/hubs",
		"/h/stem-careers",
		"/submit",
		"/profile/edit",
		"/mentorship",
	}
	for _, path := range paths {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code, "GET %s", path)
		assert.Equal(t, "/login", w.Header().Get("Location"), "GET %s", path)
	}
}
