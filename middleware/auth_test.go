package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sofibayo/wedding-api/utils"
)

func newAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }

	pages := router.Group("/admin")
	pages.Use(AdminPageGate("/admin/login"))
	pages.GET("/login", ok)
	pages.GET("/dashboard", ok)

	api := router.Group("/api/admin")
	api.Use(AdminAuthRequired())
	api.GET("/invitations", ok)

	return router
}

func TestAdminPageGate(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-session-secret")

	validToken, err := utils.GenerateAdminToken()
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	tt := []struct {
		name         string
		target       string
		cookie       string
		wantStatus   int
		wantRedirect string
	}{
		{
			name:       "login page passes without cookie",
			target:     "/admin/login",
			wantStatus: http.StatusOK,
		},
		{
			name:         "dashboard without cookie redirects to login",
			target:       "/admin/dashboard",
			wantStatus:   http.StatusFound,
			wantRedirect: "/admin/login",
		},
		{
			name:         "dashboard with bogus cookie redirects to login",
			target:       "/admin/dashboard",
			cookie:       "bogus",
			wantStatus:   http.StatusFound,
			wantRedirect: "/admin/login",
		},
		{
			name:       "dashboard with valid session passes",
			target:     "/admin/dashboard",
			cookie:     validToken,
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			router := newAdminRouter()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: tc.cookie})
			}
			router.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, w.Code)
			}
			if tc.wantRedirect != "" && w.Header().Get("Location") != tc.wantRedirect {
				t.Errorf("expected redirect to %q, got %q", tc.wantRedirect, w.Header().Get("Location"))
			}
		})
	}
}

func TestAdminAuthRequired(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-session-secret")

	validToken, err := utils.GenerateAdminToken()
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	router := newAdminRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/invitations", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without cookie, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/admin/invitations", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: validToken})
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid session, got %d", w.Code)
	}
}
