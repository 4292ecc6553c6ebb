package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jaaago/civic-portal/internal/core/domain"
)

func guardRequest(t *testing.T, path string, session domain.Session) (*httptest.ResponseRecorder, string, bool) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), rec)
	c.Set(SessionKey, session)

	var view string
	called := false
	handler := Guard()(func(c echo.Context) error {
		called = true
		view, _ = c.Get(ViewKey).(string)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, view, called
}

func TestGuard_AllowsMatchingRole(t *testing.T) {
	session := domain.Authenticated("sid", domain.Profile{ID: "u"}, domain.RoleAuthority)

	rec, view, called := guardRequest(t, "/authority-dashboard/issues", session)
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if view != "issues" {
		t.Fatalf("expected view issues, got %q", view)
	}
}

func TestGuard_RedirectsWrongRole(t *testing.T) {
	session := domain.Authenticated("sid", domain.Profile{ID: "u"}, domain.RoleCitizen)

	rec, _, called := guardRequest(t, "/partner-dashboard/tasks", session)
	if called {
		t.Fatalf("should not reach next handler")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/partner-auth" {
		t.Fatalf("expected redirect to /partner-auth, got %q", loc)
	}
}

func TestGuard_RedirectsAnonymous(t *testing.T) {
	rec, _, called := guardRequest(t, "/citizen-dashboard", domain.Anonymous(""))
	if called {
		t.Fatalf("should not reach next handler")
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/citizen-auth" {
		t.Fatalf("expected redirect to /citizen-auth, got %q", loc)
	}
}

func TestGuard_PublicPathPasses(t *testing.T) {
	rec, view, called := guardRequest(t, "/locale", domain.Anonymous(""))
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("public path should render, got %d", rec.Code)
	}
	if view != "" {
		t.Fatalf("public path has no view, got %q", view)
	}
}
