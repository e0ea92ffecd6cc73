package snarkflix

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// The stats route must exist even when analytics collection is disabled;
// logging in then renders the disabled notice instead of a 404.
func TestAdminStatsWithAnalyticsDisabled(t *testing.T) {
	a := newTestApp(t)

	rec := get(a, "/admin/stats/", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("unauthenticated status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/" {
		t.Fatalf("redirect = %s, want /admin/", loc)
	}

	rec = get(a, "/admin/", nil)
	csrf := cookieByName(rec, "_csrf")
	if csrf == nil {
		t.Fatal("login page did not set a csrf cookie")
	}

	form := url.Values{}
	form.Set("password", "hunter2")
	form.Set("_csrf", csrf.Value)
	req := httptest.NewRequest(http.MethodPost, "/admin/login/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.AddCookie(csrf)
	loginRec := httptest.NewRecorder()
	a.Echo.ServeHTTP(loginRec, req)

	if loginRec.Code != http.StatusSeeOther {
		t.Fatalf("login status = %d, want %d", loginRec.Code, http.StatusSeeOther)
	}
	sess := cookieByName(loginRec, sessionName)
	if sess == nil {
		t.Fatal("login did not set a session cookie")
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/stats/", nil)
	req.AddCookie(sess)
	statsRec := httptest.NewRecorder()
	a.Echo.ServeHTTP(statsRec, req)

	if statsRec.Code != http.StatusOK {
		t.Fatalf("stats status = %d, want %d", statsRec.Code, http.StatusOK)
	}
	if !strings.Contains(statsRec.Body.String(), "Analytics collection is disabled") {
		t.Error("stats page missing the disabled notice")
	}
}

func TestAdminLoginWrongPassword(t *testing.T) {
	a := newTestApp(t)

	rec := get(a, "/admin/", nil)
	csrf := cookieByName(rec, "_csrf")
	if csrf == nil {
		t.Fatal("login page did not set a csrf cookie")
	}

	form := url.Values{}
	form.Set("password", "not-it")
	form.Set("_csrf", csrf.Value)
	req := httptest.NewRequest(http.MethodPost, "/admin/login/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.AddCookie(csrf)
	loginRec := httptest.NewRecorder()
	a.Echo.ServeHTTP(loginRec, req)

	if loginRec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", loginRec.Code, http.StatusOK)
	}
	if !strings.Contains(loginRec.Body.String(), "Wrong password") {
		t.Error("expected the login error message")
	}
	if cookieByName(loginRec, sessionName) != nil {
		t.Error("failed login must not set a session cookie")
	}
}
