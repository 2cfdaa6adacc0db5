package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTamperedSessionCookieIsRejected(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "marta", "segreta123")
	sessionCookie := loginAndExtractSessionCookie(t, app, "marta", "segreta123")

	request := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	request.Header.Set("Cookie", sessionCookie+"x")
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET /dashboard failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("a tampered token must bounce to login, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/" {
		t.Fatalf("expected redirect to /, got %q", location)
	}
}

func TestSessionOfDeletedUserIsRejected(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "marta", "segreta123")
	sessionCookie := loginAndExtractSessionCookie(t, app, "marta", "segreta123")

	if err := database.Delete(&user).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}

	request := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	request.Header.Set("Cookie", sessionCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET /dashboard failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("a session for a missing user must bounce to login, got %d", response.StatusCode)
	}
}
