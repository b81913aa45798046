package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/community-cms/internal/api"
	"github.com/community-cms/internal/auth"
	"github.com/community-cms/internal/config"
	"github.com/community-cms/internal/mocks"
	"github.com/community-cms/internal/models"
	"github.com/community-cms/internal/repository"
	"github.com/community-cms/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type testRepos struct {
	News     *mocks.MockNewsRepository
	Faq      *mocks.MockFaqRepository
	Resource *mocks.MockResourceRepository
	Waitlist *mocks.MockWaitlistRepository
}

func setupTestRouter(t *testing.T) (*gin.Engine, *testRepos) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := &testRepos{
		News:     mocks.NewMockNewsRepository(),
		Faq:      mocks.NewMockFaqRepository(),
		Resource: mocks.NewMockResourceRepository(),
		Waitlist: mocks.NewMockWaitlistRepository(),
	}

	services := service.NewServices(&repository.Repositories{
		News:     repos.News,
		Faq:      repos.Faq,
		Resource: repos.Resource,
		Waitlist: repos.Waitlist,
	}, zerolog.Nop())

	gate := auth.NewGate(&config.AdminConfig{
		Username:      "admin",
		Password:      "s3cret",
		SessionSecret: "test-signing-secret",
	}, zerolog.Nop())

	router, err := api.NewRouter(services, gate, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRouter failed: %v", err)
	}

	return router, repos
}

func formRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// adminLogin performs a login and returns the session cookie.
func adminLogin(t *testing.T, router *gin.Engine) *http.Cookie {
	t.Helper()

	form := url.Values{"username": {"admin"}, "password": {"s3cret"}}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, formRequest("POST", "/admin/login", form))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected login redirect 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/news" {
		t.Fatalf("Expected redirect to /admin/news, got %s", loc)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Expected session cookie after login")
	}
	return cookies[0]
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("Expected healthy status, got %s", w.Body.String())
	}
}

func TestHomeShowsMemberCount(t *testing.T) {
	router, repos := setupTestRouter(t)
	repos.Waitlist.Append(nil, "a@example.com")
	repos.Waitlist.Append(nil, "b@example.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "2 members") {
		t.Errorf("Expected member count in body, got %s", w.Body.String())
	}
}

func TestMemberCountDegradesToZero(t *testing.T) {
	router, repos := setupTestRouter(t)
	repos.Waitlist.CountErr = errors.New("connection refused")

	for _, path := range []string{"/", "/about", "/community"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200 despite count failure, got %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "0 members") {
			t.Errorf("%s: expected degraded count 0, got %s", path, w.Body.String())
		}
	}
}

func TestJoinAppendsAndRedirects(t *testing.T) {
	router, repos := setupTestRouter(t)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, formRequest("POST", "/join", url.Values{"email": {"dup@example.com"}}))

		if w.Code != http.StatusSeeOther {
			t.Fatalf("Expected 303, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/" {
			t.Errorf("Expected redirect to /, got %s", loc)
		}
	}

	// Duplicates are kept
	if len(repos.Waitlist.WaitlistEntries) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(repos.Waitlist.WaitlistEntries))
	}
}

func TestJoinMissingEmailRejected(t *testing.T) {
	router, repos := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, formRequest("POST", "/join", url.Values{}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
	if repos.Waitlist.AppendCalls != 0 {
		t.Errorf("Expected no append on validation failure, got %d", repos.Waitlist.AppendCalls)
	}
}

func TestPublicNewsNewestFirst(t *testing.T) {
	router, repos := setupTestRouter(t)
	for _, title := range []string{"alpha", "beta", "gamma"} {
		repos.News.Create(nil, &models.NewsPost{Title: title, Content: "body", Date: "Jan 01, 2024"})
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/news", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	gamma, beta, alpha := strings.Index(body, "gamma"), strings.Index(body, "beta"), strings.Index(body, "alpha")
	if gamma == -1 || beta == -1 || alpha == -1 {
		t.Fatalf("Expected all titles in body")
	}
	if !(gamma < beta && beta < alpha) {
		t.Errorf("Expected newest-first order, got positions gamma=%d beta=%d alpha=%d", gamma, beta, alpha)
	}
}

func TestLoginFailureMessageIsGeneric(t *testing.T) {
	router, _ := setupTestRouter(t)

	bodies := make([]string, 0, 2)
	for _, form := range []url.Values{
		{"username": {"wrong"}, "password": {"s3cret"}},
		{"username": {"admin"}, "password": {"wrong"}},
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, formRequest("POST", "/admin/login", form))

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Invalid login details") {
			t.Errorf("Expected generic error message, got %s", w.Body.String())
		}
		bodies = append(bodies, w.Body.String())
	}

	// The response must not reveal which field was wrong
	if bodies[0] != bodies[1] {
		t.Error("Expected identical bodies for bad username vs bad password")
	}
}

func TestAdminRoutesRedirectWithoutSession(t *testing.T) {
	adminPaths := []struct {
		method string
		path   string
	}{
		{"GET", "/admin/waitlist"},
		{"GET", "/admin/news"},
		{"POST", "/admin/news"},
		{"GET", "/admin/news/edit/1"},
		{"POST", "/admin/news/edit/1"},
		{"GET", "/admin/news/delete/1"},
		{"GET", "/admin/faq"},
		{"POST", "/admin/faq"},
		{"GET", "/admin/faq/edit/1"},
		{"POST", "/admin/faq/edit/1"},
		{"GET", "/admin/faq/delete/1"},
		{"GET", "/admin/resources"},
		{"POST", "/admin/resources"},
		{"GET", "/admin/resources/edit/1"},
		{"POST", "/admin/resources/edit/1"},
		{"GET", "/admin/resources/delete/1"},
	}

	router, repos := setupTestRouter(t)

	for _, route := range adminPaths {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, formRequest(route.method, route.path, url.Values{"title": {"x"}}))

		if w.Code != http.StatusFound {
			t.Errorf("%s %s: expected 302, got %d", route.method, route.path, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/admin/login" {
			t.Errorf("%s %s: expected redirect to /admin/login, got %s", route.method, route.path, loc)
		}
	}

	// No entity mutation may occur behind the gate
	mutations := repos.News.CreateCalls + repos.News.UpdateCalls + repos.News.DeleteCalls +
		repos.Faq.CreateCalls + repos.Faq.UpdateCalls + repos.Faq.DeleteCalls +
		repos.Resource.CreateCalls + repos.Resource.UpdateCalls + repos.Resource.DeleteCalls
	if mutations != 0 {
		t.Errorf("Expected zero mutations without a session, got %d", mutations)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	router, _ := setupTestRouter(t)
	cookie := adminLogin(t, router)

	// With the cookie the admin page is reachable
	req := httptest.NewRequest("GET", "/admin/news", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 with session, got %d", w.Code)
	}

	// Log out, then the cleared cookie no longer grants access
	req = httptest.NewRequest("GET", "/admin/logout", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusFound {
		t.Fatalf("Expected logout redirect, got %d", w.Code)
	}
	cleared := w.Result().Cookies()
	if len(cleared) == 0 {
		t.Fatal("Expected cleared session cookie")
	}

	req = httptest.NewRequest("GET", "/admin/news", nil)
	req.AddCookie(cleared[0])
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusFound {
		t.Errorf("Expected redirect after logout, got %d", w.Code)
	}
}

func TestAdminNewsCreate(t *testing.T) {
	router, repos := setupTestRouter(t)
	cookie := adminLogin(t, router)

	form := url.Values{"title": {"Launch"}, "content": {"We are live."}}
	req := formRequest("POST", "/admin/news", form)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if repos.News.CreateCalls != 1 {
		t.Fatalf("Expected 1 create call, got %d", repos.News.CreateCalls)
	}

	post := repos.News.Posts[1]
	if post == nil || post.Title != "Launch" {
		t.Fatalf("Expected stored post, got %+v", post)
	}
	if post.Date == "" {
		t.Error("Expected server-assigned date on create")
	}
}

func TestAdminNewsCreateValidation(t *testing.T) {
	router, repos := setupTestRouter(t)
	cookie := adminLogin(t, router)

	req := formRequest("POST", "/admin/news", url.Values{"title": {"no content"}})
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "content is required") {
		t.Errorf("Expected validation message, got %s", w.Body.String())
	}
	if repos.News.CreateCalls != 0 {
		t.Errorf("Expected no create on validation failure, got %d", repos.News.CreateCalls)
	}
}

func TestAdminNewsEditKeepsDate(t *testing.T) {
	router, repos := setupTestRouter(t)
	cookie := adminLogin(t, router)

	repos.News.Create(nil, &models.NewsPost{Title: "Launch", Content: "We are live.", Date: "Jan 01, 2020"})

	form := url.Values{"title": {"Launch (edited)"}, "content": {"Still live."}}
	req := formRequest("POST", "/admin/news/edit/1", form)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", w.Code)
	}
	post := repos.News.Posts[1]
	if post.Title != "Launch (edited)" {
		t.Errorf("Expected updated title, got %q", post.Title)
	}
	if post.Date != "Jan 01, 2020" {
		t.Errorf("Date must survive edits, got %q", post.Date)
	}
}

func TestAdminNewsEditUnknownID(t *testing.T) {
	router, _ := setupTestRouter(t)
	cookie := adminLogin(t, router)

	req := httptest.NewRequest("GET", "/admin/news/edit/99", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown id, got %d", w.Code)
	}
}

func TestAdminNewsDeleteMissingIDStillRedirects(t *testing.T) {
	router, repos := setupTestRouter(t)
	cookie := adminLogin(t, router)

	req := httptest.NewRequest("GET", "/admin/news/delete/99", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("Expected redirect for missing id delete, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/news" {
		t.Errorf("Expected redirect to /admin/news, got %s", loc)
	}
	if repos.News.DeleteCalls != 1 {
		t.Errorf("Expected delete attempted once, got %d", repos.News.DeleteCalls)
	}
}

func TestAdminFaqCreateAndDelete(t *testing.T) {
	router, repos := setupTestRouter(t)
	cookie := adminLogin(t, router)

	form := url.Values{"question": {"How do I join?"}, "answer": {"Use the form."}}
	req := formRequest("POST", "/admin/faq", form)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if len(repos.Faq.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(repos.Faq.Entries))
	}

	req = httptest.NewRequest("GET", "/admin/faq/delete/1", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("Expected redirect, got %d", w.Code)
	}
	if len(repos.Faq.Entries) != 0 {
		t.Errorf("Expected entry deleted, got %d", len(repos.Faq.Entries))
	}
}

func TestAdminResourceEditRefreshesUpdatedAt(t *testing.T) {
	router, repos := setupTestRouter(t)
	cookie := adminLogin(t, router)

	stale := "2001-01-01"
	repos.Resource.Create(nil, &models.Resource{
		Title:        "Old guide",
		ResourceType: "pdf",
		URL:          "https://example.com/old.pdf",
		UpdatedAt:    &stale,
	})

	form := url.Values{
		"title":         {"New guide"},
		"resource_type": {"pdf"},
		"url":           {"https://example.com/new.pdf"},
		"description":   {"Fresh revision"},
		"category":      {"onboarding"},
	}
	req := formRequest("POST", "/admin/resources/edit/1", form)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", w.Code)
	}
	res := repos.Resource.Resources[1]
	if res.Title != "New guide" {
		t.Errorf("Expected updated title, got %q", res.Title)
	}
	if res.UpdatedAt == nil || *res.UpdatedAt == stale {
		t.Errorf("Expected refreshed updated_at, got %v", res.UpdatedAt)
	}
	if *res.UpdatedAt < stale {
		t.Error("Refreshed updated_at must not precede the previous value")
	}
}

func TestAdminWaitlistListsEmails(t *testing.T) {
	router, repos := setupTestRouter(t)
	cookie := adminLogin(t, router)

	repos.Waitlist.Append(nil, "first@example.com")
	repos.Waitlist.Append(nil, "second@example.com")

	req := httptest.NewRequest("GET", "/admin/waitlist", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "first@example.com") || !strings.Contains(body, "second@example.com") {
		t.Errorf("Expected both emails in body, got %s", body)
	}
}
