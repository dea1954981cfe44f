package httpadapter

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"adforge/internal/adapter/assets"
	"adforge/internal/adapter/memory"
	"adforge/internal/adapter/openai"
	"adforge/internal/adapter/usecase"
	"adforge/internal/config/configs"
	"adforge/internal/core/domain"
	"adforge/internal/core/port"
	"adforge/internal/session"
)

func newTestHandler(t *testing.T) (*Handler, port.CampaignUseCase) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uploads := configs.Uploads{
		Dir:      t.TempDir(),
		URLPath:  "/static/uploads",
		BaseURL:  "http://localhost:8080",
		MaxBytes: 1 << 20,
	}
	accounts := memory.NewAccountRepository(domain.Account{ID: "1", Email: "admin@example.com", Name: "Admin User"})
	svc := usecase.NewCampaignUseCase(
		memory.NewCampaignRepository(),
		accounts,
		openai.NewCopyGenerator(configs.AdCopy{}, logger), // no credential: local template
		assets.NewDiskIngestor(uploads),
	)
	sessions := session.NewStore("test-secret")
	return NewHandler(svc, sessions, uploads, logger), svc
}

// login performs the login POST and returns the session cookie.
func login(t *testing.T, h *Handler, email string) *http.Cookie {
	t.Helper()
	form := url.Values{"email": {email}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusFound, rr.Code)
	for _, c := range rr.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return c
		}
	}
	return nil
}

func TestHomeRedirectsToLogin(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, path := range []string{"/dashboard", "/campaigns/create", "/campaigns/1", "/logout"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		h.Router().ServeHTTP(rr, req)

		require.Equalf(t, http.StatusFound, rr.Code, "path %s", path)
		require.Equalf(t, "/login", rr.Header().Get("Location"), "path %s", path)
	}
}

func TestLoginRejectsWrongEmail(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, email := range []string{"", "other@example.com", "Admin@Example.com"} {
		form := url.Values{"email": {email}}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		h.Router().ServeHTTP(rr, req)

		require.Equal(t, http.StatusFound, rr.Code)
		require.Equal(t, "/login", rr.Header().Get("Location"))
		for _, c := range rr.Result().Cookies() {
			require.NotEqual(t, session.CookieName, c.Name, "no session cookie on rejection")
		}
	}
}

func TestLoginSuccessEstablishesSession(t *testing.T) {
	h, _ := newTestHandler(t)

	cookie := login(t, h, "admin@example.com")
	require.NotNil(t, cookie, "expected session cookie")

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Admin User")
}

func TestLogoutClearsSession(t *testing.T) {
	h, _ := newTestHandler(t)
	cookie := login(t, h, "admin@example.com")

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/login", rr.Header().Get("Location"))

	// old cookie no longer grants access
	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)
	rr = httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestCreateCampaignFlow(t *testing.T) {
	h, svc := newTestHandler(t)
	cookie := login(t, h, "admin@example.com")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("name", "Summer Sale"))
	require.NoError(t, mw.WriteField("age_range", "18-30"))
	require.NoError(t, mw.WriteField("location", "CA"))
	require.NoError(t, mw.WriteField("interests", "Technology"))
	require.NoError(t, mw.WriteField("interests", "Travel"))
	require.NoError(t, mw.WriteField("banner_url", ""))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/campaigns/create", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/dashboard", rr.Header().Get("Location"))

	list, err := svc.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	c := list[0]
	require.Equal(t, int64(1), c.ID)
	require.Equal(t, "Summer Sale", c.Name)
	require.Equal(t, []string{"Technology", "Travel"}, c.Targeting.Interests)
	require.Equal(t, "Engaging ad copy for Summer Sale targeting Technology, Travel.", c.AdCopy)
	require.Equal(t, domain.CopySourceFallback, c.CopySource)
	require.Equal(t, assets.PlaceholderURL, c.BannerURL)

	// the stored campaign renders on its detail page
	req = httptest.NewRequest(http.MethodGet, "/campaigns/1", nil)
	req.AddCookie(cookie)
	rr = httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Summer Sale")
}

func TestCreateCampaignWithBannerUpload(t *testing.T) {
	h, svc := newTestHandler(t)
	cookie := login(t, h, "admin@example.com")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("name", "Upload Test"))
	fw, err := mw.CreateFormFile("banner", "banner.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("imagedata"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/campaigns/create", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)
	require.Equal(t, http.StatusFound, rr.Code)

	list, err := svc.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "http://localhost:8080/static/uploads/banner.png", list[0].BannerURL)
	// defaults applied when fields are missing
	require.Equal(t, "25-45", list[0].Targeting.AgeRange)
	require.Equal(t, "US", list[0].Targeting.Location)
	require.Equal(t, []string{"General"}, list[0].Targeting.Interests)

	// and the static endpoint serves it back
	req = httptest.NewRequest(http.MethodGet, "/static/uploads/banner.png", nil)
	rr = httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "imagedata", rr.Body.String())
}

func TestViewUnknownCampaignRedirects(t *testing.T) {
	h, _ := newTestHandler(t)
	cookie := login(t, h, "admin@example.com")

	for _, path := range []string{"/campaigns/999", "/campaigns/abc"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		h.Router().ServeHTTP(rr, req)

		require.Equalf(t, http.StatusFound, rr.Code, "path %s", path)
		require.Equalf(t, "/dashboard", rr.Header().Get("Location"), "path %s", path)
	}
}

func TestCreateFormListsInterestCatalog(t *testing.T) {
	h, _ := newTestHandler(t)
	cookie := login(t, h, "admin@example.com")

	req := httptest.NewRequest(http.MethodGet, "/campaigns/create", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	for _, interest := range []string{"Technology", "Fashion", "Sports", "Travel", "Food", "Health"} {
		require.Contains(t, rr.Body.String(), interest)
	}
}
