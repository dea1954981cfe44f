package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"adforge/internal/core/port"
	"adforge/internal/session"
)

type loginPage struct {
	Notice *Notice
}

// handleLoginForm renders the login form.
func (h *Handler) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	page := loginPage{}
	if notice, ok := readFlash(w, r); ok {
		page.Notice = &notice
	}
	h.render(w, "login.html", page)
}

// handleLogin authenticates the submitted email. Success establishes a
// session and redirects to the dashboard; any failure redisplays the
// form with a generic rejection notice.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	account, err := h.svc.Authenticate(r.Context(), r.PostFormValue("email"))
	if err != nil {
		if !errors.Is(err, port.ErrInvalidCredentials) {
			h.logger.Error("authenticate error", slog.Any("error", err))
		}
		writeFlash(w, "danger", "Invalid credentials. Try admin@example.com")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	session.WriteCookie(w, h.sessions.Create(account.ID))
	writeFlash(w, "success", "Login successful!")
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// handleLogout tears the session down. The operation is idempotent for
// an authenticated caller.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if value, ok := session.ReadCookie(r); ok {
		h.sessions.Destroy(value)
	}
	session.ClearCookie(w)
	writeFlash(w, "info", "Logged out successfully!")
	http.Redirect(w, r, "/login", http.StatusFound)
}
