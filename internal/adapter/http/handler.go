package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adforge/internal/config/configs"
	"adforge/internal/core/port"
	"adforge/internal/session"
)

// interestCatalog is the fixed list of interest categories offered on
// the campaign creation form.
var interestCatalog = []string{"Technology", "Fashion", "Sports", "Travel", "Food", "Health"}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the campaign usecase, the session store and a logger
// for structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc      port.CampaignUseCase
	sessions *session.Store
	uploads  configs.Uploads
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. Protected
// routes are wrapped in the session middleware; previously uploaded
// banners are served from the upload directory under the configured
// static path.
func NewHandler(svc port.CampaignUseCase, sessions *session.Store, uploads configs.Uploads, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, sessions: sessions, uploads: uploads, logger: logger}
	r := chi.NewRouter()

	r.Get("/", h.handleHome)
	r.Get("/login", h.handleLoginForm)
	r.Post("/login", h.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Get("/logout", h.handleLogout)
		r.Get("/dashboard", h.handleDashboard)
		r.Get("/campaigns/create", h.handleCreateForm)
		r.Post("/campaigns/create", h.handleCreate)
		r.Get("/campaigns/{id}", h.handleViewCampaign)
	})

	r.Handle(uploads.URLPath+"/*", http.StripPrefix(uploads.URLPath+"/", http.FileServer(http.Dir(uploads.Dir))))

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// handleHome redirects to the login entry point.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusFound)
}
