package httpadapter

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adforge/internal/core/domain"
	"adforge/internal/core/port"
)

type createPage struct {
	User      *domain.Account
	Interests []string
	Notice    *Notice
}

type campaignPage struct {
	User     *domain.Account
	Campaign domain.Campaign
}

// handleCreateForm renders the creation form with the fixed interest
// catalog.
func (h *Handler) handleCreateForm(w http.ResponseWriter, r *http.Request) {
	page := createPage{
		User:      accountFrom(r.Context()),
		Interests: interestCatalog,
	}
	if notice, ok := readFlash(w, r); ok {
		page.Notice = &notice
	}
	h.render(w, "create_campaign.html", page)
}

// handleCreate consumes the multipart creation form and executes the
// campaign workflow. The uploaded banner file, when present, takes
// precedence over the banner_url field.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.uploads.MaxBytes); err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		// plain urlencoded submissions still work, just without a file
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
	}

	req := port.CreateCampaignReq{
		Name:      r.PostFormValue("name"),
		AgeRange:  r.PostFormValue("age_range"),
		Location:  r.PostFormValue("location"),
		Interests: r.PostForm["interests"],
		BannerURL: r.PostFormValue("banner_url"),
	}

	if file, header, err := r.FormFile("banner"); err == nil {
		defer file.Close()
		req.Banner = &port.BannerUpload{Filename: header.Filename, Reader: file}
	}

	campaign, err := h.svc.CreateCampaign(r.Context(), req)
	if err != nil {
		h.logger.Error("create campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeFlash(w, "success", fmt.Sprintf("Campaign %q created successfully!", campaign.Name))
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// handleViewCampaign renders one campaign. An unknown id is not an
// error: it yields a not-found notice and a redirect to the dashboard.
func (h *Handler) handleViewCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeFlash(w, "danger", "Campaign not found")
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	campaign, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.logger.Error("get campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if campaign == nil {
		writeFlash(w, "danger", "Campaign not found")
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	h.render(w, "view_campaign.html", campaignPage{
		User:     accountFrom(r.Context()),
		Campaign: *campaign,
	})
}
