package httpadapter

import (
	"log/slog"
	"net/http"

	"adforge/internal/core/domain"
)

type dashboardPage struct {
	User      *domain.Account
	Campaigns []domain.Campaign
	Notice    *Notice
}

// handleDashboard renders the full in-memory campaign list.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	page := dashboardPage{
		User:      accountFrom(r.Context()),
		Campaigns: campaigns,
	}
	if notice, ok := readFlash(w, r); ok {
		page.Notice = &notice
	}
	h.render(w, "dashboard.html", page)
}
