package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"adforge/internal/core/domain"
	"adforge/internal/session"
)

type contextKey string

// accountContextKey carries the authenticated account through the
// request context.
const accountContextKey contextKey = "account"

// requireSession restores the session principal and aborts with a
// redirect to the login entry point when no valid active session exists.
// There is no silent continuation: protected handlers always observe an
// account in the context.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		value, ok := session.ReadCookie(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		accountID, ok := h.sessions.Lookup(value)
		if !ok {
			session.ClearCookie(w)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		account, err := h.svc.AccountByID(r.Context(), accountID)
		if err != nil {
			h.logger.Error("account lookup error", slog.Any("error", err))
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		if account == nil {
			session.ClearCookie(w)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), accountContextKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// accountFrom returns the session principal stored by requireSession.
func accountFrom(ctx context.Context) *domain.Account {
	account, _ := ctx.Value(accountContextKey).(*domain.Account)
	return account
}
