package httpadapter

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

// flashCookieName is the cookie carrying one-time user notices across
// redirects.
const flashCookieName = "ad_flash"

// Notice is a one-time user-visible message with a presentation kind.
type Notice struct {
	Kind    string `json:"kind"` // success, danger, info
	Message string `json:"message"`
}

// writeFlash stores a notice cookie for the next page render.
func writeFlash(w http.ResponseWriter, kind, message string) {
	payload, err := json.Marshal(Notice{Kind: kind, Message: message})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// readFlash reads and clears the notice cookie. The second return is
// false when no valid notice is present.
func readFlash(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie == nil {
		return Notice{}, false
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return Notice{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil || notice.Message == "" {
		return Notice{}, false
	}
	return notice, true
}
