// Package session provides server-side sessions bound to an account
// identifier, carried by an HMAC-signed browser cookie.
package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store is a thread-safe in-memory session store. Session identifiers
// are random; the signing secret only authenticates cookie values, so a
// restart with a fresh random secret invalidates all outstanding
// sessions.
type Store struct {
	secret []byte

	mu       sync.RWMutex
	sessions map[string]string // session id -> account id
}

// NewStore creates a store signing cookie values with secret. An empty
// secret is replaced by random bytes, meaning sessions will not survive
// a process restart unless the secret is pinned externally.
func NewStore(secret string) *Store {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(err)
		}
	}
	return &Store{
		secret:   key,
		sessions: make(map[string]string),
	}
}

// Create stores a new session for the account and returns the signed
// cookie value.
func (s *Store) Create(accountID string) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = accountID
	s.mu.Unlock()
	return s.sign(id)
}

// Lookup resolves a signed cookie value to the bound account identifier.
// Tampered, unknown or malformed values yield ok == false.
func (s *Store) Lookup(cookieValue string) (accountID string, ok bool) {
	id, ok := s.verify(cookieValue)
	if !ok {
		return "", false
	}
	s.mu.RLock()
	accountID, ok = s.sessions[id]
	s.mu.RUnlock()
	return accountID, ok
}

// Destroy removes the session named by the signed cookie value. It is
// idempotent: destroying an unknown or already-destroyed session is a
// no-op.
func (s *Store) Destroy(cookieValue string) {
	id, ok := s.verify(cookieValue)
	if !ok {
		return
	}
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// sign produces "id.mac" with a hex-encoded HMAC-SHA256 tag.
func (s *Store) sign(id string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(id))
	return id + "." + hex.EncodeToString(mac.Sum(nil))
}

// verify checks the signature and returns the embedded session id.
func (s *Store) verify(value string) (string, bool) {
	id, tag, found := strings.Cut(value, ".")
	if !found || id == "" {
		return "", false
	}
	want, err := hex.DecodeString(tag)
	if err != nil {
		return "", false
	}
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(id))
	if !hmac.Equal(mac.Sum(nil), want) {
		return "", false
	}
	return id, true
}
