package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/ecoshare/ecoshare-backend/internal/model"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Holder owns all active sessions. Login issues an opaque bearer token;
// Logout invalidates it. Nothing is persisted, so every restart begins with
// no sessions.
type Holder struct {
	mu       sync.Mutex
	registry IdentityRegistry
	sessions map[string]model.Session
}

func NewHolder(registry IdentityRegistry) *Holder {
	return &Holder{
		registry: registry,
		sessions: make(map[string]model.Session),
	}
}

func (h *Holder) Login(creds Credentials) (model.Session, error) {
	identity, ok := h.registry.Lookup(creds.Username, creds.Password)
	if !ok {
		return model.Session{}, ErrInvalidCredentials
	}
	sess := model.Session{
		Token: uuid.NewString(),
		Name:  identity.Name,
	}
	h.mu.Lock()
	h.sessions[sess.Token] = sess
	h.mu.Unlock()
	return sess, nil
}

// Logout is unconditional: unknown tokens are a no-op.
func (h *Holder) Logout(token string) {
	h.mu.Lock()
	delete(h.sessions, token)
	h.mu.Unlock()
}

func (h *Holder) Resolve(token string) (model.Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	sess, ok := h.sessions[token]
	return sess, ok
}
