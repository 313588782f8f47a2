package session

import (
	"strings"

	"github.com/ecoshare/ecoshare-backend/internal/model"
)

// IdentityRegistry resolves credentials to an identity. The demo ships a
// fixed in-process registry; a real user backend can implement the same
// contract later.
type IdentityRegistry interface {
	Lookup(usernameOrName, password string) (model.Identity, bool)
}

// StaticRegistry matches case-insensitively on username or display name and
// exactly on password.
type StaticRegistry struct {
	identities []model.Identity
}

func NewStaticRegistry(identities ...model.Identity) *StaticRegistry {
	return &StaticRegistry{identities: identities}
}

// DemoRegistry returns the two demo identities.
func DemoRegistry() *StaticRegistry {
	return NewStaticRegistry(
		model.Identity{Username: "alice", Password: "password123", Name: "Alice"},
		model.Identity{Username: "ben", Password: "donate456", Name: "Ben"},
	)
}

func (r *StaticRegistry) Lookup(usernameOrName, password string) (model.Identity, bool) {
	for _, id := range r.identities {
		if (strings.EqualFold(id.Username, usernameOrName) || strings.EqualFold(id.Name, usernameOrName)) &&
			id.Password == password {
			return id, true
		}
	}
	return model.Identity{}, false
}
