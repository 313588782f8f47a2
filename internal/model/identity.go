package model

// Identity is an entry in the identity registry.
type Identity struct {
	Username string
	Password string
	Name     string
}

// Session ties an opaque bearer token to an authenticated identity.
// Sessions live only in memory and never survive a restart.
type Session struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}
