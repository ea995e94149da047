package models

// User is an account in the remote record store.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Session is the authenticated identity of the running client. The token is
// opaque and only unique per login event; it carries no security meaning.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
