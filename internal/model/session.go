package model

// Session pairs the opaque backend auth token with the authenticated user's
// profile. It is created on a successful login exchange, held server-side for
// its TTL, and destroyed on logout or expiry.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
