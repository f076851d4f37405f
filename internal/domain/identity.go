package domain

// Identity is the caller identity derived from the session cookie. Exactly
// one identity kind exists: the admin user. It lives for a single request
// and is never persisted server-side.
type Identity struct {
	Username string `json:"username"`
}
