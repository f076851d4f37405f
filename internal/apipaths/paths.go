package apipaths

// API surface paths. Used by routes, handlers, and tests.

const (
	Login        = "/api/login"
	Logout       = "/api/logout"
	Me           = "/api/me"
	GitHubRepos  = "/api/github/repos"
	GitHubReadme = "/api/github/readme"
	Health       = "/api/health"
	SystemStats  = "/api/system"
)

// Page paths enforced by the session gate.
const (
	// AdminPrefix is the path prefix that requires a logged-in user
	AdminPrefix = "/adminOnly"

	// LoginPage is where anonymous visitors of admin pages are redirected
	LoginPage = "/admin"
)
