// Package common contains shared constants and sentinel errors used across
// TaskEase client components.
package common

// CredentialEntryName is the name of the single durable entry that holds the
// bearer credential inside the credential store.
const CredentialEntryName = "taskease_token"

// Header names and values used on outbound API requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerScheme            = "Bearer"
	JSONContentType         = "application/json"
)

// Route paths of the navigable views.
const (
	LandingPath    = "/"
	LoginPath      = "/login"
	RegisterPath   = "/register"
	DashboardPath  = "/dashboard"
	TasksPath      = "/tasks"
	CategoriesPath = "/categories"
	ProfilePath    = "/profile"
)
