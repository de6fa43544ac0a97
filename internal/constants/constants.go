package constants

const (
	// ContextKeyUserID is the key under which the authenticated user's ID is
	// stored in both the session and the request context.
	ContextKeyUserID = "user_id"

	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "propdesk_session"

	MinPasswordLength = 8

	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 100

	// Placeholder values shown when a referenced record no longer resolves.
	PlaceholderDash      = "-"
	PlaceholderUnknown   = "Unknown"
	PlaceholderNoAddress = "No address available"

	// MonthKeyLayout formats the calendar-month grouping key, e.g. "March 2024".
	MonthKeyLayout = "January 2006"

	// RecentTaskLimit caps the recent-activity list on the dashboard.
	RecentTaskLimit = 5
)
