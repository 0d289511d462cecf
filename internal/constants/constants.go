package constants

const (
	// ContextKeyUserID is the gin context / session key holding the logged-in
	// user's id.
	ContextKeyUserID = "user_id"

	// SessionCookieName is the cookie backing the login session.
	SessionCookieName = "group_task_session"

	// NoGroupSentinel is the legacy wire value for "task has no group".
	// Normalized to a NULL group reference before it reaches the store.
	NoGroupSentinel = "0"

	// MaxIDAttempts bounds the regenerate-on-collision loop for new ids.
	MaxIDAttempts = 16
)
