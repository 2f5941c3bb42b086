package domain

type SessionState string

const (
	SessionUnauthenticated        SessionState = "unauthenticated"
	SessionAcquiringSilently      SessionState = "acquiring_silently"
	SessionAcquiringInteractively SessionState = "acquiring_interactively"
	SessionAuthenticated          SessionState = "authenticated"
	SessionFailed                 SessionState = "failed"
	SessionLoggingOut             SessionState = "logging_out"
)

// InFlight reports whether the state belongs to a running acquisition or logout.
func (s SessionState) InFlight() bool {
	switch s {
	case SessionAcquiringSilently, SessionAcquiringInteractively, SessionLoggingOut:
		return true
	default:
		return false
	}
}

// Session is owned by exactly one session manager.
type Session struct {
	Provider  ProviderID
	State     SessionState
	Account   *Account
	LastError ErrorKind
}

func NewSession(provider ProviderID) Session {
	return Session{Provider: provider, State: SessionUnauthenticated}
}
