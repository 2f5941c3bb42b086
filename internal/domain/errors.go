package domain

import "errors"

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrSecretNotFound   = errors.New("secret not found")
	ErrUnknownPlatform  = errors.New("unknown platform")
	ErrUnknownProvider  = errors.New("unknown provider")
	ErrPlatformDisabled = errors.New("platform is not enabled")

	// ErrInteractionRequired is the recoverable signal from silent acquisition
	// that only an interactive prompt can produce a credential.
	ErrInteractionRequired      = errors.New("interaction required")
	ErrAcquisitionFailed        = errors.New("token acquisition failed")
	ErrLogoutNotificationFailed = errors.New("logout notification failed")
	ErrBusy                     = errors.New("another acquisition is in flight")
)

// ErrorKind classifies session errors for display and diagnostics.
type ErrorKind string

const (
	ErrorKindNone                     ErrorKind = ""
	ErrorKindInteractionRequired      ErrorKind = "interaction_required"
	ErrorKindAcquisitionFailed        ErrorKind = "acquisition_failed"
	ErrorKindLogoutNotificationFailed ErrorKind = "logout_notification_failed"
	ErrorKindBusy                     ErrorKind = "busy"
)

// KindOf maps an error onto the session error taxonomy. Errors outside the
// taxonomy count as acquisition failures.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrBusy):
		return ErrorKindBusy
	case errors.Is(err, ErrAcquisitionFailed):
		return ErrorKindAcquisitionFailed
	case errors.Is(err, ErrInteractionRequired):
		return ErrorKindInteractionRequired
	case errors.Is(err, ErrLogoutNotificationFailed):
		return ErrorKindLogoutNotificationFailed
	default:
		return ErrorKindAcquisitionFailed
	}
}
