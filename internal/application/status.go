package application

import (
	"github.com/bnema/richpresence-cli/internal/domain"
)

type PlatformStatus struct {
	Platform domain.Platform  `json:"platform"`
	Label    string           `json:"label"`
	Enabled  bool             `json:"enabled"`
	Focused  bool             `json:"focused"`
	Presence *domain.Presence `json:"presence,omitempty"`
	Style    StyleDescriptor  `json:"style"`
	CSS      string           `json:"css"`
}

type SessionStatus struct {
	Provider  domain.ProviderID   `json:"provider"`
	State     domain.SessionState `json:"state"`
	Account   string              `json:"account,omitempty"`
	LastError domain.ErrorKind    `json:"last_error,omitempty"`
}

// Status is a point-in-time view of sessions, focus and presence.
type Status struct {
	Sessions      []SessionStatus  `json:"sessions"`
	Focused       string           `json:"focused"`
	PollingActive bool             `json:"polling_active"`
	Mode          DisplayMode      `json:"mode"`
	Platforms     []PlatformStatus `json:"platforms"`
}

// BuildStatus lists platforms in priority order.
func BuildStatus(sessions []domain.Session, focus *FocusService, board *PresenceBoard, mode DisplayMode) Status {
	cfg := focus.ActivityConfig()
	focused := focus.Focused()

	status := Status{
		Sessions:      make([]SessionStatus, 0, len(sessions)),
		Focused:       focused.String(),
		PollingActive: cfg.PollingActive,
		Mode:          mode,
	}

	for _, session := range sessions {
		entry := SessionStatus{
			Provider:  session.Provider,
			State:     session.State,
			LastError: session.LastError,
		}
		if session.Account != nil {
			entry.Account = session.Account.DisplayName()
		}
		status.Sessions = append(status.Sessions, entry)
	}

	for _, p := range cfg.PriorityOrder() {
		presence := board.Get(p)
		style := PresenceStyle(p, presence, mode)
		status.Platforms = append(status.Platforms, PlatformStatus{
			Platform: p,
			Label:    p.Label(),
			Enabled:  cfg.IsEnabled(p),
			Focused:  p == focused,
			Presence: presence,
			Style:    style,
			CSS:      style.CSS(),
		})
	}

	return status
}
