package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/richpresence-cli/internal/application"
	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
}

func renderView(status application.Status, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Rich Presence"),
		s.header.Render(fmt.Sprintf("focus: %s  polling: %s  mode: %s", focusLabel(status.Focused), onOff(status.PollingActive), status.Mode)),
		s.section.Render(renderSessions(status.Sessions, s)),
		s.section.Render(renderPlatforms(status.Platforms, opts, s)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSessions(sessions []application.SessionStatus, s styles) string {
	lines := []string{s.title.Render("Sessions")}
	if len(sessions) == 0 {
		lines = append(lines, s.empty.Render("No identity providers configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	width := 0
	for _, session := range sessions {
		width = max(width, len(session.Provider))
	}

	for _, session := range sessions {
		parts := []string{
			s.provider.Render(fmt.Sprintf("%-*s", width, session.Provider)),
			stateStyle(session.State, s).Render(stateLabel(session.State)),
		}
		if session.Account != "" {
			parts = append(parts, s.account.Render(session.Account))
		}
		if session.LastError != domain.ErrorKindNone {
			parts = append(parts, s.warning.Render("["+string(session.LastError)+"]"))
		}
		lines = append(lines, strings.Join(parts, "  "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPlatforms(platforms []application.PlatformStatus, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render("Platforms")}

	for _, platform := range platforms {
		marker := "  "
		label := s.detail.Render(fmt.Sprintf("%-11s", platform.Label))
		if platform.Focused {
			marker = s.focused.Render("> ")
			label = s.focused.Render(fmt.Sprintf("%-11s", platform.Label))
		}
		if !platform.Enabled {
			label = s.disabled.Render(fmt.Sprintf("%-11s", platform.Label))
		}

		parts := []string{marker + label}
		if platform.Style.Live {
			parts = append(parts, s.liveBadge.Render("live"), presenceLine(platform.Presence, opts.Now))
		} else {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(platform.Style.Color)).Render("■")
			parts = append(parts, s.idleBadge.Render("idle"), swatch+" "+s.detail.Render(platform.Style.Image))
		}
		if !platform.Enabled {
			parts = append(parts, s.disabled.Render("(disabled)"))
		}

		lines = append(lines, strings.Join(parts, " "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func presenceLine(presence *domain.Presence, now time.Time) string {
	if presence == nil {
		return ""
	}

	text := presence.Details
	if presence.State != "" {
		text += " - " + presence.State
	}
	if elapsed := formatElapsed(presence.StartedAt, now); elapsed != "" {
		text += " (" + elapsed + ")"
	}
	return text
}

func formatElapsed(startedAt, now time.Time) string {
	if startedAt.IsZero() || now.IsZero() {
		return ""
	}
	if startedAt.After(now) {
		return "just started"
	}

	elapsed := now.Sub(startedAt)
	switch {
	case elapsed < time.Minute:
		return "just started"
	case elapsed < time.Hour:
		return plural(int(math.Floor(elapsed.Minutes())), "minute") + " ago"
	default:
		return plural(int(math.Floor(elapsed.Hours())), "hour") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func stateLabel(state domain.SessionState) string {
	return strings.ReplaceAll(string(state), "_", " ")
}

func stateStyle(state domain.SessionState, s styles) lipgloss.Style {
	switch {
	case state == domain.SessionAuthenticated:
		return s.ok
	case state == domain.SessionFailed:
		return s.warning
	case state.InFlight():
		return s.pending
	default:
		return s.detail
	}
}

func focusLabel(focused string) string {
	if focused == "" {
		return "none"
	}
	return focused
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
