package domain

import (
	"fmt"
	"strings"
)

// ActivityConfig is read-only to the core. Reloads replace the whole value.
type ActivityConfig struct {
	PollingActive bool
	Enabled       map[Platform]bool
	Priority      []Platform
}

func (c ActivityConfig) IsEnabled(p Platform) bool {
	if !p.Valid() {
		return false
	}
	return c.Enabled[p]
}

// PriorityOrder returns the configured priority list without duplicates,
// followed by any platform the list omits, in canonical order.
func (c ActivityConfig) PriorityOrder() []Platform {
	order := make([]Platform, 0, len(platforms))
	seen := make(map[Platform]struct{}, len(platforms))

	for _, p := range c.Priority {
		if !p.Valid() {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		order = append(order, p)
	}
	for _, p := range platforms {
		if _, ok := seen[p]; ok {
			continue
		}
		order = append(order, p)
	}

	return order
}

func (c ActivityConfig) Validate() error {
	seen := make(map[Platform]struct{}, len(c.Priority))
	for _, p := range c.Priority {
		if !p.Valid() {
			return fmt.Errorf("priority: %w: %q", ErrUnknownPlatform, p)
		}
		if _, ok := seen[p]; ok {
			return fmt.Errorf("priority: duplicate platform %q", p)
		}
		seen[p] = struct{}{}
	}
	for p := range c.Enabled {
		if !p.Valid() {
			return fmt.Errorf("enabled: %w: %q", ErrUnknownPlatform, p)
		}
	}
	return nil
}

func (c ActivityConfig) Clone() ActivityConfig {
	enabled := make(map[Platform]bool, len(c.Enabled))
	for p, on := range c.Enabled {
		enabled[p] = on
	}
	priority := make([]Platform, len(c.Priority))
	copy(priority, c.Priority)

	return ActivityConfig{
		PollingActive: c.PollingActive,
		Enabled:       enabled,
		Priority:      priority,
	}
}

// ParsePriority parses platform names, ignoring blanks.
func ParsePriority(raw []string) ([]Platform, error) {
	out := make([]Platform, 0, len(raw))
	for _, entry := range raw {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		p, err := ParsePlatform(entry)
		if err != nil {
			return nil, err
		}
		if p.IsNone() {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// FocusState is the single platform designated active for display.
type FocusState struct {
	Focused Platform
}

// Consistent reports whether the focus is none or an enabled platform.
func (s FocusState) Consistent(cfg ActivityConfig) bool {
	return s.Focused.IsNone() || cfg.IsEnabled(s.Focused)
}
