package domain

import (
	"net/url"
	"time"
)

const twitchDirectoryBase = "https://www.twitch.tv/directory/game/"

type Button struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Presence is a live activity record. Polls replace it wholesale.
type Presence struct {
	Details      string    `json:"details"`
	State        string    `json:"state,omitempty"`
	LargeImage   string    `json:"large_image,omitempty"`
	LargeText    string    `json:"large_text,omitempty"`
	SmallImage   string    `json:"small_image,omitempty"`
	SmallText    string    `json:"small_text,omitempty"`
	StartedAt    time.Time `json:"started_at"`
	StoreButton  *Button   `json:"store_button,omitempty"`
	TwitchButton *Button   `json:"twitch_button,omitempty"`
}

// DiffersModuloTime compares two optional records ignoring the start time.
func DiffersModuloTime(lhs, rhs *Presence) bool {
	switch {
	case lhs == nil && rhs == nil:
		return false
	case lhs == nil || rhs == nil:
		return true
	}

	return lhs.Details != rhs.Details ||
		lhs.State != rhs.State ||
		lhs.LargeImage != rhs.LargeImage ||
		lhs.LargeText != rhs.LargeText ||
		lhs.SmallImage != rhs.SmallImage ||
		lhs.SmallText != rhs.SmallText ||
		!sameButton(lhs.StoreButton, rhs.StoreButton) ||
		!sameButton(lhs.TwitchButton, rhs.TwitchButton)
}

func sameButton(lhs, rhs *Button) bool {
	if lhs == nil || rhs == nil {
		return lhs == rhs
	}
	return *lhs == *rhs
}

// TwitchDirectoryURL links the twitch category page of a game title.
func TwitchDirectoryURL(title string) string {
	return twitchDirectoryBase + url.PathEscape(title)
}

// TwitchButton builds the "twitch" button for a title, nil for an empty title.
func TwitchButton(title string) *Button {
	if title == "" {
		return nil
	}
	return &Button{Label: SourceTwitch, URL: TwitchDirectoryURL(title)}
}
