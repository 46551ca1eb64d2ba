package entity

import (
	"fmt"
	"strings"
)

// Mode selects the URL resolution strategy.
type Mode string

const (
	ModeGist     Mode = "gist"
	ModeWakaTime Mode = "wakatime"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeGist, "gistid", "gist_id":
		return ModeGist, nil
	case ModeWakaTime, "wakatime_url":
		return ModeWakaTime, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

func (m Mode) String() string { return string(m) }
