package domain

import "strings"

type SessionID string

type Session struct {
	ID              SessionID
	Profile         Builder
	NeedsOnboarding bool
}

func (s Session) Valid() bool {
	return strings.TrimSpace(string(s.ID)) != "" && strings.TrimSpace(string(s.Profile.Username)) != ""
}
