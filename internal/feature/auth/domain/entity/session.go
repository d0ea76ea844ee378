package entity

import "time"

// Session represents a refresh-token session for a user. The ID doubles as
// the refresh token value (64-character hex string handed to the client).
type Session struct {
	ID        string
	UserID    uint
	UserAgent string
	IPAddress string
	CreatedAt time.Time
	ExpiresAt time.Time
	// RevokedAt is nil while the session is active.
	RevokedAt *time.Time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsRevoked returns true if the session has been revoked.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsValid returns true if the session is neither expired nor revoked.
func (s *Session) IsValid() bool {
	return !s.IsExpired() && !s.IsRevoked()
}
