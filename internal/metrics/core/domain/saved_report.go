package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedReport is a named, replayable report configuration.
type SavedReport struct {
	ID          uuid.UUID
	OwnerID     string
	Name        string
	Description string
	Config      ReportConfig
	Public      bool
	CreatedAt   time.Time
}

// VisibleTo reports whether userID may read s.
func (s SavedReport) VisibleTo(userID string) bool {
	return s.Public || (userID != "" && s.OwnerID == userID)
}
