package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SummaryPending   = "pending"
	SummaryCompleted = "completed"
	SummaryFailed    = "failed"
)

// Summary caches generated text per (user, course, content). Completed rows expire at ExpiresAt.
type Summary struct {
	Base
	UserID      uuid.UUID  `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_summary_owner_content"`
	CourseID    uuid.UUID  `json:"courseId" gorm:"type:uuid;not null;uniqueIndex:idx_summary_owner_content"`
	ContentID   uuid.UUID  `json:"contentId" gorm:"type:uuid;not null;uniqueIndex:idx_summary_owner_content"`
	Status      string     `json:"status" gorm:"default:'pending'"`
	Text        string     `json:"text" gorm:"type:text"`
	Error       string     `json:"error,omitempty"`
	CompletedAt *time.Time `json:"completedAt"`
	ExpiresAt   *time.Time `json:"expiresAt" gorm:"index"`
}
