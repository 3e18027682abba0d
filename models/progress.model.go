package models

import (
	"time"

	"github.com/google/uuid"
)

// CourseProgress is the per-user, per-course aggregate. CompletionPercentage is derived.
type CourseProgress struct {
	Base
	UserID               uuid.UUID  `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_course"`
	CourseID             uuid.UUID  `json:"courseId" gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_course"`
	CurrentContentID     *uuid.UUID `json:"currentContentId" gorm:"type:uuid"`
	LastAccessed         time.Time  `json:"lastAccessed"`
	CompletionPercentage int        `json:"completionPercentage" gorm:"default:0"`
}

// VideoProgress is the watch state of one content item for one user.
type VideoProgress struct {
	Base
	UserID          uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_video_progress"`
	CourseID        uuid.UUID `json:"courseId" gorm:"type:uuid;not null;uniqueIndex:idx_video_progress"`
	ContentID       uuid.UUID `json:"contentId" gorm:"type:uuid;not null;uniqueIndex:idx_video_progress"`
	WatchedDuration float64   `json:"watchedDuration" gorm:"default:0"`
	IsCompleted     bool      `json:"isCompleted" gorm:"default:false"`
	FirstAccessedAt time.Time `json:"firstAccessedAt"`
	LastWatchedAt   time.Time `json:"lastWatchedAt"`
}
