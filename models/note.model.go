package models

import "github.com/google/uuid"

type Note struct {
	Base
	UserID         uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_note_owner_content"`
	CourseID       uuid.UUID `json:"courseId" gorm:"type:uuid;not null;uniqueIndex:idx_note_owner_content"`
	ContentID      uuid.UUID `json:"contentId" gorm:"type:uuid;not null;uniqueIndex:idx_note_owner_content"`
	Text           string    `json:"text" gorm:"type:text"`
	VideoTimestamp float64   `json:"videoTimestamp" gorm:"default:0"` // seconds into the video
}
