package models

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment records that a user may access a course. One row per (user, course).
type Enrollment struct {
	Base
	UserID     uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID   uuid.UUID `json:"courseId" gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_user_course;index"`
	EnrolledAt time.Time `json:"enrolledAt"`
}
