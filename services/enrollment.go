package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gyaandeepika/models"
	"gyaandeepika/utils/apierr"
	"gyaandeepika/utils/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrolledCourse is one row of a learner's dashboard.
type EnrolledCourse struct {
	Course               models.Course `json:"course"`
	EnrolledAt           time.Time     `json:"enrolledAt"`
	CompletionPercentage int           `json:"completionPercentage"`
	LastAccessed         *time.Time    `json:"lastAccessed"`
}

type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

// Enroll adds courseID to the user's enrolled set and bumps the course's student
// counter. Both writes share one transaction.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID uuid.UUID) (*models.Enrollment, error) {
	db := s.db.WithContext(ctx)

	// Check user exists
	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("User not found!")
		}
		return nil, apierr.Internal(err)
	}

	// Check course exists and is published
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Course not found!")
		}
		return nil, apierr.Internal(err)
	}

	enrollment := &models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now().UTC(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Check if already enrolled
		var count int64
		if err := tx.Model(&models.Enrollment{}).
			Where("user_id = ? AND course_id = ?", userID, courseID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errAlreadyEnrolled()
		}

		// Create enrollment
		if err := tx.Create(enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errAlreadyEnrolled()
			}
			return err
		}

		// Update course student count
		res := tx.Model(&models.Course{}).
			Where("id = ?", courseID).
			UpdateColumn("total_students", gorm.Expr("total_students + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return fmt.Errorf("student counter not updated for course %s", courseID)
		}
		return nil
	})
	if err != nil {
		if ae, ok := apierr.As(err); ok {
			return nil, ae
		}
		logger.Log.Error("enrollment failed", "userId", userID, "courseId", courseID, "error", err)
		return nil, apierr.Internal(err)
	}

	logger.Log.Info("user enrolled", "userId", userID, "courseId", courseID)
	return enrollment, nil
}

// IsEnrolled reports whether courseID is in the user's enrolled set.
func (s *EnrollmentService) IsEnrolled(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	return isEnrolled(ctx, s.db, userID, courseID)
}

// ListEnrolled returns the user's courses with their stored completion percentage.
func (s *EnrollmentService) ListEnrolled(ctx context.Context, userID uuid.UUID) ([]EnrolledCourse, error) {
	db := s.db.WithContext(ctx)

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ?", userID).Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return nil, apierr.Internal(err)
	}
	if len(enrollments) == 0 {
		return []EnrolledCourse{}, nil
	}

	courseIDs := make([]uuid.UUID, 0, len(enrollments))
	for _, e := range enrollments {
		courseIDs = append(courseIDs, e.CourseID)
	}

	// Get courses
	var courses []models.Course
	if err := db.Where("id IN ? AND is_deleted = ?", courseIDs, false).Find(&courses).Error; err != nil {
		return nil, apierr.Internal(err)
	}
	byID := make(map[uuid.UUID]models.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}

	// Get stored progress per course
	var progress []models.CourseProgress
	if err := db.Where("user_id = ? AND course_id IN ?", userID, courseIDs).Find(&progress).Error; err != nil {
		return nil, apierr.Internal(err)
	}
	progressByCourse := make(map[uuid.UUID]models.CourseProgress, len(progress))
	for _, p := range progress {
		progressByCourse[p.CourseID] = p
	}

	out := make([]EnrolledCourse, 0, len(enrollments))
	for _, e := range enrollments {
		course, ok := byID[e.CourseID]
		if !ok {
			continue
		}
		row := EnrolledCourse{Course: course, EnrolledAt: e.EnrolledAt}
		if p, ok := progressByCourse[e.CourseID]; ok {
			row.CompletionPercentage = p.CompletionPercentage
			lastAccessed := p.LastAccessed
			row.LastAccessed = &lastAccessed
		}
		out = append(out, row)
	}
	return out, nil
}

func isEnrolled(ctx context.Context, db *gorm.DB, userID, courseID uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	if err != nil {
		return false, apierr.Internal(err)
	}
	return count > 0, nil
}

// requireEnrollment fails with Forbidden when the user is not enrolled.
func requireEnrollment(ctx context.Context, db *gorm.DB, userID, courseID uuid.UUID) error {
	ok, err := isEnrolled(ctx, db, userID, courseID)
	if err != nil {
		return err
	}
	if !ok {
		return apierr.Forbidden("You are not enrolled in this course!")
	}
	return nil
}

func errAlreadyEnrolled() *apierr.Error {
	return apierr.Conflict(apierr.CodeAlreadyEnrolled, "Already enrolled in this course!")
}
