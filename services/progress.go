package services

import (
	"context"
	"errors"
	"math"
	"time"

	"gyaandeepika/models"
	"gyaandeepika/utils/apierr"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecordProgressInput struct {
	CourseID        uuid.UUID
	ContentID       uuid.UUID
	WatchedDuration float64
	IsCompleted     *bool // nil leaves the stored flag untouched
}

type VideoProgressView struct {
	WatchedDuration float64   `json:"watchedDuration"`
	IsCompleted     bool      `json:"isCompleted"`
	FirstAccessedAt time.Time `json:"firstAccessedAt"`
	LastWatchedAt   time.Time `json:"lastWatchedAt"`
}

type CourseProgressView struct {
	CourseID             uuid.UUID                    `json:"courseId"`
	CompletedVideos      map[string]VideoProgressView `json:"completedVideos"`
	CurrentContentID     *uuid.UUID                   `json:"currentContentId"`
	LastAccessed         *time.Time                   `json:"lastAccessed"`
	CompletionPercentage int                          `json:"completionPercentage"`
}

type LearningStats struct {
	EnrolledCourses     int64   `json:"enrolledCourses"`
	CompletedCourses    int64   `json:"completedCourses"`
	VideosCompleted     int64   `json:"videosCompleted"`
	TotalWatchedSeconds float64 `json:"totalWatchedSeconds"`
	ActiveVideosToday   int64   `json:"activeVideosToday"`
	ActiveVideosWeek    int64   `json:"activeVideosThisWeek"`
}

type ProgressService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// CompletionPercentage is round(100*completed/total), 0 when total is 0, clamped to [0,100].
func CompletionPercentage(completed, total int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(completed) / float64(total)))
	if pct > 100 {
		return 100
	}
	return pct
}

// RecordProgress upserts the caller's watch state for one content item and
// recomputes the course completion percentage against the live course tree.
// Concurrent writes for the same item resolve last-writer-wins.
func (s *ProgressService) RecordProgress(ctx context.Context, userID uuid.UUID, in RecordProgressInput) (*CourseProgressView, error) {
	fields := map[string]string{}
	if in.CourseID == uuid.Nil {
		fields["courseId"] = "Invalid course ID!"
	}
	if in.ContentID == uuid.Nil {
		fields["contentId"] = "Invalid content ID!"
	}
	if in.WatchedDuration < 0 || math.IsNaN(in.WatchedDuration) || math.IsInf(in.WatchedDuration, 0) {
		fields["watchedDuration"] = "Watched duration must be a non-negative number!"
	}
	if len(fields) > 0 {
		return nil, apierr.Validation("Validation failed!", fields)
	}

	// Check enrollment
	if err := requireEnrollment(ctx, s.db, userID, in.CourseID); err != nil {
		return nil, err
	}

	// Check content belongs to the course
	course, err := loadCourseTree(ctx, s.db, in.CourseID, false)
	if err != nil {
		return nil, err
	}
	index := course.ContentIndex()
	if _, ok := index[in.ContentID]; !ok {
		return nil, apierr.NotFound("Content not found in this course!")
	}
	totalVideos := course.VideoCount()

	ts := s.now()
	var (
		cp   models.CourseProgress
		rows []models.VideoProgress
	)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vp := models.VideoProgress{
			UserID:          userID,
			CourseID:        in.CourseID,
			ContentID:       in.ContentID,
			WatchedDuration: in.WatchedDuration,
			FirstAccessedAt: ts,
			LastWatchedAt:   ts,
		}
		updateCols := []string{"watched_duration", "last_watched_at", "updated_at"}
		if in.IsCompleted != nil {
			vp.IsCompleted = *in.IsCompleted
			updateCols = append(updateCols, "is_completed")
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}, {Name: "content_id"}},
			DoUpdates: clause.AssignmentColumns(updateCols),
		}).Create(&vp).Error; err != nil {
			return err
		}

		// Recount completed videos against the current course tree
		if err := tx.Where("user_id = ? AND course_id = ?", userID, in.CourseID).Find(&rows).Error; err != nil {
			return err
		}

		completed := 0
		for _, r := range rows {
			if !r.IsCompleted {
				continue
			}
			if item, ok := index[r.ContentID]; ok && item.Type == models.ContentTypeVideo {
				completed++
			}
		}

		// Update course progress
		current := in.ContentID
		cp = models.CourseProgress{
			UserID:               userID,
			CourseID:             in.CourseID,
			CurrentContentID:     &current,
			LastAccessed:         ts,
			CompletionPercentage: CompletionPercentage(completed, totalVideos),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"current_content_id", "last_accessed", "completion_percentage", "updated_at"}),
		}).Create(&cp).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, apierr.Internal(err)
	}

	return buildProgressView(in.CourseID, &cp, rows), nil
}

// GetProgress returns the caller's stored progress. An enrolled user with no
// writes yet gets an empty projection.
func (s *ProgressService) GetProgress(ctx context.Context, userID, courseID uuid.UUID) (*CourseProgressView, error) {
	if err := requireEnrollment(ctx, s.db, userID, courseID); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	var cp models.CourseProgress
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&cp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return buildProgressView(courseID, nil, nil), nil
	}
	if err != nil {
		return nil, apierr.Internal(err)
	}

	var rows []models.VideoProgress
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).Find(&rows).Error; err != nil {
		return nil, apierr.Internal(err)
	}
	return buildProgressView(courseID, &cp, rows), nil
}

// Stats summarizes the caller's learning activity across every course.
func (s *ProgressService) Stats(ctx context.Context, userID uuid.UUID) (*LearningStats, error) {
	db := s.db.WithContext(ctx)
	stats := &LearningStats{}
	t := s.now()
	dayStart := now.With(t).BeginningOfDay()
	weekStart := now.With(t).BeginningOfWeek()

	if err := db.Model(&models.Enrollment{}).Where("user_id = ?", userID).Count(&stats.EnrolledCourses).Error; err != nil {
		return nil, apierr.Internal(err)
	}
	if err := db.Model(&models.CourseProgress{}).
		Where("user_id = ? AND completion_percentage >= ?", userID, 100).
		Count(&stats.CompletedCourses).Error; err != nil {
		return nil, apierr.Internal(err)
	}
	if err := db.Model(&models.VideoProgress{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Count(&stats.VideosCompleted).Error; err != nil {
		return nil, apierr.Internal(err)
	}
	if err := db.Model(&models.VideoProgress{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(watched_duration), 0)").
		Scan(&stats.TotalWatchedSeconds).Error; err != nil {
		return nil, apierr.Internal(err)
	}
	if err := db.Model(&models.VideoProgress{}).
		Where("user_id = ? AND last_watched_at >= ?", userID, dayStart).
		Count(&stats.ActiveVideosToday).Error; err != nil {
		return nil, apierr.Internal(err)
	}
	if err := db.Model(&models.VideoProgress{}).
		Where("user_id = ? AND last_watched_at >= ?", userID, weekStart).
		Count(&stats.ActiveVideosWeek).Error; err != nil {
		return nil, apierr.Internal(err)
	}
	return stats, nil
}

func buildProgressView(courseID uuid.UUID, cp *models.CourseProgress, rows []models.VideoProgress) *CourseProgressView {
	view := &CourseProgressView{
		CourseID:        courseID,
		CompletedVideos: make(map[string]VideoProgressView, len(rows)),
	}
	for _, r := range rows {
		view.CompletedVideos[r.ContentID.String()] = VideoProgressView{
			WatchedDuration: r.WatchedDuration,
			IsCompleted:     r.IsCompleted,
			FirstAccessedAt: r.FirstAccessedAt,
			LastWatchedAt:   r.LastWatchedAt,
		}
	}
	if cp != nil {
		view.CurrentContentID = cp.CurrentContentID
		lastAccessed := cp.LastAccessed
		view.LastAccessed = &lastAccessed
		view.CompletionPercentage = cp.CompletionPercentage
	}
	return view
}

// progressByContent indexes the caller's rows for one course by content id.
func progressByContent(ctx context.Context, db *gorm.DB, userID, courseID uuid.UUID) (map[uuid.UUID]models.VideoProgress, error) {
	var rows []models.VideoProgress
	if err := db.WithContext(ctx).Where("user_id = ? AND course_id = ?", userID, courseID).Find(&rows).Error; err != nil {
		return nil, apierr.Internal(err)
	}
	out := make(map[uuid.UUID]models.VideoProgress, len(rows))
	for _, r := range rows {
		out[r.ContentID] = r
	}
	return out, nil
}
