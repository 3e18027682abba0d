package services

import (
	"context"
	"errors"
	"strings"

	"gyaandeepika/models"
	"gyaandeepika/utils/apierr"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteInput struct {
	CourseID       uuid.UUID
	ContentID      uuid.UUID
	Text           string
	VideoTimestamp float64
}

type NoteService struct {
	db *gorm.DB
}

func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{db: db}
}

// Upsert keeps one note per (user, course, content).
func (s *NoteService) Upsert(ctx context.Context, userID uuid.UUID, in NoteInput) (*models.Note, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, apierr.Validation("Validation failed!", map[string]string{"text": "Note text is required!"})
	}
	if err := requireEnrollment(ctx, s.db, userID, in.CourseID); err != nil {
		return nil, err
	}
	course, err := loadCourseTree(ctx, s.db, in.CourseID, false)
	if err != nil {
		return nil, err
	}
	if course.FindContent(in.ContentID) == nil {
		return nil, apierr.NotFound("Content not found in this course!")
	}

	note := models.Note{
		UserID:         userID,
		CourseID:       in.CourseID,
		ContentID:      in.ContentID,
		Text:           text,
		VideoTimestamp: in.VideoTimestamp,
	}
	db := s.db.WithContext(ctx)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}, {Name: "content_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"text", "video_timestamp", "updated_at"}),
	}).Create(&note).Error; err != nil {
		return nil, apierr.Internal(err)
	}

	// the upsert may have kept an existing row id
	var stored models.Note
	if err := db.Where("user_id = ? AND course_id = ? AND content_id = ?", userID, in.CourseID, in.ContentID).
		First(&stored).Error; err != nil {
		return nil, apierr.Internal(err)
	}
	return &stored, nil
}

// List returns the caller's notes for a course, optionally for one content item.
func (s *NoteService) List(ctx context.Context, userID, courseID uuid.UUID, contentID *uuid.UUID) ([]models.Note, error) {
	db := s.db.WithContext(ctx).Where("user_id = ? AND course_id = ?", userID, courseID)
	if contentID != nil {
		db = db.Where("content_id = ?", *contentID)
	}
	notes := []models.Note{}
	if err := db.Order("updated_at desc").Find(&notes).Error; err != nil {
		return nil, apierr.Internal(err)
	}
	return notes, nil
}

// Delete removes one of the caller's notes.
func (s *NoteService) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	db := s.db.WithContext(ctx)
	var note models.Note
	if err := db.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("Note not found!")
		}
		return apierr.Internal(err)
	}
	if err := db.Delete(&note).Error; err != nil {
		return apierr.Internal(err)
	}
	return nil
}
