package services

import (
	"context"
	"errors"
	"strings"

	"gyaandeepika/models"
	"gyaandeepika/utils/apierr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseFilter narrows the public catalog listing.
type CourseFilter struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

type CreateQuizInput struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
}

type CreateContentInput struct {
	Title                string            `json:"title" validate:"required"`
	Description          string            `json:"description"`
	Type                 string            `json:"type" validate:"required,oneof=video reading quiz assignment"`
	Duration             string            `json:"duration"`
	VideoDurationSeconds int               `json:"videoDurationSeconds" validate:"gte=0"`
	VideoURL             string            `json:"videoUrl" validate:"omitempty,url"`
	Transcript           string            `json:"transcript"`
	Quizzes              []CreateQuizInput `json:"quizzes" validate:"dive"`
}

type CreateSectionInput struct {
	Title       string               `json:"title" validate:"required"`
	Description string               `json:"description"`
	Content     []CreateContentInput `json:"content" validate:"dive"`
}

type CreateCourseInput struct {
	Title        string               `json:"title" validate:"required,min=3"`
	Description  string               `json:"description" validate:"required"`
	Category     string               `json:"category" validate:"required"`
	Level        string               `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Instructor   string               `json:"instructor"`
	ThumbnailURL string               `json:"thumbnailUrl" validate:"omitempty,url"`
	Sections     []CreateSectionInput `json:"sections" validate:"dive"`
}

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListCourses returns published courses, newest first.
func (s *CatalogService) ListCourses(ctx context.Context, f CourseFilter) ([]models.Course, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 10
	}

	db := s.db.WithContext(ctx).Model(&models.Course{}).Where("is_deleted = ? AND is_published = ?", false, true)
	if f.Category != "" {
		db = db.Where("category = ?", f.Category)
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apierr.Internal(err)
	}

	var courses []models.Course
	if err := db.Offset((f.Page - 1) * f.Limit).Limit(f.Limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, 0, apierr.Internal(err)
	}
	return courses, total, nil
}

// GetCourse returns a published course outline. Transcripts and quiz answers never serialize.
func (s *CatalogService) GetCourse(ctx context.Context, courseID uuid.UUID) (*models.Course, error) {
	course, err := loadCourseTree(ctx, s.db, courseID, false)
	if err != nil {
		return nil, err
	}
	if !course.IsPublished {
		return nil, apierr.NotFound("Course not found!")
	}
	return course, nil
}

// CreateCourse stores a course with its whole section tree in one transaction.
func (s *CatalogService) CreateCourse(ctx context.Context, in CreateCourseInput) (*models.Course, error) {
	course := models.Course{
		Base:         models.Base{ID: uuid.New()},
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Category:     strings.TrimSpace(in.Category),
		Level:        in.Level,
		Instructor:   in.Instructor,
		ThumbnailURL: in.ThumbnailURL,
	}
	if course.Level == "" {
		course.Level = "beginner"
	}

	for si, sec := range in.Sections {
		section := models.Section{
			Base:        models.Base{ID: uuid.New()},
			CourseID:    course.ID,
			Title:       sec.Title,
			Description: sec.Description,
			OrderIndex:  si,
		}
		for ii, ci := range sec.Content {
			item := models.ContentItem{
				Base:                 models.Base{ID: uuid.New()},
				SectionID:            section.ID,
				CourseID:             course.ID,
				Title:                ci.Title,
				Description:          ci.Description,
				Type:                 ci.Type,
				Duration:             ci.Duration,
				VideoDurationSeconds: ci.VideoDurationSeconds,
				VideoURL:             ci.VideoURL,
				Transcript:           ci.Transcript,
				OrderIndex:           ii,
			}
			for qi, q := range ci.Quizzes {
				quiz := models.QuizQuestion{
					ContentItemID: item.ID,
					Question:      q.Question,
					CorrectAnswer: q.CorrectAnswer,
					OrderIndex:    qi,
				}
				quiz.SetOptions(q.Options)
				item.Quizzes = append(item.Quizzes, quiz)
			}
			section.Items = append(section.Items, item)
		}
		course.Sections = append(course.Sections, section)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Create(&course).Error
	})
	if err != nil {
		return nil, apierr.Internal(err)
	}
	return &course, nil
}

// SetPublished toggles catalog visibility.
func (s *CatalogService) SetPublished(ctx context.Context, courseID uuid.UUID, published bool) error {
	res := s.db.WithContext(ctx).Model(&models.Course{}).
		Where("id = ? AND is_deleted = ?", courseID, false).
		Update("is_published", published)
	if res.Error != nil {
		return apierr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apierr.NotFound("Course not found!")
	}
	return nil
}

// loadCourseTree reads a course with its ordered sections and items.
func loadCourseTree(ctx context.Context, db *gorm.DB, courseID uuid.UUID, withQuizzes bool) (*models.Course, error) {
	q := db.WithContext(ctx).
		Preload("Sections", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_index asc") }).
		Preload("Sections.Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_index asc") })
	if withQuizzes {
		q = q.Preload("Sections.Items.Quizzes", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_index asc") })
	}

	var course models.Course
	if err := q.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Course not found!")
		}
		return nil, apierr.Internal(err)
	}
	return &course, nil
}
