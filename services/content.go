package services

import (
	"context"

	"gyaandeepika/models"
	"gyaandeepika/utils/apierr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentItemView struct {
	ID                   uuid.UUID `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Type                 string    `json:"type"`
	Duration             string    `json:"duration"`
	VideoDurationSeconds int       `json:"videoDurationSeconds"`
	VideoURL             string    `json:"videoUrl"`
	HasTranscript        bool      `json:"hasTranscript"`
	QuizCount            int       `json:"quizCount"`
	Completed            bool      `json:"completed"`
	WatchedDuration      float64   `json:"watchedDuration"`
}

type SectionView struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Content     []ContentItemView `json:"content"`
}

type CourseContentView struct {
	CourseID             uuid.UUID     `json:"courseId"`
	Title                string        `json:"title"`
	Description          string        `json:"description"`
	Instructor           string        `json:"instructor"`
	CompletionPercentage int           `json:"completionPercentage"`
	CurrentContentID     *uuid.UUID    `json:"currentContentId"`
	Sections             []SectionView `json:"sections"`
}

type QuizQuestionView struct {
	QuestionID int      `json:"questionId"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
}

type QuizView struct {
	ContentID uuid.UUID          `json:"contentId"`
	Title     string             `json:"title"`
	Quizzes   []QuizQuestionView `json:"quizzes"`
}

// QuizAnswer is one submitted answer. QuestionID is the 1-based ordinal from QuizView.
type QuizAnswer struct {
	QuestionID int    `json:"questionId"`
	Answer     string `json:"answer"`
}

type QuizResultItem struct {
	QuestionID    int    `json:"questionId"`
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

type QuizResult struct {
	Score   int              `json:"score"`
	Total   int              `json:"total"`
	Results []QuizResultItem `json:"results"`
}

type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// GetCourseContent returns the course tree annotated with the caller's watch state.
func (s *ContentService) GetCourseContent(ctx context.Context, userID, courseID uuid.UUID) (*CourseContentView, error) {
	if err := requireEnrollment(ctx, s.db, userID, courseID); err != nil {
		return nil, err
	}

	course, err := loadCourseTree(ctx, s.db, courseID, true)
	if err != nil {
		return nil, err
	}

	watched, err := progressByContent(ctx, s.db, userID, courseID)
	if err != nil {
		return nil, err
	}

	view := &CourseContentView{
		CourseID:    course.ID,
		Title:       course.Title,
		Description: course.Description,
		Instructor:  course.Instructor,
		Sections:    make([]SectionView, 0, len(course.Sections)),
	}

	var cp models.CourseProgress
	err = s.db.WithContext(ctx).Where("user_id = ? AND course_id = ?", userID, courseID).Limit(1).Find(&cp).Error
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if cp.ID != uuid.Nil {
		view.CompletionPercentage = cp.CompletionPercentage
		view.CurrentContentID = cp.CurrentContentID
	}

	for _, sec := range course.Sections {
		sv := SectionView{
			ID:          sec.ID,
			Title:       sec.Title,
			Description: sec.Description,
			Content:     make([]ContentItemView, 0, len(sec.Items)),
		}
		for _, item := range sec.Items {
			iv := ContentItemView{
				ID:                   item.ID,
				Title:                item.Title,
				Description:          item.Description,
				Type:                 item.Type,
				Duration:             item.Duration,
				VideoDurationSeconds: item.VideoDurationSeconds,
				VideoURL:             item.VideoURL,
				HasTranscript:        item.Transcript != "",
				QuizCount:            len(item.Quizzes),
			}
			if vp, ok := watched[item.ID]; ok {
				iv.Completed = vp.IsCompleted
				iv.WatchedDuration = vp.WatchedDuration
			}
			sv.Content = append(sv.Content, iv)
		}
		view.Sections = append(view.Sections, sv)
	}
	return view, nil
}

// GetQuiz returns an item's questions without their answers.
func (s *ContentService) GetQuiz(ctx context.Context, userID, courseID, contentID uuid.UUID) (*QuizView, error) {
	item, err := s.quizItem(ctx, userID, courseID, contentID)
	if err != nil {
		return nil, err
	}

	view := &QuizView{
		ContentID: item.ID,
		Title:     item.Title,
		Quizzes:   make([]QuizQuestionView, 0, len(item.Quizzes)),
	}
	for i := range item.Quizzes {
		q := &item.Quizzes[i]
		view.Quizzes = append(view.Quizzes, QuizQuestionView{
			QuestionID: i + 1,
			Question:   q.Question,
			Options:    q.OptionList(),
		})
	}
	return view, nil
}

// SubmitQuiz scores answers by exact, case-sensitive match. Unknown or repeated
// question ids are skipped, so unanswered questions never appear in Results.
// Nothing is persisted.
func (s *ContentService) SubmitQuiz(ctx context.Context, userID, courseID, contentID uuid.UUID, answers []QuizAnswer) (*QuizResult, error) {
	item, err := s.quizItem(ctx, userID, courseID, contentID)
	if err != nil {
		return nil, err
	}
	return ScoreQuiz(item.Quizzes, answers), nil
}

// ScoreQuiz compares answers against quizzes by 1-based ordinal.
func ScoreQuiz(quizzes []models.QuizQuestion, answers []QuizAnswer) *QuizResult {
	result := &QuizResult{
		Total:   len(quizzes),
		Results: make([]QuizResultItem, 0, len(answers)),
	}
	seen := make(map[int]bool, len(answers))
	for _, a := range answers {
		if a.QuestionID < 1 || a.QuestionID > len(quizzes) || seen[a.QuestionID] {
			continue
		}
		seen[a.QuestionID] = true

		q := quizzes[a.QuestionID-1]
		correct := a.Answer == q.CorrectAnswer
		if correct {
			result.Score++
		}
		result.Results = append(result.Results, QuizResultItem{
			QuestionID:    a.QuestionID,
			Question:      q.Question,
			UserAnswer:    a.Answer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     correct,
		})
	}
	return result
}

func (s *ContentService) quizItem(ctx context.Context, userID, courseID, contentID uuid.UUID) (*models.ContentItem, error) {
	if err := requireEnrollment(ctx, s.db, userID, courseID); err != nil {
		return nil, err
	}
	course, err := loadCourseTree(ctx, s.db, courseID, true)
	if err != nil {
		return nil, err
	}
	item := course.FindContent(contentID)
	if item == nil {
		return nil, apierr.NotFound("Content not found!")
	}
	if len(item.Quizzes) == 0 {
		return nil, apierr.NotFound("No quiz found for this content!")
	}
	return item, nil
}
