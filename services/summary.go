package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gyaandeepika/models"
	"gyaandeepika/utils/apierr"
	"gyaandeepika/utils/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxTranscriptChars = 12000

// CompletionRequest is sent to the hosted model. Query is the short text used
// when the model is unavailable and a web search stands in.
type CompletionRequest struct {
	Prompt string
	Query  string
}

// Completer produces text from a prompt.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type SummaryService struct {
	db  *gorm.DB
	ai  Completer
	ttl time.Duration
	now func() time.Time
}

func NewSummaryService(db *gorm.DB, ai Completer, ttl time.Duration) *SummaryService {
	if ttl <= 0 {
		ttl = 48 * time.Hour
	}
	return &SummaryService{db: db, ai: ai, ttl: ttl, now: func() time.Time { return time.Now().UTC() }}
}

// Summarize returns the cached summary for a content item, generating it when
// absent, failed or expired.
func (s *SummaryService) Summarize(ctx context.Context, userID, courseID, contentID uuid.UUID) (*models.Summary, error) {
	item, err := s.transcriptItem(ctx, userID, courseID, contentID)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	owner := db.Where("user_id = ? AND course_id = ? AND content_id = ?", userID, courseID, contentID).Session(&gorm.Session{})

	// Serve the cached summary while it is fresh
	var summary models.Summary
	err = owner.First(&summary).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Claim the row. A concurrent first request may win the insert, so read back whichever row exists
		summary = models.Summary{UserID: userID, CourseID: courseID, ContentID: contentID, Status: models.SummaryPending}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}, {Name: "content_id"}},
			DoNothing: true,
		}).Create(&summary).Error; err != nil {
			return nil, apierr.Internal(err)
		}
		summary = models.Summary{}
		if err := owner.First(&summary).Error; err != nil {
			return nil, apierr.Internal(err)
		}
	case err != nil:
		return nil, apierr.Internal(err)
	case summary.Status == models.SummaryCompleted && summary.ExpiresAt != nil && summary.ExpiresAt.After(s.now()):
		return &summary, nil
	}

	// Reset to pending before calling the model
	summary.Status = models.SummaryPending
	summary.Text = ""
	summary.Error = ""
	summary.CompletedAt = nil
	summary.ExpiresAt = nil
	if err := db.Save(&summary).Error; err != nil {
		return nil, apierr.Internal(err)
	}

	// Generate and record the outcome
	text, err := s.ai.Complete(ctx, CompletionRequest{
		Prompt: summaryPrompt(item.Title, item.Transcript),
		Query:  item.Title,
	})
	if err != nil || strings.TrimSpace(text) == "" {
		if err == nil {
			err = errors.New("empty completion")
		}
		summary.Status = models.SummaryFailed
		summary.Error = err.Error()
		if saveErr := db.Save(&summary).Error; saveErr != nil {
			logger.Log.Error("failed to mark summary failed", "summaryId", summary.ID, "error", saveErr)
		}
		logger.Log.Warn("summary generation failed", "contentId", contentID, "error", err)
		return nil, apierr.Upstream(err)
	}

	completedAt := s.now()
	expiresAt := completedAt.Add(s.ttl)
	summary.Status = models.SummaryCompleted
	summary.Text = strings.TrimSpace(text)
	summary.CompletedAt = &completedAt
	summary.ExpiresAt = &expiresAt
	if err := db.Save(&summary).Error; err != nil {
		return nil, apierr.Internal(err)
	}
	return &summary, nil
}

// Ask answers a question about one content item's transcript. Answers are not stored.
func (s *SummaryService) Ask(ctx context.Context, userID, courseID, contentID uuid.UUID, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", apierr.Validation("Validation failed!", map[string]string{"question": "Question is required!"})
	}
	item, err := s.transcriptItem(ctx, userID, courseID, contentID)
	if err != nil {
		return "", err
	}
	answer, err := s.ai.Complete(ctx, CompletionRequest{
		Prompt: questionPrompt(item.Title, item.Transcript, question),
		Query:  question,
	})
	if err != nil {
		logger.Log.Warn("question answering failed", "contentId", contentID, "error", err)
		return "", apierr.Upstream(err)
	}
	return strings.TrimSpace(answer), nil
}

// PurgeExpired deletes completed summaries past their expiry.
func (s *SummaryService) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", models.SummaryCompleted, s.now()).
		Delete(&models.Summary{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (s *SummaryService) transcriptItem(ctx context.Context, userID, courseID, contentID uuid.UUID) (*models.ContentItem, error) {
	if err := requireEnrollment(ctx, s.db, userID, courseID); err != nil {
		return nil, err
	}
	course, err := loadCourseTree(ctx, s.db, courseID, false)
	if err != nil {
		return nil, err
	}
	item := course.FindContent(contentID)
	if item == nil {
		return nil, apierr.NotFound("Content not found!")
	}
	if strings.TrimSpace(item.Transcript) == "" {
		return nil, apierr.NotFound("No transcript available for this content!")
	}
	return item, nil
}

// clipTranscript caps t at maxTranscriptChars bytes without splitting a rune.
func clipTranscript(t string) string {
	if len(t) <= maxTranscriptChars {
		return t
	}
	cut := maxTranscriptChars
	for cut > 0 && !utf8.RuneStart(t[cut]) {
		cut--
	}
	return t[:cut]
}

func summaryPrompt(title, transcript string) string {
	return fmt.Sprintf(
		"Summarize the following lesson titled %q for a student. Use short paragraphs and list the key takeaways.\n\nTranscript:\n%s",
		title, clipTranscript(transcript),
	)
}

func questionPrompt(title, transcript, question string) string {
	return fmt.Sprintf(
		"Answer the student's question using only the lesson titled %q.\n\nTranscript:\n%s\n\nQuestion: %s",
		title, clipTranscript(transcript), question,
	)
}
