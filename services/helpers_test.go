package services

import (
	"testing"

	"gyaandeepika/database/testutil"
	"gyaandeepika/models"
	"gyaandeepika/utils/apierr"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedLearningCourse builds two videos, one reading and one quiz item.
func seedLearningCourse(t *testing.T, db *gorm.DB) *models.Course {
	t.Helper()
	return testutil.SeedCourse(t, db, "Go Basics",
		[]testutil.ItemSpec{
			{Title: "Intro", Type: models.ContentTypeVideo, Seconds: 60},
			{Title: "Variables", Type: models.ContentTypeVideo, Seconds: 120},
		},
		[]testutil.ItemSpec{
			{Title: "Reading", Type: models.ContentTypeReading},
			{Title: "Checkpoint", Type: models.ContentTypeQuiz, Quizzes: []testutil.QuizSpec{
				{Question: "Zero value of int?", Options: []string{"0", "nil", "1"}, Answer: "0"},
				{Question: "Keyword for constants?", Options: []string{"let", "const", "var"}, Answer: "const"},
			}},
		},
	)
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	ae, ok := apierr.As(err)
	require.True(t, ok, "expected *apierr.Error, got %T: %v", err, err)
	require.Equal(t, status, ae.Status)
	if code != "" {
		require.Equal(t, code, ae.Code)
	}
}

func boolPtr(b bool) *bool { return &b }
