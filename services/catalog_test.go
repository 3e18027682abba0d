package services

import (
	"context"
	"net/http"
	"testing"

	"gyaandeepika/database/testutil"
	"gyaandeepika/models"
	"gyaandeepika/utils/apierr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseInput(title, category string) CreateCourseInput {
	return CreateCourseInput{
		Title:       title,
		Description: "learn " + title,
		Category:    category,
		Sections: []CreateSectionInput{{
			Title: "Week 1",
			Content: []CreateContentInput{
				{Title: "Welcome", Type: models.ContentTypeVideo, VideoDurationSeconds: 90, Transcript: "hello"},
				{Title: "Check", Type: models.ContentTypeQuiz, Quizzes: []CreateQuizInput{
					{Question: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: "4"},
				}},
			},
		}},
	}
}

func TestCreateCourseStoresTree(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	svc := NewCatalogService(db)

	created, err := svc.CreateCourse(ctx, courseInput("Algebra", "math"))
	require.NoError(t, err)
	assert.False(t, created.IsPublished)
	assert.Equal(t, "beginner", created.Level)

	stored := testutil.LoadCourse(t, db, created.ID)
	require.Len(t, stored.Sections, 1)
	require.Len(t, stored.Sections[0].Items, 2)
	assert.Equal(t, 1, stored.VideoCount())

	var quizzes []models.QuizQuestion
	require.NoError(t, db.Where("content_item_id = ?", stored.Sections[0].Items[1].ID).Find(&quizzes).Error)
	require.Len(t, quizzes, 1)
	assert.Equal(t, []string{"3", "4"}, quizzes[0].OptionList())
	assert.Equal(t, "4", quizzes[0].CorrectAnswer)
}

func TestListCoursesOnlyPublished(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	svc := NewCatalogService(db)

	algebra, err := svc.CreateCourse(ctx, courseInput("Algebra", "math"))
	require.NoError(t, err)
	_, err = svc.CreateCourse(ctx, courseInput("Poetry", "arts"))
	require.NoError(t, err)

	courses, total, err := svc.ListCourses(ctx, CourseFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, courses)

	require.NoError(t, svc.SetPublished(ctx, algebra.ID, true))

	courses, total, err = svc.ListCourses(ctx, CourseFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, courses, 1)
	assert.Equal(t, "Algebra", courses[0].Title)

	_, total, err = svc.ListCourses(ctx, CourseFilter{Category: "arts"})
	require.NoError(t, err)
	assert.Zero(t, total)

	courses, _, err = svc.ListCourses(ctx, CourseFilter{Search: "ALG"})
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestListCoursesPaginates(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	for _, title := range []string{"One", "Two", "Three"} {
		testutil.SeedCourse(t, db, title)
	}
	svc := NewCatalogService(db)

	page, total, err := svc.ListCourses(ctx, CourseFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, page, 1)
}

func TestGetCourse(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	svc := NewCatalogService(db)

	created, err := svc.CreateCourse(ctx, courseInput("Algebra", "math"))
	require.NoError(t, err)

	_, err = svc.GetCourse(ctx, created.ID)
	requireAPIError(t, err, http.StatusNotFound, apierr.CodeNotFound)

	require.NoError(t, svc.SetPublished(ctx, created.ID, true))
	course, err := svc.GetCourse(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, course.Sections, 1)
	assert.Len(t, course.Sections[0].Items, 2)

	_, err = svc.GetCourse(ctx, uuid.New())
	requireAPIError(t, err, http.StatusNotFound, apierr.CodeNotFound)

	err = svc.SetPublished(ctx, uuid.New(), true)
	requireAPIError(t, err, http.StatusNotFound, apierr.CodeNotFound)
}
