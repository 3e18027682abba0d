package testutil

import (
	"testing"
	"time"

	"gyaandeepika/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func SeedUser(tb testing.TB, db *gorm.DB, email string) *models.User {
	tb.Helper()
	u := &models.User{
		Name:     "Learner",
		Email:    email,
		Password: "pw",
		Role:     models.RoleUser,
	}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

// QuizSpec describes one seeded quiz question.
type QuizSpec struct {
	Question string
	Options  []string
	Answer   string
}

// ItemSpec describes one seeded content item.
type ItemSpec struct {
	Title   string
	Type    string
	Seconds int
	Quizzes []QuizSpec
}

// SeedCourse creates a published course with one section per entry in sections.
func SeedCourse(tb testing.TB, db *gorm.DB, title string, sections ...[]ItemSpec) *models.Course {
	tb.Helper()
	c := &models.Course{
		Title:       title,
		Description: "seeded course",
		Category:    "testing",
		IsPublished: true,
	}
	if err := db.Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	for si, items := range sections {
		s := &models.Section{CourseID: c.ID, Title: "section", OrderIndex: si}
		if err := db.Create(s).Error; err != nil {
			tb.Fatalf("seed section: %v", err)
		}
		for ii, spec := range items {
			item := &models.ContentItem{
				SectionID:            s.ID,
				CourseID:             c.ID,
				Title:                spec.Title,
				Type:                 spec.Type,
				VideoDurationSeconds: spec.Seconds,
				Transcript:           "transcript of " + spec.Title,
				OrderIndex:           ii,
			}
			if err := db.Create(item).Error; err != nil {
				tb.Fatalf("seed content item: %v", err)
			}
			for qi, q := range spec.Quizzes {
				qq := &models.QuizQuestion{
					ContentItemID: item.ID,
					Question:      q.Question,
					CorrectAnswer: q.Answer,
					OrderIndex:    qi,
				}
				qq.SetOptions(q.Options)
				if err := db.Create(qq).Error; err != nil {
					tb.Fatalf("seed quiz: %v", err)
				}
			}
		}
	}
	return LoadCourse(tb, db, c.ID)
}

// LoadCourse reads a course with its full tree.
func LoadCourse(tb testing.TB, db *gorm.DB, id uuid.UUID) *models.Course {
	tb.Helper()
	var c models.Course
	err := db.
		Preload("Sections", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_index asc") }).
		Preload("Sections.Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_index asc") }).
		First(&c, "id = ?", id).Error
	if err != nil {
		tb.Fatalf("load course: %v", err)
	}
	return &c
}

// Enroll inserts an enrollment row directly, bypassing the counter.
func Enroll(tb testing.TB, db *gorm.DB, userID, courseID uuid.UUID) {
	tb.Helper()
	e := &models.Enrollment{UserID: userID, CourseID: courseID, EnrolledAt: time.Now()}
	if err := db.Create(e).Error; err != nil {
		tb.Fatalf("seed enrollment: %v", err)
	}
}

// ItemID returns the id of the item with the given title.
func ItemID(tb testing.TB, c *models.Course, title string) uuid.UUID {
	tb.Helper()
	for _, s := range c.Sections {
		for _, item := range s.Items {
			if item.Title == title {
				return item.ID
			}
		}
	}
	tb.Fatalf("no content item titled %q", title)
	return uuid.Nil
}
