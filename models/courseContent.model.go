package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ContentTypeVideo      = "video"
	ContentTypeReading    = "reading"
	ContentTypeQuiz       = "quiz"
	ContentTypeAssignment = "assignment"
)

// Section groups content items within a course
type Section struct {
	Base
	CourseID    uuid.UUID     `json:"courseId" gorm:"type:uuid;index;not null"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	OrderIndex  int           `json:"orderIndex" gorm:"default:0"`
	Items       []ContentItem `json:"content,omitempty" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
}

// ContentItem is a single lesson unit
type ContentItem struct {
	Base
	SectionID            uuid.UUID      `json:"sectionId" gorm:"type:uuid;index;not null"`
	CourseID             uuid.UUID      `json:"courseId" gorm:"type:uuid;index;not null"`
	Title                string         `json:"title"`
	Description          string         `json:"description"`
	Type                 string         `json:"type" gorm:"default:'video'"` // video, reading, quiz, assignment
	Duration             string         `json:"duration"`                    // display value, e.g. "12:30"
	VideoDurationSeconds int            `json:"videoDurationSeconds" gorm:"default:0"`
	VideoURL             string         `json:"videoUrl"`
	Transcript           string         `json:"-" gorm:"type:text"`
	OrderIndex           int            `json:"orderIndex" gorm:"default:0"`
	Quizzes              []QuizQuestion `json:"-" gorm:"foreignKey:ContentItemID;constraint:OnDelete:CASCADE"`
}

// QuizQuestion is one question embedded in a content item
type QuizQuestion struct {
	Base
	ContentItemID uuid.UUID      `json:"contentItemId" gorm:"type:uuid;index;not null"`
	Question      string         `json:"question"`
	Options       datatypes.JSON `json:"options"`
	CorrectAnswer string         `json:"-"`
	OrderIndex    int            `json:"orderIndex" gorm:"default:0"`
}

// OptionList decodes Options. A malformed column yields no options.
func (q *QuizQuestion) OptionList() []string {
	var opts []string
	if len(q.Options) == 0 {
		return []string{}
	}
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return []string{}
	}
	return opts
}

// SetOptions encodes opts into Options.
func (q *QuizQuestion) SetOptions(opts []string) {
	if opts == nil {
		opts = []string{}
	}
	raw, _ := json.Marshal(opts)
	q.Options = datatypes.JSON(raw)
}
