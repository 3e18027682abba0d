package models

import (
	"github.com/google/uuid"
)

// Course is the catalog entity. Sections and their items are ordered by OrderIndex.
type Course struct {
	Base
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category" gorm:"index"`
	Level         string    `json:"level" gorm:"default:'beginner'"` // beginner, intermediate, advanced
	Instructor    string    `json:"instructor"`
	ThumbnailURL  string    `json:"thumbnailUrl"`
	TotalStudents int       `json:"totalStudents" gorm:"default:0"`
	IsPublished   bool      `json:"isPublished" gorm:"default:false"`
	IsDeleted     bool      `json:"-" gorm:"default:false"`
	Sections      []Section `json:"sections,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// VideoCount counts video items across every section.
func (c *Course) VideoCount() int {
	n := 0
	for _, s := range c.Sections {
		for _, item := range s.Items {
			if item.Type == ContentTypeVideo {
				n++
			}
		}
	}
	return n
}

// FindContent returns the item with the given id, or nil.
func (c *Course) FindContent(id uuid.UUID) *ContentItem {
	for i := range c.Sections {
		for j := range c.Sections[i].Items {
			if c.Sections[i].Items[j].ID == id {
				return &c.Sections[i].Items[j]
			}
		}
	}
	return nil
}

// ContentIndex maps item ids to items. Pointers stay valid while c is not mutated.
func (c *Course) ContentIndex() map[uuid.UUID]*ContentItem {
	idx := make(map[uuid.UUID]*ContentItem)
	for i := range c.Sections {
		for j := range c.Sections[i].Items {
			item := &c.Sections[i].Items[j]
			idx[item.ID] = item
		}
	}
	return idx
}
