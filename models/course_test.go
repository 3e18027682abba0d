package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCourseWalkers(t *testing.T) {
	v1, v2, r1 := uuid.New(), uuid.New(), uuid.New()
	c := &Course{Sections: []Section{
		{Items: []ContentItem{
			{Base: Base{ID: v1}, Type: ContentTypeVideo},
			{Base: Base{ID: r1}, Type: ContentTypeReading},
		}},
		{Items: []ContentItem{
			{Base: Base{ID: v2}, Type: ContentTypeVideo, Title: "second"},
		}},
		{},
	}}

	assert.Equal(t, 2, c.VideoCount())
	assert.Equal(t, 0, (&Course{}).VideoCount())

	found := c.FindContent(v2)
	if assert.NotNil(t, found) {
		assert.Equal(t, "second", found.Title)
	}
	assert.Nil(t, c.FindContent(uuid.New()))

	idx := c.ContentIndex()
	assert.Len(t, idx, 3)
	assert.Same(t, &c.Sections[1].Items[0], idx[v2])
}

func TestQuizOptions(t *testing.T) {
	var q QuizQuestion
	assert.Equal(t, []string{}, q.OptionList())

	q.SetOptions([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, q.OptionList())

	q.SetOptions(nil)
	assert.Equal(t, []string{}, q.OptionList())

	q.Options = []byte("{not json")
	assert.Equal(t, []string{}, q.OptionList())
}
