package common

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string   `json:"name" validate:"notblank"`
	Email string   `json:"email" validate:"required,email"`
	Items []nested `json:"items" validate:"dive"`
}

type nested struct {
	Title string `json:"title" validate:"required"`
}

func TestStruct(t *testing.T) {
	assert.Nil(t, Struct(&sample{Name: "a", Email: "a@b.co"}))

	errs := Struct(&sample{Name: "  ", Email: "nope", Items: []nested{{}}})
	assert.Equal(t, "name cannot be blank", errs["name"])
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "items[0].title")
}

func TestParseUUID(t *testing.T) {
	id := uuid.New()
	got, ok := ParseUUID(" " + id.String() + " ")
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = ParseUUID(uuid.Nil.String())
	assert.False(t, ok)
	_, ok = ParseUUID("abc")
	assert.False(t, ok)
}
