package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectNames(t *testing.T) {
	g := Group{Title: "Тестовая группа", Slug: "test-slug"}
	assert.Equal(t, "Тестовая группа", g.String())

	p := Post{Text: "Новый пост для тестирования"}
	assert.Equal(t, "Новый пост для ", p.String())
	assert.Equal(t, "short", Post{Text: "short"}.String())

	assert.Equal(t, "auth", User{Username: "auth"}.String())
}
