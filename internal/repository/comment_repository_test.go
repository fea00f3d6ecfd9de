package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/yatube/internal/model"
)

func TestCommentRepository_InsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostRepository(db)
	repo := NewCommentRepository(db)
	ctx := context.Background()
	author := seedUser(t, db, "author")
	guest := seedUser(t, db, "guest")

	post := &model.Post{Text: "hello", AuthorID: author.ID}
	require.NoError(t, posts.Create(ctx, post))

	for _, text := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &model.Comment{PostID: post.ID, AuthorID: guest.ID, Text: text}))
	}

	list, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Text)
	assert.Equal(t, "third", list[2].Text)
	assert.Equal(t, "guest", list[0].Author.Username)

	cnt, err := repo.CountByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cnt)
}

func TestGroupAndUserRepositories(t *testing.T) {
	db := setupTestDB(t)
	groups := NewGroupRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, groups.Create(ctx, &model.Group{Title: "Zoo", Slug: "zoo"}))
	require.NoError(t, groups.Create(ctx, &model.Group{Title: "Art", Slug: "art"}))
	assert.Error(t, groups.Create(ctx, &model.Group{Title: "Dup", Slug: "zoo"}), "slug is unique")

	list, err := groups.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Art", list[0].Title)

	g, err := groups.GetBySlug(ctx, "zoo")
	require.NoError(t, err)
	assert.Equal(t, "Zoo", g.Title)
	_, err = groups.GetBySlug(ctx, "nope")
	assert.Error(t, err)

	require.NoError(t, users.Create(ctx, &model.User{Username: "leo", Password: "x"}))
	ok, err := users.ExistsUsername(ctx, "leo")
	require.NoError(t, err)
	assert.True(t, ok)
	u, err := users.GetByUsername(ctx, "leo")
	require.NoError(t, err)
	byID, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "leo", byID.Username)
}
