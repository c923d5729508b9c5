package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trekzaa/internal/models/db_models"
	"trekzaa/internal/models/request_models"
	"trekzaa/pkg/utils"
)

func adminUser() *db_models.User {
	return &db_models.User{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Username:  "admin",
		IsAdmin:   true,
	}
}

func regularUser() *db_models.User {
	return &db_models.User{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Username:  "reader",
	}
}

func TestCreatePost_AdminOnly(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo)

	_, err := svc.CreatePost(context.Background(), regularUser(), request_models.CreatePostRequest{
		Title: "t", Content: "c",
	})
	assert.ErrorIs(t, err, utils.ErrAdminRequired)
	assert.Empty(t, repo.posts)

	post, err := svc.CreatePost(context.Background(), adminUser(), request_models.CreatePostRequest{
		Title: "Hidden beaches", Content: "...",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hidden beaches", post.Title)
}

func TestUpdatePost_UnknownPost(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())

	_, err := svc.UpdatePost(context.Background(), adminUser(), uuid.New(), request_models.UpdatePostRequest{
		Title: "t", Content: "c",
	})
	assert.ErrorIs(t, err, utils.ErrPostNotFound)
}

func TestDeletePost_AdminOnly(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo)

	post, err := svc.CreatePost(context.Background(), adminUser(), request_models.CreatePostRequest{
		Title: "t", Content: "c",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeletePost(context.Background(), regularUser(), post.ID), utils.ErrAdminRequired)
	require.NoError(t, svc.DeletePost(context.Background(), adminUser(), post.ID))
	assert.Empty(t, repo.posts)
}

func TestCreateComment_AnyAuthenticatedUser(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo)

	post, err := svc.CreatePost(context.Background(), adminUser(), request_models.CreatePostRequest{
		Title: "t", Content: "c",
	})
	require.NoError(t, err)

	author := regularUser()
	comment, err := svc.CreateComment(context.Background(), author.ID, post.ID, request_models.CreateCommentRequest{
		Content: "great tips",
	})
	require.NoError(t, err)
	assert.Equal(t, author.ID, comment.AuthorID)

	comments, err := svc.ListComments(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestCreateComment_UnknownPost(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())

	_, err := svc.CreateComment(context.Background(), uuid.New(), uuid.New(), request_models.CreateCommentRequest{
		Content: "hello",
	})
	assert.ErrorIs(t, err, utils.ErrPostNotFound)
}
