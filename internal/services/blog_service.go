package services

import (
	"context"

	"github.com/google/uuid"

	"trekzaa/internal/models/db_models"
	"trekzaa/internal/models/request_models"
	"trekzaa/internal/repositories"
	"trekzaa/pkg/utils"
)

type BlogServiceInterface interface {
	ListPosts(ctx context.Context) ([]*db_models.BlogPost, error)
	GetPost(ctx context.Context, id uuid.UUID) (*db_models.BlogPost, error)
	CreatePost(ctx context.Context, author *db_models.User, request request_models.CreatePostRequest) (*db_models.BlogPost, error)
	UpdatePost(ctx context.Context, actor *db_models.User, id uuid.UUID, request request_models.UpdatePostRequest) (*db_models.BlogPost, error)
	DeletePost(ctx context.Context, actor *db_models.User, id uuid.UUID) error
	ListComments(ctx context.Context, postID uuid.UUID) ([]*db_models.Comment, error)
	CreateComment(ctx context.Context, authorID uuid.UUID, postID uuid.UUID, request request_models.CreateCommentRequest) (*db_models.Comment, error)
}

type BlogService struct {
	blogRepo repositories.BlogRepository
}

func NewBlogService(blogRepo repositories.BlogRepository) BlogServiceInterface {
	return &BlogService{blogRepo: blogRepo}
}

func (s *BlogService) ListPosts(ctx context.Context) ([]*db_models.BlogPost, error) {
	posts, err := s.blogRepo.ListPosts(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return posts, nil
}

func (s *BlogService) GetPost(ctx context.Context, id uuid.UUID) (*db_models.BlogPost, error) {
	post, err := s.blogRepo.FindPostByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}
	return post, nil
}

// CreatePost is admin-only.
func (s *BlogService) CreatePost(ctx context.Context, author *db_models.User, request request_models.CreatePostRequest) (*db_models.BlogPost, error) {
	if !author.IsAdmin {
		return nil, utils.ErrAdminRequired
	}

	post := &db_models.BlogPost{
		AuthorID: author.ID,
		Title:    request.Title,
		Content:  request.Content,
	}
	if err := s.blogRepo.InsertPost(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}
	created, err := s.blogRepo.FindPostByID(ctx, post.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return created, nil
}

func (s *BlogService) UpdatePost(ctx context.Context, actor *db_models.User, id uuid.UUID, request request_models.UpdatePostRequest) (*db_models.BlogPost, error) {
	if !actor.IsAdmin {
		return nil, utils.ErrAdminRequired
	}

	post, err := s.blogRepo.FindPostByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	post.Title = request.Title
	post.Content = request.Content
	if err := s.blogRepo.UpdatePost(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}
	updated, err := s.blogRepo.FindPostByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

func (s *BlogService) DeletePost(ctx context.Context, actor *db_models.User, id uuid.UUID) error {
	if !actor.IsAdmin {
		return utils.ErrAdminRequired
	}

	post, err := s.blogRepo.FindPostByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrPostNotFound
	}

	if err := s.blogRepo.DeletePost(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *BlogService) ListComments(ctx context.Context, postID uuid.UUID) ([]*db_models.Comment, error) {
	post, err := s.blogRepo.FindPostByID(ctx, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	comments, err := s.blogRepo.ListComments(ctx, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return comments, nil
}

func (s *BlogService) CreateComment(ctx context.Context, authorID uuid.UUID, postID uuid.UUID, request request_models.CreateCommentRequest) (*db_models.Comment, error) {
	post, err := s.blogRepo.FindPostByID(ctx, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	comment := &db_models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  request.Content,
	}
	if err := s.blogRepo.InsertComment(ctx, comment); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return comment, nil
}
