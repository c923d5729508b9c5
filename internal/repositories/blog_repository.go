package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trekzaa/internal/models/db_models"
)

type BlogRepository interface {
	ListPosts(ctx context.Context) ([]*db_models.BlogPost, error)
	FindPostByID(ctx context.Context, id uuid.UUID) (*db_models.BlogPost, error)
	InsertPost(ctx context.Context, post *db_models.BlogPost) error
	UpdatePost(ctx context.Context, post *db_models.BlogPost) error
	DeletePost(ctx context.Context, id uuid.UUID) error
	ListComments(ctx context.Context, postID uuid.UUID) ([]*db_models.Comment, error)
	InsertComment(ctx context.Context, comment *db_models.Comment) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) ListPosts(ctx context.Context) ([]*db_models.BlogPost, error) {
	var posts []*db_models.BlogPost
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *blogRepository) FindPostByID(ctx context.Context, id uuid.UUID) (*db_models.BlogPost, error) {
	var post db_models.BlogPost
	err := r.db.WithContext(ctx).Preload("Author").First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) InsertPost(ctx context.Context, post *db_models.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *blogRepository) UpdatePost(ctx context.Context, post *db_models.BlogPost) error {
	return r.db.WithContext(ctx).Model(post).Select("title", "content").Updates(post).Error
}

func (r *blogRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.BlogPost{}, "id = ?", id).Error
}

func (r *blogRepository) ListComments(ctx context.Context, postID uuid.UUID) ([]*db_models.Comment, error) {
	var comments []*db_models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *blogRepository) InsertComment(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}
