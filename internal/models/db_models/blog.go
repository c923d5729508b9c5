package db_models

import "github.com/google/uuid"

type BlogPost struct {
	BaseModel
	AuthorID uuid.UUID `gorm:"type:uuid;index" json:"authorId"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`

	Author   User      `gorm:"foreignKey:AuthorID" json:"author"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

type Comment struct {
	BaseModel
	PostID   uuid.UUID `gorm:"type:uuid;index" json:"postId"`
	AuthorID uuid.UUID `gorm:"type:uuid;index" json:"authorId"`
	Content  string    `json:"content"`

	Author User `gorm:"foreignKey:AuthorID" json:"author"`
}
