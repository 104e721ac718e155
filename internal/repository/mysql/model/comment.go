package model

import (
	"time"

	"github.com/ashermunn/portfolio-backend/domain"
)

type Comment struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	PostID        int64     `gorm:"column:post_id;not null;index"`
	ParentID      int64     `gorm:"column:parent_id;default:0;index"`
	AuthorName    string    `gorm:"column:author_name;type:varchar(120);not null"`
	AuthorEmail   string    `gorm:"column:author_email;type:varchar(254);not null"`
	AuthorWebsite string    `gorm:"column:author_website;type:varchar(254)"`
	Content       string    `gorm:"type:text;not null"`
	Status        string    `gorm:"type:varchar(16);default:'pending'"`
	Likes         int64     `gorm:"default:0"`
	CreatedAt     time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:            c.ID,
		PostID:        c.PostID,
		ParentID:      c.ParentID,
		AuthorName:    c.AuthorName,
		AuthorEmail:   c.AuthorEmail,
		AuthorWebsite: c.AuthorWebsite,
		Content:       c.Content,
		Status:        string(c.Status),
		Likes:         c.Likes,
		CreatedAt:     c.CreatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:            m.ID,
		PostID:        m.PostID,
		ParentID:      m.ParentID,
		AuthorName:    m.AuthorName,
		AuthorEmail:   m.AuthorEmail,
		AuthorWebsite: m.AuthorWebsite,
		Content:       m.Content,
		Status:        domain.CommentStatus(m.Status),
		Likes:         m.Likes,
		CreatedAt:     m.CreatedAt,
	}
}
