package model

import (
	"strings"
	"time"

	"github.com/ashermunn/portfolio-backend/domain"
)

type Post struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Title          string    `gorm:"type:varchar(160);not null"`
	Slug           string    `gorm:"type:varchar(160);not null;uniqueIndex"`
	Content        string    `gorm:"type:longtext;not null"`
	CategoryID     string    `gorm:"type:varchar(64);column:category_id"`
	Tags           string    `gorm:"type:varchar(512)"` // comma separated
	Status         string    `gorm:"type:varchar(16);default:'draft';index"`
	Featured       bool      `gorm:"default:false"`
	ReadTime       int64     `gorm:"column:read_time;default:0"`
	Views          int64     `gorm:"default:0"`
	LikesCount     int64     `gorm:"column:likes_count;default:0"`
	BookmarksCount int64     `gorm:"column:bookmarks_count;default:0"`
	CommentsCount  int64     `gorm:"column:comments_count;default:0"`
	UpdatedAt      time.Time `gorm:"type:datetime"`
	CreatedAt      time.Time `gorm:"type:datetime"`
}

func (Post) TableName() string {
	return "post"
}

func (m *Post) ToDomain() domain.Post {
	var tags []string
	if m.Tags != "" {
		tags = strings.Split(m.Tags, ",")
	}
	return domain.Post{
		ID:             m.ID,
		Title:          m.Title,
		Slug:           m.Slug,
		Content:        m.Content,
		CategoryID:     m.CategoryID,
		Tags:           tags,
		Status:         domain.PostStatus(m.Status),
		Featured:       m.Featured,
		ReadTime:       m.ReadTime,
		Views:          m.Views,
		LikesCount:     m.LikesCount,
		BookmarksCount: m.BookmarksCount,
		CommentsCount:  m.CommentsCount,
		UpdatedAt:      m.UpdatedAt,
		CreatedAt:      m.CreatedAt,
	}
}

func NewPostFromDomain(p *domain.Post) *Post {
	return &Post{
		ID:             p.ID,
		Title:          p.Title,
		Slug:           p.Slug,
		Content:        p.Content,
		CategoryID:     p.CategoryID,
		Tags:           strings.Join(p.Tags, ","),
		Status:         string(p.Status),
		Featured:       p.Featured,
		ReadTime:       p.ReadTime,
		Views:          p.Views,
		LikesCount:     p.LikesCount,
		BookmarksCount: p.BookmarksCount,
		CommentsCount:  p.CommentsCount,
		UpdatedAt:      p.UpdatedAt,
		CreatedAt:      p.CreatedAt,
	}
}
