package response

import (
	"github.com/ashermunn/portfolio-backend/domain"
)

const DateTimeFormat = "2006-01-02 15:04:05"

type Post struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Slug           string   `json:"slug"`
	Content        string   `json:"content"`
	CategoryID     string   `json:"category_id"`
	Tags           []string `json:"tags"`
	Status         string   `json:"status"`
	Featured       bool     `json:"featured"`
	ReadTime       int64    `json:"read_time"`
	Views          int64    `json:"views"`
	LikesCount     int64    `json:"likes_count"`
	BookmarksCount int64    `json:"bookmarks_count"`
	CommentsCount  int64    `json:"comments_count"`
	UpdatedAt      string   `json:"updated_at"`
	CreatedAt      string   `json:"created_at"`
}

// NewPostFromDomain: Domain -> Response
func NewPostFromDomain(p *domain.Post) Post {
	return Post{
		ID:             p.ID,
		Title:          p.Title,
		Slug:           p.Slug,
		Content:        p.Content,
		CategoryID:     p.CategoryID,
		Tags:           p.Tags,
		Status:         string(p.Status),
		Featured:       p.Featured,
		ReadTime:       p.ReadTime,
		Views:          p.Views,
		LikesCount:     p.LikesCount,
		BookmarksCount: p.BookmarksCount,
		CommentsCount:  p.CommentsCount,
		UpdatedAt:      p.UpdatedAt.Format(DateTimeFormat),
		CreatedAt:      p.CreatedAt.Format(DateTimeFormat),
	}
}
