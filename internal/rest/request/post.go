package request

import "github.com/ashermunn/portfolio-backend/domain"

type Post struct {
	Title      string   `json:"title" binding:"required"`
	Slug       string   `json:"slug" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	CategoryID string   `json:"category_id"`
	Tags       []string `json:"tags"`
	Status     string   `json:"status" binding:"omitempty,oneof=draft published"`
	Featured   bool     `json:"featured"`
	ReadTime   int64    `json:"read_time"`
}

// ToDomain: Request -> Domain
func (r *Post) ToDomain() domain.Post {
	return domain.Post{
		Title:      r.Title,
		Slug:       r.Slug,
		Content:    r.Content,
		CategoryID: r.CategoryID,
		Tags:       r.Tags,
		Status:     domain.PostStatus(r.Status),
		Featured:   r.Featured,
		ReadTime:   r.ReadTime,
	}
}
