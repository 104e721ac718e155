package request

import "github.com/ashermunn/portfolio-backend/domain"

type Comment struct {
	ParentID      int64  `json:"parent_id"`
	AuthorName    string `json:"author_name" binding:"required"`
	AuthorEmail   string `json:"author_email" binding:"required,email"`
	AuthorWebsite string `json:"author_website" binding:"omitempty,url"`
	Content       string `json:"content" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ParentID:      r.ParentID,
		AuthorName:    r.AuthorName,
		AuthorEmail:   r.AuthorEmail,
		AuthorWebsite: r.AuthorWebsite,
		Content:       r.Content,
	}
}
