package response

import "github.com/ashermunn/portfolio-backend/domain"

type Comment struct {
	ID            int64  `json:"id"`
	PostID        int64  `json:"post_id"`
	ParentID      int64  `json:"parent_id"`
	AuthorName    string `json:"author_name"`
	AuthorWebsite string `json:"author_website,omitempty"`
	Content       string `json:"content"`
	Status        string `json:"status"`
	Likes         int64  `json:"likes"`
	IsReply       bool   `json:"is_reply"`
	CreatedAt     string `json:"created_at"`

	// Replies 子评论列表
	Replies []*Comment `json:"replies,omitempty"`
}

// NewSingleCommentFromDomain leaves out the author email, it is stored
// but never exposed through the API.
func NewSingleCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	return &Comment{
		ID:            c.ID,
		PostID:        c.PostID,
		ParentID:      c.ParentID,
		AuthorName:    c.AuthorName,
		AuthorWebsite: c.AuthorWebsite,
		Content:       c.Content,
		Status:        string(c.Status),
		Likes:         c.Likes,
		IsReply:       c.IsReply(),
		CreatedAt:     c.CreatedAt.Format(DateTimeFormat),
		Replies:       nil,
	}
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	root := NewSingleCommentFromDomain(c)
	if len(c.Replies) > 0 {
		replies := make([]*Comment, 0, len(c.Replies))
		for _, r := range c.Replies {
			replies = append(replies, NewSingleCommentFromDomain(r))
		}
		root.Replies = replies
	}
	return root
}
