package domain

import (
	"context"
	"time"
)

// CommentStatus is the visibility state of a comment. It is a plain
// field set by the caller, there is no moderation workflow behind it.
type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusApproved CommentStatus = "approved"
)

// Comment domain model
type Comment struct {
	ID            int64         `json:"id"`
	PostID        int64         `json:"post_id"`
	ParentID      int64         `json:"parent_id"` // 0 for top-level comments
	AuthorName    string        `json:"author_name"`
	AuthorEmail   string        `json:"author_email"`
	AuthorWebsite string        `json:"author_website,omitempty"`
	Content       string        `json:"content"`
	Status        CommentStatus `json:"status"`
	Likes         int64         `json:"likes"`
	CreatedAt     time.Time     `json:"created_at"`

	// Replies 子评论列表
	Replies []*Comment `json:"replies,omitempty"`
}

// IsReply reports whether the comment is a reply to another comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != 0
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	Create(ctx context.Context, c *Comment) error
	FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]*Comment, string, error)
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	// FetchRoots 获取一级评论
	FetchRoots(ctx context.Context, postID int64, cursor string, limit int64) ([]*Comment, error)
	// FetchReplies 获取指定父评论ID列表的所有子回复
	FetchReplies(ctx context.Context, parentIDs []int64) ([]*Comment, error)
}
