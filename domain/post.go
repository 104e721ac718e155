package domain

import (
	"context"
	"time"
)

// PostStatus is the publication state of a blog post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

// Post is representing a blog post with its denormalized engagement counters
type Post struct {
	ID             int64      // Unique identifier for the post
	Title          string     // Post title
	Slug           string     // URL slug (unique)
	Content        string     // Post body content
	CategoryID     string     // Category reference
	Tags           []string   // Free-form tags
	Status         PostStatus // draft or published
	Featured       bool       // Pinned on the home page
	ReadTime       int64      // Estimated reading time in minutes
	Views          int64      // Number of views
	LikesCount     int64      // Denormalized count of like records
	BookmarksCount int64      // Denormalized count of bookmark records
	CommentsCount  int64      // Denormalized count of comments
	UpdatedAt      time.Time  // Last update timestamp
	CreatedAt      time.Time  // Creation timestamp
}

// CounterField maps an engagement kind to the counter it maintains on Post.
func (k EngagementKind) CounterField() string {
	switch k {
	case KindBookmark:
		return "bookmarks_count"
	default:
		return "likes_count"
	}
}

// PostRepository defines the contract for post data persistence
type PostRepository interface {
	// Fetch retrieves a paginated list of published posts.
	// cursor: pass the cursor from the previous page or empty string for the first page.
	// num: number of posts to fetch per page.
	Fetch(ctx context.Context, cursor string, num int64) (res []Post, err error)

	// GetByID retrieves a single post by its ID.
	// Returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (Post, error)

	// GetBySlug retrieves a single post by its slug.
	// Returns ErrNotFound if the post doesn't exist.
	GetBySlug(ctx context.Context, slug string) (Post, error)

	// Store creates a new post in the repository.
	Store(ctx context.Context, p *Post) error

	// Update modifies an existing post.
	// Returns ErrNotFound if the post doesn't exist.
	Update(ctx context.Context, p *Post) error

	// Delete removes a post by its ID.
	// Returns ErrNotFound if not exists.
	Delete(ctx context.Context, id int64) error

	// AddViews increments the view count of a post by deltaViews.
	AddViews(ctx context.Context, id int64, deltaViews int64) error

	// AddEngagementCount shifts the counter for the given kind by delta.
	// The counter is clamped at zero, it never goes negative.
	AddEngagementCount(ctx context.Context, id int64, kind EngagementKind, delta int64) (int64, error)

	// AddComments shifts the denormalized comment counter by delta,
	// clamped at zero.
	AddComments(ctx context.Context, id int64, delta int64) error

	// RecountEngagement rewrites the counter for the given kind from the
	// actual engagement records, repairing any drift.
	RecountEngagement(ctx context.Context, ids []int64, kind EngagementKind) error

	// FetchIDs lists post IDs after the given cursor, used to warm the bloom filter.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

type PostCache interface {
	GetPost(ctx context.Context, id int64) (Post, error)
	SetPost(ctx context.Context, p *Post) error
	DeletePost(ctx context.Context, id int64) error

	// Views related
	IncrViews(ctx context.Context, id int64) (int64, error)
	FetchAndResetViews(ctx context.Context) (map[int64]int64, error)

	// Counter related
	GetCount(ctx context.Context, id int64, kind EngagementKind) (int64, error)
	SetCount(ctx context.Context, id int64, kind EngagementKind, count int64) error
	IncrCount(ctx context.Context, id int64, kind EngagementKind, delta int64) (int64, error)
}

type PostUsecase interface {
	Fetch(ctx context.Context, cursor string, num int64) ([]Post, string, error)
	GetByID(ctx context.Context, id int64) (Post, error)
	GetBySlug(ctx context.Context, slug string) (Post, error)
	Store(ctx context.Context, p *Post) error
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id int64) error
	InitBloomFilter(ctx context.Context) error
}
