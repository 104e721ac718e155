package domain

import (
	"context"
	"time"
)

// EngagementKind is the flavor of a toggleable engagement.
type EngagementKind string

const (
	KindLike     EngagementKind = "like"
	KindBookmark EngagementKind = "bookmark"
)

// Valid reports whether k is a known engagement kind.
func (k EngagementKind) Valid() bool {
	return k == KindLike || k == KindBookmark
}

const (
	// 默认每个会话只回填最近的300条互动记录
	EngagementRecordLimit = 300
)

// Engagement is representing a like or bookmark record keyed by an
// anonymous session. UserID is carried for authenticated flows but is
// unused by the anonymous toggle path.
type Engagement struct {
	PostID    int64
	SessionID string
	UserID    string
	Kind      EngagementKind
	CreatedAt time.Time
}

// ToggleResult is the outcome of a toggle: the new state for this
// (post, session, kind) pair and the post's counter after the flip.
type ToggleResult struct {
	Active bool
	Count  int64
}

type EngagementAction int8

const (
	ActionAdd    EngagementAction = 1
	ActionRemove EngagementAction = -1
)

func (a EngagementAction) String() string {
	switch a {
	case ActionAdd:
		return "ADD"
	case ActionRemove:
		return "REMOVE"
	default:
		return "UNKNOWN"
	}
}

// EngagementChanges batches record mutations for a worker flush.
type EngagementChanges struct {
	ToAdd    []Engagement
	ToRemove []Engagement
}

// EngagementRepository defines the contract for engagement record persistence
type EngagementRepository interface {
	// Exists reports whether an active record exists for (post, session, kind).
	Exists(ctx context.Context, rec Engagement) (bool, error)

	// Store creates an engagement record.
	// Returns ErrConflict if the record already exists.
	Store(ctx context.Context, rec Engagement) error

	// Remove deletes an engagement record.
	// Returns ErrNotFound if no record exists for the key.
	Remove(ctx context.Context, rec Engagement) error

	// FetchSessionPosts 从记录表中选择 session_id=? kind=? 的 post_id 列表，限制条数
	FetchSessionPosts(ctx context.Context, sessionID string, kind EngagementKind, limit int64) ([]int64, error)

	// ApplyChanges applies a deduplicated batch of record mutations and
	// recounts the touched posts' counters in one transaction.
	ApplyChanges(ctx context.Context, kind EngagementKind, changes EngagementChanges) error
}

type EngagementCache interface {
	// AddRecord marks the pair engaged. Returns false if it already was.
	// Returns ErrCacheMiss if the session's record set is not cached yet.
	AddRecord(ctx context.Context, rec Engagement) (bool, error)

	// RemoveRecord clears the pair. Returns false if it was not engaged.
	// Returns ErrCacheMiss if the session's record set is not cached yet.
	RemoveRecord(ctx context.Context, rec Engagement) (bool, error)

	// IsEngaged reports the cached state for the pair.
	// Returns ErrCacheMiss if the session's record set is not cached yet.
	IsEngaged(ctx context.Context, rec Engagement) (bool, error)

	// SetSessionPosts seeds the session's engaged-post set from the repository.
	SetSessionPosts(ctx context.Context, sessionID string, kind EngagementKind, postIDs []int64) error
}

type EngagementUsecase interface {
	// Toggle flips the engagement state for (post, session, kind) and
	// keeps the post's denormalized counter in step.
	Toggle(ctx context.Context, rec Engagement) (ToggleResult, error)

	// Status reports whether the pair is currently engaged. Pure read.
	Status(ctx context.Context, rec Engagement) (bool, error)
}

type SyncEngagementWorker interface {
	Start(ctx context.Context)

	// Send enqueues a record mutation for the batched DB flush.
	Send(rec Engagement, action EngagementAction)
}
