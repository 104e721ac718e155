package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// postRepository 协调层，协调缓存和数据库
type postRepository struct {
	db           domain.PostRepository
	cache        domain.PostCache
	rebuildGroup singleflight.Group
}

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository 创建协调层repository
func NewPostRepository(db domain.PostRepository, cache domain.PostCache) *postRepository {
	return &postRepository{
		db:    db,
		cache: cache,
	}
}

// Fetch 获取文章列表，列表页不走缓存
func (r *postRepository) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Post, error) {
	return r.db.Fetch(ctx, cursor, num)
}

// GetByID 根据ID获取文章，未命中时用 singleflight 避免缓存击穿
func (r *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	post, err := r.cache.GetPost(ctx, id)
	if err == nil {
		return r.fillCounters(ctx, post), nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("cache get error: %v", err)
	}

	key := fmt.Sprintf("post:%d", id)
	result, err, _ := r.rebuildGroup.Do(key, func() (interface{}, error) {
		p, err := r.db.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		_ = r.cache.SetPost(context.Background(), &p)
		_ = r.cache.SetCount(ctx, p.ID, domain.KindLike, p.LikesCount)
		_ = r.cache.SetCount(ctx, p.ID, domain.KindBookmark, p.BookmarksCount)

		return p, nil
	})

	if err != nil {
		return domain.Post{}, err
	}

	return result.(domain.Post), nil
}

// GetBySlug 根据slug获取文章（slug 查询不常用，不走缓存）
func (r *postRepository) GetBySlug(ctx context.Context, slug string) (domain.Post, error) {
	post, err := r.db.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Post{}, err
	}
	return r.fillCounters(ctx, post), nil
}

func (r *postRepository) Store(ctx context.Context, p *domain.Post) error {
	return r.db.Store(ctx, p)
}

func (r *postRepository) Update(ctx context.Context, p *domain.Post) error {
	err := r.db.Update(ctx, p)
	if err != nil {
		return err
	}

	// 异步删除缓存
	go func(id int64) {
		_ = r.cache.DeletePost(context.Background(), id)
	}(p.ID)

	return nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.Delete(ctx, id)
	if err != nil {
		return err
	}

	go func(id int64) {
		_ = r.cache.DeletePost(context.Background(), id)
	}(id)

	return nil
}

// AddViews 由 worker 批量刷库
func (r *postRepository) AddViews(ctx context.Context, id int64, deltaViews int64) error {
	return r.db.AddViews(ctx, id, deltaViews)
}

// AddEngagementCount 写库并保持缓存计数同步
func (r *postRepository) AddEngagementCount(ctx context.Context, id int64, kind domain.EngagementKind, delta int64) (int64, error) {
	count, err := r.db.AddEngagementCount(ctx, id, kind, delta)
	if err != nil {
		return 0, err
	}

	if _, cerr := r.cache.IncrCount(ctx, id, kind, delta); cerr != nil && !errors.Is(cerr, domain.ErrCacheMiss) {
		logrus.Warnf("failed to shift cached %s count for post %d: %v", kind, id, cerr)
	}

	return count, nil
}

func (r *postRepository) AddComments(ctx context.Context, id int64, delta int64) error {
	err := r.db.AddComments(ctx, id, delta)
	if err != nil {
		return err
	}

	go func(id int64) {
		_ = r.cache.DeletePost(context.Background(), id)
	}(id)

	return nil
}

func (r *postRepository) RecountEngagement(ctx context.Context, ids []int64, kind domain.EngagementKind) error {
	err := r.db.RecountEngagement(ctx, ids, kind)
	if err != nil {
		return err
	}

	// 重算后缓存计数可能已脏，直接删除等待下次读取回填
	for _, id := range ids {
		if derr := r.cache.DeletePost(ctx, id); derr != nil {
			logrus.Warnf("failed to drop cached post %d after recount: %v", id, derr)
		}
	}
	return nil
}

func (r *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}

// fillCounters overlays the freshest cached counters onto a post read.
func (r *postRepository) fillCounters(ctx context.Context, p domain.Post) domain.Post {
	if likes, err := r.cache.GetCount(ctx, p.ID, domain.KindLike); err == nil {
		p.LikesCount = likes
	}
	if bookmarks, err := r.cache.GetCount(ctx, p.ID, domain.KindBookmark); err == nil {
		p.BookmarksCount = bookmarks
	}
	return p
}
