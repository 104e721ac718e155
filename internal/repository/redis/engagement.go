package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/redis/go-redis/v9"
)

const (
	// KeySessionPosts set of post IDs the session engaged with, per kind
	KeySessionPosts = "engagement:%s:session:%s"

	// sessionSetSentinel keeps a freshly seeded set non-empty so that an
	// engagement-free session still counts as cached.
	sessionSetSentinel = -1

	sessionSetTTLSec = 1800
	sessionSetTTL    = sessionSetTTLSec * time.Second
)

type engagementCache struct {
	client *redis.Client
}

var _ domain.EngagementCache = (*engagementCache)(nil)

func NewEngagementCache(client *redis.Client) *engagementCache {
	return &engagementCache{
		client,
	}
}

func (c *engagementCache) sessionKey(kind domain.EngagementKind, sessionID string) string {
	return fmt.Sprintf(KeySessionPosts, kind, sessionID)
}

func (c *engagementCache) AddRecord(ctx context.Context, rec domain.Engagement) (bool, error) {
	// KEYS = {该会话互动过的 post 列表}
	// ARGV = {本次 post ID}
	script := redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 0 then
			return -1 -- 未缓存, 需要加载缓存
		end

		if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 1 then
			return 0 -- 已存在记录
		else
			redis.call('SADD', KEYS[1], ARGV[1])
			redis.call('EXPIRE', KEYS[1], ARGV[2])
			return 1
		end
	`)

	res, err := script.Run(ctx, c.client, []string{c.sessionKey(rec.Kind, rec.SessionID)}, rec.PostID, sessionSetTTLSec).Int()
	if err != nil {
		return false, err
	}
	switch res {
	case -1:
		return false, domain.ErrCacheMiss
	case 0:
		return false, nil
	default:
		return true, nil
	}
}

func (c *engagementCache) RemoveRecord(ctx context.Context, rec domain.Engagement) (bool, error) {
	script := redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 0 then
			return -1 -- 未缓存, 需要加载缓存
		end

		if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 0 then
			return 0 -- 没有记录
		else
			redis.call('SREM', KEYS[1], ARGV[1])
			redis.call('EXPIRE', KEYS[1], ARGV[2])
			return 1
		end
	`)

	res, err := script.Run(ctx, c.client, []string{c.sessionKey(rec.Kind, rec.SessionID)}, rec.PostID, sessionSetTTLSec).Int()
	if err != nil {
		return false, err
	}
	switch res {
	case -1:
		return false, domain.ErrCacheMiss
	case 0:
		return false, nil
	default:
		return true, nil
	}
}

func (c *engagementCache) IsEngaged(ctx context.Context, rec domain.Engagement) (bool, error) {
	script := redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 0 then
			return -1
		end
		return redis.call('SISMEMBER', KEYS[1], ARGV[1])
	`)
	res, err := script.Run(ctx, c.client, []string{c.sessionKey(rec.Kind, rec.SessionID)}, rec.PostID).Int()
	if err != nil {
		return false, err
	}
	if res == -1 {
		return false, domain.ErrCacheMiss
	}
	return res == 1, nil
}

func (c *engagementCache) SetSessionPosts(ctx context.Context, sessionID string, kind domain.EngagementKind, postIDs []int64) error {
	members := make([]any, 0, len(postIDs)+1)
	members = append(members, sessionSetSentinel)
	for _, id := range postIDs {
		members = append(members, id)
	}
	key := c.sessionKey(kind, sessionID)

	pipe := c.client.Pipeline()
	pipe.SAdd(ctx, key, members...)
	pipe.Expire(ctx, key, sessionSetTTL)
	_, err := pipe.Exec(ctx)
	return err
}
