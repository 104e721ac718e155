package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/redis/go-redis/v9"
)

const (
	KeyPosts           = "post:%d"
	KeyCount           = "post:count:%s:%d" // kind, post ID
	KeyViewsBuffer     = "post:views:buffer"
	KeyViewsProcessing = "post:views:processing"

	postTTL = 10 * time.Minute
)

type postCache struct {
	client *redis.Client
}

var _ domain.PostCache = (*postCache)(nil)

func NewPostCache(client *redis.Client) *postCache {
	return &postCache{
		client,
	}
}

func (c *postCache) GetPost(ctx context.Context, id int64) (res domain.Post, err error) {
	key := fmt.Sprintf(KeyPosts, id)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Post{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Post{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.Post{}, err
	}
	return
}

func (c *postCache) SetPost(ctx context.Context, p *domain.Post) (err error) {
	key := fmt.Sprintf(KeyPosts, p.ID)
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	err = c.client.Set(ctx, key, data, postTTL).Err()
	return
}

// DeletePost drops the cached post together with its counter entries.
func (c *postCache) DeletePost(ctx context.Context, id int64) error {
	keys := []string{
		fmt.Sprintf(KeyPosts, id),
		fmt.Sprintf(KeyCount, domain.KindLike, id),
		fmt.Sprintf(KeyCount, domain.KindBookmark, id),
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *postCache) IncrViews(ctx context.Context, id int64) (int64, error) {
	return c.client.HIncrBy(ctx, KeyViewsBuffer, strconv.FormatInt(id, 10), 1).Result()
}

func (c *postCache) FetchAndResetViews(ctx context.Context) (map[int64]int64, error) {
	result := make(map[int64]int64)
	err := c.client.Rename(ctx, KeyViewsBuffer, KeyViewsProcessing).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return result, nil
		}
		return result, err
	}

	data, err := c.client.HGetAll(ctx, KeyViewsProcessing).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return result, nil
		}
		return result, err
	}

	for idStr, viewsStr := range data {
		id, _ := strconv.ParseInt(idStr, 10, 64)
		views, _ := strconv.ParseInt(viewsStr, 10, 64)
		result[id] = views
	}

	c.client.Del(ctx, KeyViewsProcessing)

	return result, nil
}

func (c *postCache) GetCount(ctx context.Context, id int64, kind domain.EngagementKind) (int64, error) {
	key := fmt.Sprintf(KeyCount, kind, id)
	count, err := c.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrCacheMiss
	}
	return count, err
}

func (c *postCache) SetCount(ctx context.Context, id int64, kind domain.EngagementKind, count int64) error {
	key := fmt.Sprintf(KeyCount, kind, id)
	return c.client.Set(ctx, key, count, 0).Err()
}

// IncrCount shifts the cached counter, clamping at zero. An uncached
// counter stays uncached so the next read seeds it from the database.
func (c *postCache) IncrCount(ctx context.Context, id int64, kind domain.EngagementKind, delta int64) (int64, error) {
	key := fmt.Sprintf(KeyCount, kind, id)
	script := redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 0 then
			return -1 -- 未缓存
		end
		local count = redis.call('INCRBY', KEYS[1], ARGV[1])
		if count < 0 then
			redis.call('SET', KEYS[1], 0)
			return 0
		end
		return count
	`)
	res, err := script.Run(ctx, c.client, []string{key}, delta).Int64()
	if err != nil {
		return 0, err
	}
	if res == -1 {
		return 0, domain.ErrCacheMiss
	}
	return res, nil
}
