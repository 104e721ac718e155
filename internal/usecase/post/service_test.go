package post

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashermunn/portfolio-backend/domain"
)

type fakePostRepo struct {
	domain.PostRepository
	nextID int64
	posts  map[int64]domain.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[int64]domain.Post)}
}

func (f *fakePostRepo) Fetch(_ context.Context, _ string, num int64) ([]domain.Post, error) {
	var res []domain.Post
	for _, p := range f.posts {
		if p.Status != domain.PostStatusPublished {
			continue
		}
		res = append(res, p)
		if int64(len(res)) >= num {
			break
		}
	}
	return res, nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id int64) (domain.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return domain.Post{}, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakePostRepo) GetBySlug(_ context.Context, slug string) (domain.Post, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Post{}, domain.ErrNotFound
}

func (f *fakePostRepo) Store(_ context.Context, p *domain.Post) error {
	f.nextID++
	p.ID = f.nextID
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	f.posts[p.ID] = *p
	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) FetchIDs(_ context.Context, cursor int64, limit int64) ([]int64, error) {
	var ids []int64
	for id := range f.posts {
		if id > cursor {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	if int64(len(ids)) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

type fakePostCache struct {
	domain.PostCache
	views map[int64]int64
}

func (f *fakePostCache) IncrViews(_ context.Context, id int64) (int64, error) {
	if f.views == nil {
		f.views = make(map[int64]int64)
	}
	f.views[id]++
	return f.views[id], nil
}

type fakeBloom struct {
	ids map[int64]struct{}
}

func newFakeBloom() *fakeBloom {
	return &fakeBloom{ids: make(map[int64]struct{})}
}

func (f *fakeBloom) Add(_ context.Context, id int64) error {
	f.ids[id] = struct{}{}
	return nil
}

func (f *fakeBloom) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.ids[id]
	return ok, nil
}

func (f *fakeBloom) BulkAdd(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		_ = f.Add(ctx, id)
	}
	return nil
}

func TestStoreRejectsDuplicateSlug(t *testing.T) {
	svc := NewService(newFakePostRepo(), &fakePostCache{}, newFakeBloom())
	ctx := context.Background()

	p := domain.Post{Title: "First", Slug: "first"}
	require.NoError(t, svc.Store(ctx, &p))
	assert.NotZero(t, p.ID)
	assert.Equal(t, domain.PostStatusDraft, p.Status)

	dup := domain.Post{Title: "Also First", Slug: "first"}
	assert.ErrorIs(t, svc.Store(ctx, &dup), domain.ErrConflict)
}

func TestGetByIDBloomShortCircuit(t *testing.T) {
	repo := newFakePostRepo()
	bloom := newFakeBloom()
	svc := NewService(repo, &fakePostCache{}, bloom)
	ctx := context.Background()

	p := domain.Post{Title: "Hello", Slug: "hello", Status: domain.PostStatusPublished}
	require.NoError(t, svc.Store(ctx, &p))

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Slug, got.Slug)

	// an ID the bloom filter has never seen is rejected without a DB read
	_, err = svc.GetByID(ctx, 424242)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByIDOverlaysBufferedViews(t *testing.T) {
	repo := newFakePostRepo()
	cache := &fakePostCache{}
	svc := NewService(repo, cache, newFakeBloom())
	ctx := context.Background()

	p := domain.Post{Title: "Hello", Slug: "hello", Status: domain.PostStatusPublished, Views: 10}
	require.NoError(t, svc.Store(ctx, &p))

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(11), got.Views)

	got, err = svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.Views)
}

func TestFetchEncodesNextCursor(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewService(repo, &fakePostCache{}, newFakeBloom())
	ctx := context.Background()

	for _, slug := range []string{"a", "b"} {
		p := domain.Post{Title: slug, Slug: slug, Status: domain.PostStatusPublished}
		require.NoError(t, svc.Store(ctx, &p))
	}

	res, nextCursor, err := svc.Fetch(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.NotEmpty(t, nextCursor)
}

func TestInitBloomFilterWarmsAllIDs(t *testing.T) {
	repo := newFakePostRepo()
	bloom := newFakeBloom()
	svc := NewService(repo, &fakePostCache{}, bloom)
	ctx := context.Background()

	for _, slug := range []string{"a", "b", "c"} {
		p := domain.Post{Title: slug, Slug: slug}
		require.NoError(t, repo.Store(ctx, &p))
	}

	require.NoError(t, svc.InitBloomFilter(ctx))
	for id := int64(1); id <= 3; id++ {
		ok, err := bloom.Exists(ctx, id)
		require.NoError(t, err)
		assert.True(t, ok, "post %d missing from bloom filter", id)
	}
}
