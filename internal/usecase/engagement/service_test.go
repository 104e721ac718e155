package engagement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashermunn/portfolio-backend/domain"
)

type recordKey struct {
	post    int64
	session string
	kind    domain.EngagementKind
}

// fakeEngagementRepo keeps records in a map, mimicking the unique key
// on (post_id, session_id, kind).
type fakeEngagementRepo struct {
	records map[recordKey]struct{}
}

func newFakeEngagementRepo() *fakeEngagementRepo {
	return &fakeEngagementRepo{records: make(map[recordKey]struct{})}
}

func key(rec domain.Engagement) recordKey {
	return recordKey{rec.PostID, rec.SessionID, rec.Kind}
}

func (f *fakeEngagementRepo) Exists(_ context.Context, rec domain.Engagement) (bool, error) {
	_, ok := f.records[key(rec)]
	return ok, nil
}

func (f *fakeEngagementRepo) Store(_ context.Context, rec domain.Engagement) error {
	k := key(rec)
	if _, ok := f.records[k]; ok {
		return domain.ErrConflict
	}
	f.records[k] = struct{}{}
	return nil
}

func (f *fakeEngagementRepo) Remove(_ context.Context, rec domain.Engagement) error {
	k := key(rec)
	if _, ok := f.records[k]; !ok {
		return domain.ErrNotFound
	}
	delete(f.records, k)
	return nil
}

func (f *fakeEngagementRepo) FetchSessionPosts(_ context.Context, sessionID string, kind domain.EngagementKind, _ int64) ([]int64, error) {
	var res []int64
	for k := range f.records {
		if k.session == sessionID && k.kind == kind {
			res = append(res, k.post)
		}
	}
	return res, nil
}

func (f *fakeEngagementRepo) ApplyChanges(_ context.Context, _ domain.EngagementKind, _ domain.EngagementChanges) error {
	return nil
}

// fakeEngagementCache reports a miss until the session set is seeded.
type fakeEngagementCache struct {
	seeded map[string]map[int64]struct{} // "<kind>:<session>" -> post set
}

func newFakeEngagementCache() *fakeEngagementCache {
	return &fakeEngagementCache{seeded: make(map[string]map[int64]struct{})}
}

func (f *fakeEngagementCache) setKey(rec domain.Engagement) string {
	return string(rec.Kind) + ":" + rec.SessionID
}

func (f *fakeEngagementCache) AddRecord(_ context.Context, rec domain.Engagement) (bool, error) {
	set, ok := f.seeded[f.setKey(rec)]
	if !ok {
		return false, domain.ErrCacheMiss
	}
	if _, ok := set[rec.PostID]; ok {
		return false, nil
	}
	set[rec.PostID] = struct{}{}
	return true, nil
}

func (f *fakeEngagementCache) RemoveRecord(_ context.Context, rec domain.Engagement) (bool, error) {
	set, ok := f.seeded[f.setKey(rec)]
	if !ok {
		return false, domain.ErrCacheMiss
	}
	if _, ok := set[rec.PostID]; !ok {
		return false, nil
	}
	delete(set, rec.PostID)
	return true, nil
}

func (f *fakeEngagementCache) IsEngaged(_ context.Context, rec domain.Engagement) (bool, error) {
	set, ok := f.seeded[f.setKey(rec)]
	if !ok {
		return false, domain.ErrCacheMiss
	}
	_, engaged := set[rec.PostID]
	return engaged, nil
}

func (f *fakeEngagementCache) SetSessionPosts(_ context.Context, sessionID string, kind domain.EngagementKind, postIDs []int64) error {
	set := make(map[int64]struct{}, len(postIDs))
	for _, id := range postIDs {
		set[id] = struct{}{}
	}
	f.seeded[string(kind)+":"+sessionID] = set
	return nil
}

// fakePostRepo only tracks the denormalized counters.
type fakePostRepo struct {
	domain.PostRepository
	counts map[int64]map[domain.EngagementKind]int64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{counts: make(map[int64]map[domain.EngagementKind]int64)}
}

func (f *fakePostRepo) AddEngagementCount(_ context.Context, id int64, kind domain.EngagementKind, delta int64) (int64, error) {
	if f.counts[id] == nil {
		f.counts[id] = make(map[domain.EngagementKind]int64)
	}
	next := f.counts[id][kind] + delta
	if next < 0 {
		next = 0
	}
	f.counts[id][kind] = next
	return next, nil
}

type fakeBloom struct{}

func (fakeBloom) Add(context.Context, int64) error            { return nil }
func (fakeBloom) Exists(context.Context, int64) (bool, error) { return true, nil }
func (fakeBloom) BulkAdd(context.Context, []int64) error      { return nil }

type fakeWorker struct {
	sent []domain.EngagementAction
}

func (f *fakeWorker) Start(context.Context) {}
func (f *fakeWorker) Send(_ domain.Engagement, action domain.EngagementAction) {
	f.sent = append(f.sent, action)
}

func newTestService() (*Service, *fakePostRepo) {
	postRepo := newFakePostRepo()
	svc := NewService(newFakeEngagementRepo(), newFakeEngagementCache(), postRepo, fakeBloom{}, &fakeWorker{})
	return svc, postRepo
}

func TestToggleSymmetry(t *testing.T) {
	svc, _ := newTestService()
	rec := domain.Engagement{PostID: 1, SessionID: "s1", Kind: domain.KindLike}

	// odd number of toggles leaves the engagement active
	for i := 0; i < 5; i++ {
		res, err := svc.Toggle(context.Background(), rec)
		require.NoError(t, err)
		assert.Equal(t, i%2 == 0, res.Active, "toggle %d", i+1)
	}

	active, err := svc.Status(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, active)

	// one more makes it even
	res, err := svc.Toggle(context.Background(), rec)
	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.Equal(t, int64(0), res.Count)
}

func TestToggleEndToEnd(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	s1 := domain.Engagement{PostID: 1, SessionID: "S1", Kind: domain.KindLike}
	res, err := svc.Toggle(ctx, s1)
	require.NoError(t, err)
	assert.Equal(t, domain.ToggleResult{Active: true, Count: 1}, res)

	res, err = svc.Toggle(ctx, s1)
	require.NoError(t, err)
	assert.Equal(t, domain.ToggleResult{Active: false, Count: 0}, res)

	// a second session is independent of S1's final state
	s2 := domain.Engagement{PostID: 1, SessionID: "S2", Kind: domain.KindLike}
	res, err = svc.Toggle(ctx, s2)
	require.NoError(t, err)
	assert.Equal(t, domain.ToggleResult{Active: true, Count: 1}, res)
}

func TestToggleKindsAreIndependent(t *testing.T) {
	svc, posts := newTestService()
	ctx := context.Background()

	like := domain.Engagement{PostID: 7, SessionID: "s1", Kind: domain.KindLike}
	bookmark := domain.Engagement{PostID: 7, SessionID: "s1", Kind: domain.KindBookmark}

	_, err := svc.Toggle(ctx, like)
	require.NoError(t, err)
	res, err := svc.Toggle(ctx, bookmark)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.Equal(t, int64(1), res.Count)

	res, err = svc.Toggle(ctx, like)
	require.NoError(t, err)
	assert.False(t, res.Active)

	assert.Equal(t, int64(0), posts.counts[7][domain.KindLike])
	assert.Equal(t, int64(1), posts.counts[7][domain.KindBookmark])
}

func TestCounterNeverNegative(t *testing.T) {
	svc, posts := newTestService()
	ctx := context.Background()
	rec := domain.Engagement{PostID: 3, SessionID: "s1", Kind: domain.KindBookmark}

	// counter starts at 0, an inactive pair stays inactive after a
	// remove, and the counter clamps instead of going below zero
	repo := newFakeEngagementRepo()
	cache := newFakeEngagementCache()
	_ = cache.SetSessionPosts(ctx, "s1", domain.KindBookmark, []int64{3})
	svc = NewService(repo, cache, posts, fakeBloom{}, &fakeWorker{})

	res, err := svc.Toggle(ctx, rec)
	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.Equal(t, int64(0), res.Count)
	assert.GreaterOrEqual(t, posts.counts[3][domain.KindBookmark], int64(0))
}

func TestToggleRejectsBadInput(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, domain.Engagement{PostID: 1, SessionID: "s1", Kind: "applause"})
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	_, err = svc.Toggle(ctx, domain.Engagement{PostID: 1, Kind: domain.KindLike})
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestStatusSeedsCacheFromRepo(t *testing.T) {
	repo := newFakeEngagementRepo()
	cache := newFakeEngagementCache()
	svc := NewService(repo, cache, newFakePostRepo(), fakeBloom{}, &fakeWorker{})
	ctx := context.Background()

	rec := domain.Engagement{PostID: 9, SessionID: "s9", Kind: domain.KindLike}
	require.NoError(t, repo.Store(ctx, rec))

	// first read misses the cache and seeds it from the record table
	active, err := svc.Status(ctx, rec)
	require.NoError(t, err)
	assert.True(t, active)

	engaged, err := cache.IsEngaged(ctx, rec)
	require.NoError(t, err)
	assert.True(t, engaged)
}
