package engagement

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ashermunn/portfolio-backend/domain"
)

// Service implements the like/bookmark toggle protocol. The existence
// check, the record mutation, and the counter update are three separate
// writes with no transaction across them; a failure between steps is
// logged and handed to the sync worker, which recounts the post's
// counter from the record table.
type Service struct {
	engagementRepo  domain.EngagementRepository
	engagementCache domain.EngagementCache
	postRepo        domain.PostRepository
	bloomRepo       domain.BloomRepository
	syncWorker      domain.SyncEngagementWorker
}

var _ domain.EngagementUsecase = (*Service)(nil)

func NewService(
	er domain.EngagementRepository,
	ec domain.EngagementCache,
	pr domain.PostRepository,
	br domain.BloomRepository,
	sw domain.SyncEngagementWorker,
) *Service {
	return &Service{
		engagementRepo:  er,
		engagementCache: ec,
		postRepo:        pr,
		bloomRepo:       br,
		syncWorker:      sw,
	}
}

func (s *Service) mustExists(ctx context.Context, postID int64) error {
	exists, err := s.bloomRepo.Exists(ctx, postID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says post %d does not exist", postID)
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) Toggle(ctx context.Context, rec domain.Engagement) (domain.ToggleResult, error) {
	if !rec.Kind.Valid() || rec.SessionID == "" {
		return domain.ToggleResult{}, domain.ErrBadParamInput
	}
	if err := s.mustExists(ctx, rec.PostID); err != nil {
		return domain.ToggleResult{}, err
	}
	rec.CreatedAt = time.Now()

	engaged, err := s.Status(ctx, rec)
	if err != nil {
		return domain.ToggleResult{}, err
	}

	if engaged {
		return s.deactivate(ctx, rec)
	}
	return s.activate(ctx, rec)
}

func (s *Service) activate(ctx context.Context, rec domain.Engagement) (domain.ToggleResult, error) {
	if err := s.engagementRepo.Store(ctx, rec); err != nil {
		if !errors.Is(err, domain.ErrConflict) {
			return domain.ToggleResult{}, err
		}
		// a concurrent toggle from the same session beat us to it,
		// the unique key keeps the record table consistent
		logrus.Warnf("duplicate %s record for post %d session %s", rec.Kind, rec.PostID, rec.SessionID)
	}

	if _, err := s.engagementCache.AddRecord(ctx, rec); err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to cache %s record: %v", rec.Kind, err)
	}

	count, err := s.postRepo.AddEngagementCount(ctx, rec.PostID, rec.Kind, 1)
	if err != nil {
		// the record is stored but the counter step failed: accepted
		// inconsistency, scheduled for repair by the sync worker
		logrus.Errorf("counter update failed after storing %s record for post %d: %v", rec.Kind, rec.PostID, err)
		s.syncWorker.Send(rec, domain.ActionAdd)
		return domain.ToggleResult{Active: true}, nil
	}

	return domain.ToggleResult{Active: true, Count: count}, nil
}

func (s *Service) deactivate(ctx context.Context, rec domain.Engagement) (domain.ToggleResult, error) {
	if err := s.engagementRepo.Remove(ctx, rec); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return domain.ToggleResult{}, err
		}
		logrus.Warnf("no stored %s record for post %d session %s, removing anyway", rec.Kind, rec.PostID, rec.SessionID)
	}

	if _, err := s.engagementCache.RemoveRecord(ctx, rec); err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to drop cached %s record: %v", rec.Kind, err)
	}

	count, err := s.postRepo.AddEngagementCount(ctx, rec.PostID, rec.Kind, -1)
	if err != nil {
		logrus.Errorf("counter update failed after removing %s record for post %d: %v", rec.Kind, rec.PostID, err)
		s.syncWorker.Send(rec, domain.ActionRemove)
		return domain.ToggleResult{Active: false}, nil
	}

	return domain.ToggleResult{Active: false, Count: count}, nil
}

// Status reports whether the pair is engaged. Reads the cached session
// set first and seeds it from the record table on a miss.
func (s *Service) Status(ctx context.Context, rec domain.Engagement) (bool, error) {
	if !rec.Kind.Valid() || rec.SessionID == "" {
		return false, domain.ErrBadParamInput
	}

	engaged, err := s.engagementCache.IsEngaged(ctx, rec)
	if err == nil {
		return engaged, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("engagement cache read failed, falling back to repo: %v", err)
		return s.engagementRepo.Exists(ctx, rec)
	}

	// 未命中缓存，去数据库加载这个会话互动过的文章
	postIDs, err := s.engagementRepo.FetchSessionPosts(ctx, rec.SessionID, rec.Kind, domain.EngagementRecordLimit)
	if err != nil {
		logrus.Errorf("failed to FetchSessionPosts from repo: %v", err)
		return false, err
	}

	if err := s.engagementCache.SetSessionPosts(ctx, rec.SessionID, rec.Kind, postIDs); err != nil {
		logrus.Warnf("failed to seed session set in cache: %v", err)
		return s.engagementRepo.Exists(ctx, rec)
	}

	engaged, err = s.engagementCache.IsEngaged(ctx, rec)
	if err != nil {
		logrus.Warnf("engagement cache reread failed, falling back to repo: %v", err)
		return s.engagementRepo.Exists(ctx, rec)
	}
	return engaged, nil
}
