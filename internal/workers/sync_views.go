package workers

import (
	"context"
	"time"

	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/sirupsen/logrus"
)

const viewsFlushInterval = 30 * time.Second

// syncViewsWorker drains the buffered view counters from the cache into
// the database on a fixed interval.
type syncViewsWorker struct {
	postRepo  domain.PostRepository
	postCache domain.PostCache
}

func NewSyncViewsWorker(pr domain.PostRepository, pc domain.PostCache) *syncViewsWorker {
	return &syncViewsWorker{
		postRepo:  pr,
		postCache: pc,
	}
}

func (s *syncViewsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(viewsFlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.flush(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down SyncViewsWorker, flushing buffered views...")
			s.flush(context.WithoutCancel(ctx))
			return
		}
	}
}

func (s *syncViewsWorker) flush(ctx context.Context) {
	views, err := s.postCache.FetchAndResetViews(ctx)
	if err != nil {
		logrus.Errorf("failed to fetch buffered views: %v", err)
		return
	}

	for id, delta := range views {
		if delta == 0 {
			continue
		}
		if err := s.postRepo.AddViews(ctx, id, delta); err != nil {
			logrus.Errorf("failed to flush %d views for post %d: %v", delta, id, err)
		}
	}
}
