package workers

import (
	"context"
	"time"

	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/sirupsen/logrus"
)

type engagementTask struct {
	PostID    int64
	SessionID string
	Kind      domain.EngagementKind
	Action    domain.EngagementAction
}

// syncEngagementWorker repairs counter drift: tasks arrive whenever a
// toggle step failed mid-way, and the flush re-applies the record
// mutation and recounts the touched posts from the record table.
type syncEngagementWorker struct {
	engagementRepo domain.EngagementRepository
	ch             chan engagementTask
}

var _ domain.SyncEngagementWorker = (*syncEngagementWorker)(nil)

func NewSyncEngagementWorker(er domain.EngagementRepository) *syncEngagementWorker {
	return &syncEngagementWorker{
		engagementRepo: er,
		ch:             make(chan engagementTask, 1024),
	}
}

// Send enqueues a record mutation; a full channel drops the task rather
// than blocking the request path.
func (s *syncEngagementWorker) Send(rec domain.Engagement, action domain.EngagementAction) {
	select {
	case s.ch <- engagementTask{rec.PostID, rec.SessionID, rec.Kind, action}:
	default:
		logrus.Info("SyncEngagementWorker's channel is full, task dropped")
	}
}

func (s *syncEngagementWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	const batchSize = 100
	batch := make([]engagementTask, 0, batchSize)
	for {
		select {
		case task := <-s.ch:
			batch = append(batch, task)
			if len(batch) == batchSize {
				s.flush(ctx, batch)
				batch = make([]engagementTask, 0, batchSize)
			}
		case <-ticker.C:
			s.flush(ctx, batch)
			batch = make([]engagementTask, 0)
		case <-ctx.Done():
			logrus.Info("shutting down SyncEngagementWorker, flushing remaining tasks...")
			s.flush(context.WithoutCancel(ctx), batch)
			return
		}
	}
}

type taskKey struct {
	pid     int64
	session string
	kind    domain.EngagementKind
}

func (s *syncEngagementWorker) flush(ctx context.Context, batch []engagementTask) {
	if len(batch) == 0 {
		return
	}

	// 同一个key只保留最后一次动作
	tasks := make(map[taskKey]domain.EngagementAction)
	for i := range batch {
		key := taskKey{
			pid:     batch[i].PostID,
			session: batch[i].SessionID,
			kind:    batch[i].Kind,
		}
		tasks[key] = batch[i].Action
	}

	perKind := make(map[domain.EngagementKind]*domain.EngagementChanges)
	for key, action := range tasks {
		changes, ok := perKind[key.kind]
		if !ok {
			changes = &domain.EngagementChanges{}
			perKind[key.kind] = changes
		}
		rec := domain.Engagement{
			PostID:    key.pid,
			SessionID: key.session,
			Kind:      key.kind,
		}
		switch action {
		case domain.ActionAdd:
			changes.ToAdd = append(changes.ToAdd, rec)
		case domain.ActionRemove:
			changes.ToRemove = append(changes.ToRemove, rec)
		default:
			logrus.Errorf("Unsupported action: %v", action)
		}
	}

	for kind, changes := range perKind {
		if err := s.engagementRepo.ApplyChanges(ctx, kind, *changes); err != nil {
			logrus.Errorf("failed to apply %s changes: %v", kind, err)
		}
	}
}
