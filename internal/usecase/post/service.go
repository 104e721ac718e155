package post

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/ashermunn/portfolio-backend/internal/repository"
)

const bloomWarmBatch = 1000

type Service struct {
	postRepo  domain.PostRepository
	postCache domain.PostCache
	bloomRepo domain.BloomRepository
}

var _ domain.PostUsecase = (*Service)(nil)

// NewService will create a new post service object
func NewService(p domain.PostRepository, pc domain.PostCache, b domain.BloomRepository) *Service {
	return &Service{
		postRepo:  p,
		postCache: pc,
		bloomRepo: b,
	}
}

func (s *Service) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Post, string, error) {
	res, err := s.postRepo.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(res) > 0 {
		nextCursor = repository.EncodeCursor(res[len(res)-1].CreatedAt)
	}
	return res, nextCursor, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err == nil && !exists {
		return domain.Post{}, domain.ErrNotFound
	}

	res, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}

	deltaViews, err := s.postCache.IncrViews(ctx, id)
	if err != nil {
		logrus.Errorf("failed to IncrViews from redis: %v", err)
		return res, nil
	}
	res.Views += deltaViews
	return res, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (domain.Post, error) {
	res, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Post{}, err
	}

	deltaViews, err := s.postCache.IncrViews(ctx, res.ID)
	if err != nil {
		logrus.Errorf("failed to IncrViews from redis: %v", err)
		return res, nil
	}
	res.Views += deltaViews
	return res, nil
}

func (s *Service) Store(ctx context.Context, p *domain.Post) error {
	existed, err := s.postRepo.GetBySlug(ctx, p.Slug)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existed.ID != 0 {
		return domain.ErrConflict
	}

	if p.Status == "" {
		p.Status = domain.PostStatusDraft
	}
	if err := s.postRepo.Store(ctx, p); err != nil {
		return err
	}

	if err := s.bloomRepo.Add(ctx, p.ID); err != nil {
		logrus.Warnf("failed to add post %d to bloom filter: %v", p.ID, err)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, p *domain.Post) error {
	p.UpdatedAt = time.Now()
	return s.postRepo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	_, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}

// InitBloomFilter 启动时把所有文章ID灌进布隆过滤器
func (s *Service) InitBloomFilter(ctx context.Context) error {
	var cursor int64 = 0
	for {
		ids, err := s.postRepo.FetchIDs(ctx, cursor, bloomWarmBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
	}
}
