package comment

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/ashermunn/portfolio-backend/internal/repository"
)

type service struct {
	commentRepo domain.CommentRepository
	postRepo    domain.PostRepository
	bloomRepo   domain.BloomRepository
	validate    *validator.Validate
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, postRepo domain.PostRepository, bloomRepo domain.BloomRepository) *service {
	return &service{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		bloomRepo:   bloomRepo,
		validate:    validator.New(),
	}
}

func (s *service) mustExists(ctx context.Context, id int64) error {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says post %d does not exist", id)
		return domain.ErrNotFound
	}

	return nil
}

// Create validates and stores a reader comment, then bumps the post's
// comment counter. The counter bump is a second, best-effort write.
func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	c.AuthorName = strings.TrimSpace(c.AuthorName)
	c.AuthorEmail = strings.TrimSpace(c.AuthorEmail)
	c.Content = strings.TrimSpace(c.Content)

	if c.PostID == 0 || c.AuthorName == "" || c.AuthorEmail == "" || c.Content == "" {
		return domain.ErrBadParamInput
	}
	if err := s.validate.Var(c.AuthorEmail, "email"); err != nil {
		return domain.ErrBadParamInput
	}

	if err := s.mustExists(ctx, c.PostID); err != nil {
		return err
	}

	if c.ParentID != 0 {
		parent, err := s.commentRepo.GetByID(ctx, c.ParentID)
		if err != nil {
			return domain.ErrNotFound
		}
		if parent.PostID != c.PostID {
			return domain.ErrBadParamInput
		}
	}

	if c.Status == "" {
		c.Status = domain.CommentStatusPending
	}

	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}

	if err := s.postRepo.AddComments(ctx, c.PostID, 1); err != nil {
		logrus.Errorf("comment counter update failed after storing comment %d: %v", c.ID, err)
	}
	return nil
}

// FetchByPost returns top-level comments with their replies grouped
// under each parent. A single-level partition, not a general tree.
func (s *service) FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]*domain.Comment, string, error) {
	if err := s.mustExists(ctx, postID); err != nil {
		return nil, "", err
	}

	res, err := s.commentRepo.FetchRoots(ctx, postID, cursor, limit)
	if err != nil {
		return []*domain.Comment{}, "", err
	}
	if len(res) == 0 {
		return []*domain.Comment{}, "", nil
	}

	parentIDs := make([]int64, len(res))
	for i, comment := range res {
		parentIDs[i] = comment.ID
	}

	replies, err := s.commentRepo.FetchReplies(ctx, parentIDs)
	if err != nil {
		return res, "", nil
	}

	replyMap := make(map[int64][]*domain.Comment)
	for _, r := range replies {
		replyMap[r.ParentID] = append(replyMap[r.ParentID], r)
	}

	for _, r := range res {
		if list, ok := replyMap[r.ID]; ok {
			r.Replies = list
		} else {
			r.Replies = []*domain.Comment{}
		}
	}

	return res, repository.EncodeCursor(res[len(res)-1].CreatedAt), nil
}
