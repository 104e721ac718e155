package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/ashermunn/portfolio-backend/internal/repository"
	"github.com/ashermunn/portfolio-backend/internal/repository/mysql/model"
	"github.com/sirupsen/logrus"
)

type postRepository struct {
	DB *gorm.DB
}

// mysql层只负责数据库操作
var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository 创建数据库操作层
func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

func (m *postRepository) Fetch(ctx context.Context, cursor string, num int64) (res []domain.Post, err error) {
	var posts []model.Post
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}

	repository.PageVerify(&num)
	err = m.DB.WithContext(ctx).
		Select("id, title, slug, category_id, tags, status, featured, read_time, updated_at, created_at, views, likes_count, bookmarks_count, comments_count").
		Where("status = ? AND created_at > ?", domain.PostStatusPublished, decodedCursor).
		Order("created_at").
		Limit(int(num)).
		Find(&posts).
		Error

	if err != nil {
		return
	}

	for _, post := range posts {
		res = append(res, post.ToDomain())
	}

	return
}

func (m *postRepository) GetByID(ctx context.Context, id int64) (res domain.Post, err error) {
	var post model.Post
	err = m.DB.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = post.ToDomain()
	return
}

func (m *postRepository) GetBySlug(ctx context.Context, slug string) (res domain.Post, err error) {
	var post model.Post
	err = m.DB.WithContext(ctx).First(&post, "slug = ?", slug).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = post.ToDomain()
	return
}

func (m *postRepository) Store(ctx context.Context, p *domain.Post) (err error) {
	postModel := model.NewPostFromDomain(p)
	result := m.DB.WithContext(ctx).Create(&postModel)
	if result.Error != nil {
		return result.Error
	}
	p.ID = postModel.ID
	p.CreatedAt = postModel.CreatedAt
	p.UpdatedAt = postModel.UpdatedAt
	return
}

func (m *postRepository) Update(ctx context.Context, p *domain.Post) (err error) {
	postModel := model.NewPostFromDomain(p)
	result := m.DB.WithContext(ctx).Model(&postModel).Updates(&postModel)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return
}

func (m *postRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Post{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (m *postRepository) AddViews(ctx context.Context, id int64, deltaViews int64) error {
	result := m.DB.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Update("views", gorm.Expr("views + ?", deltaViews))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (m *postRepository) AddComments(ctx context.Context, id int64, delta int64) error {
	result := m.DB.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		UpdateColumn("comments_count", gorm.Expr("GREATEST(comments_count + ?, 0)", delta))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// AddEngagementCount shifts the denormalized counter inside a transaction so the
// read-clamp-write stays consistent. The counter never goes below zero.
func (m *postRepository) AddEngagementCount(ctx context.Context, id int64, kind domain.EngagementKind, delta int64) (int64, error) {
	field := kind.CounterField()
	var newCount int64
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current int64
		if err := tx.Model(&model.Post{}).
			Where("id = ?", id).
			Pluck(field, &current).Error; err != nil {
			return err
		}

		newCount = current + delta
		if newCount < 0 {
			logrus.Warnf("%s for post %d would go negative (%d%+d), clamping to 0", field, id, current, delta)
			newCount = 0
		}

		result := tx.Model(&model.Post{}).Where("id = ?", id).UpdateColumn(field, newCount)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})

	return newCount, err
}

// RecountEngagement rewrites the counters for the given posts from the actual
// record counts, repairing any drift left by the best-effort toggle path.
func (m *postRepository) RecountEngagement(ctx context.Context, ids []int64, kind domain.EngagementKind) error {
	if len(ids) == 0 {
		return nil
	}
	field := kind.CounterField()
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			var realCount int64
			if err := tx.Model(&model.Engagement{}).
				Where("post_id = ? AND kind = ?", id, kind).
				Count(&realCount).Error; err != nil {
				return err
			}

			if err := tx.Model(&model.Post{}).
				Where("id = ?", id).
				UpdateColumn(field, realCount).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (m *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}
