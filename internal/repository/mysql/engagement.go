package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/ashermunn/portfolio-backend/internal/repository/mysql/model"
	"github.com/sirupsen/logrus"
)

type engagementRepository struct {
	DB *gorm.DB
}

var _ domain.EngagementRepository = (*engagementRepository)(nil)

func NewEngagementRepository(db *gorm.DB) *engagementRepository {
	return &engagementRepository{db}
}

func (m *engagementRepository) Exists(ctx context.Context, rec domain.Engagement) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Engagement{}).
		Where("post_id = ? AND session_id = ? AND kind = ?", rec.PostID, rec.SessionID, rec.Kind).
		Count(&count).Error
	return count > 0, err
}

func (m *engagementRepository) Store(ctx context.Context, rec domain.Engagement) error {
	record := model.NewEngagementFromDomain(rec)
	result := m.DB.WithContext(ctx).Create(&record)
	if result.Error != nil {
		// the unique key turns a duplicate toggle into a conflict
		if result.Error == gorm.ErrDuplicatedKey {
			return domain.ErrConflict
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (m *engagementRepository) Remove(ctx context.Context, rec domain.Engagement) error {
	result := m.DB.WithContext(ctx).
		Where("post_id = ? AND session_id = ? AND kind = ?", rec.PostID, rec.SessionID, rec.Kind).
		Delete(&model.Engagement{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *engagementRepository) FetchSessionPosts(ctx context.Context, sessionID string, kind domain.EngagementKind, limit int64) ([]int64, error) {
	var res []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Engagement{}).
		Select("post_id").
		Where("session_id = ? AND kind = ?", sessionID, kind).
		Order("post_id desc").
		Limit(int(limit)).
		Find(&res).Error

	return res, err
}

func (m *engagementRepository) ApplyChanges(ctx context.Context, kind domain.EngagementKind, changes domain.EngagementChanges) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		filteredAdd := make([]model.Engagement, 0, len(changes.ToAdd))
		if len(changes.ToAdd) > 0 {
			toAddIDs := make([]int64, 0, len(changes.ToAdd))
			seen := make(map[int64]bool)
			for _, row := range changes.ToAdd {
				if !seen[row.PostID] {
					toAddIDs = append(toAddIDs, row.PostID)
					seen[row.PostID] = true
				}
			}

			var validIDs []int64
			if err := tx.Model(&model.Post{}).
				Where("id IN ?", toAddIDs).
				Pluck("id", &validIDs).Error; err != nil {
				return err
			}

			validMap := make(map[int64]bool)
			for _, id := range validIDs {
				validMap[id] = true
			}

			for _, row := range changes.ToAdd {
				if validMap[row.PostID] {
					filteredAdd = append(filteredAdd, model.NewEngagementFromDomain(row))
				} else {
					logrus.Warnf("Dropped orphan %s for post %d", kind, row.PostID)
				}
			}
		}

		if len(changes.ToRemove) > 0 {
			for _, row := range changes.ToRemove {
				if err := tx.Where(
					"post_id = ? AND session_id = ? AND kind = ?",
					row.PostID, row.SessionID, row.Kind,
				).Delete(&model.Engagement{}).Error; err != nil {
					return err
				}
			}
		}

		if len(filteredAdd) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				DoNothing: true,
			}).Create(&filteredAdd).Error; err != nil {
				return err
			}
		}

		uniquePostIDs := make(map[int64]struct{})
		for _, row := range changes.ToRemove {
			uniquePostIDs[row.PostID] = struct{}{}
		}
		for _, row := range changes.ToAdd {
			uniquePostIDs[row.PostID] = struct{}{}
		}

		field := kind.CounterField()
		for pid := range uniquePostIDs {
			var realCount int64
			if err := tx.Model(&model.Engagement{}).
				Where("post_id = ? AND kind = ?", pid, kind).
				Count(&realCount).Error; err != nil {
				return err
			}

			if err := tx.Model(&model.Post{}).
				Where("id = ?", pid).
				UpdateColumn(field, realCount).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
