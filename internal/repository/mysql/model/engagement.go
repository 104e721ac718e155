package model

import (
	"time"

	"github.com/ashermunn/portfolio-backend/domain"
)

type Engagement struct {
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:uniq_engagement,priority:1"`
	SessionID string    `gorm:"column:session_id;type:varchar(64);not null;uniqueIndex:uniq_engagement,priority:2"`
	Kind      string    `gorm:"type:varchar(16);not null;uniqueIndex:uniq_engagement,priority:3"`
	UserID    string    `gorm:"column:user_id;type:varchar(64)"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Engagement) TableName() string {
	return "engagement"
}

func NewEngagementFromDomain(e domain.Engagement) Engagement {
	return Engagement{
		PostID:    e.PostID,
		SessionID: e.SessionID,
		Kind:      string(e.Kind),
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
	}
}

func (m *Engagement) ToDomain() domain.Engagement {
	return domain.Engagement{
		PostID:    m.PostID,
		SessionID: m.SessionID,
		Kind:      domain.EngagementKind(m.Kind),
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}
