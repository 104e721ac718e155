package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/sirupsen/logrus"
)

type Project struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Title        string    `gorm:"type:varchar(160);not null"`
	Description  string    `gorm:"type:text"`
	Tags         string    `gorm:"type:varchar(512)"` // comma separated
	RepoURL      string    `gorm:"column:repo_url;type:varchar(254)"`
	LiveURL      string    `gorm:"column:live_url;type:varchar(254)"`
	ImageID      string    `gorm:"column:image_id;type:varchar(64)"`
	Featured     bool      `gorm:"default:false"`
	DisplayOrder int64     `gorm:"column:display_order;default:0"`
	UpdatedAt    time.Time `gorm:"type:datetime"`
	CreatedAt    time.Time `gorm:"type:datetime"`
}

func (Project) TableName() string {
	return "project"
}

func (m *Project) ToDomain() domain.Project {
	var tags []string
	if m.Tags != "" {
		tags = strings.Split(m.Tags, ",")
	}
	return domain.Project{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Tags:         tags,
		RepoURL:      m.RepoURL,
		LiveURL:      m.LiveURL,
		ImageID:      m.ImageID,
		Featured:     m.Featured,
		DisplayOrder: m.DisplayOrder,
		UpdatedAt:    m.UpdatedAt,
		CreatedAt:    m.CreatedAt,
	}
}

func NewProjectFromDomain(p *domain.Project) *Project {
	return &Project{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Tags:         strings.Join(p.Tags, ","),
		RepoURL:      p.RepoURL,
		LiveURL:      p.LiveURL,
		ImageID:      p.ImageID,
		Featured:     p.Featured,
		DisplayOrder: p.DisplayOrder,
		UpdatedAt:    p.UpdatedAt,
		CreatedAt:    p.CreatedAt,
	}
}

type Skill struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"type:varchar(120);not null"`
	Category     string    `gorm:"type:varchar(64);index"`
	Level        int64     `gorm:"default:0"`
	DisplayOrder int64     `gorm:"column:display_order;default:0"`
	CreatedAt    time.Time `gorm:"type:datetime"`
}

func (Skill) TableName() string {
	return "skill"
}

func (m *Skill) ToDomain() domain.Skill {
	return domain.Skill{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		Level:        m.Level,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
	}
}

func NewSkillFromDomain(s *domain.Skill) *Skill {
	return &Skill{
		ID:           s.ID,
		Name:         s.Name,
		Category:     s.Category,
		Level:        s.Level,
		DisplayOrder: s.DisplayOrder,
		CreatedAt:    s.CreatedAt,
	}
}

type Experience struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Role        string     `gorm:"type:varchar(160);not null"`
	Company     string     `gorm:"type:varchar(160);not null"`
	Location    string     `gorm:"type:varchar(160)"`
	Description string     `gorm:"type:text"`
	StartDate   time.Time  `gorm:"column:start_date;type:datetime;not null"`
	EndDate     *time.Time `gorm:"column:end_date;type:datetime"`
	CreatedAt   time.Time  `gorm:"type:datetime"`
}

func (Experience) TableName() string {
	return "experience"
}

func (m *Experience) ToDomain() domain.Experience {
	return domain.Experience{
		ID:          m.ID,
		Role:        m.Role,
		Company:     m.Company,
		Location:    m.Location,
		Description: m.Description,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		CreatedAt:   m.CreatedAt,
	}
}

func NewExperienceFromDomain(e *domain.Experience) *Experience {
	return &Experience{
		ID:          e.ID,
		Role:        e.Role,
		Company:     e.Company,
		Location:    e.Location,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		CreatedAt:   e.CreatedAt,
	}
}

type Profile struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Headline  string    `gorm:"type:varchar(254)"`
	Bio       string    `gorm:"type:text"`
	AvatarID  string    `gorm:"column:avatar_id;type:varchar(64)"`
	Email     string    `gorm:"type:varchar(254)"`
	Location  string    `gorm:"type:varchar(160)"`
	Socials   string    `gorm:"type:text"` // JSON object, platform -> URL
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Profile) TableName() string {
	return "profile"
}

func (m *Profile) ToDomain() domain.Profile {
	socials := map[string]string{}
	if m.Socials != "" {
		if err := json.Unmarshal([]byte(m.Socials), &socials); err != nil {
			logrus.Warnf("failed to unmarshal profile socials: %v", err)
		}
	}
	return domain.Profile{
		ID:        m.ID,
		Name:      m.Name,
		Headline:  m.Headline,
		Bio:       m.Bio,
		AvatarID:  m.AvatarID,
		Email:     m.Email,
		Location:  m.Location,
		Socials:   socials,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewProfileFromDomain(p *domain.Profile) *Profile {
	socials := ""
	if len(p.Socials) > 0 {
		data, err := json.Marshal(p.Socials)
		if err != nil {
			logrus.Warnf("failed to marshal profile socials: %v", err)
		} else {
			socials = string(data)
		}
	}
	return &Profile{
		ID:        p.ID,
		Name:      p.Name,
		Headline:  p.Headline,
		Bio:       p.Bio,
		AvatarID:  p.AvatarID,
		Email:     p.Email,
		Location:  p.Location,
		Socials:   socials,
		UpdatedAt: p.UpdatedAt,
	}
}

type ContactMessage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Email     string    `gorm:"type:varchar(254);not null"`
	Subject   string    `gorm:"type:varchar(254)"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (ContactMessage) TableName() string {
	return "contact_message"
}

func (m *ContactMessage) ToDomain() domain.ContactMessage {
	return domain.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func NewContactMessageFromDomain(c *domain.ContactMessage) *ContactMessage {
	return &ContactMessage{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}
