package domain

import (
	"context"
	"time"
)

// Project is a portfolio project entry.
type Project struct {
	ID           int64
	Title        string
	Description  string
	Tags         []string
	RepoURL      string
	LiveURL      string
	ImageID      string // reference into the file storage bucket
	Featured     bool
	DisplayOrder int64
	UpdatedAt    time.Time
	CreatedAt    time.Time
}

// Skill is a single skill with a self-assessed proficiency.
type Skill struct {
	ID           int64
	Name         string
	Category     string // e.g. "frontend", "backend", "tools"
	Level        int64  // 0-100
	DisplayOrder int64
	CreatedAt    time.Time
}

// Experience is a work or education history entry.
type Experience struct {
	ID          int64
	Role        string
	Company     string
	Location    string
	Description string
	StartDate   time.Time
	EndDate     *time.Time // nil while current
	CreatedAt   time.Time
}

// Profile is the single about-me document.
type Profile struct {
	ID        int64
	Name      string
	Headline  string
	Bio       string
	AvatarID  string
	Email     string
	Location  string
	Socials   map[string]string // platform -> URL
	UpdatedAt time.Time
}

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// ContentRepository defines the contract for the static portfolio
// collections. They are small and read-mostly, so the interface keeps
// to plain list/get/store/update/delete without pagination.
type ContentRepository interface {
	FetchProjects(ctx context.Context) ([]Project, error)
	GetProject(ctx context.Context, id int64) (Project, error)
	StoreProject(ctx context.Context, p *Project) error
	UpdateProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, id int64) error

	FetchSkills(ctx context.Context) ([]Skill, error)
	StoreSkill(ctx context.Context, s *Skill) error
	DeleteSkill(ctx context.Context, id int64) error

	FetchExperience(ctx context.Context) ([]Experience, error)
	StoreExperience(ctx context.Context, e *Experience) error
	DeleteExperience(ctx context.Context, id int64) error

	GetProfile(ctx context.Context) (Profile, error)
	UpsertProfile(ctx context.Context, p *Profile) error

	StoreContactMessage(ctx context.Context, m *ContactMessage) error
	FetchContactMessages(ctx context.Context, limit int64) ([]ContactMessage, error)
}

type ContentUsecase interface {
	FetchProjects(ctx context.Context) ([]Project, error)
	GetProject(ctx context.Context, id int64) (Project, error)
	StoreProject(ctx context.Context, p *Project) error
	UpdateProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, id int64) error

	FetchSkills(ctx context.Context) ([]Skill, error)
	StoreSkill(ctx context.Context, s *Skill) error
	DeleteSkill(ctx context.Context, id int64) error

	FetchExperience(ctx context.Context) ([]Experience, error)
	StoreExperience(ctx context.Context, e *Experience) error
	DeleteExperience(ctx context.Context, id int64) error

	GetProfile(ctx context.Context) (Profile, error)
	UpsertProfile(ctx context.Context, p *Profile) error

	SubmitContactMessage(ctx context.Context, m *ContactMessage) error
	FetchContactMessages(ctx context.Context, limit int64) ([]ContactMessage, error)
}
