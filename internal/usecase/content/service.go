package content

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ashermunn/portfolio-backend/domain"
)

type service struct {
	contentRepo domain.ContentRepository
	validate    *validator.Validate
}

var _ domain.ContentUsecase = (*service)(nil)

func NewService(contentRepo domain.ContentRepository) *service {
	return &service{
		contentRepo: contentRepo,
		validate:    validator.New(),
	}
}

func (s *service) FetchProjects(ctx context.Context) ([]domain.Project, error) {
	return s.contentRepo.FetchProjects(ctx)
}

func (s *service) GetProject(ctx context.Context, id int64) (domain.Project, error) {
	return s.contentRepo.GetProject(ctx, id)
}

func (s *service) StoreProject(ctx context.Context, p *domain.Project) error {
	if strings.TrimSpace(p.Title) == "" {
		return domain.ErrBadParamInput
	}
	return s.contentRepo.StoreProject(ctx, p)
}

func (s *service) UpdateProject(ctx context.Context, p *domain.Project) error {
	return s.contentRepo.UpdateProject(ctx, p)
}

func (s *service) DeleteProject(ctx context.Context, id int64) error {
	return s.contentRepo.DeleteProject(ctx, id)
}

func (s *service) FetchSkills(ctx context.Context) ([]domain.Skill, error) {
	return s.contentRepo.FetchSkills(ctx)
}

func (s *service) StoreSkill(ctx context.Context, sk *domain.Skill) error {
	if strings.TrimSpace(sk.Name) == "" {
		return domain.ErrBadParamInput
	}
	if sk.Level < 0 || sk.Level > 100 {
		return domain.ErrBadParamInput
	}
	return s.contentRepo.StoreSkill(ctx, sk)
}

func (s *service) DeleteSkill(ctx context.Context, id int64) error {
	return s.contentRepo.DeleteSkill(ctx, id)
}

func (s *service) FetchExperience(ctx context.Context) ([]domain.Experience, error) {
	return s.contentRepo.FetchExperience(ctx)
}

func (s *service) StoreExperience(ctx context.Context, e *domain.Experience) error {
	if strings.TrimSpace(e.Role) == "" || strings.TrimSpace(e.Company) == "" {
		return domain.ErrBadParamInput
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return domain.ErrBadParamInput
	}
	return s.contentRepo.StoreExperience(ctx, e)
}

func (s *service) DeleteExperience(ctx context.Context, id int64) error {
	return s.contentRepo.DeleteExperience(ctx, id)
}

func (s *service) GetProfile(ctx context.Context) (domain.Profile, error) {
	return s.contentRepo.GetProfile(ctx)
}

func (s *service) UpsertProfile(ctx context.Context, p *domain.Profile) error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.ErrBadParamInput
	}
	return s.contentRepo.UpsertProfile(ctx, p)
}

// SubmitContactMessage validates and stores a contact-form submission.
// Delivery is out of scope, messages are read back from the store.
func (s *service) SubmitContactMessage(ctx context.Context, m *domain.ContactMessage) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Message = strings.TrimSpace(m.Message)

	if m.Name == "" || m.Email == "" || m.Message == "" {
		return domain.ErrBadParamInput
	}
	if err := s.validate.Var(m.Email, "email"); err != nil {
		return domain.ErrBadParamInput
	}
	return s.contentRepo.StoreContactMessage(ctx, m)
}

func (s *service) FetchContactMessages(ctx context.Context, limit int64) ([]domain.ContactMessage, error) {
	return s.contentRepo.FetchContactMessages(ctx, limit)
}
