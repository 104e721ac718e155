package mysql

import (
	"context"
	"errors"

	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/ashermunn/portfolio-backend/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type contentRepository struct {
	DB *gorm.DB
}

var _ domain.ContentRepository = (*contentRepository)(nil)

func NewContentRepository(db *gorm.DB) *contentRepository {
	return &contentRepository{db}
}

func (m *contentRepository) FetchProjects(ctx context.Context) ([]domain.Project, error) {
	var projects []model.Project
	err := m.DB.WithContext(ctx).
		Order("display_order, created_at desc").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Project, len(projects))
	for i := range projects {
		res[i] = projects[i].ToDomain()
	}
	return res, nil
}

func (m *contentRepository) GetProject(ctx context.Context, id int64) (domain.Project, error) {
	var project model.Project
	err := m.DB.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		return domain.Project{}, domain.ErrNotFound
	}
	return project.ToDomain(), nil
}

func (m *contentRepository) StoreProject(ctx context.Context, p *domain.Project) error {
	projectModel := model.NewProjectFromDomain(p)
	if err := m.DB.WithContext(ctx).Create(&projectModel).Error; err != nil {
		return err
	}
	p.ID = projectModel.ID
	p.CreatedAt = projectModel.CreatedAt
	p.UpdatedAt = projectModel.UpdatedAt
	return nil
}

func (m *contentRepository) UpdateProject(ctx context.Context, p *domain.Project) error {
	projectModel := model.NewProjectFromDomain(p)
	result := m.DB.WithContext(ctx).Model(&projectModel).Updates(&projectModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *contentRepository) DeleteProject(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *contentRepository) FetchSkills(ctx context.Context) ([]domain.Skill, error) {
	var skills []model.Skill
	err := m.DB.WithContext(ctx).
		Order("category, display_order").
		Find(&skills).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Skill, len(skills))
	for i := range skills {
		res[i] = skills[i].ToDomain()
	}
	return res, nil
}

func (m *contentRepository) StoreSkill(ctx context.Context, s *domain.Skill) error {
	skillModel := model.NewSkillFromDomain(s)
	if err := m.DB.WithContext(ctx).Create(&skillModel).Error; err != nil {
		return err
	}
	s.ID = skillModel.ID
	s.CreatedAt = skillModel.CreatedAt
	return nil
}

func (m *contentRepository) DeleteSkill(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Skill{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *contentRepository) FetchExperience(ctx context.Context) ([]domain.Experience, error) {
	var entries []model.Experience
	err := m.DB.WithContext(ctx).
		Order("start_date desc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Experience, len(entries))
	for i := range entries {
		res[i] = entries[i].ToDomain()
	}
	return res, nil
}

func (m *contentRepository) StoreExperience(ctx context.Context, e *domain.Experience) error {
	experienceModel := model.NewExperienceFromDomain(e)
	if err := m.DB.WithContext(ctx).Create(&experienceModel).Error; err != nil {
		return err
	}
	e.ID = experienceModel.ID
	e.CreatedAt = experienceModel.CreatedAt
	return nil
}

func (m *contentRepository) DeleteExperience(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Experience{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetProfile returns the single about-me document.
func (m *contentRepository) GetProfile(ctx context.Context) (domain.Profile, error) {
	var profile model.Profile
	err := m.DB.WithContext(ctx).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Profile{}, domain.ErrNotFound
		}
		return domain.Profile{}, err
	}
	return profile.ToDomain(), nil
}

// UpsertProfile creates the profile on first write and updates it afterwards.
func (m *contentRepository) UpsertProfile(ctx context.Context, p *domain.Profile) error {
	profileModel := model.NewProfileFromDomain(p)

	var existing model.Profile
	err := m.DB.WithContext(ctx).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := m.DB.WithContext(ctx).Create(&profileModel).Error; err != nil {
			return err
		}
		p.ID = profileModel.ID
		return nil
	}
	if err != nil {
		return err
	}

	profileModel.ID = existing.ID
	p.ID = existing.ID
	return m.DB.WithContext(ctx).Model(&profileModel).Updates(&profileModel).Error
}

func (m *contentRepository) StoreContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	messageModel := model.NewContactMessageFromDomain(msg)
	if err := m.DB.WithContext(ctx).Create(&messageModel).Error; err != nil {
		return err
	}
	msg.ID = messageModel.ID
	msg.CreatedAt = messageModel.CreatedAt
	return nil
}

func (m *contentRepository) FetchContactMessages(ctx context.Context, limit int64) ([]domain.ContactMessage, error) {
	var messages []model.ContactMessage
	err := m.DB.WithContext(ctx).
		Order("created_at desc").
		Limit(int(limit)).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.ContactMessage, len(messages))
	for i := range messages {
		res[i] = messages[i].ToDomain()
	}
	return res, nil
}
