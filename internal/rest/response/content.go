package response

import "github.com/ashermunn/portfolio-backend/domain"

type Project struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	RepoURL      string   `json:"repo_url,omitempty"`
	LiveURL      string   `json:"live_url,omitempty"`
	ImageID      string   `json:"image_id,omitempty"`
	Featured     bool     `json:"featured"`
	DisplayOrder int64    `json:"display_order"`
	CreatedAt    string   `json:"created_at"`
}

func NewProjectFromDomain(p *domain.Project) Project {
	return Project{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Tags:         p.Tags,
		RepoURL:      p.RepoURL,
		LiveURL:      p.LiveURL,
		ImageID:      p.ImageID,
		Featured:     p.Featured,
		DisplayOrder: p.DisplayOrder,
		CreatedAt:    p.CreatedAt.Format(DateTimeFormat),
	}
}

type Skill struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Level        int64  `json:"level"`
	DisplayOrder int64  `json:"display_order"`
}

func NewSkillFromDomain(s *domain.Skill) Skill {
	return Skill{
		ID:           s.ID,
		Name:         s.Name,
		Category:     s.Category,
		Level:        s.Level,
		DisplayOrder: s.DisplayOrder,
	}
}

type Experience struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
}

func NewExperienceFromDomain(e *domain.Experience) Experience {
	res := Experience{
		ID:          e.ID,
		Role:        e.Role,
		Company:     e.Company,
		Location:    e.Location,
		Description: e.Description,
		StartDate:   e.StartDate.Format("2006-01-02"),
	}
	if e.EndDate != nil {
		res.EndDate = e.EndDate.Format("2006-01-02")
	}
	return res
}

type Profile struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Headline string            `json:"headline,omitempty"`
	Bio      string            `json:"bio,omitempty"`
	AvatarID string            `json:"avatar_id,omitempty"`
	Email    string            `json:"email,omitempty"`
	Location string            `json:"location,omitempty"`
	Socials  map[string]string `json:"socials,omitempty"`
}

func NewProfileFromDomain(p *domain.Profile) Profile {
	return Profile{
		ID:       p.ID,
		Name:     p.Name,
		Headline: p.Headline,
		Bio:      p.Bio,
		AvatarID: p.AvatarID,
		Email:    p.Email,
		Location: p.Location,
		Socials:  p.Socials,
	}
}
