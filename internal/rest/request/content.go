package request

import (
	"time"

	"github.com/ashermunn/portfolio-backend/domain"
)

type Project struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	RepoURL      string   `json:"repo_url" binding:"omitempty,url"`
	LiveURL      string   `json:"live_url" binding:"omitempty,url"`
	ImageID      string   `json:"image_id"`
	Featured     bool     `json:"featured"`
	DisplayOrder int64    `json:"display_order"`
}

func (r *Project) ToDomain() domain.Project {
	return domain.Project{
		Title:        r.Title,
		Description:  r.Description,
		Tags:         r.Tags,
		RepoURL:      r.RepoURL,
		LiveURL:      r.LiveURL,
		ImageID:      r.ImageID,
		Featured:     r.Featured,
		DisplayOrder: r.DisplayOrder,
	}
}

type Skill struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category"`
	Level        int64  `json:"level" binding:"min=0,max=100"`
	DisplayOrder int64  `json:"display_order"`
}

func (r *Skill) ToDomain() domain.Skill {
	return domain.Skill{
		Name:         r.Name,
		Category:     r.Category,
		Level:        r.Level,
		DisplayOrder: r.DisplayOrder,
	}
}

type Experience struct {
	Role        string     `json:"role" binding:"required"`
	Company     string     `json:"company" binding:"required"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
}

func (r *Experience) ToDomain() domain.Experience {
	return domain.Experience{
		Role:        r.Role,
		Company:     r.Company,
		Location:    r.Location,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

type Profile struct {
	Name     string            `json:"name" binding:"required"`
	Headline string            `json:"headline"`
	Bio      string            `json:"bio"`
	AvatarID string            `json:"avatar_id"`
	Email    string            `json:"email" binding:"omitempty,email"`
	Location string            `json:"location"`
	Socials  map[string]string `json:"socials"`
}

func (r *Profile) ToDomain() domain.Profile {
	return domain.Profile{
		Name:     r.Name,
		Headline: r.Headline,
		Bio:      r.Bio,
		AvatarID: r.AvatarID,
		Email:    r.Email,
		Location: r.Location,
		Socials:  r.Socials,
	}
}

type ContactMessage struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (r *ContactMessage) ToDomain() domain.ContactMessage {
	return domain.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}
