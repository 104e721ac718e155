package rest

import (
	"net/http"
	"strconv"

	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/ashermunn/portfolio-backend/internal/rest/request"
	"github.com/ashermunn/portfolio-backend/internal/rest/response"
	"github.com/gin-gonic/gin"
)

const defaultContactLimit = 50

type contentHandler struct {
	Service domain.ContentUsecase
}

func NewContentHandler(svc domain.ContentUsecase) *contentHandler {
	return &contentHandler{
		Service: svc,
	}
}

func (h *contentHandler) FetchProjects(c *gin.Context) {
	projects, err := h.Service.FetchProjects(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Project, len(projects))
	for i := range projects {
		res[i] = response.NewProjectFromDomain(&projects[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *contentHandler) StoreProject(c *gin.Context) {
	var req request.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := req.ToDomain()
	if err := h.Service.StoreProject(c.Request.Context(), &project); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewProjectFromDomain(&project))
}

func (h *contentHandler) UpdateProject(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := req.ToDomain()
	project.ID = int64(idP)
	if err := h.Service.UpdateProject(c.Request.Context(), &project); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewProjectFromDomain(&project))
}

func (h *contentHandler) DeleteProject(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.DeleteProject(c.Request.Context(), int64(idP)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *contentHandler) FetchSkills(c *gin.Context) {
	skills, err := h.Service.FetchSkills(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Skill, len(skills))
	for i := range skills {
		res[i] = response.NewSkillFromDomain(&skills[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *contentHandler) StoreSkill(c *gin.Context) {
	var req request.Skill
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	skill := req.ToDomain()
	if err := h.Service.StoreSkill(c.Request.Context(), &skill); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewSkillFromDomain(&skill))
}

func (h *contentHandler) DeleteSkill(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.DeleteSkill(c.Request.Context(), int64(idP)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *contentHandler) FetchExperience(c *gin.Context) {
	entries, err := h.Service.FetchExperience(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Experience, len(entries))
	for i := range entries {
		res[i] = response.NewExperienceFromDomain(&entries[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *contentHandler) StoreExperience(c *gin.Context) {
	var req request.Experience
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := req.ToDomain()
	if err := h.Service.StoreExperience(c.Request.Context(), &entry); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewExperienceFromDomain(&entry))
}

func (h *contentHandler) DeleteExperience(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.DeleteExperience(c.Request.Context(), int64(idP)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *contentHandler) GetProfile(c *gin.Context) {
	profile, err := h.Service.GetProfile(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewProfileFromDomain(&profile))
}

func (h *contentHandler) UpsertProfile(c *gin.Context) {
	var req request.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := req.ToDomain()
	if err := h.Service.UpsertProfile(c.Request.Context(), &profile); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewProfileFromDomain(&profile))
}

func (h *contentHandler) SubmitContactMessage(c *gin.Context) {
	var req request.ContactMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := req.ToDomain()
	if err := h.Service.SubmitContactMessage(c.Request.Context(), &msg); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Thanks for reaching out"})
}

func (h *contentHandler) FetchContactMessages(c *gin.Context) {
	limitS := c.Query("limit")
	limit, err := strconv.ParseInt(limitS, 10, 64)
	if err != nil || limit <= 0 {
		limit = defaultContactLimit
	}

	messages, err := h.Service.FetchContactMessages(c.Request.Context(), limit)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
