package rest

import (
	"net/http"
	"strconv"

	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/ashermunn/portfolio-backend/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type engagementHandler struct {
	Service domain.EngagementUsecase
}

func NewEngagementHandler(svc domain.EngagementUsecase) *engagementHandler {
	return &engagementHandler{
		Service: svc,
	}
}

func (h *engagementHandler) record(c *gin.Context) (domain.Engagement, bool) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return domain.Engagement{}, false
	}

	kind := domain.EngagementKind(c.Param("kind"))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return domain.Engagement{}, false
	}

	sessionID := middleware.SessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return domain.Engagement{}, false
	}

	return domain.Engagement{
		PostID:    int64(idP),
		SessionID: sessionID,
		Kind:      kind,
	}, true
}

// Toggle flips the like/bookmark state for the caller's session
func (h *engagementHandler) Toggle(c *gin.Context) {
	rec, ok := h.record(c)
	if !ok {
		return
	}

	res, err := h.Service.Toggle(c.Request.Context(), rec)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"active": res.Active, "count": res.Count})
}

// Status reports whether the caller's session engaged with the post,
// used to initialize the UI state on page load
func (h *engagementHandler) Status(c *gin.Context) {
	rec, ok := h.record(c)
	if !ok {
		return
	}

	active, err := h.Service.Status(c.Request.Context(), rec)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"active": active})
}
