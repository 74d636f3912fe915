package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobook-vn/jobook-api/internal/dtos"
	"github.com/jobook-vn/jobook-api/internal/middleware"
	"github.com/jobook-vn/jobook-api/internal/services"
)

// ApplicationHandler exposes the seeker-side application endpoints.
type ApplicationHandler struct {
	applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// List is GET /applications?search=&status=&tab=
func (h *ApplicationHandler) List(c *gin.Context) {
	query := services.ApplicationQuery{
		SearchTerm: c.Query("search"),
		Status:     c.Query("status"),
		Tab:        services.Tab(c.DefaultQuery("tab", string(services.TabAll))),
	}
	groups, err := h.applications.GroupedByPost(c.Request.Context(), middleware.UserID(c), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// Stats is GET /applications/stats
func (h *ApplicationHandler) Stats(c *gin.Context) {
	stats, err := h.applications.Stats(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Apply is POST /posts/:id/apply
func (h *ApplicationHandler) Apply(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dtos.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	app, err := h.applications.Apply(c.Request.Context(), middleware.UserID(c), postID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// Withdraw is DELETE /applications/:id
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.applications.Withdraw(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SwapCV is PUT /applications/:id/cv
func (h *ApplicationHandler) SwapCV(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dtos.SwapCVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	cvID, err := uuid.Parse(req.CVID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cv_id"})
		return
	}
	app, err := h.applications.SwapCV(c.Request.Context(), middleware.UserID(c), id, cvID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// EditNote is PUT /applications/:id/note
func (h *ApplicationHandler) EditNote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dtos.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	app, err := h.applications.EditNote(c.Request.Context(), middleware.UserID(c), id, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
