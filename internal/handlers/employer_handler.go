package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobook-vn/jobook-api/internal/dtos"
	"github.com/jobook-vn/jobook-api/internal/middleware"
	"github.com/jobook-vn/jobook-api/internal/models"
	"github.com/jobook-vn/jobook-api/internal/services"
)

// EmployerHandler exposes post management and applicant triage.
type EmployerHandler struct {
	employer *services.EmployerService
}

func NewEmployerHandler(employer *services.EmployerService) *EmployerHandler {
	return &EmployerHandler{employer: employer}
}

// MyPosts is GET /employer/posts
func (h *EmployerHandler) MyPosts(c *gin.Context) {
	posts, err := h.employer.MyPosts(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost is GET /employer/posts/:id
func (h *EmployerHandler) GetPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	post, err := h.employer.GetPost(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost is POST /employer/posts
func (h *EmployerHandler) CreatePost(c *gin.Context) {
	var req dtos.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	post, err := h.employer.CreatePost(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdatePost is PUT /employer/posts/:id
func (h *EmployerHandler) UpdatePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dtos.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	post, err := h.employer.UpdatePost(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost is DELETE /employer/posts/:id
func (h *EmployerHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.employer.DeletePost(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PostApplications is GET /employer/posts/:id/applications
func (h *EmployerHandler) PostApplications(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	apps, err := h.employer.PostApplications(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// GetApplication is GET /employer/applications/:id
func (h *EmployerHandler) GetApplication(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	app, err := h.employer.GetApplication(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// UpdateStatus is PUT /employer/applications/:id/status
func (h *EmployerHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dtos.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	app, err := h.employer.UpdateStatus(c.Request.Context(), middleware.UserID(c), id,
		models.ApplicationStatus(req.Status), req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// UpdateNotes is PUT /employer/applications/:id/notes
func (h *EmployerHandler) UpdateNotes(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dtos.NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	app, err := h.employer.UpdateNotes(c.Request.Context(), middleware.UserID(c), id, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// StatusHistory is GET /employer/applications/:id/history
func (h *EmployerHandler) StatusHistory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	events, err := h.employer.StatusHistory(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// Dashboard is GET /employer/dashboard
func (h *EmployerHandler) Dashboard(c *gin.Context) {
	stats, err := h.employer.Dashboard(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SearchApplications is GET /employer/applications?post_id=&status=&search=
func (h *EmployerHandler) SearchApplications(c *gin.Context) {
	search := dtos.ApplicationSearch{
		Status:     c.Query("status"),
		SearchTerm: c.Query("search"),
	}
	if raw := c.Query("post_id"); raw != "" {
		postID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post_id"})
			return
		}
		search.PostID = &postID
	}
	apps, err := h.employer.Search(c.Request.Context(), middleware.UserID(c), search)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}
