package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobook-vn/jobook-api/internal/dtos"
	"github.com/jobook-vn/jobook-api/internal/middleware"
	"github.com/jobook-vn/jobook-api/internal/services"
)

type CVHandler struct {
	cvs *services.CVService
}

func NewCVHandler(cvs *services.CVService) *CVHandler {
	return &CVHandler{cvs: cvs}
}

// List is GET /cvs
func (h *CVHandler) List(c *gin.Context) {
	cvs, err := h.cvs.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cvs)
}

// Upload is POST /cvs
func (h *CVHandler) Upload(c *gin.Context) {
	var req dtos.CreateCVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	cv, err := h.cvs.Upload(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cv)
}

// SetDefault is PUT /cvs/:id/default. It responds with the full collection so
// the client can re-render every default badge at once.
func (h *CVHandler) SetDefault(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cvs, err := h.cvs.SetDefault(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cvs)
}

// Delete is DELETE /cvs/:id
func (h *CVHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cvs.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
