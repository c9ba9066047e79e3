package handlers

import (
	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/pagination"
	"github.com/TanzilIslam/dev-home-sub000/internal/response"
	"github.com/TanzilIslam/dev-home-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List returns the caller's projects, optionally narrowed to one client.
// @Summary List projects
// @Param clientId query string false "Filter by parent client"
// @Router /api/v1/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	q := pagination.ParseListQuery(c)
	userID := currentUserID(c)
	clientID := c.Query("clientId")

	if q.Dropdown {
		options, meta, err := h.projects.ListOptions(userID, q, clientID)
		if err != nil {
			respondError(c, err, "fetch", "projects")
			return
		}
		response.OK(c, gin.H{"items": options, "meta": meta})
		return
	}

	items, meta, err := h.projects.List(userID, q, clientID)
	if err != nil {
		respondError(c, err, "fetch", "projects")
		return
	}
	response.OK(c, gin.H{"items": items, "meta": meta})
}

// @Router /api/v1/projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	dto, err := h.projects.Get(currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "fetch", "project")
		return
	}
	response.OK(c, dto)
}

// @Router /api/v1/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	dto, err := h.projects.Create(currentUserID(c), req)
	if err != nil {
		respondError(c, err, "create", "project")
		return
	}
	response.Created(c, dto)
}

// @Router /api/v1/projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	dto, err := h.projects.Update(currentUserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "update", "project")
		return
	}
	response.OK(c, dto)
}

// @Router /api/v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projects.Delete(currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err, "delete", "project")
		return
	}
	response.OK(c, gin.H{"deleted": true})
}
