package handlers

import (
	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/pagination"
	"github.com/TanzilIslam/dev-home-sub000/internal/response"
	"github.com/TanzilIslam/dev-home-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type LinkHandler struct {
	links *services.LinkService
}

func NewLinkHandler(links *services.LinkService) *LinkHandler {
	return &LinkHandler{links: links}
}

// List returns the caller's links, optionally narrowed by project or codebase.
// @Summary List links
// @Param projectId query string false "Filter by parent project"
// @Param codebaseId query string false "Filter by codebase"
// @Router /api/v1/links [get]
func (h *LinkHandler) List(c *gin.Context) {
	q := pagination.ParseListQuery(c)
	userID := currentUserID(c)
	projectID := c.Query("projectId")
	codebaseID := c.Query("codebaseId")

	if q.Dropdown {
		options, meta, err := h.links.ListOptions(userID, q, projectID, codebaseID)
		if err != nil {
			respondError(c, err, "fetch", "links")
			return
		}
		response.OK(c, gin.H{"items": options, "meta": meta})
		return
	}

	items, meta, err := h.links.List(userID, q, projectID, codebaseID)
	if err != nil {
		respondError(c, err, "fetch", "links")
		return
	}
	response.OK(c, gin.H{"items": items, "meta": meta})
}

// @Router /api/v1/links/{id} [get]
func (h *LinkHandler) Get(c *gin.Context) {
	dto, err := h.links.Get(currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "fetch", "link")
		return
	}
	response.OK(c, dto)
}

// @Router /api/v1/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req models.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	dto, err := h.links.Create(currentUserID(c), req)
	if err != nil {
		respondError(c, err, "create", "link")
		return
	}
	response.Created(c, dto)
}

// @Router /api/v1/links/{id} [put]
func (h *LinkHandler) Update(c *gin.Context) {
	var req models.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	dto, err := h.links.Update(currentUserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "update", "link")
		return
	}
	response.OK(c, dto)
}

// @Router /api/v1/links/{id} [delete]
func (h *LinkHandler) Delete(c *gin.Context) {
	if err := h.links.Delete(currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err, "delete", "link")
		return
	}
	response.OK(c, gin.H{"deleted": true})
}
