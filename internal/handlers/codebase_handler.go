package handlers

import (
	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/pagination"
	"github.com/TanzilIslam/dev-home-sub000/internal/response"
	"github.com/TanzilIslam/dev-home-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type CodebaseHandler struct {
	codebases *services.CodebaseService
}

func NewCodebaseHandler(codebases *services.CodebaseService) *CodebaseHandler {
	return &CodebaseHandler{codebases: codebases}
}

// List returns the caller's codebases, optionally narrowed by project or client.
// @Summary List codebases
// @Param projectId query string false "Filter by parent project"
// @Param clientId query string false "Filter by grandparent client"
// @Router /api/v1/codebases [get]
func (h *CodebaseHandler) List(c *gin.Context) {
	q := pagination.ParseListQuery(c)
	userID := currentUserID(c)
	projectID := c.Query("projectId")
	clientID := c.Query("clientId")

	if q.Dropdown {
		options, meta, err := h.codebases.ListOptions(userID, q, projectID, clientID)
		if err != nil {
			respondError(c, err, "fetch", "codebases")
			return
		}
		response.OK(c, gin.H{"items": options, "meta": meta})
		return
	}

	items, meta, err := h.codebases.List(userID, q, projectID, clientID)
	if err != nil {
		respondError(c, err, "fetch", "codebases")
		return
	}
	response.OK(c, gin.H{"items": items, "meta": meta})
}

// @Router /api/v1/codebases/{id} [get]
func (h *CodebaseHandler) Get(c *gin.Context) {
	dto, err := h.codebases.Get(currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "fetch", "codebase")
		return
	}
	response.OK(c, dto)
}

// @Router /api/v1/codebases [post]
func (h *CodebaseHandler) Create(c *gin.Context) {
	var req models.CodebaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	dto, err := h.codebases.Create(currentUserID(c), req)
	if err != nil {
		respondError(c, err, "create", "codebase")
		return
	}
	response.Created(c, dto)
}

// Update may reassign the codebase to another project; links referencing it
// follow in the same transaction.
// @Router /api/v1/codebases/{id} [put]
func (h *CodebaseHandler) Update(c *gin.Context) {
	var req models.CodebaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	dto, err := h.codebases.Update(currentUserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "update", "codebase")
		return
	}
	response.OK(c, dto)
}

// @Router /api/v1/codebases/{id} [delete]
func (h *CodebaseHandler) Delete(c *gin.Context) {
	if err := h.codebases.Delete(currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err, "delete", "codebase")
		return
	}
	response.OK(c, gin.H{"deleted": true})
}
