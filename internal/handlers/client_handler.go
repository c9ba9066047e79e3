package handlers

import (
	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/pagination"
	"github.com/TanzilIslam/dev-home-sub000/internal/response"
	"github.com/TanzilIslam/dev-home-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clients *services.ClientService
}

func NewClientHandler(clients *services.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// List returns the caller's clients.
// @Summary List clients
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Param q query string false "Search by name"
// @Param all query bool false "Bypass pagination"
// @Param dropdown query bool false "Minimal {id,name} projection"
// @Router /api/v1/clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	q := pagination.ParseListQuery(c)
	userID := currentUserID(c)

	if q.Dropdown {
		options, meta, err := h.clients.ListOptions(userID, q)
		if err != nil {
			respondError(c, err, "fetch", "clients")
			return
		}
		response.OK(c, gin.H{"items": options, "meta": meta})
		return
	}

	items, meta, err := h.clients.List(userID, q)
	if err != nil {
		respondError(c, err, "fetch", "clients")
		return
	}
	response.OK(c, gin.H{"items": items, "meta": meta})
}

// Get returns a single client.
// @Router /api/v1/clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	dto, err := h.clients.Get(currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "fetch", "client")
		return
	}
	response.OK(c, dto)
}

// Create adds a client.
// @Router /api/v1/clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req models.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	dto, err := h.clients.Create(currentUserID(c), req)
	if err != nil {
		respondError(c, err, "create", "client")
		return
	}
	response.Created(c, dto)
}

// Update replaces a client's editable fields.
// @Router /api/v1/clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	var req models.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	dto, err := h.clients.Update(currentUserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "update", "client")
		return
	}
	response.OK(c, dto)
}

// Delete removes a client and its attachments.
// @Router /api/v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.clients.Delete(currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err, "delete", "client")
		return
	}
	response.OK(c, gin.H{"deleted": true})
}
