package handlers

import (
	"io"
	"net/http"

	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/pagination"
	"github.com/TanzilIslam/dev-home-sub000/internal/response"
	"github.com/TanzilIslam/dev-home-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	files *services.FileService
}

func NewFileHandler(files *services.FileService) *FileHandler {
	return &FileHandler{files: files}
}

func formTag(c *gin.Context, key string) *string {
	if v := c.PostForm(key); v != "" {
		return &v
	}
	return nil
}

// List returns the caller's files, optionally narrowed by scope tags.
// @Summary List files
// @Param clientId query string false "Filter by client tag"
// @Param projectId query string false "Filter by project tag"
// @Param codebaseId query string false "Filter by codebase tag"
// @Router /api/v1/files [get]
func (h *FileHandler) List(c *gin.Context) {
	q := pagination.ParseListQuery(c)
	userID := currentUserID(c)
	clientID := c.Query("clientId")
	projectID := c.Query("projectId")
	codebaseID := c.Query("codebaseId")

	if q.Dropdown {
		options, meta, err := h.files.ListOptions(userID, q, clientID, projectID, codebaseID)
		if err != nil {
			respondError(c, err, "fetch", "files")
			return
		}
		response.OK(c, gin.H{"items": options, "meta": meta})
		return
	}

	items, meta, err := h.files.List(userID, q, clientID, projectID, codebaseID)
	if err != nil {
		respondError(c, err, "fetch", "files")
		return
	}
	response.OK(c, gin.H{"items": items, "meta": meta})
}

// @Router /api/v1/files/{id} [get]
func (h *FileHandler) Get(c *gin.Context) {
	dto, err := h.files.Get(currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "fetch", "file")
		return
	}
	response.OK(c, dto)
}

// Upload accepts a multipart form with a "file" part plus optional
// clientId/projectId/codebaseId scope tags.
// @Summary Upload a file
// @Accept multipart/form-data
// @Router /api/v1/files [post]
func (h *FileHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "A file part named \"file\" is required.")
		return
	}

	src, err := header.Open()
	if err != nil {
		respondError(c, err, "upload", "file")
		return
	}
	defer src.Close()

	dto, err := h.files.Create(currentUserID(c), services.FileUpload{
		Filename:   header.Filename,
		MimeType:   header.Header.Get("Content-Type"),
		Reader:     src,
		ClientID:   formTag(c, "clientId"),
		ProjectID:  formTag(c, "projectId"),
		CodebaseID: formTag(c, "codebaseId"),
	})
	if err != nil {
		respondError(c, err, "upload", "file")
		return
	}
	response.Created(c, dto)
}

// Download streams the stored blob.
// @Router /api/v1/files/{id}/download [get]
func (h *FileHandler) Download(c *gin.Context) {
	file, r, err := h.files.Open(currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "download", "file")
		return
	}
	defer r.Close()

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	contentType := file.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	io.Copy(c.Writer, r)
}

// Update renames or retags a file.
// @Router /api/v1/files/{id} [put]
func (h *FileHandler) Update(c *gin.Context) {
	var req models.FileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	dto, err := h.files.Update(currentUserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "update", "file")
		return
	}
	response.OK(c, dto)
}

// Delete removes the row and, best-effort, the blob.
// @Router /api/v1/files/{id} [delete]
func (h *FileHandler) Delete(c *gin.Context) {
	if err := h.files.Delete(currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err, "delete", "file")
		return
	}
	response.OK(c, gin.H{"deleted": true})
}
