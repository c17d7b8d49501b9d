package http

import (
	"net/http"

	"linkup/internal/usecase"
	"linkup/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaUseCase usecase.MediaUseCase
	logger       *logger.Logger
}

func NewMediaHandler(mediaUseCase usecase.MediaUseCase, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{mediaUseCase: mediaUseCase, logger: logger}
}

// ResolveURL godoc
// @Summary      Resolve a stored media path to a fetchable URL
// @Tags         media
// @Produce      json
// @Security     BearerAuth
// @Param        path query string false "Stored path; empty resolves to the placeholder"
// @Success      200  {object}  map[string]interface{}
// @Router       /media/url [get]
func (h *MediaHandler) ResolveURL(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{
		"url": h.mediaUseCase.ResolveDisplayURL(c.Query("path")),
	})
}

type DownloadRequest struct {
	URL string `json:"url" binding:"required"`
}

// Download godoc
// @Summary      Stage a stored media object locally for sharing
// @Tags         media
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body DownloadRequest true "Object URL"
// @Success      200  {object}  map[string]interface{}
// @Router       /media/download [post]
func (h *MediaHandler) Download(c *gin.Context) {
	var req DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	localPath, err := h.mediaUseCase.Download(req.URL)
	if err != nil {
		h.logger.Error("Failed to download media: %v", err)
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondOK(c, http.StatusOK, gin.H{"localPath": localPath})
}
