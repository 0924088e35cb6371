package handlers

import (
	"newsportal/helper"
	"newsportal/services"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaService services.MediaService
	Helper       *helper.HTTPHelper
}

func NewMediaHandler(mediaService services.MediaService, httpHelper *helper.HTTPHelper) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, Helper: httpHelper}
}

// Upload accepts a multipart form with the image in the "file" field.
func (h *MediaHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		h.Helper.SendBadRequest(c, "File is required", h.Helper.EmptyJsonMap())
		return
	}

	file, err := header.Open()
	if err != nil {
		h.Helper.SendBadRequest(c, "Could not read uploaded file", h.Helper.EmptyJsonMap())
		return
	}
	defer file.Close()

	response, err := h.mediaService.UploadImage(c.Request.Context(), identity(c), file, header.Size)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "File uploaded successfully", response)
}
