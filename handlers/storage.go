package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldserve/services/storage"
	"fieldserve/utils"
)

// StorageHandler exposes media upload for authenticated callers.
type StorageHandler struct {
	Store storage.ObjectStore
}

const maxUploadBytes = 10 << 20

func (h *StorageHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "missing file", err.Error())
		return
	}
	if header.Size > maxUploadBytes {
		utils.JSONError(c, http.StatusBadRequest, "file too large", "limit is 10MB")
		return
	}

	folder := c.DefaultPostForm("folder", "uploads")
	file, err := header.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "unreadable file", err.Error())
		return
	}
	defer file.Close()

	result, err := h.Store.Upload(c.Request.Context(), file, folder)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *StorageHandler) Delete(c *gin.Context) {
	if err := h.Store.Delete(c.Request.Context(), c.Param("publicID")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
