package handlers

// handlers expose the recognition pipeline over HTTP. Each request runs
// the pipeline once; there is no state shared between requests.

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"songsnap/pages"
	"songsnap/recognize"
)

type Handler struct {
	Pipeline  *recognize.Pipeline
	MaxUpload int64 // bytes
}

func NewHandler(pipeline *recognize.Pipeline, maxUploadMB int) *Handler {
	return &Handler{
		Pipeline:  pipeline,
		MaxUpload: int64(maxUploadMB) << 20,
	}
}

// Recognize handles POST /recognize: multipart field "file" in, an
// EnrichedTrack JSON out. 404 carries a detail message when nothing
// matched; 500 carries the error text.
func (h *Handler) Recognize(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing file upload."})
		return
	}
	if h.MaxUpload > 0 && fileHeader.Size > h.MaxUpload {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Uploaded file is too large."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Errorf("Error opening upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("An unexpected error occurred: %v", err)})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Errorf("Error reading upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("An unexpected error occurred: %v", err)})
		return
	}

	outcome := h.Pipeline.Run(c.Request.Context(), data)
	if outcome.Status == recognize.StatusNotFound {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Track not recognized."})
		return
	}

	c.JSON(http.StatusOK, outcome.Track)
}

// Index serves the embedded upload page.
func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(pages.Index))
}
