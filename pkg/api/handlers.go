package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vincent-gallery/pkg/catalog"
	"vincent-gallery/pkg/middleware"
	"vincent-gallery/pkg/models"
	"vincent-gallery/pkg/services"
)

const (
	submissionAckMessage = "Thank you for your message! We will respond within 24 hours."
	paintingNotFound     = "Painting not found"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	submissionService services.SubmissionService
	catalog           *catalog.Catalog
	log               *zap.Logger
	service           string
	version           string
	now               func() time.Time
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	submissionService services.SubmissionService,
	gallery *catalog.Catalog,
	log *zap.Logger,
	service, version string,
) *Handlers {
	return &Handlers{
		submissionService: submissionService,
		catalog:           gallery,
		log:               log,
		service:           service,
		version:           version,
		now:               time.Now,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthStatus{
		Status:    "healthy",
		Timestamp: models.ISOTimestamp(h.now()),
		Service:   h.service,
		Version:   h.version,
	})
}

// HandleSubmission acknowledges a contact form submission. The payload is not
// validated: missing or non-string fields are echoed as empty strings.
func (h *Handlers) HandleSubmission(c *gin.Context) {
	data := h.readSubmission(c)

	receipt, err := h.submissionService.ReceiveSubmission(c.Request.Context(), data)
	if err != nil {
		h.log.Error("Error processing contact form",
			zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: middleware.InternalErrorMessage,
		})
		return
	}

	c.JSON(http.StatusOK, models.SubmissionResponse{
		Success: true,
		Message: submissionAckMessage,
		Data:    receipt,
	})
}

// readSubmission accepts JSON bodies of any shape as well as plain HTML form
// posts. A body that looks like a JSON object is decoded whatever its
// Content-Type says.
func (h *Handlers) readSubmission(c *gin.Context) models.ContactSubmission {
	switch c.ContentType() {
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		return models.ContactSubmission{
			Name:      c.PostForm("name"),
			Email:     c.PostForm("email"),
			Message:   c.PostForm("message"),
			Website:   c.PostForm("website"),
			Timestamp: c.PostForm("timestamp"),
		}
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.log.Warn("Error reading request body", zap.Error(err))
		return models.ContactSubmission{}
	}
	if c.ContentType() != gin.MIMEJSON && !bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
		return models.ContactSubmission{}
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		h.log.Warn("Submission body is not a JSON object",
			zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
		return models.ContactSubmission{}
	}

	return models.ContactSubmission{
		Name:      stringField(payload, "name"),
		Email:     stringField(payload, "email"),
		Message:   stringField(payload, "message"),
		Website:   stringField(payload, "website"),
		Timestamp: stringField(payload, "timestamp"),
	}
}

func stringField(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}

// ListPaintings returns the whole catalog
func (h *Handlers) ListPaintings(c *gin.Context) {
	paintings := h.catalog.Paintings()
	c.JSON(http.StatusOK, models.CatalogResponse{
		Success: true,
		Count:   len(paintings),
		Data:    paintings,
	})
}

// GetPainting returns one painting; any id that matches nothing is a 404
func (h *Handlers) GetPainting(c *gin.Context) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: paintingNotFound})
		return
	}

	painting, ok := h.catalog.Find(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: paintingNotFound})
		return
	}

	c.JSON(http.StatusOK, models.PaintingResponse{
		Success: true,
		Data:    painting,
	})
}

func (h *Handlers) GetBiography(c *gin.Context) {
	c.JSON(http.StatusOK, models.BiographyResponse{
		Success: true,
		Data:    h.catalog.Biography(),
	})
}
