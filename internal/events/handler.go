package events

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/unclelab/sportevents/internal/api/v1"
	"github.com/unclelab/sportevents/internal/storage"
)

const (
	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
	msgBodyTooLarge   = "Request body exceeds maximum allowed size"
)

// RegisterRoutes registers the event CRUD routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/api/events", s.ListHandler)
	r.POST("/api/events", s.CreateHandler)
	r.GET("/api/events/:eventId", s.GetHandler)
	r.PUT("/api/events/:eventId", s.UpdateHandler)
	r.DELETE("/api/events/:eventId", s.DeleteHandler)
}

// ListHandler handles GET /api/events.
func (s *Service) ListHandler(c *gin.Context) {
	events, err := s.ListEvents(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if events == nil {
		events = []*v1.EventResponse{}
	}
	c.JSON(http.StatusOK, events)
}

// GetHandler handles GET /api/events/:eventId.
func (s *Service) GetHandler(c *gin.Context) {
	event, err := s.GetEvent(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateHandler handles POST /api/events.
func (s *Service) CreateHandler(c *gin.Context) {
	body, ok := s.readBody(c)
	if !ok {
		return
	}

	var req v1.CreateEventRequest
	if err := json.Unmarshal(body, &req); err != nil {
		slog.Warn("Invalid JSON body received", "error", err, "payload_size", len(body))
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Type: v1.TypeInvalidJSON, Error: msgInvalidJSON})
		return
	}

	event, err := s.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// UpdateHandler handles PUT /api/events/:eventId.
func (s *Service) UpdateHandler(c *gin.Context) {
	body, ok := s.readBody(c)
	if !ok {
		return
	}

	patch := make(map[string]interface{})
	if len(body) > 0 {
		if err := json.Unmarshal(body, &patch); err != nil {
			slog.Warn("Invalid JSON body received", "error", err, "payload_size", len(body))
			c.JSON(http.StatusBadRequest, v1.ErrorResponse{Type: v1.TypeInvalidJSON, Error: msgInvalidJSON})
			return
		}
	}

	eventID := c.Param("eventId")
	changes, err := s.UpdateEvent(c.Request.Context(), eventID, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.UpdateEventResponse{EventID: eventID, Changes: changes})
}

// DeleteHandler handles DELETE /api/events/:eventId.
func (s *Service) DeleteHandler(c *gin.Context) {
	event, err := s.DeleteEvent(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// readBody reads the request body under the configured size cap. On failure
// it writes the error response itself and returns ok=false.
func (s *Service) readBody(c *gin.Context) ([]byte, bool) {
	maxBytes := int64(s.maxBodySizeBytes)
	limited := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	body, err := io.ReadAll(limited)
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Type: v1.TypeInternal, Error: msgReadBodyFailed})
		return nil, false
	}
	if int64(len(body)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(body), "max", maxBytes)
		c.JSON(http.StatusRequestEntityTooLarge, v1.ErrorResponse{Type: v1.TypeInvalidJSON, Error: msgBodyTooLarge})
		return nil, false
	}
	return body, true
}

// writeError converts a service error into the JSON error body plus status
// code. Unrecognized errors are treated as repository failures.
func writeError(c *gin.Context, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, v1.ValidationErrorResponse{
			Type:   v1.TypeValidationError,
			Errors: verr.Fields,
		})
	case errors.Is(err, ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Type: v1.TypeEmptyUpdate, Error: err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, v1.ErrorResponse{Type: v1.TypeNotFound, Error: err.Error()})
	default:
		slog.Error("Repository operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Type: v1.TypeRepositoryError, Error: err.Error()})
	}
}
