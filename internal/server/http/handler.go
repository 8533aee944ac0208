// Package http exposes the session pipeline over a small JSON API. The
// handlers only bind, delegate, and translate errors; all domain logic lives
// in the session package.
package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oadeniran/Nexus/internal/logging"
	"github.com/oadeniran/Nexus/internal/session"
)

// APIHandler serves the session memory endpoints.
type APIHandler struct {
	service *session.Service
	logger  *logging.Logger
}

// NewAPIHandler creates the handler set over the session service.
func NewAPIHandler(service *session.Service) *APIHandler {
	return &APIHandler{
		service: service,
		logger:  logging.NewComponentLogger("API"),
	}
}

type saveSessionRequest struct {
	SessionType string                 `json:"session_type" binding:"required"`
	Dialogue    []session.DialogueTurn `json:"dialogue" binding:"required"`
	UserID      string                 `json:"user_id" binding:"required"`
}

// Limit is a pointer so an omitted limit (default applies) is
// distinguishable from an explicit zero (no matches wanted).
type searchRequest struct {
	Query  string `json:"query" binding:"required"`
	UserID string `json:"user_id" binding:"required"`
	Limit  *int   `json:"limit"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HandleRoot reports service identity.
func (h *APIHandler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "Nexus Brain Online",
		"message": "Ready to process ideas.",
	})
}

// HandleHealth is the liveness probe.
func (h *APIHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleSaveSession ingests one finished session.
func (h *APIHandler) HandleSaveSession(c *gin.Context) {
	var req saveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.service.SaveSession(c.Request.Context(), session.SaveRequest{
		SessionType: req.SessionType,
		Dialogue:    req.Dialogue,
		UserID:      req.UserID,
	})
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "failed to save session", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleSearch runs a semantic memory query.
func (h *APIHandler) HandleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	matches, err := h.service.SearchMemory(c.Request.Context(), session.SearchRequest{
		Query:  req.Query,
		UserID: req.UserID,
		Limit:  req.Limit,
	})
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "failed to search memory", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// HandleHistory lists a user's stored sessions, newest first.
func (h *APIHandler) HandleHistory(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		h.respondError(c, http.StatusBadRequest, "user_id is required", nil)
		return
	}

	entries, err := h.service.GetHistory(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "failed to load history", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": entries})
}

func (h *APIHandler) respondError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		h.logger.Error("reqid=%s HTTP %d - %s: %v", RequestID(c), status, message, err)
	} else {
		h.logger.Warn("reqid=%s HTTP %d - %s", RequestID(c), status, message)
	}

	resp := errorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}
