package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/comments-api/internal/models"
	"github.com/comments-api/internal/repository"
	"github.com/comments-api/internal/service"
	"github.com/comments-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// GetComment handles GET /v1/comments/:id
func (h *CommentHandler) GetComment(c *gin.Context) {
	ctx := c.Request.Context()

	comment, err := h.services.Comment.GetComment(ctx, c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Str("comment_id", c.Param("id")).Msg("Failed to get comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get comment"})
		return
	}
	if comment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// CreateComment handles POST /v1/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if errs := validation.ValidateComment(req.Email, req.Text); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	comment, err := h.services.Comment.CreateComment(ctx, req.Email, req.Text)
	if err != nil {
		if repository.IsInvalidOperation(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("Failed to create comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// UpdateComment handles PUT /v1/comments/:id
// Only the owning email may edit; a mismatch reports updated=false
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if errs := validation.ValidateComment(req.Email, req.Text); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	updated, err := h.services.Comment.UpdateComment(ctx, c.Param("id"), req.Text, req.Email)
	if err != nil {
		if repository.IsInvalidOperation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Str("comment_id", c.Param("id")).Msg("Failed to update comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update comment"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"updated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DeleteComment handles DELETE /v1/comments/:id?email=...
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	ctx := c.Request.Context()

	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email parameter is required"})
		return
	}

	deleted, err := h.services.Comment.DeleteComment(ctx, c.Param("id"), email)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCommentID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Str("comment_id", c.Param("id")).Msg("Failed to delete comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// MostActiveCommenters handles GET /v1/comments/critics
func (h *CommentHandler) MostActiveCommenters(c *gin.Context) {
	ctx := c.Request.Context()

	critics, err := h.services.Comment.MostActiveCommenters(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to aggregate commenters")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate commenters"})
		return
	}
	if critics == nil {
		critics = []models.Critic{}
	}

	c.JSON(http.StatusOK, gin.H{"critics": critics})
}

// ListByEmail handles GET /v1/comments?email=...&limit=...
func (h *CommentHandler) ListByEmail(c *gin.Context) {
	ctx := c.Request.Context()

	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email parameter is required"})
		return
	}

	var limit int64
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.ParseInt(l, 10, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	comments, err := h.services.Comment.ListByEmail(ctx, email, limit)
	if err != nil {
		h.log.Error().Err(err).Str("email", email).Msg("Failed to list comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
