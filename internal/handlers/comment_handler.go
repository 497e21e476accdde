package handlers

import (
	"net/http"

	"github.com/anonto42/reelshare/backend/internal/metrics"
	"github.com/anonto42/reelshare/backend/internal/models"
	"github.com/anonto42/reelshare/backend/internal/store"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	store   *store.Store
	metrics *metrics.Metrics
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(s *store.Store, m *metrics.Metrics) *CommentHandler {
	return &CommentHandler{store: s, metrics: m}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.GetCommentsByPostID)
	g.DELETE("/comments/:comment_id", h.DeleteComment)
}

// CreateComment adds a comment to a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.store.AddComment(c.Request().Context(), caller(c), postID, req.Text)
	if err != nil {
		return toHTTPError(h.metrics, err)
	}
	return success(c, http.StatusCreated, comment)
}

// GetCommentsByPostID lists a post's comments, oldest first
func (h *CommentHandler) GetCommentsByPostID(c echo.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}
	page, pageSize, err := pageParams(c)
	if err != nil {
		return err
	}
	return successPage(c, "comments", h.store.GetComments(postID, page, pageSize), page, pageSize)
}

// DeleteComment deletes a comment. Allowed for its author, the post author and admins.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	id, err := paramID(c, "comment_id")
	if err != nil {
		return err
	}

	if err := h.store.DeleteComment(c.Request().Context(), caller(c), id); err != nil {
		return toHTTPError(h.metrics, err)
	}
	return c.NoContent(http.StatusNoContent)
}
