package handlers

import (
	"net/http"

	"github.com/anonto42/reelshare/backend/internal/metrics"
	"github.com/anonto42/reelshare/backend/internal/store"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	store   *store.Store
	metrics *metrics.Metrics
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(s *store.Store, m *metrics.Metrics) *LikeHandler {
	return &LikeHandler{store: s, metrics: m}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/likes", h.LikePost)
	g.DELETE("/posts/:post_id/likes", h.UnlikePost)
	g.GET("/posts/:post_id/likes", h.GetLikers)
	g.GET("/posts/:post_id/likes/status", h.GetUserLikeStatusForPost)
}

// LikePost handles liking a post
func (h *LikeHandler) LikePost(c echo.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	status, err := h.store.Like(c.Request().Context(), caller(c), postID)
	if err != nil {
		return toHTTPError(h.metrics, err)
	}
	return success(c, http.StatusCreated, status)
}

// UnlikePost handles unliking a post
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	status, err := h.store.Unlike(c.Request().Context(), caller(c), postID)
	if err != nil {
		return toHTTPError(h.metrics, err)
	}
	return success(c, http.StatusOK, status)
}

// GetLikers lists the identities that liked a post, in like order
func (h *LikeHandler) GetLikers(c echo.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}
	page, pageSize, err := pageParams(c)
	if err != nil {
		return err
	}
	return successPage(c, "likers", h.store.GetLikers(postID, page, pageSize), page, pageSize)
}

// GetUserLikeStatusForPost checks if the authenticated user has liked a post
func (h *LikeHandler) GetUserLikeStatusForPost(c echo.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	liked, err := h.store.IsLiked(c.Request().Context(), caller(c), postID)
	if err != nil {
		return toHTTPError(h.metrics, err)
	}
	return success(c, http.StatusOK, echo.Map{"post_id": postID, "has_liked": liked})
}
