package handlers

import (
	"net/http"

	"github.com/anonto42/reelshare/backend/internal/metrics"
	"github.com/anonto42/reelshare/backend/internal/models"
	"github.com/anonto42/reelshare/backend/internal/store"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow operations
type FollowHandler struct {
	store   *store.Store
	metrics *metrics.Metrics
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(s *store.Store, m *metrics.Metrics) *FollowHandler {
	return &FollowHandler{store: s, metrics: m}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:identity/follow", h.Follow)
	g.DELETE("/users/:identity/follow", h.Unfollow)
	g.GET("/users/:identity/follow/status", h.GetFollowStatus)
	g.GET("/users/:identity/followers", h.GetFollowers)
	g.GET("/users/:identity/following", h.GetFollowing)
}

// Follow follows a user
func (h *FollowHandler) Follow(c echo.Context) error {
	target := c.Param("identity")
	if err := h.store.Follow(c.Request().Context(), caller(c), target); err != nil {
		return toHTTPError(h.metrics, err)
	}
	return success(c, http.StatusOK, models.FollowStatus{Target: target, Following: true})
}

// Unfollow unfollows a user
func (h *FollowHandler) Unfollow(c echo.Context) error {
	target := c.Param("identity")
	if err := h.store.Unfollow(c.Request().Context(), caller(c), target); err != nil {
		return toHTTPError(h.metrics, err)
	}
	return success(c, http.StatusOK, models.FollowStatus{Target: target, Following: false})
}

// GetFollowStatus reports whether the caller follows a user. Anonymous callers follow nobody.
func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	target := c.Param("identity")
	return success(c, http.StatusOK, models.FollowStatus{
		Target:    target,
		Following: h.store.IsFollowing(caller(c), target),
	})
}

// GetFollowers lists a user's followers in follow order
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	page, pageSize, err := pageParams(c)
	if err != nil {
		return err
	}
	return successPage(c, "followers", h.store.GetFollowers(c.Param("identity"), page, pageSize), page, pageSize)
}

// GetFollowing lists who a user follows in follow order
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	page, pageSize, err := pageParams(c)
	if err != nil {
		return err
	}
	return successPage(c, "following", h.store.GetFollowing(c.Param("identity"), page, pageSize), page, pageSize)
}
