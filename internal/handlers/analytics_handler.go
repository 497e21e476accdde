package handlers

import (
	"net/http"

	"github.com/anonto42/reelshare/backend/internal/metrics"
	"github.com/anonto42/reelshare/backend/internal/models"
	"github.com/anonto42/reelshare/backend/internal/store"
	"github.com/jinzhu/copier"
	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves the derived analytics tables and the feature catalog
type AnalyticsHandler struct {
	store   *store.Store
	metrics *metrics.Metrics
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(s *store.Store, m *metrics.Metrics) *AnalyticsHandler {
	return &AnalyticsHandler{store: s, metrics: m}
}

// RegisterAnalyticsRoutes registers analytics and feature routes
func (h *AnalyticsHandler) RegisterAnalyticsRoutes(g *echo.Group) {
	g.GET("/analytics/trending-posts", h.GetTrendingPosts)
	g.GET("/analytics/top-users", h.GetTopUsers)
	g.GET("/analytics/posts/:post_id", h.GetPostEngagement)

	g.GET("/features/trending", h.GetTrendingFeatures)
	g.GET("/features/:feature_id", h.GetFeature)
	g.GET("/features/:feature_id/related", h.GetRelatedFeatures)
	g.PUT("/features/:feature_id", h.UpsertFeature)
	g.DELETE("/features/:feature_id", h.DeleteFeature)
}

// GetTrendingPosts returns the trending table from the last aggregation
func (h *AnalyticsHandler) GetTrendingPosts(c echo.Context) error {
	return success(c, http.StatusOK, echo.Map{"trending": h.store.GetTrendingPosts()})
}

// GetTopUsers returns identity -> total likes for the top users
func (h *AnalyticsHandler) GetTopUsers(c echo.Context) error {
	return success(c, http.StatusOK, echo.Map{"users": h.store.GetTopTrendingUsers()})
}

// GetPostEngagement returns the engagement rate and viral flag of a post
func (h *AnalyticsHandler) GetPostEngagement(c echo.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	rate, ok := h.store.GetEngagementRate(postID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "No engagement data for post")
	}
	return success(c, http.StatusOK, echo.Map{
		"post_id":         postID,
		"engagement_rate": rate,
		"viral":           h.store.IsViral(postID),
	})
}

// GetTrendingFeatures returns catalog features by usage
func (h *AnalyticsHandler) GetTrendingFeatures(c echo.Context) error {
	return success(c, http.StatusOK, echo.Map{"features": h.store.GetTrendingFeatures()})
}

// GetFeature returns a single catalog feature
func (h *AnalyticsHandler) GetFeature(c echo.Context) error {
	feature, ok := h.store.GetFeatureDetails(c.Param("feature_id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Feature not found")
	}
	return success(c, http.StatusOK, feature)
}

// GetRelatedFeatures returns features related to the given one
func (h *AnalyticsHandler) GetRelatedFeatures(c echo.Context) error {
	id := c.Param("feature_id")
	if _, ok := h.store.GetFeatureDetails(id); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Feature not found")
	}
	return success(c, http.StatusOK, echo.Map{"features": h.store.GetRelatedFeatures(id)})
}

// UpsertFeature creates or replaces a catalog feature. Admin only.
func (h *AnalyticsHandler) UpsertFeature(c echo.Context) error {
	var req models.UpsertFeatureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	req.ID = c.Param("feature_id")
	if err := c.Validate(&req); err != nil {
		return err
	}

	var feature models.SocialFeature
	if err := copier.Copy(&feature, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid feature")
	}

	saved, err := h.store.UpsertFeature(c.Request().Context(), caller(c), feature)
	if err != nil {
		return toHTTPError(h.metrics, err)
	}
	return success(c, http.StatusOK, saved)
}

// DeleteFeature removes a catalog feature. Admin only.
func (h *AnalyticsHandler) DeleteFeature(c echo.Context) error {
	if err := h.store.DeleteFeature(c.Request().Context(), caller(c), c.Param("feature_id")); err != nil {
		return toHTTPError(h.metrics, err)
	}
	return c.NoContent(http.StatusNoContent)
}
