package handlers

import (
	"net/http"

	"github.com/anonto42/reelshare/backend/internal/metrics"
	"github.com/anonto42/reelshare/backend/internal/models"
	"github.com/anonto42/reelshare/backend/internal/store"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	store   *store.Store
	metrics *metrics.Metrics
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(s *store.Store, m *metrics.Metrics) *PostHandler {
	return &PostHandler{store: s, metrics: m}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:post_id", h.GetPost)
	g.DELETE("/posts/:post_id", h.DeletePost)
	g.GET("/users/:identity/posts", h.GetPostsByUser)
}

// CreatePost creates a new post authored by the caller
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	in := models.NewPost{
		MediaRef:  req.MediaRef,
		MediaType: models.MediaType(req.MediaType),
		Caption:   req.Caption,
		Hashtags:  req.Hashtags,
	}
	if req.EffectFeatureID != "" {
		intensity := models.DefaultIntensity
		if req.EffectIntensity != nil {
			intensity = *req.EffectIntensity
		}
		in.Effect = &models.Effect{FeatureID: req.EffectFeatureID, Intensity: intensity}
	}

	post, err := h.store.CreatePost(c.Request().Context(), caller(c), in)
	if err != nil {
		return toHTTPError(h.metrics, err)
	}
	return success(c, http.StatusCreated, post)
}

// GetPost retrieves a single post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	post, ok := h.store.GetPost(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return success(c, http.StatusOK, post)
}

// DeletePost deletes a post owned by the caller, or any post for admins
func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	if err := h.store.DeletePost(c.Request().Context(), caller(c), id); err != nil {
		return toHTTPError(h.metrics, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetPostsByUser lists a user's posts, newest first
func (h *PostHandler) GetPostsByUser(c echo.Context) error {
	page, pageSize, err := pageParams(c)
	if err != nil {
		return err
	}
	posts := h.store.GetPostsByUser(c.Param("identity"), page, pageSize)
	return successPage(c, "posts", posts, page, pageSize)
}
