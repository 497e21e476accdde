package handlers

import (
	"net/http"

	"github.com/anonto42/reelshare/backend/internal/metrics"
	"github.com/anonto42/reelshare/backend/internal/models"
	"github.com/anonto42/reelshare/backend/internal/store"
	"github.com/jinzhu/copier"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	store   *store.Store
	metrics *metrics.Metrics
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s *store.Store, m *metrics.Metrics) *UserHandler {
	return &UserHandler{store: s, metrics: m}
}

// RegisterProfileRoutes registers user profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetOwnProfile)
	g.POST("/profile", h.Register)
	g.PUT("/profile", h.UpdateProfile)
	g.PUT("/profile/record", h.SaveProfile)
	g.GET("/users/search", h.SearchUsers)
	g.GET("/users/:identity", h.GetProfile)
}

// GetOwnProfile retrieves the authenticated user's profile
func (h *UserHandler) GetOwnProfile(c echo.Context) error {
	profile, ok, err := h.store.GetOwnProfile(c.Request().Context(), caller(c))
	if err != nil {
		return toHTTPError(h.metrics, err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
	}
	return success(c, http.StatusOK, profile)
}

// GetProfile retrieves another user's profile by identity
func (h *UserHandler) GetProfile(c echo.Context) error {
	profile, ok, err := h.store.GetProfile(c.Request().Context(), caller(c), c.Param("identity"))
	if err != nil {
		return toHTTPError(h.metrics, err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
	}
	return success(c, http.StatusOK, profile)
}

// Register creates the authenticated user's profile
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.store.Register(c.Request().Context(), caller(c), req.Username, req.Bio, req.AvatarRef)
	if err != nil {
		return toHTTPError(h.metrics, err)
	}
	return success(c, http.StatusCreated, profile)
}

// UpdateProfile edits the authenticated user's username, bio and avatar
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.store.UpdateProfile(c.Request().Context(), caller(c), req.Username, req.Bio, req.AvatarRef)
	if err != nil {
		return toHTTPError(h.metrics, err)
	}
	return success(c, http.StatusOK, profile)
}

// SaveProfile stores a full profile record for the authenticated user
func (h *UserHandler) SaveProfile(c echo.Context) error {
	var req models.SaveProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var profile models.UserProfile
	if err := copier.Copy(&profile, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid profile record")
	}

	saved, err := h.store.SaveProfile(c.Request().Context(), caller(c), profile)
	if err != nil {
		return toHTTPError(h.metrics, err)
	}
	return success(c, http.StatusOK, saved)
}

// SearchUsers finds users whose username contains the q query parameter
func (h *UserHandler) SearchUsers(c echo.Context) error {
	page, pageSize, err := pageParams(c)
	if err != nil {
		return err
	}
	users := h.store.SearchUsers(c.QueryParam("q"), page, pageSize)
	return successPage(c, "users", users, page, pageSize)
}
