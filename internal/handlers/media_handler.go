package handlers

import (
	"net/http"

	"github.com/anonto42/reelshare/backend/internal/auth"
	"github.com/anonto42/reelshare/backend/internal/models"
	"github.com/anonto42/reelshare/backend/pkg/storage"
	"github.com/labstack/echo/v4"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
)

// MaxUploadSize is the largest accepted media upload in bytes
const MaxUploadSize = 200 << 20

var allowedContentTypes = map[models.MediaType][]string{
	models.MediaVideo: {"video/mp4", "video/quicktime", "video/webm"},
	models.MediaPhoto: {"image/jpeg", "image/png", "image/webp", "image/gif"},
}

// MediaHandler uploads post media to the configured blob store
type MediaHandler struct {
	media  storage.MediaStore
	authz  auth.Authorizer
	logger *zap.Logger
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(media storage.MediaStore, authz auth.Authorizer, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{media: media, authz: authz, logger: logger}
}

// RegisterMediaRoutes registers media upload routes
func (h *MediaHandler) RegisterMediaRoutes(g *echo.Group) {
	g.POST("/media", h.Upload)
}

// Upload stores the multipart "file" field and returns its media reference
func (h *MediaHandler) Upload(c echo.Context) error {
	ctx := c.Request().Context()
	if !h.authz.HasCapability(ctx, caller(c), auth.RoleUser) {
		return echo.NewHTTPError(http.StatusForbidden, "caller lacks the user capability")
	}

	mediaType := models.MediaType(c.FormValue("media_type"))
	if !mediaType.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "media_type must be video or photo")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if file.Size > MaxUploadSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}
	contentType := file.Header.Get("Content-Type")
	if !funk.ContainsString(allowedContentTypes[mediaType], contentType) {
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported content type "+contentType)
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read file")
	}
	defer src.Close()

	ref, err := h.media.Put(ctx, storage.NewKey(string(mediaType), file.Filename), src, file.Size, contentType)
	if err != nil {
		h.logger.Error("media upload failed", zap.String("identity", caller(c)), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store media")
	}

	return success(c, http.StatusCreated, echo.Map{"media_ref": ref, "media_type": mediaType})
}
