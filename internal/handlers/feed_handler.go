package handlers

import (
	"net/http"

	"github.com/anonto42/reelshare/backend/internal/store"
	"github.com/labstack/echo/v4"
)

// FeedHandler serves the global listings: feed, trending, search and hashtags
type FeedHandler struct {
	store *store.Store
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(s *store.Store) *FeedHandler {
	return &FeedHandler{store: s}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.GET("/posts/trending", h.GetTrendingPosts)
	g.GET("/posts/search", h.SearchPosts)
	g.GET("/hashtags/top", h.GetTopHashtags)
}

// GetFeed returns all posts, newest first
func (h *FeedHandler) GetFeed(c echo.Context) error {
	page, pageSize, err := pageParams(c)
	if err != nil {
		return err
	}
	return successPage(c, "posts", h.store.GetFeed(page, pageSize), page, pageSize)
}

// GetTrendingPosts returns all posts ordered by likes
func (h *FeedHandler) GetTrendingPosts(c echo.Context) error {
	page, pageSize, err := pageParams(c)
	if err != nil {
		return err
	}
	return successPage(c, "posts", h.store.GetTrendingPostsList(page, pageSize), page, pageSize)
}

// SearchPosts finds posts whose caption contains the q query parameter
func (h *FeedHandler) SearchPosts(c echo.Context) error {
	page, pageSize, err := pageParams(c)
	if err != nil {
		return err
	}
	return successPage(c, "posts", h.store.SearchPosts(c.QueryParam("q"), page, pageSize), page, pageSize)
}

// GetTopHashtags returns the hashtag popularity table
func (h *FeedHandler) GetTopHashtags(c echo.Context) error {
	return success(c, http.StatusOK, echo.Map{"hashtags": h.store.GetTopHashtags()})
}
