// Package posts exposes the published post gallery endpoints
package posts

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/yashwanth-3000/content--hub/internal/repositories/publishedpost"
	"github.com/yashwanth-3000/content--hub/pkg/events"
	"github.com/yashwanth-3000/content--hub/pkg/models"
	"github.com/yashwanth-3000/content--hub/pkg/tracing"
)

var validate = validator.New()

// Register registers published post routes
func Register(g *echo.Group) {
	g.POST("", Create)
	g.GET("", List)
}

// Create saves a final piece of content to the gallery
func Create(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "posts_handler.Create")
	defer span.End()

	var req models.CreatePublishedPostRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.NormalizeContent()

	ctx, repo, err := ectoinject.GetContext[publishedpost.PublishedPostRepository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get repository")
	}

	post, err := repo.Create(ctx, req)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to save post")
	}

	if ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx); err == nil {
		emitter.EmitPostPublished(ctx, post)
	}

	return c.JSON(http.StatusCreated, post)
}

// List returns the gallery, newest first, optionally filtered by platform
func List(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "posts_handler.List")
	defer span.End()

	var platform *models.Platform
	if p := c.QueryParam("platform"); p != "" {
		candidate := models.Platform(p)
		if !models.PublishPlatforms[candidate] {
			return httperror.NewHTTPError(http.StatusBadRequest, "unsupported platform")
		}
		platform = &candidate
	}

	ctx, repo, err := ectoinject.GetContext[publishedpost.PublishedPostRepository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get repository")
	}

	items, totalCount, err := repo.List(ctx, platform)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to list posts")
	}

	return c.JSON(http.StatusOK, models.PublishedPostListResponse{
		Items:      items,
		TotalCount: totalCount,
	})
}
