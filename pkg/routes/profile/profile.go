// Package profile exposes the profile fetch endpoint
package profile

import (
	"errors"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/yashwanth-3000/content--hub/pkg/agents"
	"github.com/yashwanth-3000/content--hub/pkg/models"
	"github.com/yashwanth-3000/content--hub/pkg/profile"
	"github.com/yashwanth-3000/content--hub/pkg/tracing"
)

var validate = validator.New()

// Register registers profile routes
func Register(g *echo.Group) {
	g.POST("/:platform/fetch", Fetch)
}

// Fetch resolves an identity on a platform into normalized posts
func Fetch(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "profile_handler.Fetch")
	defer span.End()

	platform := models.Platform(c.Param("platform"))
	if !models.FetchPlatforms[platform] {
		return httperror.NewHTTPError(http.StatusBadRequest, "unsupported platform")
	}

	var req models.FetchProfileRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, svc, err := ectoinject.GetContext[*profile.Service](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get profile service")
	}

	result, err := svc.FetchProfile(ctx, platform, req.Identity)
	if err != nil {
		return mapFetchError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func mapFetchError(err error) error {
	switch {
	case errors.Is(err, profile.ErrMissingIdentity):
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, profile.ErrNoPosts),
		errors.Is(err, agents.ErrWebhookFailure),
		errors.Is(err, agents.ErrMalformedResponse):
		return httperror.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to fetch profile")
	}
}
