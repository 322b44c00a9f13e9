// Package analytics exposes the engagement analytics endpoints
package analytics

import (
	"errors"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/yashwanth-3000/content--hub/pkg/agents"
	"github.com/yashwanth-3000/content--hub/pkg/analytics"
	"github.com/yashwanth-3000/content--hub/pkg/models"
	"github.com/yashwanth-3000/content--hub/pkg/profile"
	"github.com/yashwanth-3000/content--hub/pkg/tracing"
)

var validate = validator.New()

// Register registers analytics routes
func Register(g *echo.Group) {
	g.POST("/twitter", Twitter)
	g.POST("/linkedin", LinkedIn)
}

// Twitter computes the engagement report and series for a Twitter profile
func Twitter(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "analytics_handler.Twitter")
	defer span.End()

	var req models.TwitterAnalyticsRequest
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
	ctx, logger, err := ectoinject.GetContext[ectologger.Logger](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get logger")
	}

	tweets, _, err := svc.FetchTweets(ctx, req.Username)
	if err != nil {
		return mapAnalyticsError(err)
	}

	return c.JSON(http.StatusOK, analytics.BuildTwitterAnalytics(req.Username, tweets, logger))
}

// LinkedIn computes the engagement report and series for a LinkedIn profile
func LinkedIn(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "analytics_handler.LinkedIn")
	defer span.End()

	var req models.LinkedInAnalyticsRequest
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
	ctx, logger, err := ectoinject.GetContext[ectologger.Logger](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get logger")
	}

	posts, _, _, err := svc.FetchLinkedInPosts(ctx, req.LinkedInURL)
	if err != nil {
		return mapAnalyticsError(err)
	}

	return c.JSON(http.StatusOK, analytics.BuildLinkedInAnalytics(posts, time.Now(), logger))
}

func mapAnalyticsError(err error) error {
	switch {
	case errors.Is(err, profile.ErrMissingIdentity):
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, profile.ErrNoPosts),
		errors.Is(err, agents.ErrWebhookFailure),
		errors.Is(err, agents.ErrMalformedResponse):
		return httperror.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to compute analytics")
	}
}
