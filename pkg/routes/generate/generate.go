// Package generate exposes the content generation endpoints
package generate

import (
	"errors"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/yashwanth-3000/content--hub/pkg/agents"
	"github.com/yashwanth-3000/content--hub/pkg/generator"
	"github.com/yashwanth-3000/content--hub/pkg/models"
	"github.com/yashwanth-3000/content--hub/pkg/profile"
	"github.com/yashwanth-3000/content--hub/pkg/tracing"
	"github.com/yashwanth-3000/content--hub/pkg/watsonx"
)

var validate = validator.New()

// Register registers generation routes
func Register(g *echo.Group) {
	g.POST("/tweet", Tweet)
	g.POST("/thread", Thread)
	g.POST("/linkedin", LinkedIn)
	g.POST("/instagram", Instagram)
}

// Tweet generates a single tweet in the user's style
func Tweet(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "generate_handler.Tweet")
	defer span.End()

	var req models.GenerateTweetRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, svc, err := ectoinject.GetContext[*generator.Service](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get generation service")
	}

	result, err := svc.GenerateTweet(ctx, req)
	if err != nil {
		return mapGenerationError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// Thread generates a seven-tweet thread in the user's style
func Thread(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "generate_handler.Thread")
	defer span.End()

	var req models.GenerateThreadRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, svc, err := ectoinject.GetContext[*generator.Service](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get generation service")
	}

	result, err := svc.GenerateThread(ctx, req)
	if err != nil {
		return mapGenerationError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// LinkedIn generates a LinkedIn post in the user's style
func LinkedIn(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "generate_handler.LinkedIn")
	defer span.End()

	var req models.GenerateLinkedInRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, svc, err := ectoinject.GetContext[*generator.Service](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get generation service")
	}

	result, err := svc.GenerateLinkedIn(ctx, req)
	if err != nil {
		return mapGenerationError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// Instagram generates an Instagram caption for the account
func Instagram(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "generate_handler.Instagram")
	defer span.End()

	var req models.GenerateInstagramRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, svc, err := ectoinject.GetContext[*generator.Service](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get generation service")
	}

	result, err := svc.GenerateInstagram(ctx, req)
	if err != nil {
		return mapGenerationError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func mapGenerationError(err error) error {
	switch {
	case errors.Is(err, profile.ErrMissingIdentity):
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, generator.ErrThreadLength),
		errors.Is(err, profile.ErrNoPosts),
		errors.Is(err, agents.ErrWebhookFailure),
		errors.Is(err, agents.ErrMalformedResponse),
		errors.Is(err, watsonx.ErrEmptyGeneration):
		return httperror.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return httperror.NewHTTPError(http.StatusInternalServerError, "content generation failed")
	}
}
