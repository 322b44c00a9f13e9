// Package analyze exposes the style analysis endpoint
package analyze

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

// Register registers analysis routes
func Register(g *echo.Group) {
	g.POST("/style", Style)
}

// Style produces a writing-style analysis for a profile
func Style(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "analyze_handler.Style")
	defer span.End()

	var req models.AnalyzeStyleRequest
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

	result, err := svc.AnalyzeStyle(ctx, req.Platform, req.Identity)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrMissingIdentity):
			return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, profile.ErrNoPosts),
			errors.Is(err, agents.ErrMalformedResponse),
			errors.Is(err, watsonx.ErrEmptyGeneration):
			return httperror.NewHTTPError(http.StatusBadGateway, err.Error())
		default:
			return httperror.NewHTTPError(http.StatusInternalServerError, "style analysis failed")
		}
	}

	return c.JSON(http.StatusOK, result)
}
