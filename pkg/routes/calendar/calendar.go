// Package calendar exposes the content calendar endpoint
package calendar

import (
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/yashwanth-3000/content--hub/pkg/generator"
	"github.com/yashwanth-3000/content--hub/pkg/models"
	"github.com/yashwanth-3000/content--hub/pkg/tracing"
)

var validate = validator.New()

// Register registers calendar routes
func Register(g *echo.Group) {
	g.POST("", Generate)
}

// Generate builds a per-day content plan starting today
func Generate(c echo.Context) error {
	ctx := c.Request().Context()
	_, span := tracing.StartSpan(ctx, "calendar_handler.Generate")
	defer span.End()

	var req models.CalendarRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.TwitterUsername == "" && req.InstagramUsername == "" && req.LinkedInURL == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "at least one account handle is required")
	}

	return c.JSON(http.StatusOK, generator.BuildCalendar(req, time.Now()))
}
