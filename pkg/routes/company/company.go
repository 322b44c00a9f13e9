// Package company exposes the company directory endpoints. The response
// envelopes match the shapes the directory UI consumes.
package company

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/yashwanth-3000/content--hub/pkg/graph"
	"github.com/yashwanth-3000/content--hub/pkg/models"
	"github.com/yashwanth-3000/content--hub/pkg/tracing"
)

// Directory is the company store the handlers resolve from the container
type Directory interface {
	List(ctx context.Context) ([]models.Company, int, error)
	Create(ctx context.Context, req models.CreateCompanyRequest) (*models.Company, error)
}

// Register registers company directory routes
func Register(g *echo.Group) {
	g.GET("", List)
	g.POST("", Create)
}

// List returns every company sorted by name
func List(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "company_handler.List")
	defer span.End()

	ctx, store, err := ectoinject.GetContext[Directory](ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.CompanyCreateResponse{
			Message: "Internal server error",
			Success: false,
			Error:   err.Error(),
		})
	}

	companies, total, err := store.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.CompanyCreateResponse{
			Message: "Internal server error",
			Success: false,
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.CompanyListResponse{
		Total:     total,
		Companies: companies,
	})
}

// Create adds a company unless one with the same name exists
func Create(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "company_handler.Create")
	defer span.End()

	var req models.CreateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.CompanyCreateResponse{
			Message: "Invalid request body",
			Success: false,
			Error:   err.Error(),
		})
	}

	ctx, store, err := ectoinject.GetContext[Directory](ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.CompanyCreateResponse{
			Message: "Internal server error",
			Success: false,
			Error:   err.Error(),
		})
	}

	created, err := store.Create(ctx, req)
	if err != nil {
		if errors.Is(err, graph.ErrDuplicateCompany) {
			return c.JSON(http.StatusConflict, models.CompanyCreateResponse{
				Message: fmt.Sprintf("Company with name %q already exists", req.Name),
				Success: false,
				Error:   "DUPLICATE_COMPANY",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.CompanyCreateResponse{
			Message: "Internal server error",
			Success: false,
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, models.CompanyCreateResponse{
		Message: "Company added successfully",
		Success: true,
		Company: created,
	})
}
