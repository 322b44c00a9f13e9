package company

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashwanth-3000/content--hub/pkg/graph"
	"github.com/yashwanth-3000/content--hub/pkg/models"
)

type fakeDirectory struct {
	companies []models.Company
	listErr   error
}

func (f *fakeDirectory) List(_ context.Context) ([]models.Company, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.companies, len(f.companies), nil
}

func (f *fakeDirectory) Create(_ context.Context, req models.CreateCompanyRequest) (*models.Company, error) {
	for _, existing := range f.companies {
		if existing.Name == req.Name {
			return nil, graph.ErrDuplicateCompany
		}
	}
	company := models.Company{
		ElementID:   "company_1718000000000_abc123def",
		Name:        req.Name,
		Description: req.Description,
		LogoURLs:    req.LogoURLs,
		CreatedAt:   "2025-06-10T12:00:00Z",
	}
	f.companies = append(f.companies, company)
	return &company, nil
}

func newTestServer(t *testing.T, directory *fakeDirectory) *echo.Echo {
	t.Helper()

	container := ectoinject.GetDefaultContainer()
	if container == nil {
		var err error
		container, err = ectoinject.NewDIDefaultContainer()
		require.NoError(t, err)
	}
	require.NoError(t, ectoinject.RegisterInstance[Directory](container, directory))

	e := echo.New()
	Register(e.Group("/api/companies"))
	return e
}

func TestCreateCompany(t *testing.T) {
	e := newTestServer(t, &fakeDirectory{})

	req := httptest.NewRequest(http.MethodPost, "/api/companies", strings.NewReader(`{"name": "Acme Corp", "description": "We make anvils"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.CompanyCreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Company added successfully", resp.Message)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Company)
	assert.Equal(t, "Acme Corp", resp.Company.Name)
	assert.Empty(t, resp.Error)
}

func TestCreateCompanyDuplicate(t *testing.T) {
	e := newTestServer(t, &fakeDirectory{
		companies: []models.Company{{Name: "Acme Corp"}},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/companies", strings.NewReader(`{"name": "Acme Corp"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp models.CompanyCreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, `Company with name "Acme Corp" already exists`, resp.Message)
	assert.False(t, resp.Success)
	assert.Equal(t, "DUPLICATE_COMPANY", resp.Error)
	assert.Nil(t, resp.Company)
}

func TestListCompanies(t *testing.T) {
	e := newTestServer(t, &fakeDirectory{
		companies: []models.Company{
			{Name: "Acme Corp"},
			{Name: "Globex"},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CompanyListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Companies, 2)
	assert.Equal(t, "Acme Corp", resp.Companies[0].Name)
}

func TestListCompaniesStoreFailure(t *testing.T) {
	e := newTestServer(t, &fakeDirectory{listErr: errors.New("graph unavailable")})

	req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.CompanyCreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp.Message)
	assert.False(t, resp.Success)
}
