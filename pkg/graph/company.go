package graph

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yashwanth-3000/content--hub/pkg/models"
	"github.com/yashwanth-3000/content--hub/pkg/tracing"
)

// ErrDuplicateCompany is returned when a company with the same name exists
var ErrDuplicateCompany = errors.New("company already exists")

const (
	defaultCompanyName = "New Company"
	defaultDescription = "Description pending"
	defaultLogoURL     = "/placeholder.svg"

	elementIDCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// CompanyStore manages Company nodes in the graph database
type CompanyStore struct {
	client *Client
	logger ectologger.Logger
}

// NewCompanyStore creates a new company store
func NewCompanyStore(client *Client, logger ectologger.Logger) *CompanyStore {
	return &CompanyStore{
		client: client,
		logger: logger,
	}
}

// List returns all companies ordered by name. A count query runs first and is
// logged so operators can spot directory growth.
func (s *CompanyStore) List(ctx context.Context) ([]models.Company, int, error) {
	ctx, span := tracing.StartSpan(ctx, "CompanyStore.List")
	defer span.End()

	result, err := s.client.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		countResult, err := tx.Run(ctx, "MATCH (c:Company) RETURN count(c) AS count", nil)
		if err != nil {
			return nil, err
		}
		countRecord, err := countResult.Single(ctx)
		if err != nil {
			return nil, err
		}
		countValue, _ := countRecord.Get("count")
		total := int(countValue.(int64))

		s.logger.WithContext(ctx).Infof("Total companies in database: %d", total)

		listResult, err := tx.Run(ctx, "MATCH (c:Company) RETURN c ORDER BY c.name", nil)
		if err != nil {
			return nil, err
		}

		companies := make([]models.Company, 0)
		for listResult.Next(ctx) {
			nodeValue, ok := listResult.Record().Get("c")
			if !ok {
				continue
			}
			node, ok := nodeValue.(neo4j.Node)
			if !ok {
				continue
			}
			companies = append(companies, companyFromProps(node.Props))
		}
		if err := listResult.Err(); err != nil {
			return nil, err
		}

		return &companyListResult{Total: total, Companies: companies}, nil
	})
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("failed to list companies")
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}

	listing := result.(*companyListResult)
	return listing.Companies, listing.Total, nil
}

type companyListResult struct {
	Total     int
	Companies []models.Company
}

// Create adds a company node after checking for a duplicate name. Missing
// fields receive the documented defaults.
func (s *CompanyStore) Create(ctx context.Context, req models.CreateCompanyRequest) (*models.Company, error) {
	ctx, span := tracing.StartSpan(ctx, "CompanyStore.Create")
	defer span.End()

	name := req.Name
	if name == "" {
		name = defaultCompanyName
	}
	description := req.Description
	if description == "" {
		description = defaultDescription
	}
	logoURLs := req.LogoURLs
	if logoURLs == "" {
		logoURLs = defaultLogoURL
	}

	elementID := newElementID()
	createdAt := time.Now().UTC().Format(time.RFC3339)

	result, err := s.client.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		checkResult, err := tx.Run(ctx, "MATCH (c:Company {name: $name}) RETURN c", map[string]any{
			"name": req.Name,
		})
		if err != nil {
			return nil, err
		}
		if checkResult.Next(ctx) {
			return nil, ErrDuplicateCompany
		}
		if err := checkResult.Err(); err != nil {
			return nil, err
		}

		createResult, err := tx.Run(ctx, `
			CREATE (c:Company {
				elementId: $elementId,
				name: $name,
				description: $description,
				logo_urls: $logo_urls,
				created_at: $created_at
			})
			RETURN c
		`, map[string]any{
			"elementId":   elementID,
			"name":        name,
			"description": description,
			"logo_urls":   logoURLs,
			"created_at":  createdAt,
		})
		if err != nil {
			return nil, err
		}

		record, err := createResult.Single(ctx)
		if err != nil {
			return nil, err
		}
		nodeValue, _ := record.Get("c")
		node, ok := nodeValue.(neo4j.Node)
		if !ok {
			return nil, fmt.Errorf("unexpected create result type %T", nodeValue)
		}

		company := companyFromProps(node.Props)
		return &company, nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateCompany) {
			return nil, err
		}
		s.logger.WithContext(ctx).WithError(err).Error("failed to create company")
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	company := result.(*models.Company)
	s.logger.WithContext(ctx).WithField("name", company.Name).Info("created company")
	return company, nil
}

func companyFromProps(props map[string]any) models.Company {
	company := models.Company{}
	if v, ok := props["elementId"].(string); ok {
		company.ElementID = v
	}
	if v, ok := props["name"].(string); ok {
		company.Name = v
	}
	if v, ok := props["description"].(string); ok {
		company.Description = v
	}
	if v, ok := props["logo_urls"].(string); ok {
		company.LogoURLs = v
	}
	if v, ok := props["created_at"].(string); ok {
		company.CreatedAt = v
	}
	return company
}

func newElementID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = elementIDCharset[rand.Intn(len(elementIDCharset))]
	}
	return fmt.Sprintf("company_%d_%s", time.Now().UnixMilli(), suffix)
}
