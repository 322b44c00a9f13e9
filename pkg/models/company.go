package models

// Company is a node in the company directory graph
type Company struct {
	ElementID   string `json:"elementId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoURLs    string `json:"logo_urls"`
	CreatedAt   string `json:"created_at"`
}

// CreateCompanyRequest is the request body for creating a company. Missing
// fields receive documented defaults instead of failing validation.
type CreateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoURLs    string `json:"logo_urls"`
}

// CompanyListResponse mirrors the directory listing payload
type CompanyListResponse struct {
	Total     int       `json:"total"`
	Companies []Company `json:"companies"`
}

// CompanyCreateResponse mirrors the creation payload
type CompanyCreateResponse struct {
	Message string   `json:"message"`
	Success bool     `json:"success"`
	Company *Company `json:"company,omitempty"`
	Error   string   `json:"error,omitempty"`
}
