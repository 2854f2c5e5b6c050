package client

import (
	"time"

	"github.com/audient-hq/audient-backend/internal/pkg/validator"
)

type CreateClientRequest struct {
	ClientName            string  `json:"client_name"`
	ClientCode            string  `json:"client_code"`
	IndustrySector        *string `json:"industry_sector"`
	CompanySize           *string `json:"company_size"`
	HeadquartersLocation  *string `json:"headquarters_location"`
	PrimaryOfficeLocation *string `json:"primary_office_location"`
	WebsiteDomain         *string `json:"website_domain"`
	ClientTier            *string `json:"client_tier"`
}

func (r *CreateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientName) {
		errs = append(errs, validator.ValidationError{Field: "client_name", Message: "client_name is required"})
	}
	if validator.IsEmpty(r.ClientCode) {
		errs = append(errs, validator.ValidationError{Field: "client_code", Message: "client_code is required"})
	}
	if r.ClientTier != nil && !validator.IsInSlice(*r.ClientTier, []string{string(TierStrategic), string(TierNormal), string(TierLowTouch)}) {
		errs = append(errs, validator.ValidationError{Field: "client_tier", Message: "client_tier must be 'Strategic', 'Normal' or 'Low Touch'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateClientRequest is a partial update: nil fields keep their stored value.
type UpdateClientRequest struct {
	ClientName            *string `json:"client_name"`
	IndustrySector        *string `json:"industry_sector"`
	CompanySize           *string `json:"company_size"`
	HeadquartersLocation  *string `json:"headquarters_location"`
	PrimaryOfficeLocation *string `json:"primary_office_location"`
	WebsiteDomain         *string `json:"website_domain"`
	ClientTier            *string `json:"client_tier"`
	EngagementHealth      *string `json:"engagement_health"`
	IsActive              *bool   `json:"is_active"`
}

func (r *UpdateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ClientName != nil && validator.IsEmpty(*r.ClientName) {
		errs = append(errs, validator.ValidationError{Field: "client_name", Message: "client_name cannot be empty"})
	}
	if r.ClientTier != nil && !validator.IsInSlice(*r.ClientTier, []string{string(TierStrategic), string(TierNormal), string(TierLowTouch)}) {
		errs = append(errs, validator.ValidationError{Field: "client_tier", Message: "client_tier must be 'Strategic', 'Normal' or 'Low Touch'"})
	}
	if r.EngagementHealth != nil && !validator.IsInSlice(*r.EngagementHealth, []string{string(HealthGood), string(HealthNeutral), string(HealthRisk)}) {
		errs = append(errs, validator.ValidationError{Field: "engagement_health", Message: "engagement_health must be 'Good', 'Neutral' or 'Risk'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateStakeholderRequest struct {
	ContactName     string  `json:"contact_name"`
	DesignationRole *string `json:"designation_role"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Notes           *string `json:"notes"`
}

func (r *CreateStakeholderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ContactName) {
		errs = append(errs, validator.ValidationError{Field: "contact_name", Message: "contact_name is required"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClientResponse struct {
	ID                    string  `json:"id"`
	UserID                string  `json:"user_id"`
	ClientName            string  `json:"client_name"`
	ClientCode            string  `json:"client_code"`
	IndustrySector        *string `json:"industry_sector"`
	CompanySize           *string `json:"company_size"`
	HeadquartersLocation  *string `json:"headquarters_location"`
	PrimaryOfficeLocation *string `json:"primary_office_location"`
	WebsiteDomain         *string `json:"website_domain"`
	ClientTier            Tier    `json:"client_tier"`
	EngagementHealth      Health  `json:"engagement_health"`
	IsActive              bool    `json:"is_active"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}

func NewClientResponse(c Client) ClientResponse {
	return ClientResponse{
		ID:                    c.ID,
		UserID:                c.UserID,
		ClientName:            c.ClientName,
		ClientCode:            c.ClientCode,
		IndustrySector:        c.IndustrySector,
		CompanySize:           c.CompanySize,
		HeadquartersLocation:  c.HeadquartersLocation,
		PrimaryOfficeLocation: c.PrimaryOfficeLocation,
		WebsiteDomain:         c.WebsiteDomain,
		ClientTier:            c.ClientTier,
		EngagementHealth:      c.EngagementHealth,
		IsActive:              c.IsActive,
		CreatedAt:             c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             c.UpdatedAt.Format(time.RFC3339),
	}
}

type StakeholderResponse struct {
	ID              string  `json:"id"`
	ClientID        string  `json:"client_id"`
	ContactName     string  `json:"contact_name"`
	DesignationRole *string `json:"designation_role"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Notes           *string `json:"notes"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

func NewStakeholderResponse(s Stakeholder) StakeholderResponse {
	return StakeholderResponse{
		ID:              s.ID,
		ClientID:        s.ClientID,
		ContactName:     s.ContactName,
		DesignationRole: s.DesignationRole,
		Email:           s.Email,
		Phone:           s.Phone,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}
}
