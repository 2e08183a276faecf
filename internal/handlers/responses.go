package handlers

import (
	"github.com/cureplus/website/internal/domain"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HospitalSummaryResponse is the DTO for one hospital in a listing.
type HospitalSummaryResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	Slug         string `json:"slug"`
	PublicURL    string `json:"public_url"`
	InternalPath string `json:"internal_path"`
}

// NewHospitalSummaryResponse creates the DTO from a summary and its slug.
func NewHospitalSummaryResponse(s domain.HospitalSummary, slug, baseURL string) HospitalSummaryResponse {
	return HospitalSummaryResponse{
		ID:           s.ID,
		Name:         s.Name,
		Image:        s.Image,
		Slug:         slug,
		PublicURL:    baseURL + domain.PublicPath(slug),
		InternalPath: domain.InternalPath(s.ID),
	}
}

// HospitalDetailResponse is the full record plus its public address.
type HospitalDetailResponse struct {
	domain.HospitalDetail
	Slug      string `json:"slug"`
	PublicURL string `json:"public_url"`
}
