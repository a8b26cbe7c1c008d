package handler

import "natid/internal/nationalid/models"

// FormatResponse is the HTTP response for POST /v1/national-ids/format.
type FormatResponse struct {
	Formatted string `json:"formatted"`
}

// GenerateResponse is the HTTP response for POST /v1/national-ids/generate.
// Number repeats the first element of Numbers.
type GenerateResponse struct {
	Number  string   `json:"number"`
	Numbers []string `json:"numbers"`
}

// ValidateResponse is the HTTP response for POST /v1/national-ids/validate.
// Code is the numeric error kind; 0 does not imply success.
type ValidateResponse struct {
	Success          bool   `json:"success"`
	Code             int    `json:"code"`
	Error            string `json:"error"`
	NormalizedNumber string `json:"normalized_number"`
	Region           string `json:"region"`
}

// RegionsResponse is the HTTP response for GET /v1/national-ids/regions.
type RegionsResponse struct {
	Country string   `json:"country"`
	Type    string   `json:"type"`
	Regions []string `json:"regions"`
}

// FromOutcome converts a validation outcome to an HTTP response.
func FromOutcome(out models.ValidationOutcome) *ValidateResponse {
	return &ValidateResponse{
		Success:          out.Valid,
		Code:             int(out.ErrorKind),
		Error:            out.ErrorKind.String(),
		NormalizedNumber: out.NormalizedNumber,
		Region:           out.Region,
	}
}
