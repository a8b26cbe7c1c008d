package handler

import (
	"strings"

	"natid/internal/nationalid/service"
	dErrors "natid/pkg/domain-errors"
)

const maxNumberLength = 64

// Request is the HTTP request body shared by format, generate and validate.
// Unsupported country/type codes are not rejected; they yield empty results.
type Request struct {
	Country string `json:"country"`
	Type    string `json:"type"`
	Region  string `json:"region,omitempty"`
	Number  string `json:"number,omitempty"`
}

// Validate enforces size limits and trims whitespace.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *Request) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	// Size validation (fail fast)
	if len(r.Number) > maxNumberLength {
		return dErrors.New(dErrors.CodeValidation, "number must be at most 64 characters")
	}
	r.Country = strings.TrimSpace(r.Country)
	r.Type = strings.TrimSpace(r.Type)
	r.Region = strings.TrimSpace(r.Region)
	return nil
}

// ServiceRequest converts the body into a service request.
func (r *Request) ServiceRequest() service.Request {
	return service.ParseRequest(r.Country, r.Type, r.Region, r.Number)
}

// GenerateRequest is the HTTP request body for POST /v1/national-ids/generate.
type GenerateRequest struct {
	Request
	Count     int  `json:"count,omitempty"`
	Formatted bool `json:"formatted,omitempty"`
}

// Validate checks the embedded request and the batch size.
func (r *GenerateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := r.Request.Validate(); err != nil {
		return err
	}
	if r.Count < 0 || r.Count > service.MaxBatchSize {
		return dErrors.New(dErrors.CodeValidation, "count must be between 1 and 100")
	}
	if r.Count == 0 {
		r.Count = 1
	}
	return nil
}
