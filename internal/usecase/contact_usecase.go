// Package usecase contains the application-specific business rules.
package usecase

import "context"

// ContactRequest is one contact-form submission. Validation tags are
// enforced before anything is sent: the email check is a basic pattern
// only, matching the advisory client-side validation of the storefront.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Details string `json:"details" validate:"required"`
}

// ContactUsecase forwards contact requests through the email relay.
type ContactUsecase interface {
	// Submit validates the request and sends it, one attempt per call.
	Submit(ctx context.Context, req ContactRequest) error
}
