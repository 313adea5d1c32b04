// Package service defines interfaces for external collaborators of the
// domain.
package service

import "context"

// Mailer hands a flat string-keyed payload to the external email relay.
// The keys are a contract with the relay's template system and must remain
// flat strings. A nil return means the relay accepted the message; the
// domain neither knows nor cares how delivery happens after that.
type Mailer interface {
	Send(ctx context.Context, templateID string, params map[string]string) error
}
