// Package mail delivers transactional mail through the EmailJS REST relay.
// The storefront has no SMTP of its own; every order and contact request is
// rendered by an EmailJS template on the relay side.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"bakehouse/config"
	"bakehouse/internal/domain/service"
)

type emailJSService struct {
	client    *http.Client
	baseURL   string
	serviceID string
	publicKey string
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// NewEmailJSService creates a mailer backed by the EmailJS send endpoint.
func NewEmailJSService(cfg *config.Config) service.Mailer {
	return &emailJSService{
		client:    &http.Client{Timeout: cfg.Mail.Timeout},
		baseURL:   cfg.Mail.BaseURL,
		serviceID: cfg.Mail.ServiceID,
		publicKey: cfg.Mail.PublicKey,
	}
}

func (s *emailJSService) Send(ctx context.Context, templateID string, params map[string]string) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      s.serviceID,
		TemplateID:     templateID,
		UserID:         s.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode mail request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build mail request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach mail relay")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// EmailJS answers failures with a short plain-text reason.
		reason, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("mail relay rejected request: %s: %s", resp.Status, string(reason))
	}

	return nil
}
