package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakehouse/config"
	"bakehouse/internal/usecase/impl"
)

type recordingMailer struct {
	mu        sync.Mutex
	templates []string
	params    []map[string]string
}

func (m *recordingMailer) Send(ctx context.Context, templateID string, params map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates = append(m.templates, templateID)
	m.params = append(m.params, params)

	return nil
}

func newTestContactHandler(mailer *recordingMailer) *ContactHandler {
	cfg := &config.Config{
		Mail: &config.MailConfig{ContactTemplateID: "template_contact"},
	}

	return NewContactHandler(impl.NewContactService(impl.ContactServiceParams{
		Mailer: mailer,
		Config: cfg,
		Logger: slog.New(slog.DiscardHandler),
	}))
}

func TestContactHandler_Submit(t *testing.T) {
	mailer := &recordingMailer{}
	handler := newTestContactHandler(mailer)

	e := echo.New()
	body := strings.NewReader(`{"name":"Dana Webb","email":"dana@example.com","details":"Do you ship trays?"}`)
	req := httptest.NewRequest(http.MethodPost, "/contact", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Submit(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your message has been sent.")

	require.Len(t, mailer.templates, 1)
	assert.Equal(t, "template_contact", mailer.templates[0])
	assert.Equal(t, "Dana Webb", mailer.params[0]["contact_name"])
}

func TestContactHandler_SubmitMissingFields(t *testing.T) {
	mailer := &recordingMailer{}
	handler := newTestContactHandler(mailer)

	e := echo.New()
	body := strings.NewReader(`{"name":"Dana Webb"}`)
	req := httptest.NewRequest(http.MethodPost, "/contact", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.Submit(e.NewContext(req, rec))
	require.Error(t, err)
	assert.Empty(t, mailer.templates)
}
