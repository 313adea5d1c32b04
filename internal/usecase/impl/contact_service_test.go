package impl

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/usecase"
)

func newTestContactService(t *testing.T) (usecase.ContactUsecase, *stubMailer) {
	t.Helper()

	mailer := &stubMailer{}
	service := NewContactService(ContactServiceParams{
		Mailer: mailer,
		Config: testConfig(),
		Logger: slog.New(slog.DiscardHandler),
	})

	return service, mailer
}

func TestContactService_Submit(t *testing.T) {
	service, mailer := newTestContactService(t)

	err := service.Submit(context.Background(), usecase.ContactRequest{
		Name:    "Dana Webb",
		Email:   "dana@example.com",
		Details: "Do you deliver to the north side on Sundays?",
	})
	require.NoError(t, err)

	require.Equal(t, 1, mailer.sent())
	assert.Equal(t, []string{"template_contact"}, mailer.templates)
	params := mailer.params[0]
	assert.Equal(t, "Dana Webb", params["contact_name"])
	assert.Equal(t, "dana@example.com", params["contact_email"])
	assert.Equal(t, "Do you deliver to the north side on Sundays?", params["contact_details"])
}

func TestContactService_SubmitMissingFields(t *testing.T) {
	service, mailer := newTestContactService(t)

	err := service.Submit(context.Background(), usecase.ContactRequest{Email: "dana@example.com"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Zero(t, mailer.sent())
}

func TestContactService_SubmitInvalidEmail(t *testing.T) {
	service, mailer := newTestContactService(t)

	err := service.Submit(context.Background(), usecase.ContactRequest{
		Name:    "Dana Webb",
		Email:   "not-an-email",
		Details: "Hello",
	})
	require.Error(t, err)
	assert.Zero(t, mailer.sent())
}

func TestContactService_SubmitRelayFailure(t *testing.T) {
	service, mailer := newTestContactService(t)
	mailer.err = assert.AnError

	err := service.Submit(context.Background(), usecase.ContactRequest{
		Name:    "Dana Webb",
		Email:   "dana@example.com",
		Details: "Hello",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.HTTPCode())
}
