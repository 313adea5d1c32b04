package impl

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"

	"bakehouse/config"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/service"
	"bakehouse/internal/usecase"
)

type contactService struct {
	mailer   service.Mailer
	cfg      *config.Config
	logger   *slog.Logger
	validate *validator.Validate
}

// ContactServiceParams holds dependencies for the contact service, injected by Fx.
type ContactServiceParams struct {
	fx.In

	Mailer service.Mailer
	Config *config.Config
	Logger *slog.Logger
}

// NewContactService creates the contact usecase.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		mailer:   params.Mailer,
		cfg:      params.Config,
		logger:   params.Logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (srv *contactService) Submit(ctx context.Context, req usecase.ContactRequest) error {
	if err := srv.validate.Struct(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	params := map[string]string{
		"contact_name":    req.Name,
		"contact_email":   req.Email,
		"contact_details": req.Details,
	}

	if err := srv.mailer.Send(ctx, srv.cfg.Mail.ContactTemplateID, params); err != nil {
		srv.logger.Warn("contact submission failed", "error", err)

		return domainerrors.ErrMailDelivery.WithDetails(err.Error())
	}

	srv.logger.Info("contact request sent", "name", req.Name)

	return nil
}
