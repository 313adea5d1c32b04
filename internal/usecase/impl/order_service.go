// Package impl provides the implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"bakehouse/config"
	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/order"
	"bakehouse/internal/domain/repository"
	"bakehouse/internal/domain/service"
	"bakehouse/internal/usecase"
)

// submitFailedMessage is the single user-facing retry message every
// transport failure collapses to.
const submitFailedMessage = "Something went wrong while sending your order. Please try again."

type orderService struct {
	sessions        repository.SessionRepository
	catalog         repository.CatalogRepository
	mailer          service.Mailer
	cfg             *config.Config
	logger          *slog.Logger
	deliveryMinimum decimal.Decimal
	now             func() time.Time
}

// OrderServiceParams holds dependencies for the order service, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Sessions repository.SessionRepository
	Catalog  repository.CatalogRepository
	Mailer   service.Mailer
	Config   *config.Config
	Logger   *slog.Logger
}

// NewOrderService creates the order usecase. It fails loudly when the
// catalog carries no menus at all, since the order flow cannot exist
// without one, or when the delivery minimum does not parse.
func NewOrderService(params OrderServiceParams) (usecase.OrderUsecase, error) {
	if len(params.Catalog.Menus()) == 0 {
		return nil, errors.New("no menus configured")
	}

	minimum, err := decimal.NewFromString(params.Config.Order.DeliveryMinimum)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid delivery minimum %q", params.Config.Order.DeliveryMinimum)
	}

	return &orderService{
		sessions:        params.Sessions,
		catalog:         params.Catalog,
		mailer:          params.Mailer,
		cfg:             params.Config,
		logger:          params.Logger,
		deliveryMinimum: minimum,
		now:             time.Now,
	}, nil
}

// resolveMenu maps the stored selection to a real catalog entry, falling
// back to the first menu when the selection is unset or invalid.
func (srv *orderService) resolveMenu(state entity.OrderState) entity.Menu {
	if menu, err := srv.catalog.MenuByID(state.SelectedMenuID); err == nil {
		return menu
	}

	return srv.catalog.Menus()[0]
}

func (srv *orderService) view(id uuid.UUID, state entity.OrderState) *usecase.OrderView {
	menu := srv.resolveMenu(state)
	subtotal := order.Subtotal(state.LineItems)
	errs := order.Validate(state, subtotal, srv.deliveryMinimum)

	return &usecase.OrderView{
		SessionID:       id.String(),
		State:           state,
		SelectedMenu:    menu,
		MenuStatus:      order.MenuAvailability(menu, srv.now()),
		Subtotal:        subtotal,
		SubtotalDisplay: order.FormatMoney(subtotal),
		ItemCount:       len(state.LineItems),
		Errors:          errs,
		VisibleErrors:   order.Visible(state, errs),
		CanAdd:          order.CanAdd(menu, state),
		Submittable:     order.Submittable(state, errs),
		ShowEmptyHint:   state.CheckoutAttempted && !state.HasItems(),
	}
}

// update runs a transition atomically against the stored session state and
// derives the fresh view.
func (srv *orderService) update(ctx context.Context, id uuid.UUID, apply func(entity.OrderState) (entity.OrderState, error)) (*usecase.OrderView, error) {
	state, err := srv.sessions.Update(ctx, id, apply)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, err
	}

	return srv.view(id, state), nil
}

// apply is the common case: reduce a fixed action sequence.
func (srv *orderService) apply(ctx context.Context, id uuid.UUID, actions ...order.Action) (*usecase.OrderView, error) {
	return srv.update(ctx, id, func(state entity.OrderState) (entity.OrderState, error) {
		for _, action := range actions {
			state = order.Reduce(state, action)
		}

		return state, nil
	})
}

func (srv *orderService) StartSession(ctx context.Context, menuParam string) (*usecase.OrderView, error) {
	selected := srv.catalog.Menus()[0].ID
	scrollTo := ""
	if _, err := srv.catalog.MenuByID(menuParam); err == nil {
		selected = menuParam
		scrollTo = menuParam
	}

	state := order.Initial(selected)
	// A valid deep link scrolls to its menu exactly once per page load.
	state.ScrollTo = scrollTo

	id, err := srv.sessions.Create(ctx, state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order session")
	}

	srv.logger.Debug("order session started", "sessionID", id, "menu", selected)

	return srv.view(id, state), nil
}

func (srv *orderService) GetSession(ctx context.Context, id uuid.UUID) (*usecase.OrderView, error) {
	state, err := srv.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, err
	}

	if state.ScrollTo == "" {
		return srv.view(id, state), nil
	}

	// Consume the one-shot scroll target but report it in this view.
	scrollTo := state.ScrollTo
	next, err := srv.sessions.Update(ctx, id, func(st entity.OrderState) (entity.OrderState, error) {
		return order.Reduce(st, order.ClearScrollTarget{}), nil
	})
	if err != nil {
		return nil, err
	}

	view := srv.view(id, next)
	view.State.ScrollTo = scrollTo

	return view, nil
}

func (srv *orderService) EndSession(ctx context.Context, id uuid.UUID) error {
	if err := srv.sessions.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrSessionNotFound
		}

		return err
	}

	return nil
}

func (srv *orderService) SelectMenu(ctx context.Context, id uuid.UUID, menuID string, confirm bool) (*usecase.OrderView, error) {
	if _, err := srv.catalog.MenuByID(menuID); err != nil {
		return nil, domainerrors.ErrMenuNotFound
	}

	return srv.update(ctx, id, func(state entity.OrderState) (entity.OrderState, error) {
		if state.SelectedMenuID == menuID {
			return state, nil
		}
		if state.HasItems() && !confirm {
			return state, domainerrors.ErrCartConfirmationRequired
		}
		if state.HasItems() {
			state = order.Reduce(state, order.ClearCart{})
		}

		return order.Reduce(state, order.SelectMenu{MenuID: menuID}), nil
	})
}

func (srv *orderService) SetOrderType(ctx context.Context, id uuid.UUID, orderType entity.OrderType) (*usecase.OrderView, error) {
	if !orderType.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown order type")
	}

	return srv.apply(ctx, id, order.SetOrderType{OrderType: orderType})
}

func (srv *orderService) ResetOrderType(ctx context.Context, id uuid.UUID) (*usecase.OrderView, error) {
	return srv.apply(ctx, id, order.ResetOrderType{})
}

func (srv *orderService) ToggleItem(ctx context.Context, id uuid.UUID, itemID string) (*usecase.OrderView, error) {
	return srv.update(ctx, id, func(state entity.OrderState) (entity.OrderState, error) {
		if state.DraftItemID == itemID {
			return order.Reduce(state, order.CloseDraft()), nil
		}

		menu := srv.resolveMenu(state)
		item, ok := menu.ItemByID(itemID)
		if !ok {
			return state, domainerrors.ErrInvalidInput.WithDetails("item does not belong to the selected menu")
		}

		return order.Reduce(state, order.OpenDraft(item)), nil
	})
}

func (srv *orderService) UpdateDraft(ctx context.Context, id uuid.UUID, patch order.UpdateDraft) (*usecase.OrderView, error) {
	return srv.apply(ctx, id, patch)
}

func (srv *orderService) AddDraftItem(ctx context.Context, id uuid.UUID) (*usecase.OrderView, error) {
	return srv.update(ctx, id, func(state entity.OrderState) (entity.OrderState, error) {
		menu := srv.resolveMenu(state)
		if order.MenuAvailability(menu, srv.now()) != entity.StatusAvailable {
			return state, domainerrors.ErrMenuNotOrderable
		}

		if !order.CanAdd(menu, state) {
			item, ok := menu.ItemByID(state.DraftItemID)
			if ok && item.Kind == entity.KindFlavor && state.DraftFlavor == "" {
				// Missing flavor surfaces an inline prompt, never an error.
				return order.Reduce(state, order.RejectDraft{Message: order.FlavorRequiredMessage}), nil
			}

			return state, nil
		}

		line, ok := order.BuildDraftLine(menu, state)
		if !ok {
			return state, nil
		}

		return order.Reduce(state, order.AddLineItem{Line: line}), nil
	})
}

func (srv *orderService) EditLine(ctx context.Context, id uuid.UUID, lineID string, fromCheckout bool) (*usecase.OrderView, error) {
	return srv.update(ctx, id, func(state entity.OrderState) (entity.OrderState, error) {
		if _, ok := state.LineByID(lineID); !ok {
			return state, domainerrors.ErrLineNotFound
		}
		if fromCheckout {
			state = order.Reduce(state, order.SetCheckoutOpen{Open: false})
		}

		return order.Reduce(state, order.EditLineItem{LineID: lineID}), nil
	})
}

func (srv *orderService) RemoveLine(ctx context.Context, id uuid.UUID, lineID string) (*usecase.OrderView, error) {
	return srv.apply(ctx, id, order.RemoveLineItem{LineID: lineID})
}

func (srv *orderService) SetMatrixQuantity(ctx context.Context, id uuid.UUID, rowID, columnID string, quantity int) (*usecase.OrderView, error) {
	return srv.update(ctx, id, func(state entity.OrderState) (entity.OrderState, error) {
		menu := srv.resolveMenu(state)
		if err := validateMatrixCell(menu, rowID, columnID); err != nil {
			return state, err
		}

		key := entity.MatrixKey{MenuID: menu.ID, RowID: rowID, ColumnID: columnID}

		return order.Reduce(state, order.SetMatrixQuantity{Key: key, Quantity: quantity}), nil
	})
}

func (srv *orderService) AddMatrixSelections(ctx context.Context, id uuid.UUID, rowID string) (*usecase.OrderView, error) {
	return srv.update(ctx, id, func(state entity.OrderState) (entity.OrderState, error) {
		menu := srv.resolveMenu(state)
		if menu.Matrix == nil {
			return state, domainerrors.ErrInvalidInput.WithDetails("selected menu has no matrix")
		}
		if order.MenuAvailability(menu, srv.now()) != entity.StatusAvailable {
			return state, domainerrors.ErrMenuNotOrderable
		}

		selections := order.CollectMatrixSelections(menu, state.MatrixQuantities, rowID)
		for _, selection := range selections {
			line := order.BuildMatrixLine(menu, selection)
			state = order.Reduce(state, order.AddLineItem{Line: line})
		}
		for _, selection := range selections {
			key := entity.MatrixKey{MenuID: menu.ID, RowID: selection.RowID, ColumnID: selection.ColumnID}
			state = order.Reduce(state, order.SetMatrixQuantity{Key: key, Quantity: 0})
		}

		return state, nil
	})
}

func (srv *orderService) OpenCheckout(ctx context.Context, id uuid.UUID) (*usecase.OrderView, error) {
	return srv.update(ctx, id, func(state entity.OrderState) (entity.OrderState, error) {
		if !state.HasItems() {
			return order.Reduce(state, order.SetCheckoutAttempted{Attempted: true}), nil
		}

		return order.Reduce(state, order.SetCheckoutOpen{Open: true}), nil
	})
}

func (srv *orderService) CloseCheckout(ctx context.Context, id uuid.UUID) (*usecase.OrderView, error) {
	return srv.update(ctx, id, func(state entity.OrderState) (entity.OrderState, error) {
		return order.Reduce(state, order.SetCheckoutOpen{
			Open:        false,
			ResetStatus: state.Status == entity.SubmitSucceeded,
		}), nil
	})
}

func (srv *orderService) UpdateFulfillment(ctx context.Context, id uuid.UUID, patch order.SetFulfillment) (*usecase.OrderView, error) {
	if patch.Type != nil && !patch.Type.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown fulfillment type")
	}
	if patch.Touch != "" && !patch.Touch.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown field")
	}

	return srv.apply(ctx, id, patch)
}

func (srv *orderService) UpdateCustomer(ctx context.Context, id uuid.UUID, patch order.SetCustomer) (*usecase.OrderView, error) {
	if patch.ContactMethod != nil && !patch.ContactMethod.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown contact method")
	}
	if patch.Touch != "" && !patch.Touch.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown field")
	}

	return srv.apply(ctx, id, patch)
}

func (srv *orderService) SetNotes(ctx context.Context, id uuid.UUID, notes string) (*usecase.OrderView, error) {
	return srv.apply(ctx, id, order.SetNotes{Notes: notes})
}

func (srv *orderService) TouchField(ctx context.Context, id uuid.UUID, field entity.TouchedField) (*usecase.OrderView, error) {
	if !field.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown field")
	}

	return srv.apply(ctx, id, order.SetFulfillment{Touch: field})
}

func (srv *orderService) Submit(ctx context.Context, id uuid.UUID) (*usecase.OrderView, error) {
	var (
		eligible bool
		payload  map[string]string
	)

	view, err := srv.update(ctx, id, func(state entity.OrderState) (entity.OrderState, error) {
		subtotal := order.Subtotal(state.LineItems)
		errs := order.Validate(state, subtotal, srv.deliveryMinimum)

		if state.Status == entity.SubmitInFlight || !order.Submittable(state, errs) {
			eligible = false

			return order.Reduce(state, order.SubmitError{}), nil
		}

		eligible = true
		menu := srv.resolveMenu(state)
		state = order.Reduce(state, order.SubmitStart{})
		payload = order.BuildPayload(state, menu.Title)

		return state, nil
	})
	if err != nil {
		return nil, err
	}
	if !eligible {
		return view, nil
	}

	// Exactly one attempt per call; no retries, no partial failures.
	sendErr := srv.mailer.Send(ctx, srv.cfg.Mail.OrderTemplateID, payload)
	if sendErr != nil {
		srv.logger.Warn("order submission failed", "sessionID", id, "error", sendErr)

		return srv.apply(ctx, id, order.SubmitError{Message: submitFailedMessage})
	}

	srv.logger.Info("order submitted", "sessionID", id)

	return srv.apply(ctx, id, order.SubmitSuccess{})
}

func validateMatrixCell(menu entity.Menu, rowID, columnID string) error {
	if menu.Matrix == nil {
		return domainerrors.ErrInvalidInput.WithDetails("selected menu has no matrix")
	}

	rowOK := false
	for _, row := range menu.Matrix.Rows {
		if row.ID == rowID {
			rowOK = true

			break
		}
	}
	columnOK := false
	for _, column := range menu.Matrix.Columns {
		if column.ID == columnID {
			columnOK = true

			break
		}
	}
	if !rowOK || !columnOK {
		return domainerrors.ErrInvalidInput.WithDetails("unknown matrix cell")
	}

	return nil
}
