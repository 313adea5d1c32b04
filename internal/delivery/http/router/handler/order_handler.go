// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bakehouse/internal/delivery/http/response"
	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/order"
	"bakehouse/internal/usecase"
)

// OrderHandler exposes the order session flow. Every action endpoint
// answers with the full refreshed session view, so the client never has to
// derive state on its own.
type OrderHandler struct {
	orderUsecase usecase.OrderUsecase
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

func sessionID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithDetails("session id must be a UUID")
	}

	return id, nil
}

// StartSession handles POST /order/sessions
func (h *OrderHandler) StartSession(c echo.Context) error {
	view, err := h.orderUsecase.StartSession(c.Request().Context(), c.QueryParam("menu"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, view, "Order session created")
}

// GetSession handles GET /order/sessions/:id
func (h *OrderHandler) GetSession(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	view, err := h.orderUsecase.GetSession(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// EndSession handles DELETE /order/sessions/:id
func (h *OrderHandler) EndSession(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	if err := h.orderUsecase.EndSession(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Order session ended")
}

type selectMenuRequest struct {
	MenuID  string `json:"menu_id" validate:"required"`
	Confirm bool   `json:"confirm"`
}

// SelectMenu handles POST /order/sessions/:id/menu
func (h *OrderHandler) SelectMenu(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req selectMenuRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.orderUsecase.SelectMenu(c.Request().Context(), id, req.MenuID, req.Confirm)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

type orderTypeRequest struct {
	OrderType string `json:"order_type" validate:"required"`
}

// SetOrderType handles POST /order/sessions/:id/order-type
func (h *OrderHandler) SetOrderType(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req orderTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.orderUsecase.SetOrderType(c.Request().Context(), id, entity.OrderType(req.OrderType))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// ResetOrderType handles DELETE /order/sessions/:id/order-type
func (h *OrderHandler) ResetOrderType(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	view, err := h.orderUsecase.ResetOrderType(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

type toggleItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// ToggleItem handles POST /order/sessions/:id/items/toggle
func (h *OrderHandler) ToggleItem(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req toggleItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.orderUsecase.ToggleItem(c.Request().Context(), id, req.ItemID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

type updateDraftRequest struct {
	ItemID   *string `json:"item_id"`
	SizeID   *string `json:"size_id"`
	Quantity *int    `json:"quantity"`
	Flavor   *string `json:"flavor"`
	Notes    *string `json:"notes"`
}

// UpdateDraft handles PATCH /order/sessions/:id/draft
func (h *OrderHandler) UpdateDraft(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req updateDraftRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}

	view, err := h.orderUsecase.UpdateDraft(c.Request().Context(), id, order.UpdateDraft{
		ItemID:   req.ItemID,
		SizeID:   req.SizeID,
		Quantity: req.Quantity,
		Flavor:   req.Flavor,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AddDraftItem handles POST /order/sessions/:id/draft/commit
func (h *OrderHandler) AddDraftItem(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	view, err := h.orderUsecase.AddDraftItem(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

type editLineRequest struct {
	FromCheckout bool `json:"from_checkout"`
}

// EditLine handles POST /order/sessions/:id/lines/:lineID/edit
func (h *OrderHandler) EditLine(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req editLineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}

	view, err := h.orderUsecase.EditLine(c.Request().Context(), id, c.Param("lineID"), req.FromCheckout)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// RemoveLine handles DELETE /order/sessions/:id/lines/:lineID
func (h *OrderHandler) RemoveLine(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	view, err := h.orderUsecase.RemoveLine(c.Request().Context(), id, c.Param("lineID"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

type matrixQuantityRequest struct {
	RowID    string `json:"row_id" validate:"required"`
	ColumnID string `json:"column_id" validate:"required"`
	Quantity int    `json:"quantity"`
}

// SetMatrixQuantity handles PUT /order/sessions/:id/matrix
func (h *OrderHandler) SetMatrixQuantity(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req matrixQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.orderUsecase.SetMatrixQuantity(c.Request().Context(), id, req.RowID, req.ColumnID, req.Quantity)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

type addMatrixRequest struct {
	RowID string `json:"row_id"`
}

// AddMatrixSelections handles POST /order/sessions/:id/matrix/commit
func (h *OrderHandler) AddMatrixSelections(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req addMatrixRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}

	view, err := h.orderUsecase.AddMatrixSelections(c.Request().Context(), id, req.RowID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// OpenCheckout handles POST /order/sessions/:id/checkout/open
func (h *OrderHandler) OpenCheckout(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	view, err := h.orderUsecase.OpenCheckout(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// CloseCheckout handles POST /order/sessions/:id/checkout/close
func (h *OrderHandler) CloseCheckout(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	view, err := h.orderUsecase.CloseCheckout(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

type fulfillmentRequest struct {
	Type       *string `json:"type"`
	DateNeeded *string `json:"date_needed"`
	Address    *string `json:"address"`
	Touch      string  `json:"touch"`
}

// UpdateFulfillment handles PATCH /order/sessions/:id/fulfillment
func (h *OrderHandler) UpdateFulfillment(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req fulfillmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}

	patch := order.SetFulfillment{
		DateNeeded: req.DateNeeded,
		Address:    req.Address,
		Touch:      entity.TouchedField(req.Touch),
	}
	if req.Type != nil {
		fulfillment := entity.FulfillmentType(*req.Type)
		patch.Type = &fulfillment
	}

	view, err := h.orderUsecase.UpdateFulfillment(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

type customerRequest struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	ContactMethod *string `json:"contact_method"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Touch         string  `json:"touch"`
}

// UpdateCustomer handles PATCH /order/sessions/:id/customer
func (h *OrderHandler) UpdateCustomer(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}

	patch := order.SetCustomer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Touch:     entity.TouchedField(req.Touch),
	}
	if req.ContactMethod != nil {
		method := entity.ContactMethod(*req.ContactMethod)
		patch.ContactMethod = &method
	}

	view, err := h.orderUsecase.UpdateCustomer(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

type notesRequest struct {
	Notes string `json:"notes"`
}

// SetNotes handles PUT /order/sessions/:id/notes
func (h *OrderHandler) SetNotes(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req notesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}

	view, err := h.orderUsecase.SetNotes(c.Request().Context(), id, req.Notes)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

type touchRequest struct {
	Field string `json:"field" validate:"required"`
}

// TouchField handles POST /order/sessions/:id/touch
func (h *OrderHandler) TouchField(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req touchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.orderUsecase.TouchField(c.Request().Context(), id, entity.TouchedField(req.Field))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Submit handles POST /order/sessions/:id/submit
func (h *OrderHandler) Submit(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	view, err := h.orderUsecase.Submit(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}
