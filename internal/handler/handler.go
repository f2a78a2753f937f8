package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/freddytc/checkout-agent/internal/domain"
	"github.com/freddytc/checkout-agent/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type CheckoutSvc interface {
	Begin(ctx context.Context, input domain.BeginCheckoutInput) (*domain.CheckoutSession, error)
	Current(ctx context.Context) (*domain.CheckoutSession, int64, error)
	Pay(ctx context.Context, input domain.PaymentInput) (*domain.CheckoutSession, error)
	Cancel(ctx context.Context) error
}

type Handler struct {
	checkoutService CheckoutSvc
}

func NewHandler(checkoutService CheckoutSvc) *Handler {
	return &Handler{checkoutService: checkoutService}
}

func (h *Handler) BeginCheckout(c *ginext.Context) {
	var req dto.BeginCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.Event.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid fechaEvento format, expected RFC3339",
		})
		return
	}

	items := make([]domain.SelectionItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.SelectionItem{
			TicketTypeID: it.TicketTypeID,
			Name:         it.Name,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
		})
	}

	input := domain.BeginCheckoutInput{
		UserID: req.UserID,
		Event: domain.EventSnapshot{
			ID:       req.Event.ID,
			Name:     req.Event.Name,
			Date:     eventDate,
			Location: req.Event.Location,
		},
		Items: items,
	}

	if _, err := h.checkoutService.Begin(c.Request.Context(), input); err != nil {
		h.handleError(c, err)
		return
	}

	session, timeLeft, err := h.checkoutService.Current(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCheckoutResponse(session, timeLeft))
}

func (h *Handler) GetCheckout(c *ginext.Context) {
	session, timeLeft, err := h.checkoutService.Current(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckoutResponse(session, timeLeft))
}

func (h *Handler) Pay(c *ginext.Context) {
	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.PaymentInput{
		UserID: req.UserID,
		Method: domain.PaymentMethod{
			CardNumber: req.PaymentMethod.CardNumber,
			CardHolder: req.PaymentMethod.CardHolder,
			ExpiryDate: req.PaymentMethod.ExpiryDate,
			CVV:        req.PaymentMethod.CVV,
		},
		SimulateDecline: req.SimulateDecline,
	}

	session, err := h.checkoutService.Pay(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PurchaseResponse{
		Status: "purchased",
		Total:  session.Total,
	})
}

// CancelCheckout releases the whole session. Cancellation is destructive, so
// the request must carry an explicit confirmation.
func (h *Handler) CancelCheckout(c *ginext.Context) {
	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if !req.Confirm {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "cancellation requires confirmation",
		})
		return
	}

	if err := h.checkoutService.Cancel(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNoActiveSession),
		errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrPaymentInFlight):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptySelection),
		errors.Is(err, domain.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAcquisition),
		errors.Is(err, domain.ErrPurchase):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
