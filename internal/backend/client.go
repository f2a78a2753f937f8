package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/freddytc/checkout-agent/internal/domain"
	"github.com/wb-go/wbf/retry"
)

// APIError carries the backend's HTTP status and its error message when the
// response body provides one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// Client talks to the remote ticketing backend. Reservation creation and
// purchases are never retried; releases are best-effort and retried.
type Client struct {
	http            *http.Client
	baseURL         string
	token           string
	releaseStrategy retry.Strategy
}

func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		token:   token,
		releaseStrategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CreateReservation places a hold on one ticket type. A non-2xx response is
// terminal for the whole acquisition attempt; the caller compensates.
func (c *Client) CreateReservation(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	var reservation domain.Reservation
	if err := c.do(ctx, http.MethodPost, "/api/reservas/crear", input, &reservation); err != nil {
		return nil, err
	}

	if reservation.TicketTypeID == "" {
		reservation.TicketTypeID = input.TicketTypeID
	}
	if reservation.UserID == "" {
		reservation.UserID = input.UserID
	}
	if reservation.Quantity == 0 {
		reservation.Quantity = input.Quantity
	}

	return &reservation, nil
}

// ReleaseReservation frees a held reservation without consuming it. An
// "already released/consumed" rejection from the backend is treated as
// success: release is idempotent from the client's point of view.
func (c *Client) ReleaseReservation(ctx context.Context, id domain.ReservationID) error {
	return retry.Do(func() error {
		err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/reservas/%s/liberar", id), nil, nil)

		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
			return nil
		}
		return err
	}, c.releaseStrategy)
}

// PurchaseTicket consumes one reservation through the payment orchestrator.
func (c *Client) PurchaseTicket(ctx context.Context, input domain.PurchaseInput) error {
	return c.do(ctx, http.MethodPost, "/api/orchestration/purchase-ticket", input, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: extractMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// extractMessage pulls the server-supplied error text, preferring "message"
// over "error", falling back to empty for a generic client-side message.
func extractMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
