package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/freddytc/checkout-agent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(srv.URL, "test-token", 5*time.Second)
	// Keep retried release tests fast.
	c.releaseStrategy.Delay = time.Millisecond
	return c
}

func TestClient_CreateReservation_Success(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/reservas/crear", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		var input domain.CreateReservationInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "t1", input.TicketTypeID)
		assert.Equal(t, 2, input.Quantity)

		// Numeric id, as the backend emits them.
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 12345, "tipoEntradaId": "t1", "usuarioId": "u1", "cantidad": 2}`))
	})

	reservation, err := c.CreateReservation(context.Background(), domain.CreateReservationInput{
		TicketTypeID: "t1",
		UserID:       "u1",
		Quantity:     2,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationID("12345"), reservation.ID)
	assert.Equal(t, "t1", reservation.TicketTypeID)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestClient_CreateReservation_BackfillsSparseResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "abc-123"}`))
	})

	reservation, err := c.CreateReservation(context.Background(), domain.CreateReservationInput{
		TicketTypeID: "t1",
		UserID:       "u1",
		Quantity:     3,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationID("abc-123"), reservation.ID)
	assert.Equal(t, "t1", reservation.TicketTypeID)
	assert.Equal(t, "u1", reservation.UserID)
	assert.Equal(t, 3, reservation.Quantity)
}

func TestClient_CreateReservation_SurfacesServerMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message": "No hay stock disponible"}`))
	})

	_, err := c.CreateReservation(context.Background(), domain.CreateReservationInput{
		TicketTypeID: "t1", UserID: "u1", Quantity: 1,
	})

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "No hay stock disponible", apiErr.Message)
	assert.Equal(t, "No hay stock disponible", err.Error())
}

func TestClient_CreateReservation_FallsBackToErrorField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "cantidad invalida"}`))
	})

	_, err := c.CreateReservation(context.Background(), domain.CreateReservationInput{
		TicketTypeID: "t1", UserID: "u1", Quantity: 1,
	})

	require.Error(t, err)
	assert.Equal(t, "cantidad invalida", err.Error())
}

func TestClient_ReleaseReservation_Success(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/reservas/r1/liberar", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	err := c.ReleaseReservation(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_ReleaseReservation_AlreadyReleasedIsSuccess(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Reserva no encontrada"}`))
	})

	err := c.ReleaseReservation(context.Background(), "r1")

	// A 4xx means the hold is already gone; not retried, not an error.
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_ReleaseReservation_RetriesServerErrors(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	err := c.ReleaseReservation(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_PurchaseTicket_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orchestration/purchase-ticket", r.URL.Path)

		var input domain.PurchaseInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, domain.ReservationID("r1"), input.ReservationID)
		assert.Equal(t, "key-1", input.IdempotencyKey)
		assert.Equal(t, "4242424242424242", input.PaymentMethod.CardNumber)

		w.WriteHeader(http.StatusOK)
	})

	err := c.PurchaseTicket(context.Background(), domain.PurchaseInput{
		UserID:         "u1",
		TicketTypeID:   "t1",
		Quantity:       2,
		ReservationID:  "r1",
		IdempotencyKey: "key-1",
		PaymentMethod: domain.PaymentMethod{
			CardNumber: "4242424242424242",
			CardHolder: "MARIA TORRES",
			ExpiryDate: "12/27",
			CVV:        "123",
		},
	})

	require.NoError(t, err)
}

func TestClient_PurchaseTicket_Declined(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"message": "Pago rechazado por el emisor"}`))
	})

	err := c.PurchaseTicket(context.Background(), domain.PurchaseInput{
		UserID: "u1", TicketTypeID: "t1", Quantity: 1, ReservationID: "r1",
	})

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusPaymentRequired, apiErr.Status)
	assert.Equal(t, "Pago rechazado por el emisor", apiErr.Message)
}
