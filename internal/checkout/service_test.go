package checkout

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/freddytc/checkout-agent/internal/backend"
	"github.com/freddytc/checkout-agent/internal/checkout/ports/mocks"
	"github.com/freddytc/checkout-agent/internal/domain"
	"github.com/freddytc/checkout-agent/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestService(t *testing.T) (*Service, *mocks.MockBackendClient, *mocks.MockCheckoutNotifier, *store.MemoryStore) {
	t.Helper()
	backendMock := mocks.NewMockBackendClient(t)
	notifier := mocks.NewMockCheckoutNotifier(t)
	sessionStore := store.NewMemoryStore()

	svc := NewService(backendMock, sessionStore, notifier, 300*time.Second, newTestLogger(t))
	return svc, backendMock, notifier, sessionStore
}

func twoLineInput() domain.BeginCheckoutInput {
	return domain.BeginCheckoutInput{
		UserID: "u1",
		Event: domain.EventSnapshot{
			ID:       "e1",
			Name:     "Concierto de Rock",
			Date:     time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC),
			Location: "Lima",
		},
		Items: []domain.SelectionItem{
			{TicketTypeID: "t1", Name: "General", Quantity: 2, UnitPrice: 50},
			{TicketTypeID: "t2", Name: "VIP", Quantity: 1, UnitPrice: 120},
		},
	}
}

func expectCreate(m *mocks.MockBackendClient, userID, ticketType string, qty int, id string) {
	m.EXPECT().
		CreateReservation(mock.Anything, domain.CreateReservationInput{
			TicketTypeID: ticketType,
			UserID:       userID,
			Quantity:     qty,
		}).
		Return(&domain.Reservation{
			ID:           domain.ReservationID(id),
			TicketTypeID: ticketType,
			UserID:       userID,
			Quantity:     qty,
		}, nil).
		Once()
}

func TestService_Begin_Success(t *testing.T) {
	svc, backendMock, _, sessionStore := newTestService(t)

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	expectCreate(backendMock, "u1", "t2", 1, "r2")

	session, err := svc.Begin(context.Background(), twoLineInput())

	require.NoError(t, err)
	assert.Equal(t, "r1", session.BatchID())
	assert.Len(t, session.Reservations, 2)
	assert.Equal(t, 220.0, session.Total)

	persisted, err := sessionStore.LoadSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.BatchID(), persisted.BatchID())

	_, left, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 300, left, 2)
}

func TestService_Begin_EmptySelection(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Begin(context.Background(), domain.BeginCheckoutInput{UserID: "u1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptySelection)
}

func TestService_Begin_InvalidQuantity(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	input := twoLineInput()
	input.Items[1].Quantity = 0

	_, err := svc.Begin(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestService_Begin_RollbackOnPartialFailure(t *testing.T) {
	svc, backendMock, _, _ := newTestService(t)

	input := twoLineInput()
	input.Items = append(input.Items, domain.SelectionItem{
		TicketTypeID: "t3", Name: "Palco", Quantity: 1, UnitPrice: 200,
	})

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	backendMock.EXPECT().
		CreateReservation(mock.Anything, domain.CreateReservationInput{
			TicketTypeID: "t2", UserID: "u1", Quantity: 1,
		}).
		Return(nil, &backend.APIError{Status: 409, Message: "No hay stock disponible"}).
		Once()
	// Item 1 is rolled back; item 3 is never attempted.
	backendMock.EXPECT().
		ReleaseReservation(mock.Anything, domain.ReservationID("r1")).
		Return(nil).
		Once()

	_, err := svc.Begin(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAcquisition)
	assert.Contains(t, err.Error(), "No hay stock disponible")

	_, _, err = svc.Current(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestService_Begin_RollbackToleratesReleaseFailure(t *testing.T) {
	svc, backendMock, _, _ := newTestService(t)

	input := twoLineInput()

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	backendMock.EXPECT().
		CreateReservation(mock.Anything, mock.MatchedBy(func(in domain.CreateReservationInput) bool {
			return in.TicketTypeID == "t2"
		})).
		Return(nil, &backend.APIError{Status: 500}).
		Once()
	backendMock.EXPECT().
		ReleaseReservation(mock.Anything, domain.ReservationID("r1")).
		Return(&backend.APIError{Status: 500}).
		Once()

	_, err := svc.Begin(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAcquisition)
}

func TestService_TimeLeft_DerivedFromDeadline(t *testing.T) {
	svc, backendMock, _, _ := newTestService(t)

	t0 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return t0 }

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	expectCreate(backendMock, "u1", "t2", 1, "r2")

	_, err := svc.Begin(context.Background(), twoLineInput())
	require.NoError(t, err)

	_, left1, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(300), left1)

	svc.now = func() time.Time { return t0.Add(90 * time.Second) }
	_, left2, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(210), left2)

	svc.now = func() time.Time { return t0.Add(299*time.Second + 500*time.Millisecond) }
	_, left3, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), left3)
}

func TestService_Resume_SameBatchKeepsDeadline(t *testing.T) {
	svc, backendMock, _, sessionStore := newTestService(t)

	t0 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return t0 }

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	expectCreate(backendMock, "u1", "t2", 1, "r2")

	_, err := svc.Begin(context.Background(), twoLineInput())
	require.NoError(t, err)

	before, err := sessionStore.LoadWindow(context.Background())
	require.NoError(t, err)

	// A later restart of the same batch must not extend the hold.
	svc2 := NewService(backendMock, sessionStore, mocks.NewMockCheckoutNotifier(t), 300*time.Second, newTestLogger(t))
	svc2.now = func() time.Time { return t0.Add(2 * time.Minute) }

	session, err := svc2.Resume(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "r1", session.BatchID())

	after, err := sessionStore.LoadWindow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before.ExpiresAt, after.ExpiresAt)

	_, left, err := svc2.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(180), left)
}

func TestService_Begin_NewBatchResetsDeadline(t *testing.T) {
	svc, backendMock, _, sessionStore := newTestService(t)

	t0 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return t0 }

	// Stale window from a batch that no longer exists.
	require.NoError(t, sessionStore.SaveWindow(context.Background(), domain.ExpirationWindow{
		ExpiresAt: t0.Add(30 * time.Second),
		BatchID:   "old-batch",
	}))

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	expectCreate(backendMock, "u1", "t2", 1, "r2")

	_, err := svc.Begin(context.Background(), twoLineInput())
	require.NoError(t, err)

	window, err := sessionStore.LoadWindow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "r1", window.BatchID)
	assert.Equal(t, t0.Add(300*time.Second), window.ExpiresAt)
}

func TestService_Resume_NothingPersisted(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	session, err := svc.Resume(context.Background())

	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestService_ExpireDue_ReleasesAllAndClears(t *testing.T) {
	svc, backendMock, notifier, sessionStore := newTestService(t)

	t0 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return t0 }

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	expectCreate(backendMock, "u1", "t2", 1, "r2")

	_, err := svc.Begin(context.Background(), twoLineInput())
	require.NoError(t, err)

	// Nothing happens while the hold is still valid.
	expired, err := svc.ExpireDue(context.Background())
	require.NoError(t, err)
	assert.Nil(t, expired)

	svc.now = func() time.Time { return t0.Add(301 * time.Second) }

	backendMock.EXPECT().ReleaseReservation(mock.Anything, domain.ReservationID("r1")).Return(nil).Once()
	backendMock.EXPECT().ReleaseReservation(mock.Anything, domain.ReservationID("r2")).Return(nil).Once()
	notifier.EXPECT().NotifyHoldExpired(mock.Anything, mock.Anything).Return().Once()

	expired, err = svc.ExpireDue(context.Background())
	require.NoError(t, err)
	require.NotNil(t, expired)
	assert.Equal(t, "r1", expired.BatchID())

	_, err = sessionStore.LoadSession(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = sessionStore.LoadWindow(context.Background())
	assert.ErrorIs(t, err, domain.ErrWindowNotFound)

	_, _, err = svc.Current(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)

	// Expiry fires exactly once.
	expired, err = svc.ExpireDue(context.Background())
	require.NoError(t, err)
	assert.Nil(t, expired)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestService_ExpireDue_MissingDeadlineCountsAsExpired(t *testing.T) {
	backendMock := mocks.NewMockBackendClient(t)
	notifier := mocks.NewMockCheckoutNotifier(t)
	storeMock := mocks.NewMockSessionStore(t)
	svc := NewService(backendMock, storeMock, notifier, 300*time.Second, newTestLogger(t))

	session := &domain.CheckoutSession{
		Reservations: []domain.Reservation{{ID: "r1", TicketTypeID: "t1", Quantity: 1}},
	}
	window := &domain.ExpirationWindow{ExpiresAt: time.Now().Add(300 * time.Second), BatchID: "r1"}

	storeMock.EXPECT().LoadSession(mock.Anything).Return(session, nil).Once()
	storeMock.EXPECT().LoadWindow(mock.Anything).Return(window, nil).Once()

	_, err := svc.Resume(context.Background())
	require.NoError(t, err)

	// The deadline vanished from the store while the session is active.
	storeMock.EXPECT().LoadWindow(mock.Anything).Return(nil, domain.ErrWindowNotFound).Once()
	backendMock.EXPECT().ReleaseReservation(mock.Anything, domain.ReservationID("r1")).Return(nil).Once()
	storeMock.EXPECT().Clear(mock.Anything).Return(nil).Once()
	notifier.EXPECT().NotifyHoldExpired(mock.Anything, mock.Anything).Return().Once()

	expired, err := svc.ExpireDue(context.Background())
	require.NoError(t, err)
	require.NotNil(t, expired)

	time.Sleep(50 * time.Millisecond)
}

func TestService_Cancel_ReleasesExactlyOnce(t *testing.T) {
	svc, backendMock, notifier, _ := newTestService(t)

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	expectCreate(backendMock, "u1", "t2", 1, "r2")

	_, err := svc.Begin(context.Background(), twoLineInput())
	require.NoError(t, err)

	backendMock.EXPECT().ReleaseReservation(mock.Anything, domain.ReservationID("r1")).Return(nil).Once()
	backendMock.EXPECT().ReleaseReservation(mock.Anything, domain.ReservationID("r2")).Return(nil).Once()
	notifier.EXPECT().NotifyCheckoutCancelled(mock.Anything, mock.Anything).Return().Once()

	require.NoError(t, svc.Cancel(context.Background()))

	// Later triggers find nothing to do: no extra release calls.
	svc.Shutdown(context.Background())
	assert.ErrorIs(t, svc.Cancel(context.Background()), domain.ErrNoActiveSession)

	time.Sleep(50 * time.Millisecond)
}

func TestService_ConcurrentTriggers_ReleaseOnce(t *testing.T) {
	svc, backendMock, notifier, _ := newTestService(t)

	t0 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return t0 }

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	expectCreate(backendMock, "u1", "t2", 1, "r2")

	_, err := svc.Begin(context.Background(), twoLineInput())
	require.NoError(t, err)

	svc.now = func() time.Time { return t0.Add(301 * time.Second) }

	backendMock.EXPECT().ReleaseReservation(mock.Anything, domain.ReservationID("r1")).Return(nil).Once()
	backendMock.EXPECT().ReleaseReservation(mock.Anything, domain.ReservationID("r2")).Return(nil).Once()
	notifier.EXPECT().NotifyCheckoutCancelled(mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyHoldExpired(mock.Anything, mock.Anything).Return().Maybe()

	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); _ = svc.Cancel(context.Background()) }()
	go func() { defer wg.Done(); _, _ = svc.ExpireDue(context.Background()) }()
	go func() { defer wg.Done(); svc.Shutdown(context.Background()) }()
	wg.Wait()

	time.Sleep(50 * time.Millisecond)
}

func TestService_Pay_Success(t *testing.T) {
	svc, backendMock, notifier, sessionStore := newTestService(t)

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	expectCreate(backendMock, "u1", "t2", 1, "r2")

	_, err := svc.Begin(context.Background(), twoLineInput())
	require.NoError(t, err)

	var keys []string
	var mu sync.Mutex
	backendMock.EXPECT().
		PurchaseTicket(mock.Anything, mock.MatchedBy(func(in domain.PurchaseInput) bool {
			return in.UserID == "u1" && in.IdempotencyKey != ""
		})).
		Run(func(_ context.Context, in domain.PurchaseInput) {
			mu.Lock()
			keys = append(keys, in.IdempotencyKey)
			mu.Unlock()
		}).
		Return(nil).
		Times(2)
	notifier.EXPECT().NotifyPurchaseCompleted(mock.Anything, mock.Anything).Return().Once()

	session, err := svc.Pay(context.Background(), domain.PaymentInput{
		UserID: "u1",
		Method: domain.PaymentMethod{
			CardNumber: "4242 4242 4242 4242",
			CardHolder: "MARIA TORRES",
			ExpiryDate: "12/27",
			CVV:        "123",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 220.0, session.Total)

	// One fresh key per line item.
	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
	for _, k := range keys {
		_, err := uuid.Parse(k)
		assert.NoError(t, err)
	}

	// Consumed reservations are never released, persisted state is gone.
	_, err = sessionStore.LoadSession(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, _, err = svc.Current(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)

	expired, err := svc.ExpireDue(context.Background())
	require.NoError(t, err)
	assert.Nil(t, expired)

	time.Sleep(50 * time.Millisecond)
}

func TestService_Pay_ValidationBeforeNetwork(t *testing.T) {
	svc, backendMock, _, _ := newTestService(t)

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	expectCreate(backendMock, "u1", "t2", 1, "r2")

	_, err := svc.Begin(context.Background(), twoLineInput())
	require.NoError(t, err)

	_, err = svc.Pay(context.Background(), domain.PaymentInput{
		UserID: "u1",
		Method: domain.PaymentMethod{CardNumber: "1234"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	// The session survives a validation error.
	_, _, err = svc.Current(context.Background())
	require.NoError(t, err)
}

func TestService_Pay_PartialFailureKeepsSession(t *testing.T) {
	svc, backendMock, _, _ := newTestService(t)

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	expectCreate(backendMock, "u1", "t2", 1, "r2")

	_, err := svc.Begin(context.Background(), twoLineInput())
	require.NoError(t, err)

	backendMock.EXPECT().
		PurchaseTicket(mock.Anything, mock.MatchedBy(func(in domain.PurchaseInput) bool {
			return in.ReservationID == "r1"
		})).
		Return(nil).
		Once()
	backendMock.EXPECT().
		PurchaseTicket(mock.Anything, mock.MatchedBy(func(in domain.PurchaseInput) bool {
			return in.ReservationID == "r2"
		})).
		Return(&backend.APIError{Status: 402, Message: "Pago rechazado por el emisor"}).
		Once()

	_, err = svc.Pay(context.Background(), domain.PaymentInput{
		UserID: "u1",
		Method: domain.PaymentMethod{
			CardNumber: "4242424242424242",
			CardHolder: "MARIA TORRES",
			ExpiryDate: "12/27",
			CVV:        "123",
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPurchase)
	assert.Contains(t, err.Error(), "Pago rechazado por el emisor")

	// The remaining reservations stay held for a retry; no releases fired.
	_, _, err = svc.Current(context.Background())
	require.NoError(t, err)
}

func TestService_Pay_SimulateDecline(t *testing.T) {
	svc, backendMock, _, _ := newTestService(t)

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	expectCreate(backendMock, "u1", "t2", 1, "r2")

	_, err := svc.Begin(context.Background(), twoLineInput())
	require.NoError(t, err)

	backendMock.EXPECT().
		PurchaseTicket(mock.Anything, mock.MatchedBy(func(in domain.PurchaseInput) bool {
			return in.PaymentMethod.CardNumber == domain.DeclinedTestCard
		})).
		Return(&backend.APIError{Status: 402, Message: "Tarjeta rechazada"}).
		Once()

	_, err = svc.Pay(context.Background(), domain.PaymentInput{
		UserID:          "u1",
		SimulateDecline: true,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPurchase)
}

func TestService_Pay_ExpiredHold(t *testing.T) {
	svc, backendMock, _, _ := newTestService(t)

	t0 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return t0 }

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	expectCreate(backendMock, "u1", "t2", 1, "r2")

	_, err := svc.Begin(context.Background(), twoLineInput())
	require.NoError(t, err)

	svc.now = func() time.Time { return t0.Add(301 * time.Second) }

	_, err = svc.Pay(context.Background(), domain.PaymentInput{
		UserID: "u1",
		Method: domain.PaymentMethod{
			CardNumber: "4242424242424242",
			CardHolder: "MARIA TORRES",
			ExpiryDate: "12/27",
			CVV:        "123",
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestService_Pay_NoSession(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Pay(context.Background(), domain.PaymentInput{
		UserID: "u1",
		Method: domain.PaymentMethod{
			CardNumber: "4242424242424242",
			CardHolder: "MARIA TORRES",
			ExpiryDate: "12/27",
			CVV:        "123",
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestService_Cancel_RefusedWhilePaymentInFlight(t *testing.T) {
	svc, backendMock, notifier, _ := newTestService(t)

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	expectCreate(backendMock, "u1", "t2", 1, "r2")

	_, err := svc.Begin(context.Background(), twoLineInput())
	require.NoError(t, err)

	entered := make(chan struct{})
	unblock := make(chan struct{})
	var once sync.Once
	backendMock.EXPECT().
		PurchaseTicket(mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ domain.PurchaseInput) {
			once.Do(func() {
				close(entered)
				<-unblock
			})
		}).
		Return(nil).
		Times(2)
	notifier.EXPECT().NotifyPurchaseCompleted(mock.Anything, mock.Anything).Return().Once()

	payErr := make(chan error, 1)
	go func() {
		_, err := svc.Pay(context.Background(), domain.PaymentInput{
			UserID: "u1",
			Method: domain.PaymentMethod{
				CardNumber: "4242424242424242",
				CardHolder: "MARIA TORRES",
				ExpiryDate: "12/27",
				CVV:        "123",
			},
		})
		payErr <- err
	}()

	<-entered

	// No trigger may release reservations the purchase loop is consuming.
	assert.ErrorIs(t, svc.Cancel(context.Background()), domain.ErrPaymentInFlight)

	_, err = svc.Begin(context.Background(), twoLineInput())
	assert.ErrorIs(t, err, domain.ErrPaymentInFlight)

	close(unblock)
	require.NoError(t, <-payErr)

	// No release expectations were registered: any release call fails here.
	time.Sleep(50 * time.Millisecond)
}

func TestService_Begin_RollsBackWhenPersistFails(t *testing.T) {
	backendMock := mocks.NewMockBackendClient(t)
	notifier := mocks.NewMockCheckoutNotifier(t)
	storeMock := mocks.NewMockSessionStore(t)
	svc := NewService(backendMock, storeMock, notifier, 300*time.Second, newTestLogger(t))

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	expectCreate(backendMock, "u1", "t2", 1, "r2")

	storeMock.EXPECT().SaveSession(mock.Anything, mock.Anything).Return(assert.AnError).Once()
	backendMock.EXPECT().ReleaseReservation(mock.Anything, domain.ReservationID("r1")).Return(nil).Once()
	backendMock.EXPECT().ReleaseReservation(mock.Anything, domain.ReservationID("r2")).Return(nil).Once()
	storeMock.EXPECT().Clear(mock.Anything).Return(nil).Once()

	_, err := svc.Begin(context.Background(), twoLineInput())

	require.Error(t, err)
	_, _, err = svc.Current(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestService_Begin_RollsBackWhenWindowArmFails(t *testing.T) {
	backendMock := mocks.NewMockBackendClient(t)
	notifier := mocks.NewMockCheckoutNotifier(t)
	storeMock := mocks.NewMockSessionStore(t)
	svc := NewService(backendMock, storeMock, notifier, 300*time.Second, newTestLogger(t))

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	expectCreate(backendMock, "u1", "t2", 1, "r2")

	storeMock.EXPECT().SaveSession(mock.Anything, mock.Anything).Return(nil).Once()
	storeMock.EXPECT().LoadWindow(mock.Anything).Return(nil, assert.AnError).Once()
	backendMock.EXPECT().ReleaseReservation(mock.Anything, domain.ReservationID("r1")).Return(nil).Once()
	backendMock.EXPECT().ReleaseReservation(mock.Anything, domain.ReservationID("r2")).Return(nil).Once()
	storeMock.EXPECT().Clear(mock.Anything).Return(nil).Once()

	_, err := svc.Begin(context.Background(), twoLineInput())

	require.Error(t, err)
	_, _, err = svc.Current(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestService_Begin_SupersedesActiveSession(t *testing.T) {
	svc, backendMock, _, _ := newTestService(t)

	expectCreate(backendMock, "u1", "t1", 2, "r1")
	expectCreate(backendMock, "u1", "t2", 1, "r2")

	_, err := svc.Begin(context.Background(), twoLineInput())
	require.NoError(t, err)

	// Old batch is released before the new one is acquired.
	backendMock.EXPECT().ReleaseReservation(mock.Anything, domain.ReservationID("r1")).Return(nil).Once()
	backendMock.EXPECT().ReleaseReservation(mock.Anything, domain.ReservationID("r2")).Return(nil).Once()

	input := domain.BeginCheckoutInput{
		UserID: "u1",
		Event:  domain.EventSnapshot{ID: "e2", Name: "Teatro"},
		Items: []domain.SelectionItem{
			{TicketTypeID: "t9", Name: "Platea", Quantity: 1, UnitPrice: 80},
		},
	}
	expectCreate(backendMock, "u1", "t9", 1, "r9")

	session, err := svc.Begin(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "r9", session.BatchID())
}
