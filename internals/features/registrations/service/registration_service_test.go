package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventku_backend/internals/constants"
	eventModel "eventku_backend/internals/features/events/event/model"
	"eventku_backend/internals/features/registrations/model"
)

/* ==========================
   Fakes
========================== */

type fakeStore struct {
	mu     sync.Mutex
	events map[uuid.UUID]*eventModel.EventModel
	// key: user|event
	registrations map[string]*model.RegistrationModel
	byOrderID     map[string]*model.RegistrationModel
}

func newFakeStore(events ...*eventModel.EventModel) *fakeStore {
	s := &fakeStore{
		events:        map[uuid.UUID]*eventModel.EventModel{},
		registrations: map[string]*model.RegistrationModel{},
		byOrderID:     map[string]*model.RegistrationModel{},
	}
	for _, ev := range events {
		s.events[ev.EventID] = ev
	}
	return s
}

func regKey(userID, eventID uuid.UUID) string {
	return userID.String() + "|" + eventID.String()
}

func (s *fakeStore) FindEvent(_ context.Context, eventID uuid.UUID) (*eventModel.EventModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[eventID]
	if !ok {
		return nil, ErrEventNotFound
	}
	return ev, nil
}

// Kapasitas dibaca dari event saat insert, meniru re-read di bawah lock.
func (s *fakeStore) CreateRegistration(_ context.Context, reg *model.RegistrationModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, ok := s.events[reg.RegistrationEventID]
	if !ok {
		return ErrEventNotFound
	}

	if _, exists := s.registrations[regKey(reg.RegistrationUserID, reg.RegistrationEventID)]; exists {
		return ErrAlreadyRegistered
	}

	active := 0
	for _, r := range s.registrations {
		if r.RegistrationEventID == reg.RegistrationEventID &&
			r.RegistrationStatus != constants.RegistrationStatusCancelled {
			active++
		}
	}
	if active >= ev.EventCapacity {
		return ErrEventFull
	}

	reg.RegistrationID = uuid.New()
	s.registrations[regKey(reg.RegistrationUserID, reg.RegistrationEventID)] = reg
	return nil
}

func (s *fakeStore) AttachPaymentRef(_ context.Context, regID uuid.UUID, orderID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.registrations {
		if r.RegistrationID == regID {
			r.RegistrationPaymentID = &orderID
			r.RegistrationPaymentToken = &token
			s.byOrderID[orderID] = r
			return nil
		}
	}
	return ErrPaymentNotFound
}

func (s *fakeStore) UpdateStatusByOrderID(_ context.Context, orderID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byOrderID[orderID]
	if !ok {
		return ErrPaymentNotFound
	}
	// CONFIRMED final: notifikasi basi tidak menurunkan status
	if r.RegistrationStatus == constants.RegistrationStatusConfirmed &&
		status != constants.RegistrationStatusConfirmed {
		return nil
	}
	r.RegistrationStatus = status
	return nil
}

type fakeGateway struct {
	mu       sync.Mutex
	calls    int
	failWith error
	paid     map[string]bool
}

func (g *fakeGateway) CreateSession(_ context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.failWith != nil {
		return nil, g.failWith
	}
	return &CheckoutSession{
		OrderID:     req.OrderID,
		Token:       "tok-" + req.OrderID,
		RedirectURL: "https://checkout.example.com/" + req.OrderID,
	}, nil
}

func (g *fakeGateway) Verify(_ context.Context, orderID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.paid[orderID], nil
}

func freeEvent(capacity int) *eventModel.EventModel {
	return &eventModel.EventModel{
		EventID:       uuid.New(),
		EventTitle:    gofakeit.Sentence(3),
		EventCapacity: capacity,
		EventPrice:    0,
		EventCurrency: "USD",
	}
}

func paidEvent(capacity int, price float64) *eventModel.EventModel {
	ev := freeEvent(capacity)
	ev.EventPrice = price
	return ev
}

func input(eventID uuid.UUID) RegisterInput {
	return RegisterInput{
		UserID:    uuid.New(),
		UserName:  gofakeit.Name(),
		UserEmail: gofakeit.Email(),
		EventID:   eventID,
	}
}

/* ==========================
   Tests
========================== */

func TestRegister_EventNotFound(t *testing.T) {
	svc := NewRegistrationService(newFakeStore(), &fakeGateway{}, "http://localhost:3000")

	_, err := svc.Register(context.Background(), input(uuid.New()))
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestRegister_Duplicate(t *testing.T) {
	ev := freeEvent(10)
	svc := NewRegistrationService(newFakeStore(ev), &fakeGateway{}, "http://localhost:3000")

	in := input(ev.EventID)
	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegister_EventFull(t *testing.T) {
	ev := freeEvent(1)
	svc := NewRegistrationService(newFakeStore(ev), &fakeGateway{}, "http://localhost:3000")

	_, err := svc.Register(context.Background(), input(ev.EventID))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input(ev.EventID))
	assert.ErrorIs(t, err, ErrEventFull)
}

func TestRegister_FreeEvent_ConfirmedWithoutPayment(t *testing.T) {
	ev := freeEvent(10)
	gw := &fakeGateway{}
	svc := NewRegistrationService(newFakeStore(ev), gw, "http://localhost:3000")

	res, err := svc.Register(context.Background(), input(ev.EventID))
	require.NoError(t, err)

	assert.Equal(t, constants.RegistrationStatusConfirmed, res.Registration.RegistrationStatus)
	assert.Empty(t, res.CheckoutURL)
	assert.Nil(t, res.Registration.RegistrationPaymentID)
	assert.Zero(t, gw.calls, "free event must not touch the checkout gateway")
}

func TestRegister_PaidEvent_PendingWithCheckout(t *testing.T) {
	ev := paidEvent(10, 49.99)
	gw := &fakeGateway{}
	store := newFakeStore(ev)
	svc := NewRegistrationService(store, gw, "http://localhost:3000")

	res, err := svc.Register(context.Background(), input(ev.EventID))
	require.NoError(t, err)

	assert.Equal(t, constants.RegistrationStatusPending, res.Registration.RegistrationStatus)
	assert.True(t, strings.HasPrefix(res.CheckoutURL, "https://checkout.example.com/"))
	require.NotNil(t, res.Registration.RegistrationPaymentID)
	assert.True(t, strings.HasPrefix(*res.Registration.RegistrationPaymentID, "EVTREG-"))
	assert.Equal(t, 1, gw.calls)
}

func TestRegister_PaidEvent_GatewayFailure(t *testing.T) {
	ev := paidEvent(10, 25)
	gw := &fakeGateway{failWith: errors.New("gateway down")}
	svc := NewRegistrationService(newFakeStore(ev), gw, "http://localhost:3000")

	_, err := svc.Register(context.Background(), input(ev.EventID))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create checkout session")
}

func TestRegister_ConcurrentLastSpots(t *testing.T) {
	const capacity = 5
	const attempts = 100

	ev := freeEvent(capacity)
	svc := NewRegistrationService(newFakeStore(ev), &fakeGateway{}, "http://localhost:3000")

	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(context.Background(), input(ev.EventID))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	success, full := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			success++
		case errors.Is(err, ErrEventFull):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, capacity, success, "exactly capacity registrations must win")
	assert.Equal(t, attempts-capacity, full)
}

func TestVerifyAndConfirm(t *testing.T) {
	ev := paidEvent(10, 30)
	gw := &fakeGateway{paid: map[string]bool{}}
	store := newFakeStore(ev)
	svc := NewRegistrationService(store, gw, "http://localhost:3000")

	res, err := svc.Register(context.Background(), input(ev.EventID))
	require.NoError(t, err)
	orderID := *res.Registration.RegistrationPaymentID

	// belum dibayar
	paid, err := svc.VerifyAndConfirm(context.Background(), orderID)
	require.NoError(t, err)
	assert.False(t, paid)
	assert.Equal(t, constants.RegistrationStatusPending, res.Registration.RegistrationStatus)

	// sudah dibayar
	gw.paid[orderID] = true
	paid, err = svc.VerifyAndConfirm(context.Background(), orderID)
	require.NoError(t, err)
	assert.True(t, paid)
	assert.Equal(t, constants.RegistrationStatusConfirmed, res.Registration.RegistrationStatus)
}

func TestApplyPaymentStatus(t *testing.T) {
	cases := []struct {
		gateway string
		want    string
	}{
		{"settlement", constants.RegistrationStatusConfirmed},
		{"capture", constants.RegistrationStatusConfirmed},
		{"expire", constants.RegistrationStatusCancelled},
		{"deny", constants.RegistrationStatusCancelled},
		{"pending", constants.RegistrationStatusPending},
	}
	for _, tc := range cases {
		ev := paidEvent(10, 15)
		svc := NewRegistrationService(newFakeStore(ev), &fakeGateway{}, "http://localhost:3000")

		res, err := svc.Register(context.Background(), input(ev.EventID))
		require.NoError(t, err)
		orderID := *res.Registration.RegistrationPaymentID

		got, err := svc.ApplyPaymentStatus(context.Background(), orderID, tc.gateway)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "gateway status %q", tc.gateway)
		assert.Equal(t, tc.want, res.Registration.RegistrationStatus, "gateway status %q", tc.gateway)
	}

	svc := NewRegistrationService(newFakeStore(), &fakeGateway{}, "http://localhost:3000")
	_, err := svc.ApplyPaymentStatus(context.Background(), "unknown-order", "settlement")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestApplyPaymentStatus_StaleRetryKeepsConfirmed(t *testing.T) {
	ev := paidEvent(10, 15)
	svc := NewRegistrationService(newFakeStore(ev), &fakeGateway{}, "http://localhost:3000")

	res, err := svc.Register(context.Background(), input(ev.EventID))
	require.NoError(t, err)
	orderID := *res.Registration.RegistrationPaymentID

	_, err = svc.ApplyPaymentStatus(context.Background(), orderID, "settlement")
	require.NoError(t, err)
	require.Equal(t, constants.RegistrationStatusConfirmed, res.Registration.RegistrationStatus)

	// retry webhook yang terlambat tidak boleh menurunkan CONFIRMED
	for _, stale := range []string{"pending", "expire"} {
		_, err = svc.ApplyPaymentStatus(context.Background(), orderID, stale)
		require.NoError(t, err, stale)
		assert.Equal(t, constants.RegistrationStatusConfirmed,
			res.Registration.RegistrationStatus, "after stale %q", stale)
	}
}

func TestRegister_CapacityReadAtInsert(t *testing.T) {
	ev := freeEvent(5)
	svc := NewRegistrationService(newFakeStore(ev), &fakeGateway{}, "http://localhost:3000")

	_, err := svc.Register(context.Background(), input(ev.EventID))
	require.NoError(t, err)

	// organizer menurunkan kapasitas di antara dua registrasi: insert
	// berikutnya harus memakai kapasitas terbaru, bukan hasil read awal
	ev.EventCapacity = 1

	_, err = svc.Register(context.Background(), input(ev.EventID))
	assert.ErrorIs(t, err, ErrEventFull)
}
