package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventku_backend/internals/configs"
	"eventku_backend/internals/constants"
	eventModel "eventku_backend/internals/features/events/event/model"
	"eventku_backend/internals/features/registrations/model"
	"eventku_backend/internals/features/registrations/service"
	helper "eventku_backend/internals/helpers"
	authMiddleware "eventku_backend/internals/middlewares/auth"
)

const testSecret = "test-secret"

/* ==========================
   Fakes (store + gateway)
========================== */

type stubStore struct {
	mu            sync.Mutex
	events        map[uuid.UUID]*eventModel.EventModel
	registrations map[string]*model.RegistrationModel
}

func newStubStore(events ...*eventModel.EventModel) *stubStore {
	s := &stubStore{
		events:        map[uuid.UUID]*eventModel.EventModel{},
		registrations: map[string]*model.RegistrationModel{},
	}
	for _, ev := range events {
		s.events[ev.EventID] = ev
	}
	return s
}

func (s *stubStore) FindEvent(_ context.Context, eventID uuid.UUID) (*eventModel.EventModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[eventID]
	if !ok {
		return nil, service.ErrEventNotFound
	}
	return ev, nil
}

func (s *stubStore) CreateRegistration(_ context.Context, reg *model.RegistrationModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, ok := s.events[reg.RegistrationEventID]
	if !ok {
		return service.ErrEventNotFound
	}

	key := reg.RegistrationUserID.String() + "|" + reg.RegistrationEventID.String()
	if _, exists := s.registrations[key]; exists {
		return service.ErrAlreadyRegistered
	}

	active := 0
	for _, r := range s.registrations {
		if r.RegistrationEventID == reg.RegistrationEventID &&
			r.RegistrationStatus != constants.RegistrationStatusCancelled {
			active++
		}
	}
	if active >= ev.EventCapacity {
		return service.ErrEventFull
	}

	reg.RegistrationID = uuid.New()
	s.registrations[key] = reg
	return nil
}

func (s *stubStore) AttachPaymentRef(_ context.Context, regID uuid.UUID, orderID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.registrations {
		if r.RegistrationID == regID {
			r.RegistrationPaymentID = &orderID
			r.RegistrationPaymentToken = &token
			return nil
		}
	}
	return service.ErrPaymentNotFound
}

func (s *stubStore) UpdateStatusByOrderID(_ context.Context, _, _ string) error {
	return nil
}

type stubGateway struct{}

func (stubGateway) CreateSession(_ context.Context, req service.CheckoutRequest) (*service.CheckoutSession, error) {
	return &service.CheckoutSession{
		OrderID:     req.OrderID,
		Token:       "tok-" + req.OrderID,
		RedirectURL: "https://checkout.example.com/" + req.OrderID,
	}, nil
}

func (stubGateway) Verify(_ context.Context, _ string) (bool, error) {
	return false, nil
}

/* ==========================
   Test harness
========================== */

func newTestApp(store service.RegistrationStore) *fiber.App {
	configs.JWTSecret = testSecret

	svc := service.NewRegistrationService(store, stubGateway{}, "http://localhost:3000")
	ctrl := NewRegistrationController(nil, svc)

	app := fiber.New()
	app.Post("/api/events/:id/register", authMiddleware.AuthJWT(), ctrl.Register)
	return app
}

func sessionCookie(t *testing.T, userID uuid.UUID) *http.Cookie {
	t.Helper()
	claims := jwt.MapClaims{
		"id":        userID.String(),
		"user_name": gofakeit.Name(),
		"email":     gofakeit.Email(),
		"role":      constants.RoleAttendee,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return &http.Cookie{Name: helper.SessionCookieName, Value: raw}
}

func registerRequest(eventID string, cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest("POST", "/api/events/"+eventID+"/register", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		CheckoutURL  string                   `json:"checkout_url"`
		Registration *model.RegistrationModel `json:"registration"`
	} `json:"data"`
}

func decode(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func testFreeEvent(capacity int) *eventModel.EventModel {
	return &eventModel.EventModel{
		EventID:       uuid.New(),
		EventTitle:    gofakeit.Sentence(3),
		EventCapacity: capacity,
		EventPrice:    0,
		EventCurrency: "USD",
	}
}

/* ==========================
   Tests
========================== */

func TestRegisterRoute_Unauthenticated(t *testing.T) {
	ev := testFreeEvent(10)
	app := newTestApp(newStubStore(ev))

	resp, err := app.Test(registerRequest(ev.EventID.String(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decode(t, resp)
	assert.False(t, body.Success)
	assert.Equal(t, "Unauthorized - please login first", body.Message)
}

func TestRegisterRoute_FreeEvent(t *testing.T) {
	ev := testFreeEvent(10)
	app := newTestApp(newStubStore(ev))

	resp, err := app.Test(registerRequest(ev.EventID.String(), sessionCookie(t, uuid.New())))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decode(t, resp)
	assert.True(t, body.Success)
	assert.Equal(t, "Successfully registered for the event!", body.Message)
	require.NotNil(t, body.Data.Registration)
	assert.Equal(t, constants.RegistrationStatusConfirmed, body.Data.Registration.RegistrationStatus)
	assert.Empty(t, body.Data.CheckoutURL)
}

func TestRegisterRoute_PaidEvent(t *testing.T) {
	ev := testFreeEvent(10)
	ev.EventPrice = 49.99
	app := newTestApp(newStubStore(ev))

	resp, err := app.Test(registerRequest(ev.EventID.String(), sessionCookie(t, uuid.New())))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.True(t, body.Success)
	assert.Equal(t, "Please complete payment to confirm registration", body.Message)
	assert.True(t, strings.HasPrefix(body.Data.CheckoutURL, "https://checkout.example.com/"))
	require.NotNil(t, body.Data.Registration)
	assert.Equal(t, constants.RegistrationStatusPending, body.Data.Registration.RegistrationStatus)
}

func TestRegisterRoute_EventNotFound(t *testing.T) {
	app := newTestApp(newStubStore())

	resp, err := app.Test(registerRequest(uuid.NewString(), sessionCookie(t, uuid.New())))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Event not found", decode(t, resp).Message)
}

func TestRegisterRoute_Duplicate(t *testing.T) {
	ev := testFreeEvent(10)
	app := newTestApp(newStubStore(ev))
	cookie := sessionCookie(t, uuid.New())

	resp, err := app.Test(registerRequest(ev.EventID.String(), cookie))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(registerRequest(ev.EventID.String(), cookie))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Already registered for this event", decode(t, resp).Message)
}

func TestRegisterRoute_EventFull(t *testing.T) {
	ev := testFreeEvent(1)
	app := newTestApp(newStubStore(ev))

	resp, err := app.Test(registerRequest(ev.EventID.String(), sessionCookie(t, uuid.New())))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(registerRequest(ev.EventID.String(), sessionCookie(t, uuid.New())))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Event is full", decode(t, resp).Message)
}

func TestRegisterRoute_InvalidEventID(t *testing.T) {
	app := newTestApp(newStubStore())

	resp, err := app.Test(registerRequest("not-a-uuid", sessionCookie(t, uuid.New())))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid event id", decode(t, resp).Message)
}
