package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"eventku_backend/internals/constants"
	eventModel "eventku_backend/internals/features/events/event/model"
	"eventku_backend/internals/features/registrations/model"
)

/* ==========================
   Store & gateway contracts
========================== */

// RegistrationStore menyediakan akses data untuk alur registrasi.
// CreateRegistration WAJIB atomik: cek duplikat + cek kapasitas + insert
// dalam satu transaksi, dengan kapasitas dibaca ulang di bawah lock
// (lihat GormStore).
type RegistrationStore interface {
	FindEvent(ctx context.Context, eventID uuid.UUID) (*eventModel.EventModel, error)
	CreateRegistration(ctx context.Context, reg *model.RegistrationModel) error
	AttachPaymentRef(ctx context.Context, regID uuid.UUID, orderID, token string) error
	UpdateStatusByOrderID(ctx context.Context, orderID, status string) error
}

type CheckoutRequest struct {
	OrderID    string
	EventID    uuid.UUID
	EventTitle string
	Amount     float64 // satuan mayor; gateway yang konversi ke minor
	Currency   string
	UserID     uuid.UUID
	UserName   string
	UserEmail  string
	SuccessURL string
	CancelURL  string
}

type CheckoutSession struct {
	OrderID     string
	Token       string
	RedirectURL string
}

// CheckoutGateway adalah kontrak hosted checkout (Midtrans Snap di produksi).
type CheckoutGateway interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	Verify(ctx context.Context, orderID string) (bool, error)
}

/* ==========================
   Registration workflow
========================== */

type RegisterInput struct {
	UserID    uuid.UUID
	UserName  string
	UserEmail string
	EventID   uuid.UUID

	TeamPreference  string
	Skills          []string
	Motivation      string
	SpecialRequests string
}

type RegisterResult struct {
	Registration *model.RegistrationModel
	// CheckoutURL terisi hanya untuk event berbayar
	CheckoutURL string
}

type RegistrationService struct {
	Store    RegistrationStore
	Checkout CheckoutGateway
	BaseURL  string
}

func NewRegistrationService(store RegistrationStore, checkout CheckoutGateway, baseURL string) *RegistrationService {
	return &RegistrationService{Store: store, Checkout: checkout, BaseURL: baseURL}
}

// Register menjalankan alur registrasi:
// event ada → (duplikat + kapasitas, atomik di store) → branch harga.
// Gratis: langsung CONFIRMED. Berbayar: PENDING + checkout session,
// referensi pembayaran disimpan di registrasi.
func (s *RegistrationService) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	ev, err := s.Store.FindEvent(ctx, in.EventID)
	if err != nil {
		return nil, err
	}

	paid := ev.EventPrice > 0
	status := constants.RegistrationStatusConfirmed
	if paid {
		status = constants.RegistrationStatusPending
	}

	reg := &model.RegistrationModel{
		RegistrationUserID:          in.UserID,
		RegistrationEventID:         in.EventID,
		RegistrationStatus:          status,
		RegistrationTeamPreference:  in.TeamPreference,
		RegistrationSkills:          in.Skills,
		RegistrationMotivation:      in.Motivation,
		RegistrationSpecialRequests: in.SpecialRequests,
	}

	if err := s.Store.CreateRegistration(ctx, reg); err != nil {
		return nil, err
	}

	if !paid {
		return &RegisterResult{Registration: reg}, nil
	}

	orderID := newOrderID()
	sess, err := s.Checkout.CreateSession(ctx, CheckoutRequest{
		OrderID:    orderID,
		EventID:    ev.EventID,
		EventTitle: ev.EventTitle,
		Amount:     ev.EventPrice,
		Currency:   ev.EventCurrency,
		UserID:     in.UserID,
		UserName:   in.UserName,
		UserEmail:  in.UserEmail,
		SuccessURL: fmt.Sprintf("%s/events/%s?payment=success", s.BaseURL, ev.EventID),
		CancelURL:  fmt.Sprintf("%s/events/%s?payment=cancelled", s.BaseURL, ev.EventID),
	})
	if err != nil {
		// Tidak ada rollback kompensasi: registrasi PENDING tetap ada,
		// caller boleh retry pembayaran lewat verify/ulang checkout.
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	if err := s.Store.AttachPaymentRef(ctx, reg.RegistrationID, sess.OrderID, sess.Token); err != nil {
		return nil, fmt.Errorf("attach payment ref: %w", err)
	}
	reg.RegistrationPaymentID = &sess.OrderID

	return &RegisterResult{Registration: reg, CheckoutURL: sess.RedirectURL}, nil
}

// VerifyAndConfirm menanyakan status pembayaran ke gateway dan, jika sudah
// dibayar, mengubah registrasi PENDING → CONFIRMED. Dipakai endpoint verify;
// webhook memakai jalur UpdateStatusByOrderID langsung.
func (s *RegistrationService) VerifyAndConfirm(ctx context.Context, orderID string) (bool, error) {
	paid, err := s.Checkout.Verify(ctx, orderID)
	if err != nil {
		return false, err
	}
	if !paid {
		return false, nil
	}
	if err := s.Store.UpdateStatusByOrderID(ctx, orderID, constants.RegistrationStatusConfirmed); err != nil {
		return false, err
	}
	return true, nil
}

// ApplyPaymentStatus memetakan status transaksi gateway ke status registrasi
// dan menyimpannya. Dipanggil dari webhook notifikasi pembayaran.
func (s *RegistrationService) ApplyPaymentStatus(ctx context.Context, orderID, gatewayStatus string) (string, error) {
	var status string
	switch gatewayStatus {
	case "settlement", "capture", "success":
		status = constants.RegistrationStatusConfirmed
	case "expire", "cancel", "deny", "failure":
		status = constants.RegistrationStatusCancelled
	default:
		status = constants.RegistrationStatusPending
	}
	if err := s.Store.UpdateStatusByOrderID(ctx, orderID, status); err != nil {
		return "", err
	}
	return status, nil
}

func newOrderID() string {
	return fmt.Sprintf("EVTREG-%d", time.Now().UnixNano())
}
