package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eventku_backend/internals/constants"
	eventModel "eventku_backend/internals/features/events/event/model"
	"eventku_backend/internals/features/registrations/model"
)

// GormStore adalah implementasi RegistrationStore di atas Postgres.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) FindEvent(ctx context.Context, eventID uuid.UUID) (*eventModel.EventModel, error) {
	var ev eventModel.EventModel
	if err := s.DB.WithContext(ctx).
		First(&ev, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &ev, nil
}

// CreateRegistration menjalankan cek duplikat + kapasitas + insert dalam SATU
// transaksi. Baris event dikunci FOR UPDATE supaya dua request yang berebut
// slot terakhir (atau duplikat dari user yang sama) terserialisasi; kapasitas
// dibaca dari baris yang terkunci, bukan dari read sebelum transaksi. Unique
// index (user_id, event_id) jadi penjaga terakhir untuk duplikat.
func (s *GormStore) CreateRegistration(ctx context.Context, reg *model.RegistrationModel) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ev eventModel.EventModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ev, "event_id = ?", reg.RegistrationEventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		var existing int64
		if err := tx.Model(&model.RegistrationModel{}).
			Where("registration_user_id = ? AND registration_event_id = ?",
				reg.RegistrationUserID, reg.RegistrationEventID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyRegistered
		}

		var active int64
		if err := tx.Model(&model.RegistrationModel{}).
			Where("registration_event_id = ? AND registration_status <> ?",
				reg.RegistrationEventID, constants.RegistrationStatusCancelled).
			Count(&active).Error; err != nil {
			return err
		}
		if active >= int64(ev.EventCapacity) {
			return ErrEventFull
		}

		if err := tx.Create(reg).Error; err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return ErrAlreadyRegistered
			}
			return err
		}
		return nil
	})
}

func (s *GormStore) AttachPaymentRef(ctx context.Context, regID uuid.UUID, orderID, token string) error {
	return s.DB.WithContext(ctx).Model(&model.RegistrationModel{}).
		Where("registration_id = ?", regID).
		Updates(map[string]any{
			"registration_payment_id":    orderID,
			"registration_payment_token": token,
		}).Error
}

// UpdateStatusByOrderID memperlakukan CONFIRMED sebagai status final:
// notifikasi gateway yang datang terlambat/terduplikasi (mis. retry
// "pending" setelah "settlement") tidak boleh menurunkannya lagi.
func (s *GormStore) UpdateStatusByOrderID(ctx context.Context, orderID, status string) error {
	q := s.DB.WithContext(ctx).Model(&model.RegistrationModel{}).
		Where("registration_payment_id = ?", orderID)
	if status != constants.RegistrationStatusConfirmed {
		q = q.Where("registration_status <> ?", constants.RegistrationStatusConfirmed)
	}

	res := q.Update("registration_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// order ada tapi sudah CONFIRMED -> no-op; benar-benar tidak ada -> error
		var n int64
		if err := s.DB.WithContext(ctx).Model(&model.RegistrationModel{}).
			Where("registration_payment_id = ?", orderID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrPaymentNotFound
		}
	}
	return nil
}
