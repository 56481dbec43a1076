package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	eventModel "eventku_backend/internals/features/events/event/model"
	userModel "eventku_backend/internals/features/users/user/model"
)

type RegistrationModel struct {
	RegistrationID uuid.UUID `gorm:"column:registration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"registration_id"`

	// Maksimal satu registrasi per (user, event) — dijaga unique index
	RegistrationUserID  uuid.UUID `gorm:"column:registration_user_id;type:uuid;not null;uniqueIndex:uq_registrations_user_event" json:"registration_user_id"`
	RegistrationEventID uuid.UUID `gorm:"column:registration_event_id;type:uuid;not null;uniqueIndex:uq_registrations_user_event;index" json:"registration_event_id"`

	RegistrationStatus string `gorm:"column:registration_status;type:varchar(20);not null;default:'PENDING'" json:"registration_status"`

	RegistrationTeamPreference  string         `gorm:"column:registration_team_preference;type:varchar(20)" json:"registration_team_preference"`
	RegistrationSkills          pq.StringArray `gorm:"column:registration_skills;type:text[]" json:"registration_skills"`
	RegistrationMotivation      string         `gorm:"column:registration_motivation;type:text" json:"registration_motivation"`
	RegistrationSpecialRequests string         `gorm:"column:registration_special_requests;type:text" json:"registration_special_requests"`

	// Referensi checkout session (order id gateway); kosong untuk event gratis
	RegistrationPaymentID    *string `gorm:"column:registration_payment_id;type:varchar(100)" json:"registration_payment_id,omitempty"`
	RegistrationPaymentToken *string `gorm:"column:registration_payment_token;type:text" json:"-"`

	User  *userModel.UserModel   `gorm:"foreignKey:RegistrationUserID;references:UserID" json:"user,omitempty"`
	Event *eventModel.EventModel `gorm:"foreignKey:RegistrationEventID;references:EventID;constraint:OnDelete:CASCADE" json:"event,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (RegistrationModel) TableName() string {
	return "registrations"
}
