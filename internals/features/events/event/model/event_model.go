package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	userModel "eventku_backend/internals/features/users/user/model"
)

type EventModel struct {
	EventID uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`

	EventOrganizerID uuid.UUID `gorm:"column:event_organizer_id;type:uuid;not null;index" json:"event_organizer_id"`

	EventTitle       string `gorm:"column:event_title;type:varchar(150);not null" json:"event_title"`
	EventDescription string `gorm:"column:event_description;type:text" json:"event_description"`

	EventType   string `gorm:"column:event_type;type:varchar(20);not null" json:"event_type"`
	EventStatus string `gorm:"column:event_status;type:varchar(20);not null;default:'DRAFT'" json:"event_status"`

	EventStartDate time.Time `gorm:"column:event_start_date;not null" json:"event_start_date"`
	EventEndDate   time.Time `gorm:"column:event_end_date;not null" json:"event_end_date"`

	EventLocation string `gorm:"column:event_location;type:varchar(150)" json:"event_location"`

	EventCapacity int     `gorm:"column:event_capacity;not null;check:event_capacity > 0" json:"event_capacity"`
	EventPrice    float64 `gorm:"column:event_price;type:numeric(12,2);not null;default:0;check:event_price >= 0" json:"event_price"`
	EventCurrency string  `gorm:"column:event_currency;type:varchar(3);not null;default:'USD'" json:"event_currency"`

	EventImageURL     *string        `gorm:"column:event_image_url;type:text" json:"event_image_url,omitempty"`
	EventTags         pq.StringArray `gorm:"column:event_tags;type:text[]" json:"event_tags"`
	EventRequirements pq.StringArray `gorm:"column:event_requirements;type:text[]" json:"event_requirements"`

	// Relasi (anak ikut terhapus bersama event)
	Organizer     *userModel.UserModel `gorm:"foreignKey:EventOrganizerID;references:UserID" json:"organizer,omitempty"`
	Prizes        []PrizeModel         `gorm:"foreignKey:PrizeEventID;references:EventID;constraint:OnDelete:CASCADE" json:"prizes,omitempty"`
	ScheduleItems []ScheduleItemModel  `gorm:"foreignKey:ScheduleItemEventID;references:EventID;constraint:OnDelete:CASCADE" json:"schedule_items,omitempty"`
	Teams         []TeamModel          `gorm:"foreignKey:TeamEventID;references:EventID;constraint:OnDelete:CASCADE" json:"teams,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}
