package model

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleItemModel struct {
	ScheduleItemID uuid.UUID `gorm:"column:schedule_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_item_id"`

	ScheduleItemEventID uuid.UUID `gorm:"column:schedule_item_event_id;type:uuid;not null;index" json:"schedule_item_event_id"`

	ScheduleItemTitle       string `gorm:"column:schedule_item_title;type:varchar(150);not null" json:"schedule_item_title"`
	ScheduleItemDescription string `gorm:"column:schedule_item_description;type:text" json:"schedule_item_description"`

	ScheduleItemStartTime time.Time `gorm:"column:schedule_item_start_time;not null" json:"schedule_item_start_time"`
	ScheduleItemEndTime   time.Time `gorm:"column:schedule_item_end_time;not null" json:"schedule_item_end_time"`

	ScheduleItemLocation string `gorm:"column:schedule_item_location;type:varchar(150)" json:"schedule_item_location"`
	ScheduleItemSpeaker  string `gorm:"column:schedule_item_speaker;type:varchar(100)" json:"schedule_item_speaker"`

	ScheduleItemOrder int `gorm:"column:schedule_item_order;not null;default:0" json:"schedule_item_order"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ScheduleItemModel) TableName() string {
	return "schedule_items"
}
