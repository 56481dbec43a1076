package dto

import "time"

/* ==========================
   Event requests
========================== */

type CreateEventRequest struct {
	EventTitle        string    `json:"event_title" validate:"required,min=3,max=150"`
	EventDescription  string    `json:"event_description" validate:"max=10000"`
	EventType         string    `json:"event_type" validate:"required,oneof=HACKATHON CONFERENCE WORKSHOP MEETUP"`
	EventStatus       string    `json:"event_status" validate:"omitempty,oneof=DRAFT PUBLISHED ONGOING COMPLETED"`
	EventStartDate    time.Time `json:"event_start_date" validate:"required"`
	EventEndDate      time.Time `json:"event_end_date" validate:"required,gtfield=EventStartDate"`
	EventLocation     string    `json:"event_location" validate:"max=150"`
	EventCapacity     int       `json:"event_capacity" validate:"required,gt=0"`
	EventPrice        float64   `json:"event_price" validate:"gte=0"`
	EventCurrency     string    `json:"event_currency" validate:"omitempty,len=3"`
	EventImageURL     *string   `json:"event_image_url" validate:"omitempty,url"`
	EventTags         []string  `json:"event_tags" validate:"omitempty,dive,min=1,max=50"`
	EventRequirements []string  `json:"event_requirements" validate:"omitempty,dive,min=1,max=200"`
}

// Semua field opsional; hanya yang dikirim yang diubah.
type UpdateEventRequest struct {
	EventTitle        *string    `json:"event_title" validate:"omitempty,min=3,max=150"`
	EventDescription  *string    `json:"event_description" validate:"omitempty,max=10000"`
	EventType         *string    `json:"event_type" validate:"omitempty,oneof=HACKATHON CONFERENCE WORKSHOP MEETUP"`
	EventStatus       *string    `json:"event_status" validate:"omitempty,oneof=DRAFT PUBLISHED ONGOING COMPLETED"`
	EventStartDate    *time.Time `json:"event_start_date"`
	EventEndDate      *time.Time `json:"event_end_date"`
	EventLocation     *string    `json:"event_location" validate:"omitempty,max=150"`
	EventCapacity     *int       `json:"event_capacity" validate:"omitempty,gt=0"`
	EventPrice        *float64   `json:"event_price" validate:"omitempty,gte=0"`
	EventCurrency     *string    `json:"event_currency" validate:"omitempty,len=3"`
	EventImageURL     *string    `json:"event_image_url" validate:"omitempty,url"`
	EventTags         []string   `json:"event_tags" validate:"omitempty,dive,min=1,max=50"`
	EventRequirements []string   `json:"event_requirements" validate:"omitempty,dive,min=1,max=200"`
}

/* ==========================
   Prize & schedule requests
========================== */

type CreatePrizeRequest struct {
	PrizeRank        int     `json:"prize_rank" validate:"required,gt=0"`
	PrizeTitle       string  `json:"prize_title" validate:"required,min=2,max=150"`
	PrizeDescription string  `json:"prize_description" validate:"max=2000"`
	PrizeValue       float64 `json:"prize_value" validate:"gte=0"`
	PrizeCurrency    string  `json:"prize_currency" validate:"omitempty,len=3"`
}

type CreateScheduleItemRequest struct {
	ScheduleItemTitle       string    `json:"schedule_item_title" validate:"required,min=2,max=150"`
	ScheduleItemDescription string    `json:"schedule_item_description" validate:"max=2000"`
	ScheduleItemStartTime   time.Time `json:"schedule_item_start_time" validate:"required"`
	ScheduleItemEndTime     time.Time `json:"schedule_item_end_time" validate:"required,gtfield=ScheduleItemStartTime"`
	ScheduleItemLocation    string    `json:"schedule_item_location" validate:"max=150"`
	ScheduleItemSpeaker     string    `json:"schedule_item_speaker" validate:"max=100"`
	ScheduleItemOrder       int       `json:"schedule_item_order" validate:"gte=0"`
}
