package model

import (
	"time"

	"github.com/google/uuid"
)

type PrizeModel struct {
	PrizeID uuid.UUID `gorm:"column:prize_id;type:uuid;default:gen_random_uuid();primaryKey" json:"prize_id"`

	PrizeEventID uuid.UUID `gorm:"column:prize_event_id;type:uuid;not null;index" json:"prize_event_id"`

	PrizeRank        int     `gorm:"column:prize_rank;not null;check:prize_rank > 0" json:"prize_rank"`
	PrizeTitle       string  `gorm:"column:prize_title;type:varchar(150);not null" json:"prize_title"`
	PrizeDescription string  `gorm:"column:prize_description;type:text" json:"prize_description"`
	PrizeValue       float64 `gorm:"column:prize_value;type:numeric(12,2);not null;default:0" json:"prize_value"`
	PrizeCurrency    string  `gorm:"column:prize_currency;type:varchar(3);not null;default:'USD'" json:"prize_currency"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PrizeModel) TableName() string {
	return "prizes"
}
