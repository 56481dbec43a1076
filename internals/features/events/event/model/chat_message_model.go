package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessageModel struct {
	ChatMessageID uuid.UUID `gorm:"column:chat_message_id;type:uuid;default:gen_random_uuid();primaryKey" json:"chat_message_id"`

	ChatMessageEventID uuid.UUID `gorm:"column:chat_message_event_id;type:uuid;not null;index" json:"chat_message_event_id"`
	ChatMessageUserID  uuid.UUID `gorm:"column:chat_message_user_id;type:uuid;not null" json:"chat_message_user_id"`

	ChatMessageContent string `gorm:"column:chat_message_content;type:text;not null" json:"chat_message_content"`
	ChatMessageType    string `gorm:"column:chat_message_type;type:varchar(20);not null;default:'text'" json:"chat_message_type"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
