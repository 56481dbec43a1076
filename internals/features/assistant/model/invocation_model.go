package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Audit log invokasi tool asisten: siapa memanggil apa dengan argumen apa.
type AssistantInvocationModel struct {
	InvocationID uuid.UUID `gorm:"column:invocation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"invocation_id"`

	InvocationUserID *uuid.UUID `gorm:"column:invocation_user_id;type:uuid;index" json:"invocation_user_id,omitempty"`

	InvocationTool string            `gorm:"column:invocation_tool;type:varchar(100);not null;index" json:"invocation_tool"`
	InvocationArgs datatypes.JSONMap `gorm:"column:invocation_args" json:"invocation_args"`

	InvocationSuccess bool   `gorm:"column:invocation_success;not null;default:true" json:"invocation_success"`
	InvocationError   string `gorm:"column:invocation_error;type:text" json:"invocation_error,omitempty"`

	InvocationDurationMs int64 `gorm:"column:invocation_duration_ms;not null;default:0" json:"invocation_duration_ms"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AssistantInvocationModel) TableName() string {
	return "assistant_invocations"
}
