package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName  string `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail string `gorm:"column:user_email;type:varchar(255);not null;unique" json:"user_email"`

	// bcrypt hash, tidak pernah ikut ke response
	UserPassword string `gorm:"column:user_password;type:text;not null" json:"-"`

	UserRole string `gorm:"column:user_role;type:varchar(20);not null;default:'ATTENDEE'" json:"user_role"`

	UserAvatarURL *string        `gorm:"column:user_avatar_url;type:text" json:"user_avatar_url,omitempty"`
	UserBio       *string        `gorm:"column:user_bio;type:text" json:"user_bio,omitempty"`
	UserSkills    pq.StringArray `gorm:"column:user_skills;type:text[]" json:"user_skills"`
	UserInterests pq.StringArray `gorm:"column:user_interests;type:text[]" json:"user_interests"`

	UserGoogleID *string `gorm:"column:user_google_id;type:varchar(64);uniqueIndex" json:"-"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
