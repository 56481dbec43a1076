package model

import (
	"time"

	"github.com/google/uuid"

	userModel "eventku_backend/internals/features/users/user/model"
)

type TeamModel struct {
	TeamID uuid.UUID `gorm:"column:team_id;type:uuid;default:gen_random_uuid();primaryKey" json:"team_id"`

	TeamEventID uuid.UUID `gorm:"column:team_event_id;type:uuid;not null;index" json:"team_event_id"`

	TeamName   string `gorm:"column:team_name;type:varchar(100);not null" json:"team_name"`
	TeamStatus string `gorm:"column:team_status;type:varchar(20);not null;default:'FORMING'" json:"team_status"`

	Members []TeamMemberModel `gorm:"foreignKey:TeamMemberTeamID;references:TeamID;constraint:OnDelete:CASCADE" json:"members,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TeamModel) TableName() string {
	return "teams"
}

// Satu user maksimal satu team per event; dijaga unik di level (team, user).
type TeamMemberModel struct {
	TeamMemberID uuid.UUID `gorm:"column:team_member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"team_member_id"`

	TeamMemberTeamID uuid.UUID `gorm:"column:team_member_team_id;type:uuid;not null;uniqueIndex:uq_team_members_team_user" json:"team_member_team_id"`
	TeamMemberUserID uuid.UUID `gorm:"column:team_member_user_id;type:uuid;not null;uniqueIndex:uq_team_members_team_user" json:"team_member_user_id"`

	User *userModel.UserModel `gorm:"foreignKey:TeamMemberUserID;references:UserID" json:"user,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TeamMemberModel) TableName() string {
	return "team_members"
}
