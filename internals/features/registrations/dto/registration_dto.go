package dto

// Body untuk POST /api/events/:id/register
type RegisterRequest struct {
	TeamPreference  string   `json:"team_preference" validate:"omitempty,oneof=solo looking have_team"`
	Skills          []string `json:"skills" validate:"omitempty,dive,min=1,max=50"`
	Motivation      string   `json:"motivation" validate:"omitempty,max=2000"`
	SpecialRequests string   `json:"special_requests" validate:"omitempty,max=2000"`
}
