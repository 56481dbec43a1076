package dto

// Semua field opsional; hanya yang dikirim yang diubah.
type UpdateProfileRequest struct {
	UserName      *string  `json:"user_name" validate:"omitempty,min=2,max=100"`
	UserAvatarURL *string  `json:"user_avatar_url" validate:"omitempty,url"`
	UserBio       *string  `json:"user_bio" validate:"omitempty,max=2000"`
	UserSkills    []string `json:"user_skills" validate:"omitempty,dive,min=1,max=50"`
	UserInterests []string `json:"user_interests" validate:"omitempty,dive,min=1,max=50"`
}
