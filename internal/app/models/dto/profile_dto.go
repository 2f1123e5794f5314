package dto

import "github.com/gradchat/gradchat/internal/app/models"

// ProfileResponse carries the resolved profile of an account. At most one of
// Junior/Senior is set, matching Category; both are absent when the account
// has no profile record.
type ProfileResponse struct {
	Category    models.Category       `json:"category"`
	CohortClass models.CohortClass    `json:"cohortClass"`
	Junior      *models.JuniorProfile `json:"junior,omitempty"`
	Senior      *models.SeniorProfile `json:"senior,omitempty"`
}

// UpdateProfileRequest represents a partial senior profile update. Absent
// fields keep their stored values.
type UpdateProfileRequest struct {
	FullName   *string `json:"fullName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Department *string `json:"department,omitempty"`
	Role       *string `json:"role,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	Photo      *string `json:"photo,omitempty"`
	Whatsapp   *string `json:"whatsapp,omitempty"`
	Github     *string `json:"github,omitempty"`
	Linkedin   *string `json:"linkedin,omitempty"`
}

// SeniorListResponse wraps a role-filtered senior directory listing
type SeniorListResponse struct {
	Seniors []*models.SeniorProfile `json:"seniors"`
}
