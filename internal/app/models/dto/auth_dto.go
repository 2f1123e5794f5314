package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int64  `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn,omitempty"`
	Cohort                string `json:"cohort" example:"SENIOR"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RegisterJuniorRequest represents a junior registration request
type RegisterJuniorRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,junioremail"`
	Phone    string `json:"phone" binding:"required,phonedigits"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterSeniorRequest represents a senior registration request. Role is
// optional; when set it must be one of the known role tags.
type RegisterSeniorRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required,senioremail"`
	Phone      string `json:"phone" binding:"required,phonedigits"`
	Password   string `json:"password" binding:"required,min=6"`
	Department string `json:"department" binding:"required"`
	Photo      string `json:"photo" binding:"required"`
	Role       string `json:"role,omitempty" example:"placement_coordinator"`
}

// RegisterResponse represents the outcome of a registration request
type RegisterResponse struct {
	AccountID int64  `json:"accountId"`
	Email     string `json:"email"`
	Category  string `json:"category" example:"SENIOR"`
}
