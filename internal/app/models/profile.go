package models

// JuniorProfile defines a mentee's profile record based on the
// 'junior_profiles' table. Juniors have no edit surface; the record is
// written once at registration.
type JuniorProfile struct {
	ID        int64  `json:"id" db:"id"`
	AccountID int64  `json:"accountId" db:"account_id"`
	FullName  string `json:"fullName" db:"full_name"`
	Email     string `json:"email" db:"email"`
	Phone     string `json:"phone" db:"phone"`
}

// SeniorProfile defines a mentor's profile record based on the
// 'senior_profiles' table. All fields beyond the identity ones are
// individually mutable by the owner.
type SeniorProfile struct {
	ID         int64    `json:"id" db:"id"`
	AccountID  int64    `json:"accountId" db:"account_id"`
	FullName   string   `json:"fullName" db:"full_name"`
	Email      string   `json:"email" db:"email"`
	Phone      string   `json:"phone" db:"phone"`
	Department string   `json:"department" db:"department"`
	Role       *RoleTag `json:"role,omitempty" db:"role"` // nil means no role
	Bio        *string  `json:"bio,omitempty" db:"bio"`
	Photo      string   `json:"photo" db:"photo"`
	Whatsapp   *string  `json:"whatsapp,omitempty" db:"whatsapp"`
	Github     *string  `json:"github,omitempty" db:"github"`
	Linkedin   *string  `json:"linkedin,omitempty" db:"linkedin"`
}
