package validation

import (
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

const (
	// PasswordMinLength is the minimum accepted password length.
	PasswordMinLength = 6

	// CohortYearMax is the last two-digit cohort year still classified as
	// senior. Tokens above it route to the junior experience.
	CohortYearMax = 23

	// JuniorCohortYear is the only cohort year accepted at junior
	// registration.
	JuniorCohortYear = 24
)

var (
	// juniorEmailRegex matches the institutional address shape required of
	// junior registrants: letters, a dot, the current cohort token, and the
	// college domain.
	juniorEmailRegex = regexp.MustCompile(`^[a-zA-Z]+\.24mca@kongu\.edu$`)

	// seniorEmailRegex matches the senior registration shape; the captured
	// year must additionally be below the junior cohort.
	seniorEmailRegex = regexp.MustCompile(`^[a-zA-Z]+\.(\d{1,2})mca@kongu\.edu$`)

	// cohortTokenRegex extracts the two digits immediately preceding "mca"
	// anywhere in an address.
	cohortTokenRegex = regexp.MustCompile(`(\d{2})mca`)

	phoneRegex = regexp.MustCompile(`^\d{10}$`)
)

// CohortToken extracts the two-digit cohort year from an email address.
// The second return is false when the address carries no recognizable token.
func CohortToken(email string) (int, bool) {
	m := cohortTokenRegex.FindStringSubmatch(email)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}

// IsSeniorCohort reports whether the email's cohort token classifies the
// holder as a senior. Addresses without a token classify as junior.
func IsSeniorCohort(email string) bool {
	year, ok := CohortToken(email)
	return ok && year <= CohortYearMax
}

// IsValidJuniorEmail reports whether email is acceptable for junior
// registration.
func IsValidJuniorEmail(email string) bool {
	return juniorEmailRegex.MatchString(email)
}

// IsValidSeniorEmail reports whether email is acceptable for senior
// registration: the institutional shape with a cohort year before the
// current junior intake.
func IsValidSeniorEmail(email string) bool {
	m := seniorEmailRegex.FindStringSubmatch(email)
	if m == nil {
		return false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	return year < JuniorCohortYear
}

// IsValidPhone reports whether phone is exactly ten digits.
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsValidPassword reports whether password meets the minimum length.
func IsValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}

// RegisterCustomValidators registers domain validators on a validator
// instance used by request binding.
func RegisterCustomValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("junioremail", func(fl validator.FieldLevel) bool {
		return IsValidJuniorEmail(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("senioremail", func(fl validator.FieldLevel) bool {
		return IsValidSeniorEmail(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("phonedigits", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	}); err != nil {
		return err
	}
	return nil
}
