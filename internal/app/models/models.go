package models

// Category is the profile-collection classification of an account: which of
// the two profile tables holds its record.
type Category string

const (
	CategorySenior Category = "SENIOR"
	CategoryJunior Category = "JUNIOR"

	// CategoryAbsent marks an account with no record in either profile
	// collection. A valid state, not an error: clients render it as an
	// explicit "no profile" screen.
	CategoryAbsent Category = "ABSENT"
)

// CohortClass is the dashboard-routing classification derived from the
// cohort-year token embedded in an institutional email address. It is
// computed independently from Category and the two can disagree for the
// same account.
type CohortClass string

const (
	CohortSenior CohortClass = "SENIOR"
	CohortJunior CohortClass = "JUNIOR"
)

// RoleTag is the closed-set sub-classification of a senior profile.
type RoleTag string

const (
	RolePlacementCoordinator RoleTag = "placement_coordinator"
	RoleSuperSenior          RoleTag = "super_senior"
	RoleAcademicCoordinator  RoleTag = "academic_coordinator"
	RoleEventCoordinator     RoleTag = "event_coordinator"
)

// ValidRoleTag reports whether tag is one of the known role tags.
func ValidRoleTag(tag RoleTag) bool {
	switch tag {
	case RolePlacementCoordinator, RoleSuperSenior, RoleAcademicCoordinator, RoleEventCoordinator:
		return true
	}
	return false
}
