package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCohortToken(t *testing.T) {
	tests := []struct {
		name  string
		email string
		year  int
		ok    bool
	}{
		{"senior token", "ravi.23mca@kongu.edu", 23, true},
		{"junior token", "ravi.24mca@kongu.edu", 24, true},
		{"old cohort", "priya.19mca@kongu.edu", 19, true},
		{"no token", "someone@example.com", 0, false},
		{"digits without mca", "user.23mba@kongu.edu", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, ok := CohortToken(tt.email)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.year, year)
		})
	}
}

func TestIsSeniorCohort(t *testing.T) {
	require.True(t, IsSeniorCohort("ravi.23mca@kongu.edu"))
	require.True(t, IsSeniorCohort("meena.19mca@kongu.edu"))
	require.False(t, IsSeniorCohort("ravi.24mca@kongu.edu"))
	// no token at all routes to the junior experience
	require.False(t, IsSeniorCohort("admin@kongu.edu"))
}

func TestIsValidJuniorEmail(t *testing.T) {
	require.True(t, IsValidJuniorEmail("ravi.24mca@kongu.edu"))
	require.False(t, IsValidJuniorEmail("ravi.23mca@kongu.edu"))
	require.False(t, IsValidJuniorEmail("ravi.24mca@gmail.com"))
	require.False(t, IsValidJuniorEmail("ravi24mca@kongu.edu"))
	require.False(t, IsValidJuniorEmail("ravi.kumar.24mca@kongu.edu"))
}

func TestIsValidSeniorEmail(t *testing.T) {
	require.True(t, IsValidSeniorEmail("ravi.23mca@kongu.edu"))
	require.True(t, IsValidSeniorEmail("priya.9mca@kongu.edu"))
	require.False(t, IsValidSeniorEmail("ravi.24mca@kongu.edu"))
	require.False(t, IsValidSeniorEmail("ravi.25mca@kongu.edu"))
	require.False(t, IsValidSeniorEmail("ravi.23mca@gmail.com"))
}

func TestIsValidPhone(t *testing.T) {
	require.True(t, IsValidPhone("9876543210"))
	require.False(t, IsValidPhone("987654321"))
	require.False(t, IsValidPhone("98765432101"))
	require.False(t, IsValidPhone("98765abc10"))
	require.False(t, IsValidPhone(""))
}

func TestIsValidPassword(t *testing.T) {
	require.True(t, IsValidPassword("secret"))
	require.True(t, IsValidPassword("longer-password"))
	require.False(t, IsValidPassword("short"))
	require.False(t, IsValidPassword(""))
}
