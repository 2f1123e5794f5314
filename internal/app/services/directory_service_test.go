package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/gradchat/gradchat/internal/app/models"
	"github.com/gradchat/gradchat/internal/pkg/apperrors"
)

type fakeSeniorDirectory struct {
	seniors []*models.SeniorProfile
}

func (f *fakeSeniorDirectory) ListSeniorsByRole(_ context.Context, role string) ([]*models.SeniorProfile, error) {
	out := []*models.SeniorProfile{}
	for _, s := range f.seniors {
		if s.Role != nil && string(*s.Role) == role {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSeniorDirectory) GetSeniorByAccountID(_ context.Context, accountID int64) (*models.SeniorProfile, error) {
	for _, s := range f.seniors {
		if s.AccountID == accountID {
			return s, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func roleTag(r models.RoleTag) *models.RoleTag { return &r }

func TestListByRole(t *testing.T) {
	dir := &fakeSeniorDirectory{seniors: []*models.SeniorProfile{
		{AccountID: 1, FullName: "A", Role: roleTag(models.RolePlacementCoordinator)},
		{AccountID: 2, FullName: "B", Role: roleTag(models.RoleSuperSenior)},
		{AccountID: 3, FullName: "C", Role: roleTag(models.RolePlacementCoordinator)},
		{AccountID: 4, FullName: "D"}, // no role assigned
	}}

	svc := NewDirectoryService(dir, zerolog.Nop())

	got, err := svc.ListByRole(context.Background(), "placement_coordinator")
	require.NoError(t, err)
	require.Len(t, got, 2)

	// the match is exact and case-sensitive
	got, err = svc.ListByRole(context.Background(), "Placement_Coordinator")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)

	got, err = svc.ListByRole(context.Background(), "unknown_tag")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDirectoryGetByID(t *testing.T) {
	dir := &fakeSeniorDirectory{seniors: []*models.SeniorProfile{
		{AccountID: 1, FullName: "A"},
	}}

	svc := NewDirectoryService(dir, zerolog.Nop())

	senior, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "A", senior.FullName)

	_, err = svc.GetByID(context.Background(), 2)
	require.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}
