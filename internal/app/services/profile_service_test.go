package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/gradchat/gradchat/internal/app/models"
	"github.com/gradchat/gradchat/internal/app/models/dto"
	"github.com/gradchat/gradchat/internal/pkg/apperrors"
)

type fakeProfileUpdater struct {
	*fakeProfileStore
	updates map[int64]*dto.UpdateProfileRequest
}

func newFakeProfileUpdater() *fakeProfileUpdater {
	return &fakeProfileUpdater{
		fakeProfileStore: newFakeProfileStore(),
		updates:          map[int64]*dto.UpdateProfileRequest{},
	}
}

func (f *fakeProfileUpdater) UpdateSenior(_ context.Context, accountID int64, req *dto.UpdateProfileRequest) error {
	if _, ok := f.seniors[accountID]; !ok {
		return apperrors.ErrProfileNotFound
	}
	f.updates[accountID] = req
	return nil
}

func newProfileService(store *fakeProfileUpdater) *ProfileService {
	identity := NewIdentityService(store.fakeProfileStore, zerolog.Nop())
	return NewProfileService(store, identity, zerolog.Nop())
}

func TestGetProfileSenior(t *testing.T) {
	store := newFakeProfileUpdater()
	store.seniors[1] = &models.SeniorProfile{
		AccountID:  1,
		FullName:   "Priya S",
		Email:      "priya.22mca@kongu.edu",
		Department: "MCA",
	}

	svc := newProfileService(store)

	resp, err := svc.GetProfile(context.Background(), 1, "priya.22mca@kongu.edu")
	require.NoError(t, err)
	require.Equal(t, models.CategorySenior, resp.Category)
	require.Equal(t, models.CohortSenior, resp.CohortClass)
	require.Nil(t, resp.Junior)
	require.NotNil(t, resp.Senior)
	require.Equal(t, "Priya S", resp.Senior.FullName)
}

func TestGetProfileSeniorBioPlaceholder(t *testing.T) {
	store := newFakeProfileUpdater()
	store.seniors[1] = &models.SeniorProfile{AccountID: 1}

	svc := newProfileService(store)

	resp, err := svc.GetProfile(context.Background(), 1, "priya.22mca@kongu.edu")
	require.NoError(t, err)
	require.NotNil(t, resp.Senior.Bio)
	require.Equal(t, placeholderBio, *resp.Senior.Bio)
}

func TestGetProfileJunior(t *testing.T) {
	store := newFakeProfileUpdater()
	store.juniors[2] = &models.JuniorProfile{AccountID: 2, FullName: "Ravi K"}

	svc := newProfileService(store)

	resp, err := svc.GetProfile(context.Background(), 2, "ravi.24mca@kongu.edu")
	require.NoError(t, err)
	require.Equal(t, models.CategoryJunior, resp.Category)
	require.Equal(t, models.CohortJunior, resp.CohortClass)
	require.Nil(t, resp.Senior)
	require.Equal(t, "Ravi K", resp.Junior.FullName)
}

func TestGetProfileAbsent(t *testing.T) {
	svc := newProfileService(newFakeProfileUpdater())

	// an account with no profile record still gets a well-formed response
	resp, err := svc.GetProfile(context.Background(), 42, "ghost.22mca@kongu.edu")
	require.NoError(t, err)
	require.Equal(t, models.CategoryAbsent, resp.Category)
	require.Equal(t, models.CohortSenior, resp.CohortClass)
	require.Nil(t, resp.Junior)
	require.Nil(t, resp.Senior)
}

func TestUpdateProfilePartial(t *testing.T) {
	store := newFakeProfileUpdater()
	store.seniors[1] = &models.SeniorProfile{AccountID: 1}

	svc := newProfileService(store)

	bio := "Placement mentor since 2022"
	err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)

	saved := store.updates[1]
	require.NotNil(t, saved)
	require.Equal(t, bio, *saved.Bio)
	// untouched fields stay nil so the store keeps their current values
	require.Nil(t, saved.FullName)
	require.Nil(t, saved.Photo)
}

func TestUpdateProfileRefusedForJunior(t *testing.T) {
	store := newFakeProfileUpdater()
	store.juniors[2] = &models.JuniorProfile{AccountID: 2}

	svc := newProfileService(store)

	name := "New Name"
	err := svc.UpdateProfile(context.Background(), 2, &dto.UpdateProfileRequest{FullName: &name})
	require.ErrorIs(t, err, apperrors.ErrCategoryMismatch)
	require.Empty(t, store.updates)
}

func TestUpdateProfileRefusedWhenAbsent(t *testing.T) {
	store := newFakeProfileUpdater()
	svc := newProfileService(store)

	name := "New Name"
	err := svc.UpdateProfile(context.Background(), 42, &dto.UpdateProfileRequest{FullName: &name})
	require.ErrorIs(t, err, apperrors.ErrCategoryMismatch)
	require.Empty(t, store.updates)
}

func TestUpdateProfileInvalidRoleTag(t *testing.T) {
	store := newFakeProfileUpdater()
	store.seniors[1] = &models.SeniorProfile{AccountID: 1}

	svc := newProfileService(store)

	role := "chief_visionary"
	err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{Role: &role})
	require.ErrorIs(t, err, apperrors.ErrInvalidRoleTag)
}

func TestUpdateProfileValidRoleTag(t *testing.T) {
	store := newFakeProfileUpdater()
	store.seniors[1] = &models.SeniorProfile{AccountID: 1}

	svc := newProfileService(store)

	role := string(models.RolePlacementCoordinator)
	err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{Role: &role})
	require.NoError(t, err)
	require.Equal(t, role, *store.updates[1].Role)
}
