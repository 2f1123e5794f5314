package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/gradchat/gradchat/internal/app/models"
	"github.com/gradchat/gradchat/internal/pkg/apperrors"
)

type fakeProfileStore struct {
	seniors map[int64]*models.SeniorProfile
	juniors map[int64]*models.JuniorProfile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{
		seniors: map[int64]*models.SeniorProfile{},
		juniors: map[int64]*models.JuniorProfile{},
	}
}

func (f *fakeProfileStore) GetSeniorByAccountID(_ context.Context, accountID int64) (*models.SeniorProfile, error) {
	if p, ok := f.seniors[accountID]; ok {
		return p, nil
	}
	return nil, apperrors.ErrProfileNotFound
}

func (f *fakeProfileStore) GetJuniorByAccountID(_ context.Context, accountID int64) (*models.JuniorProfile, error) {
	if p, ok := f.juniors[accountID]; ok {
		return p, nil
	}
	return nil, apperrors.ErrProfileNotFound
}

func TestClassifyEmail(t *testing.T) {
	svc := NewIdentityService(newFakeProfileStore(), zerolog.Nop())

	tests := []struct {
		email string
		want  models.CohortClass
	}{
		{"ravi.23mca@kongu.edu", models.CohortSenior},
		{"meena.19mca@kongu.edu", models.CohortSenior},
		{"ravi.24mca@kongu.edu", models.CohortJunior},
		{"someone@example.com", models.CohortJunior},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, svc.ClassifyEmail(tt.email), tt.email)
	}
}

func TestResolveCategorySeniorsFirst(t *testing.T) {
	store := newFakeProfileStore()
	store.seniors[7] = &models.SeniorProfile{AccountID: 7}
	store.juniors[7] = &models.JuniorProfile{AccountID: 7}
	store.juniors[8] = &models.JuniorProfile{AccountID: 8}

	svc := NewIdentityService(store, zerolog.Nop())

	// present in both collections resolves as senior
	category, err := svc.ResolveCategory(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, models.CategorySenior, category)

	category, err = svc.ResolveCategory(context.Background(), 8)
	require.NoError(t, err)
	require.Equal(t, models.CategoryJunior, category)
}

func TestResolveCategoryAbsent(t *testing.T) {
	svc := NewIdentityService(newFakeProfileStore(), zerolog.Nop())

	// no record in either collection is a valid state, not an error
	category, err := svc.ResolveCategory(context.Background(), 99)
	require.NoError(t, err)
	require.Equal(t, models.CategoryAbsent, category)
}

func TestClassificationsCanDisagree(t *testing.T) {
	store := newFakeProfileStore()
	// account registered in the junior collection despite a senior-year email
	store.juniors[5] = &models.JuniorProfile{AccountID: 5, Email: "old.20mca@kongu.edu"}

	svc := NewIdentityService(store, zerolog.Nop())

	require.Equal(t, models.CohortSenior, svc.ClassifyEmail("old.20mca@kongu.edu"))

	category, err := svc.ResolveCategory(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, models.CategoryJunior, category)
}
