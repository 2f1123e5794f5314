package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/gradchat/gradchat/internal/app/models"
	"github.com/gradchat/gradchat/internal/app/models/dto"
	"github.com/gradchat/gradchat/internal/pkg/apperrors"
	"github.com/gradchat/gradchat/internal/pkg/auth"
)

type fakeAccountStore struct {
	accounts map[int64]*models.Account
	seniors  map[int64]*models.SeniorProfile
	juniors  map[int64]*models.JuniorProfile
	nextID   int64
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{
		accounts: map[int64]*models.Account{},
		seniors:  map[int64]*models.SeniorProfile{},
		juniors:  map[int64]*models.JuniorProfile{},
	}
}

func (f *fakeAccountStore) insert(account *models.Account) (int64, error) {
	for _, a := range f.accounts {
		if a.Email == account.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	account.ID = f.nextID
	f.accounts[account.ID] = account
	return account.ID, nil
}

func (f *fakeAccountStore) CreateWithJuniorProfile(_ context.Context, account *models.Account, profile *models.JuniorProfile) (int64, error) {
	id, err := f.insert(account)
	if err != nil {
		return 0, err
	}
	profile.AccountID = id
	f.juniors[id] = profile
	return id, nil
}

func (f *fakeAccountStore) CreateWithSeniorProfile(_ context.Context, account *models.Account, profile *models.SeniorProfile) (int64, error) {
	id, err := f.insert(account)
	if err != nil {
		return 0, err
	}
	profile.AccountID = id
	f.seniors[id] = profile
	return id, nil
}

func (f *fakeAccountStore) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeAccountStore) GetByID(_ context.Context, id int64) (*models.Account, error) {
	if a, ok := f.accounts[id]; ok {
		return a, nil
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeAccountStore) UpdateLastLogin(_ context.Context, id int64) error {
	if _, ok := f.accounts[id]; !ok {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

type fakeTokenStore struct {
	tokens map[string]struct {
		accountID int64
		expiry    time.Time
		revoked   bool
	}
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]struct {
		accountID int64
		expiry    time.Time
		revoked   bool
	}{}}
}

func (f *fakeTokenStore) CreateToken(_ context.Context, token string, accountID int64, expiryDate time.Time) error {
	f.tokens[token] = struct {
		accountID int64
		expiry    time.Time
		revoked   bool
	}{accountID, expiryDate, false}
	return nil
}

func (f *fakeTokenStore) GetTokenByValue(_ context.Context, token string) (int64, time.Time, bool, error) {
	t, ok := f.tokens[token]
	if !ok {
		return 0, time.Time{}, false, apperrors.ErrTokenNotFound
	}
	if t.revoked {
		return t.accountID, time.Time{}, true, apperrors.ErrTokenRevoked
	}
	if t.expiry.Before(time.Now()) {
		return 0, time.Time{}, false, apperrors.ErrTokenExpired
	}
	return t.accountID, t.expiry, t.revoked, nil
}

func (f *fakeTokenStore) RevokeToken(_ context.Context, token string) error {
	t, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	t.revoked = true
	f.tokens[token] = t
	return nil
}

func (f *fakeTokenStore) RevokeAllAccountTokens(_ context.Context, accountID int64) error {
	for k, t := range f.tokens {
		if t.accountID == accountID {
			t.revoked = true
			f.tokens[k] = t
		}
	}
	return nil
}

func newAuthFixture() (*AuthService, *fakeAccountStore, *fakeTokenStore) {
	accounts := newFakeAccountStore()
	tokens := newFakeTokenStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
	return NewAuthService(accounts, tokens, jwtService, zerolog.Nop()), accounts, tokens
}

func TestRegisterJunior(t *testing.T) {
	svc, accounts, _ := newAuthFixture()

	resp, err := svc.RegisterJunior(context.Background(), &dto.RegisterJuniorRequest{
		FullName: "Ravi K",
		Email:    "ravi.24mca@kongu.edu",
		Phone:    "9876543210",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, string(models.CategoryJunior), resp.Category)
	require.Contains(t, accounts.juniors, resp.AccountID)
	// password is stored hashed
	require.NotEqual(t, "secret1", accounts.accounts[resp.AccountID].Password)
}

func TestRegisterJuniorRejectsSeniorEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.RegisterJunior(context.Background(), &dto.RegisterJuniorRequest{
		FullName: "Ravi K",
		Email:    "ravi.23mca@kongu.edu",
		Phone:    "9876543210",
		Password: "secret1",
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidEmail)
}

func TestRegisterSenior(t *testing.T) {
	svc, accounts, _ := newAuthFixture()

	resp, err := svc.RegisterSenior(context.Background(), &dto.RegisterSeniorRequest{
		FullName:   "Priya S",
		Email:      "priya.22mca@kongu.edu",
		Phone:      "9876501234",
		Password:   "secret1",
		Department: "MCA",
		Photo:      "uploads/priya.jpg",
	})
	require.NoError(t, err)
	require.Equal(t, string(models.CategorySenior), resp.Category)
	require.Contains(t, accounts.seniors, resp.AccountID)
	// no role tag supplied, none recorded
	require.Nil(t, accounts.seniors[resp.AccountID].Role)
}

func TestRegisterSeniorWithRole(t *testing.T) {
	svc, accounts, _ := newAuthFixture()

	resp, err := svc.RegisterSenior(context.Background(), &dto.RegisterSeniorRequest{
		FullName:   "Arun M",
		Email:      "arun.22mca@kongu.edu",
		Phone:      "9876501235",
		Password:   "secret1",
		Department: "MCA",
		Photo:      "uploads/arun.jpg",
		Role:       string(models.RolePlacementCoordinator),
	})
	require.NoError(t, err)

	profile := accounts.seniors[resp.AccountID]
	require.NotNil(t, profile.Role)
	require.Equal(t, models.RolePlacementCoordinator, *profile.Role)
}

func TestRegisterSeniorRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.RegisterSenior(context.Background(), &dto.RegisterSeniorRequest{
		FullName:   "Arun M",
		Email:      "arun.22mca@kongu.edu",
		Phone:      "9876501235",
		Password:   "secret1",
		Department: "MCA",
		Photo:      "uploads/arun.jpg",
		Role:       "class_monitor",
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidRoleTag)
}

func TestRegisterSeniorRequiresPhoto(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.RegisterSenior(context.Background(), &dto.RegisterSeniorRequest{
		FullName:   "Priya S",
		Email:      "priya.22mca@kongu.edu",
		Phone:      "9876501234",
		Password:   "secret1",
		Department: "MCA",
		Photo:      "  ",
	})
	require.Error(t, err)
}

func TestRegisterRejectsBadPhoneAndPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.RegisterJunior(context.Background(), &dto.RegisterJuniorRequest{
		FullName: "Ravi K",
		Email:    "ravi.24mca@kongu.edu",
		Phone:    "12345",
		Password: "secret1",
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidPhone)

	_, err = svc.RegisterJunior(context.Background(), &dto.RegisterJuniorRequest{
		FullName: "Ravi K",
		Email:    "ravi.24mca@kongu.edu",
		Phone:    "9876543210",
		Password: "short",
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidPassword)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	req := &dto.RegisterJuniorRequest{
		FullName: "Ravi K",
		Email:    "ravi.24mca@kongu.edu",
		Phone:    "9876543210",
		Password: "secret1",
	}
	_, err := svc.RegisterJunior(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.RegisterJunior(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginAndRefresh(t *testing.T) {
	svc, _, tokens := newAuthFixture()

	_, err := svc.RegisterSenior(context.Background(), &dto.RegisterSeniorRequest{
		FullName:   "Priya S",
		Email:      "priya.22mca@kongu.edu",
		Phone:      "9876501234",
		Password:   "secret1",
		Department: "MCA",
		Photo:      "uploads/priya.jpg",
	})
	require.NoError(t, err)

	tokenResp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "priya.22mca@kongu.edu",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, "Bearer", tokenResp.TokenType)
	require.Equal(t, string(models.CohortSenior), tokenResp.Cohort)
	require.NotEmpty(t, tokenResp.AccessToken)
	require.NotEmpty(t, tokenResp.RefreshToken)

	refreshed, err := svc.RefreshToken(context.Background(), tokenResp.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, tokenResp.RefreshToken, refreshed.RefreshToken)

	// the used refresh token is revoked and cannot be replayed
	_, err = svc.RefreshToken(context.Background(), tokenResp.RefreshToken)
	require.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	require.NoError(t, svc.Logout(context.Background(), refreshed.RefreshToken))
	_, _, _, err = tokens.GetTokenByValue(context.Background(), refreshed.RefreshToken)
	require.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestRefreshTokenReplayRevokesAllTokens(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.RegisterSenior(context.Background(), &dto.RegisterSeniorRequest{
		FullName:   "Priya S",
		Email:      "priya.22mca@kongu.edu",
		Phone:      "9876501234",
		Password:   "secret1",
		Department: "MCA",
		Photo:      "uploads/priya.jpg",
	})
	require.NoError(t, err)

	// two independent sessions for the same account
	first, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "priya.22mca@kongu.edu",
		Password: "secret1",
	})
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "priya.22mca@kongu.edu",
		Password: "secret1",
	})
	require.NoError(t, err)

	// rotate the first session's token, then replay the spent one
	_, err = svc.RefreshToken(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	_, err = svc.RefreshToken(context.Background(), first.RefreshToken)
	require.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	// the replay killed the second session's token too
	_, err = svc.RefreshToken(context.Background(), second.RefreshToken)
	require.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody.22mca@kongu.edu",
		Password: "whatever",
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
