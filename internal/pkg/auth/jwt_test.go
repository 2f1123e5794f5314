package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gradchat/gradchat/internal/app/models"
)

func newTestJWTService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "gradchat.test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestJWTService()
	account := &models.Account{ID: 42, Email: "divya.23mca@kongu.edu"}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(account, models.CohortSenior)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	require.Equal(t, int(time.Hour.Seconds()), expiresIn)
	require.Equal(t, int((720 * time.Hour).Seconds()), refreshExpiresIn)

	claims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.AccountID)
	require.Equal(t, "divya.23mca@kongu.edu", claims.Email)
	require.Equal(t, string(models.CohortSenior), claims.Cohort)
	require.Equal(t, "gradchat.test", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestJWTService()
	account := &models.Account{ID: 1, Email: "ravi.24mca@kongu.edu"}

	accessToken, _, _, _, err := svc.GenerateTokenPair(account, models.CohortJunior)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "gradchat.test",
	})
	_, err = other.ValidateToken(accessToken)
	require.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  -time.Minute,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "gradchat.test",
	})
	account := &models.Account{ID: 7, Email: "arun.22mca@kongu.edu"}

	accessToken, _, _, _, err := svc.GenerateTokenPair(account, models.CohortSenior)
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	require.ErrorIs(t, err, ErrInvalidFormat)
}
