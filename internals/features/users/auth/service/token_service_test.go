package service

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventku_backend/internals/constants"
	userModel "eventku_backend/internals/features/users/user/model"
)

const testSecret = "test-secret"

func testUser() *userModel.UserModel {
	return &userModel.UserModel{
		UserID:    uuid.New(),
		UserName:  gofakeit.Name(),
		UserEmail: gofakeit.Email(),
		UserRole:  constants.RoleAttendee,
	}
}

func TestSessionToken_RoundTrip(t *testing.T) {
	user := testUser()

	raw, err := CreateSessionToken(testSecret, user)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := VerifySessionToken(testSecret, raw)
	require.NoError(t, err)

	assert.Equal(t, user.UserID.String(), claims["id"])
	assert.Equal(t, user.UserID.String(), claims["sub"])
	assert.Equal(t, user.UserName, claims["user_name"])
	assert.Equal(t, user.UserEmail, claims["email"])
	assert.Equal(t, user.UserRole, claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	wantExp := time.Now().Add(SessionTTL).Unix()
	assert.InDelta(t, wantExp, int64(exp), 5, "exp should be ~7 days out")
}

func TestSessionToken_WrongSecret(t *testing.T) {
	raw, err := CreateSessionToken(testSecret, testUser())
	require.NoError(t, err)

	_, err = VerifySessionToken("other-secret", raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionToken_Expired(t *testing.T) {
	claims := jwt.MapClaims{
		"id":  uuid.NewString(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifySessionToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionToken_MissingSecret(t *testing.T) {
	_, err := CreateSessionToken("  ", testUser())
	assert.Error(t, err)
}

func TestSessionToken_RejectsNonHMAC(t *testing.T) {
	// token alg "none" harus ditolak
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": uuid.NewString()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifySessionToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
