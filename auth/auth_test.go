package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ewinters/portfolio-backend/errs"
	"github.com/ewinters/portfolio-backend/models"
)

const testSecret = "test-secret"

type fakeUsers struct {
	user *models.User
	err  error
}

func (f fakeUsers) FindByUsername(username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.user != nil && f.user.Username == username {
		return f.user, nil
	}
	return nil, nil
}

func newTestService(t *testing.T, password string) *Service {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(testSecret, fakeUsers{
		user: &models.User{Username: "admin", Password: string(hashed)},
	})
}

func TestLoginIssuesTokenWithOneHourExpiry(t *testing.T) {
	svc := newTestService(t, "hunter2")
	issuedAt := time.Date(2024, 10, 31, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	tokenString, err := svc.Login("admin", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, jwt.WithTimeFunc(func() time.Time { return issuedAt }))
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, issuedAt.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestService(t, "hunter2")

	_, wrongPassword := svc.Login("admin", "wrong")
	_, unknownUser := svc.Login("nobody", "hunter2")

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())

	var apiErr *errs.ApiErr
	require.True(t, errors.As(wrongPassword, &apiErr))
	assert.Equal(t, 401, apiErr.StatusCode)
	require.True(t, errors.As(unknownUser, &apiErr))
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestParse(t *testing.T) {
	svc := newTestService(t, "hunter2")

	tokenString, err := svc.Login("admin", "hunter2")
	require.NoError(t, err)

	username, err := svc.Parse(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)

	_, err = svc.Parse("not-a-token")
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	svc := newTestService(t, "hunter2")
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tokenString, err := svc.Login("admin", "hunter2")
	require.NoError(t, err)

	_, err = svc.Parse(tokenString)
	assert.Error(t, err)
}
