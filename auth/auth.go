// Package auth verifies the single admin credential and issues signed,
// time-limited tokens.
package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ewinters/portfolio-backend/errs"
	"github.com/ewinters/portfolio-backend/models"
)

// TokenTTL is the fixed lifetime of an issued token.
const TokenTTL = time.Hour

type userFinder interface {
	FindByUsername(username string) (*models.User, error)
}

type Service struct {
	secret []byte
	users  userFinder
	now    func() time.Time
}

func NewService(secret string, users userFinder) *Service {
	return &Service{
		secret: []byte(secret),
		users:  users,
		now:    time.Now,
	}
}

// Login checks the supplied credentials against the stored admin hash and
// returns a signed token on success. Unknown usernames and wrong passwords
// produce the same error so responses do not reveal which part failed.
func (s *Service) Login(username, password string) (string, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return "", errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return "", invalidCredentials()
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", invalidCredentials()
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   user.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies a token's signature and expiry and returns the username
// it was issued to.
func (s *Service) Parse(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errs.NewUnauthorizedError("invalid token")
	}
	return claims.Subject, nil
}

func invalidCredentials() *errs.ApiErr {
	return errs.NewApiErr(http.StatusUnauthorized, "Invalid credentials")
}
