package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/tennis-cup/utils"
	"github.com/golang-jwt/jwt/v4"
)

var ErrAuthInvalidCredentials = errors.New("invalid organizer password")

const (
	RoleOrganizer = "organizer"
	tokenTTL      = 24 * time.Hour
)

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (string, error)
}

type LoginInput struct {
	Password string `json:"password"`
}

// authService issues organizer tokens. There is a single organizer whose
// bcrypt password hash comes from configuration.
type authService struct {
	passwordHash string
	jwtSecret    []byte
	now          func() time.Time
}

func NewAuthService(passwordHash string, jwtSecret []byte) AuthService {
	return &authService{
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		now:          time.Now,
	}
}

func (s *authService) Login(_ context.Context, input LoginInput) (string, error) {
	if input.Password == "" || !utils.CheckPasswordHash(input.Password, s.passwordHash) {
		return "", ErrAuthInvalidCredentials
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub":  RoleOrganizer,
		"role": RoleOrganizer,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
