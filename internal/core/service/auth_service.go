package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/parcelpro/tracking-service/internal/core/domain"
	"github.com/parcelpro/tracking-service/internal/core/ports"
)

// AuthService implements courier login against the registry.
type AuthService struct {
	couriers  ports.CourierRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(couriers ports.CourierRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{couriers: couriers, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login verifies the courier's password and returns a signed HS256 token.
// An unknown courier ID is indistinguishable from a wrong password.
func (s *AuthService) Login(ctx context.Context, courierID, password string) (string, *domain.Courier, error) {
	if courierID == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	courier, err := s.couriers.FindByID(ctx, courierID)
	if err != nil {
		if errors.Is(err, domain.ErrCourierNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(courier.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(courier)
	if err != nil {
		return "", nil, err
	}
	return token, courier, nil
}

func (s *AuthService) generateToken(courier *domain.Courier) (string, error) {
	claims := jwt.MapClaims{
		"courier_id": courier.ID,
		"name":       courier.Name,
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
