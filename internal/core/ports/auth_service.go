package ports

import (
	"context"

	"github.com/parcelpro/tracking-service/internal/core/domain"
)

// AuthService authenticates couriers against the registry.
type AuthService interface {
	// Login verifies the courier's password and returns a signed token
	// plus the courier record, or domain.ErrInvalidCredentials.
	Login(ctx context.Context, courierID, password string) (string, *domain.Courier, error)
}
