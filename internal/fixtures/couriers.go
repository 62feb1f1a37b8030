// Package fixtures holds demo seed data for development environments.
// The core never reads from here: fixtures are applied through the
// regular courier registry, keeping fabricated data out of the store's
// normal read path.
package fixtures

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/parcelpro/tracking-service/internal/core/domain"
)

type demoCourier struct {
	id       string
	name     string
	email    string
	phone    string
	vehicle  string
	password string
}

var demoCouriers = []demoCourier{
	{id: "CR001", name: "John Doe", email: "john@example.com", phone: "1234567890", vehicle: "Van", password: "john123"},
	{id: "CR002", name: "Jane Smith", email: "jane@example.com", phone: "0987654321", vehicle: "Bike", password: "jane123"},
	{id: "CR003", name: "Alice Rider", email: "alice@example.com", phone: "5551234567", vehicle: "Motorcycle", password: "alice123"},
}

// DemoCouriers returns the development courier registry with freshly
// hashed demo passwords.
func DemoCouriers() ([]domain.Courier, error) {
	out := make([]domain.Courier, 0, len(demoCouriers))
	for _, d := range demoCouriers {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Courier{
			ID:           d.id,
			Name:         d.name,
			Email:        d.email,
			Phone:        d.phone,
			Vehicle:      d.vehicle,
			PasswordHash: string(hash),
		})
	}
	return out, nil
}
