package domain

// Courier is an agent to whom parcels may be assigned. Courier records
// are seeded/administered externally; the core only checks existence
// and verifies credentials on login.
type Courier struct {
	ID           string `json:"id" bson:"_id"`
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email,omitempty" bson:"email,omitempty"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`
	Vehicle      string `json:"vehicle,omitempty" bson:"vehicle,omitempty"`
	PasswordHash string `json:"-" bson:"password_hash"`
}
