package domain

import "time"

// Donor is the contact record for a person who funds campaigns. Account
// credentials live in the signup flow and are not part of this service.
type Donor struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}
