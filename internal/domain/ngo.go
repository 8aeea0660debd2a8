package domain

import "time"

// NGO is the contact record for a verified organisation that owns campaigns.
type NGO struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}
