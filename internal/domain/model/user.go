package model

import "time"

// User is a platform account known to this service. Besides interactive
// sessions it also covers service accounts such as the e-commerce worker.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
