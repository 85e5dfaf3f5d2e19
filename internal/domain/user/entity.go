package user

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string
	IsAdmin      bool
	EmployeeCode *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
