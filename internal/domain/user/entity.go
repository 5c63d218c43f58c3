package user

import "time"

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

type User struct {
	ID             int64
	Username       string
	Email          string
	FullName       string
	PasswordHashed string
	Role           string

	CreatedAt time.Time
	UpdatedAt time.Time
}
