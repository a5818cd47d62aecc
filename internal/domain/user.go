package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Role é o papel do usuário na organização, emitido pelo backend no token
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleCoordinator Role = "coordinator"
	RoleStaff       Role = "staff"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCoordinator, RoleStaff:
		return true
	}
	return false
}

// Claims são os dados do usuário carregados no JWT
type Claims struct {
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	Email          string `json:"email,omitempty"`
	Role           Role   `json:"role"`
	jwt.RegisteredClaims
}
